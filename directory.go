package marc21

// DirectoryEntry locates one variable field inside the data region.
// Entries appear in directory order, which the container preserves; they
// are not guaranteed sorted by Start.
type DirectoryEntry struct {
	// Tag is the three-byte field tag.
	Tag string
	// Length is the field's size in bytes, field terminator included.
	Length int
	// Start is the field's offset relative to the leader's base address.
	Start int
}

// DecodeDirectory parses the directory region: the bytes between the
// leader and the base address, including the closing field terminator.
// Entry widths come from the leader's entry map. Bytes in an entry's
// implementation-defined portion are skipped.
func DecodeDirectory(region []byte, em EntryMap) ([]DirectoryEntry, error) {
	if len(region) == 0 || region[len(region)-1] != FieldTerminator {
		return nil, &DirectoryError{Entry: -1, Offset: len(region), Err: ErrDirectoryTruncated}
	}

	width := em.EntryWidth()
	body := region[:len(region)-1]
	if len(body)%width != 0 {
		return nil, &DirectoryError{Entry: -1, Offset: len(body), Err: ErrDirectoryMisaligned}
	}

	count := len(body) / width
	entries := make([]DirectoryEntry, 0, count)
	for i := 0; i < count; i++ {
		off := i * width
		raw := body[off : off+width]

		tag := raw[:TagLength]
		for j, b := range tag {
			if b > 0x7F || reserved(b) {
				return nil, &DirectoryError{Entry: i, Offset: off + j, Err: ErrBadTag}
			}
		}

		length, ok := parseDigits[int](raw[TagLength : TagLength+em.LengthOfLength])
		if !ok {
			return nil, &DirectoryError{Entry: i, Offset: off + TagLength, Err: ErrLengthOverflow}
		}
		start, ok := parseDigits[int](raw[TagLength+em.LengthOfLength : TagLength+em.LengthOfLength+em.LengthOfStart])
		if !ok {
			return nil, &DirectoryError{Entry: i, Offset: off + TagLength + em.LengthOfLength, Err: ErrLengthOverflow}
		}

		entries = append(entries, DirectoryEntry{
			Tag:    string(tag),
			Length: length,
			Start:  start,
		})
	}
	return entries, nil
}

// AppendDirectory appends the encoded directory, closing field terminator
// included, to dst. It fails with ErrBadTag on a malformed tag and with
// ErrLengthOverflow when an entry's length or start does not fit the entry
// map's digit widths; numbers are never truncated to fit.
func AppendDirectory(dst []byte, entries []DirectoryEntry, em EntryMap) ([]byte, error) {
	for i, e := range entries {
		if !validTag(e.Tag) {
			return nil, &DirectoryError{Entry: i, Offset: i * em.EntryWidth(), Err: ErrBadTag}
		}
		if !fitsDigits(e.Length, em.LengthOfLength) || !fitsDigits(e.Start, em.LengthOfStart) {
			return nil, &DirectoryError{Entry: i, Offset: i * em.EntryWidth(), Err: ErrLengthOverflow}
		}
		dst = append(dst, e.Tag...)
		dst = appendDigits(dst, e.Length, em.LengthOfLength)
		dst = appendDigits(dst, e.Start, em.LengthOfStart)
		for j := 0; j < em.LengthOfImpl; j++ {
			dst = append(dst, '0')
		}
	}
	return append(dst, FieldTerminator), nil
}
