package marc21

import "io"

// Record is one decoded ISO 2709 record: leader metadata plus the ordered
// field list. Field order is semantically significant and preserved
// exactly. A Record owns its fields and their payload bytes outright; it
// never aliases the buffer it was decoded from.
type Record struct {
	// Leader holds the structural metadata. RecordLength, BaseAddress and
	// EntryMap are recomputed from the field contents on every encode.
	Leader Leader

	// Fields in directory order. Entries that failed to decode appear as
	// *MalformedField in their original position.
	Fields []Field

	report Report
}

var _ Codec = (*Record)(nil)

// NewRecord returns an empty record with conventional leader defaults,
// ready for programmatic construction.
func NewRecord() *Record {
	return &Record{Leader: NewLeader()}
}

// AddField appends a field and returns the record for chaining.
func (r *Record) AddField(f Field) *Record {
	r.Fields = append(r.Fields, f)
	return r
}

// Diagnostics returns the ordered report of field-level problems recovered
// during decode. It is empty for programmatically built records and for
// clean decodes.
func (r *Record) Diagnostics() Report { return r.report }

// DecodeRecord parses one complete record buffer.
//
// Leader and directory errors are fatal: without them the container's
// geometry is unknown. A field that fails to decode is kept as a
// *MalformedField in its directory position and recorded in the record's
// Diagnostics, so one corrupt field does not hide the rest of an
// otherwise valid record.
func DecodeRecord(p []byte) (*Record, error) {
	leader, err := DecodeLeader(p)
	if err != nil {
		return nil, err
	}
	if leader.RecordLength != len(p) {
		return nil, &RecordError{Offset: 0, Err: ErrLengthMismatch}
	}
	if p[len(p)-1] != RecordTerminator {
		return nil, &RecordError{Offset: len(p) - 1, Err: ErrLengthMismatch}
	}

	base := leader.BaseAddress
	if base < LeaderLength+1 || base > len(p)-1 {
		return nil, &DirectoryError{Entry: -1, Offset: base, Err: ErrDirectoryTruncated}
	}
	entries, err := DecodeDirectory(p[LeaderLength:base], leader.EntryMap)
	if err != nil {
		return nil, err
	}

	rec := &Record{Leader: leader}
	data := p[base : len(p)-1]
	for i, e := range entries {
		f, ferr := decodeEntry(e, data)
		if ferr != nil {
			rec.report = append(rec.report, Diagnostic{
				Entry:  i,
				Tag:    e.Tag,
				Offset: base + e.Start,
				Err:    ferr,
			})
		}
		rec.Fields = append(rec.Fields, f)
	}
	return rec, nil
}

// decodeEntry slices one field out of the data region and decodes it.
// Any failure is demoted to a MalformedField carrying whatever bytes the
// entry actually addresses.
func decodeEntry(e DirectoryEntry, data []byte) (Field, error) {
	if e.Start < 0 || e.Length < 1 || e.Start+e.Length > len(data) {
		err := &FieldError{Tag: e.Tag, Offset: e.Start, Err: ErrFieldOutOfBounds}
		var raw []byte
		if e.Start >= 0 && e.Start < len(data) {
			raw = clone(data[e.Start:])
		}
		return &MalformedField{tag: e.Tag, Raw: raw, Err: err}, err
	}

	raw := data[e.Start : e.Start+e.Length]
	f, err := DecodeField(e.Tag, raw)
	if err != nil {
		return &MalformedField{tag: e.Tag, Raw: clone(raw), Err: err}, err
	}
	return f, nil
}

// EncodeRecord serializes the record: fields first (so their lengths are
// known), then the directory built from the resulting offsets, then the
// leader finalized with the computed base address and total length. The
// record's Leader is updated in place with the derived values, which is
// what makes decode(encode(r)) reproduce r exactly.
func EncodeRecord(r *Record) ([]byte, error) {
	return r.MarshalBinary()
}

// MarshalBinary implements encoding.BinaryMarshaler; see EncodeRecord.
func (r *Record) MarshalBinary() ([]byte, error) {
	scratch := getScratch()
	defer putScratch(scratch)

	data := *scratch
	entries := make([]DirectoryEntry, 0, len(r.Fields))
	for _, f := range r.Fields {
		start := len(data)
		next, err := AppendField(data, f)
		if err != nil {
			return nil, err
		}
		data = next
		entries = append(entries, DirectoryEntry{
			Tag:    f.Tag(),
			Length: len(data) - start,
			Start:  start,
		})
		// Keep the pool pointed at the grown buffer across reallocations.
		*scratch = data
	}

	em, total, err := r.layout(entries, len(data))
	if err != nil {
		return nil, err
	}

	r.Leader.RecordLength = total
	r.Leader.BaseAddress = LeaderLength + len(entries)*em.EntryWidth() + 1
	r.Leader.EntryMap = em

	out := make([]byte, 0, total)
	out = r.Leader.AppendBinary(out)
	out, err = AppendDirectory(out, entries, em)
	if err != nil {
		return nil, err
	}
	out = append(out, data...)
	out = append(out, RecordTerminator)
	return out, nil
}

// layout chooses directory digit widths wide enough for the largest field
// length and offset, growing past the conventional 4/5 only when needed,
// and computes the total record length. Any overflow of the five-digit
// limits is a hard error; lengths are never truncated.
func (r *Record) layout(entries []DirectoryEntry, dataLen int) (EntryMap, int, error) {
	em := EntryMap{
		LengthOfLength: DefaultLengthWidth,
		LengthOfStart:  DefaultStartWidth,
		LengthOfImpl:   0,
		Undefined:      r.Leader.EntryMap.Undefined,
	}
	if em.Undefined == 0 {
		em.Undefined = '0'
	}

	for _, e := range entries {
		if w := digitWidth(e.Length); w > em.LengthOfLength {
			em.LengthOfLength = w
		}
		if w := digitWidth(e.Start); w > em.LengthOfStart {
			em.LengthOfStart = w
		}
	}
	// Five digits is the ceiling: the leader cannot address more.
	if em.LengthOfLength > 5 || em.LengthOfStart > 5 {
		return em, 0, &RecordError{Offset: -1, Err: ErrTooLarge}
	}

	base := LeaderLength + len(entries)*em.EntryWidth() + 1
	total := base + dataLen + 1
	if total > MaxRecordLength {
		return em, 0, &RecordError{Offset: -1, Err: ErrTooLarge}
	}
	return em, total, nil
}

// Size implements Sizer: the exact encoded size of the record, or -1 if
// the record cannot be encoded (a Malformed field or an overflow).
func (r *Record) Size() int {
	entries := make([]DirectoryEntry, 0, len(r.Fields))
	dataLen := 0
	for _, f := range r.Fields {
		n := encodedFieldSize(f)
		if n < 0 {
			return -1
		}
		entries = append(entries, DirectoryEntry{Length: n, Start: dataLen})
		dataLen += n
	}
	_, total, err := r.layout(entries, dataLen)
	if err != nil {
		return -1
	}
	return total
}

// encodedFieldSize returns the byte length of f once encoded, terminator
// included, or -1 for a Malformed field.
func encodedFieldSize(f Field) int {
	switch f := f.(type) {
	case *ControlField:
		return len(f.Data) + 1
	case *DataField:
		n := 2
		for _, sf := range f.Subfields {
			n += 2 + len(sf.Value)
		}
		return n + 1
	default:
		return -1
	}
}

// MarshalTo encodes the record into a pre-allocated buffer.
func (r *Record) MarshalTo(p []byte) (int, error) {
	return marshalToGeneric(r, p)
}

// WriteTo implements io.WriterTo.
func (r *Record) WriteTo(w io.Writer) (int64, error) {
	return writeToGeneric(r, w)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must hold
// exactly one record.
func (r *Record) UnmarshalBinary(data []byte) error {
	rec, err := DecodeRecord(data)
	if err != nil {
		return err
	}
	*r = *rec
	return nil
}

// ReadFrom consumes exactly one record from a stream: the 24-byte leader
// first, then the remainder the leader declares. It never reads past the
// record terminator, so records can be read back to back.
func (r *Record) ReadFrom(rd io.Reader) (int64, error) {
	var head [LeaderLength]byte
	n, err := io.ReadFull(rd, head[:])
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			err = &LeaderError{Offset: n, Err: ErrLeaderTooShort}
		}
		return int64(n), err
	}

	leader, err := DecodeLeader(head[:])
	if err != nil {
		return int64(n), err
	}
	if leader.RecordLength < LeaderLength+2 || leader.RecordLength > MaxRecordLength {
		return int64(n), &RecordError{Offset: 0, Err: ErrLengthMismatch}
	}

	buf := make([]byte, leader.RecordLength)
	copy(buf, head[:])
	m, err := io.ReadFull(rd, buf[LeaderLength:])
	total := int64(n + m)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = &RecordError{Offset: n + m, Err: ErrLengthMismatch}
		}
		return total, err
	}
	return total, r.UnmarshalBinary(buf)
}
