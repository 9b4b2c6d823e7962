package marc21

import "io"

// maxEntryWidth bounds the directory-entry width a leader entry map may
// declare: tag (3) plus the three digit widths. The conventional entry is
// 12 bytes (3+4+5); the bound leaves room for the 5/5 widths the encoder
// falls back to on oversized fields, plus an implementation-defined part.
const maxEntryWidth = 16

// EntryMap holds leader positions 20-23: the digit widths of each
// directory entry's numeric portions. Undefined is position 23, passed
// through verbatim (conventionally '0').
type EntryMap struct {
	LengthOfLength int
	LengthOfStart  int
	LengthOfImpl   int
	Undefined      byte
}

// EntryWidth returns the total width of one directory entry: the
// three-byte tag plus the three declared digit widths.
func (em EntryMap) EntryWidth() int {
	return TagLength + em.LengthOfLength + em.LengthOfStart + em.LengthOfImpl
}

// valid reports whether the entry map can address a directory at all.
// Both the length and starting-position widths must be at least one digit,
// and the resulting entry must stay within maxEntryWidth.
func (em EntryMap) valid() bool {
	return em.LengthOfLength >= 1 && em.LengthOfStart >= 1 &&
		em.LengthOfImpl >= 0 && em.EntryWidth() <= maxEntryWidth
}

// Leader is the fixed 24-byte header of every record. The numeric
// positions (record length, indicator count, subfield code length, base
// address, entry map) are decoded into integers; everything the container
// does not need to locate its own bytes (positions 5-9 and 17-19) is kept
// as opaque pass-through bytes, because the five MARC 21 formats assign
// them different semantics.
type Leader struct {
	// RecordLength is the total encoded size of the record, terminator
	// included. Derived on encode; positions 0-4.
	RecordLength int

	// Status is position 5 (record status, e.g. 'n' for new).
	Status byte

	// Type is position 6 (type of record).
	Type byte

	// Implementation holds positions 7-9 (bibliographic level, type of
	// control, character coding scheme in the bibliographic format; other
	// formats differ). Opaque to the container.
	Implementation [3]byte

	// IndicatorCount is position 10, conventionally 2.
	IndicatorCount int

	// SubfieldCodeLength is position 11, conventionally 2 (one delimiter
	// byte plus one code byte).
	SubfieldCodeLength int

	// BaseAddress is positions 12-16: the offset of the data region from
	// the start of the record. Derived on encode.
	BaseAddress int

	// UserSystem holds positions 17-19 (encoding level, cataloging form,
	// multipart level in the bibliographic format). Opaque to the
	// container.
	UserSystem [3]byte

	// EntryMap holds positions 20-23.
	EntryMap EntryMap
}

var _ Codec = (*Leader)(nil)

// NewLeader returns a leader with the conventional defaults for a freshly
// built record: blank pass-through bytes, two indicators, two-byte
// subfield codes and 4/5 directory digit widths. RecordLength and
// BaseAddress stay zero until an encode computes them.
func NewLeader() Leader {
	return Leader{
		Status:             ' ',
		Type:               ' ',
		Implementation:     [3]byte{' ', ' ', ' '},
		IndicatorCount:     2,
		SubfieldCodeLength: 2,
		UserSystem:         [3]byte{' ', ' ', ' '},
		EntryMap: EntryMap{
			LengthOfLength: DefaultLengthWidth,
			LengthOfStart:  DefaultStartWidth,
			LengthOfImpl:   0,
			Undefined:      '0',
		},
	}
}

// DecodeLeader parses the first 24 bytes of p into a Leader. It fails with
// ErrLeaderTooShort on short input, ErrInvalidDigits on a non-digit byte
// in a numeric position and ErrInconsistentEntryMap on unusable entry-map
// widths.
func DecodeLeader(p []byte) (Leader, error) {
	var l Leader
	if len(p) < LeaderLength {
		return l, &LeaderError{Offset: len(p), Err: ErrLeaderTooShort}
	}

	recordLen, ok := parseDigits[int](p[0:5])
	if !ok {
		return l, &LeaderError{Offset: 0, Err: ErrInvalidDigits}
	}
	l.RecordLength = recordLen

	l.Status = p[5]
	l.Type = p[6]
	copy(l.Implementation[:], p[7:10])

	indCount, ok := parseDigits[int](p[10:11])
	if !ok {
		return l, &LeaderError{Offset: 10, Err: ErrInvalidDigits}
	}
	l.IndicatorCount = indCount

	codeLen, ok := parseDigits[int](p[11:12])
	if !ok {
		return l, &LeaderError{Offset: 11, Err: ErrInvalidDigits}
	}
	l.SubfieldCodeLength = codeLen

	base, ok := parseDigits[int](p[12:17])
	if !ok {
		return l, &LeaderError{Offset: 12, Err: ErrInvalidDigits}
	}
	l.BaseAddress = base

	copy(l.UserSystem[:], p[17:20])

	wLen, ok := parseDigits[int](p[20:21])
	if !ok {
		return l, &LeaderError{Offset: 20, Err: ErrInvalidDigits}
	}
	wStart, ok := parseDigits[int](p[21:22])
	if !ok {
		return l, &LeaderError{Offset: 21, Err: ErrInvalidDigits}
	}
	wImpl, ok := parseDigits[int](p[22:23])
	if !ok {
		return l, &LeaderError{Offset: 22, Err: ErrInvalidDigits}
	}
	l.EntryMap = EntryMap{
		LengthOfLength: wLen,
		LengthOfStart:  wStart,
		LengthOfImpl:   wImpl,
		Undefined:      p[23],
	}
	if !l.EntryMap.valid() {
		return l, &LeaderError{Offset: 20, Err: ErrInconsistentEntryMap}
	}

	return l, nil
}

// AppendBinary appends the 24-byte encoding of l to dst. Encoding a
// structurally valid leader cannot fail; the record assembler validates
// and recomputes the derived positions before calling it.
func (l Leader) AppendBinary(dst []byte) []byte {
	dst = appendDigits(dst, l.RecordLength, 5)
	dst = append(dst, l.Status, l.Type)
	dst = append(dst, l.Implementation[:]...)
	dst = appendDigits(dst, l.IndicatorCount, 1)
	dst = appendDigits(dst, l.SubfieldCodeLength, 1)
	dst = appendDigits(dst, l.BaseAddress, 5)
	dst = append(dst, l.UserSystem[:]...)
	dst = appendDigits(dst, l.EntryMap.LengthOfLength, 1)
	dst = appendDigits(dst, l.EntryMap.LengthOfStart, 1)
	dst = appendDigits(dst, l.EntryMap.LengthOfImpl, 1)
	dst = append(dst, l.EntryMap.Undefined)
	return dst
}

// Size implements Sizer. A leader is always 24 bytes.
func (l *Leader) Size() int { return LeaderLength }

// MarshalBinary implements encoding.BinaryMarshaler.
func (l *Leader) MarshalBinary() ([]byte, error) {
	return l.AppendBinary(make([]byte, 0, LeaderLength)), nil
}

// MarshalTo encodes the leader into p without allocating.
func (l *Leader) MarshalTo(p []byte) (int, error) {
	if len(p) < LeaderLength {
		return 0, io.ErrShortBuffer
	}
	buf := l.AppendBinary(p[:0])
	return len(buf), nil
}

// WriteTo implements io.WriterTo.
func (l *Leader) WriteTo(w io.Writer) (int64, error) {
	return writeToGeneric(l, w)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (l *Leader) UnmarshalBinary(data []byte) error {
	decoded, err := DecodeLeader(data)
	if err != nil {
		return err
	}
	*l = decoded
	return nil
}

// ReadFrom implements io.ReaderFrom, consuming exactly 24 bytes.
func (l *Leader) ReadFrom(r io.Reader) (int64, error) {
	var buf [LeaderLength]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			err = &LeaderError{Offset: n, Err: ErrLeaderTooShort}
		}
		return int64(n), err
	}
	return int64(n), l.UnmarshalBinary(buf[:])
}
