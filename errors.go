package marc21

import (
	"errors"
	"fmt"
)

var (
	// ErrLeaderTooShort indicates that fewer than 24 bytes were supplied to
	// the leader decoder.
	ErrLeaderTooShort = errors.New("marc21: leader shorter than 24 bytes")

	// ErrInvalidDigits indicates a non-ASCII-digit byte inside one of the
	// leader's numeric positions (record length, indicator count, subfield
	// code length, base address, entry map).
	ErrInvalidDigits = errors.New("marc21: non-digit byte in numeric leader position")

	// ErrInconsistentEntryMap indicates entry-map digits outside the
	// accepted range: the field-length and starting-position widths must
	// each be at least 1 and the resulting directory-entry width must stay
	// within maxEntryWidth.
	ErrInconsistentEntryMap = errors.New("marc21: inconsistent leader entry map")

	// ErrDirectoryTruncated indicates a directory region that ends
	// mid-entry or is missing its field terminator.
	ErrDirectoryTruncated = errors.New("marc21: truncated directory")

	// ErrDirectoryMisaligned indicates a directory region whose length is
	// not an exact multiple of the entry width declared by the leader.
	ErrDirectoryMisaligned = errors.New("marc21: directory region not a multiple of entry width")

	// ErrBadTag indicates a field tag containing a reserved delimiter byte
	// or not exactly three bytes long.
	ErrBadTag = errors.New("marc21: invalid field tag")

	// ErrLengthOverflow indicates a directory entry whose numeric portion
	// holds non-digit bytes, so the value cannot be represented in the
	// declared digit width.
	ErrLengthOverflow = errors.New("marc21: directory entry number does not fit its digit width")

	// ErrMissingIndicators indicates a data field with fewer than two bytes
	// before the first subfield delimiter.
	ErrMissingIndicators = errors.New("marc21: data field missing indicator bytes")

	// ErrMissingSubfieldDelimiter indicates stray bytes between a data
	// field's indicators and its first subfield delimiter.
	ErrMissingSubfieldDelimiter = errors.New("marc21: data field content outside any subfield")

	// ErrEmptySubfieldCode indicates a subfield delimiter immediately
	// followed by the field terminator or another delimiter, leaving no
	// code byte.
	ErrEmptySubfieldCode = errors.New("marc21: empty subfield code")

	// ErrMissingFieldTerminator indicates a field payload that does not end
	// with the field terminator byte.
	ErrMissingFieldTerminator = errors.New("marc21: field payload missing field terminator")

	// ErrFieldOutOfBounds indicates a directory entry addressing bytes
	// beyond the end of the data region.
	ErrFieldOutOfBounds = errors.New("marc21: directory entry addresses bytes outside the data region")

	// ErrLengthMismatch indicates a record buffer whose size disagrees with
	// the length declared in its leader, or that lacks the record
	// terminator.
	ErrLengthMismatch = errors.New("marc21: buffer length disagrees with declared record length")

	// ErrTooLarge indicates an encode whose result would exceed the
	// five-digit record length limit, or a field too long for any
	// supported directory digit width. Overflow is always fatal; lengths
	// are never truncated or wrapped.
	ErrTooLarge = errors.New("marc21: encoded record exceeds maximum length")

	// ErrReservedByte indicates content handed to the encoder that
	// contains one of the delimiter bytes 0x1D/0x1E/0x1F.
	ErrReservedByte = errors.New("marc21: reserved delimiter byte in field content")

	// ErrEncodeMalformed indicates an attempt to encode a record holding a
	// Malformed field.
	ErrEncodeMalformed = errors.New("marc21: cannot encode a malformed field")

	// ErrTagKindMismatch indicates a control field with a tag outside the
	// control range, or a data field with a control tag. Decoding is
	// driven purely by the tag, so such a field cannot round-trip.
	ErrTagKindMismatch = errors.New("marc21: field kind disagrees with its tag's range")
)

// LeaderError reports a malformed leader. Offset is the byte position
// within the leader at which the problem was detected.
type LeaderError struct {
	Offset int
	Err    error
}

func (e *LeaderError) Error() string {
	return fmt.Sprintf("%v (leader offset %d)", e.Err, e.Offset)
}

func (e *LeaderError) Unwrap() error { return e.Err }

// DirectoryError reports a malformed directory. Entry is the zero-based
// index of the offending entry (-1 when the region as a whole is bad) and
// Offset is the byte position relative to the start of the directory region.
type DirectoryError struct {
	Entry  int
	Offset int
	Err    error
}

func (e *DirectoryError) Error() string {
	if e.Entry < 0 {
		return fmt.Sprintf("%v (directory offset %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v (directory entry %d, offset %d)", e.Err, e.Entry, e.Offset)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// FieldError reports a malformed variable field. Offset is the byte
// position within the field's raw payload.
type FieldError struct {
	Tag    string
	Offset int
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v (field %q, offset %d)", e.Err, e.Tag, e.Offset)
}

func (e *FieldError) Unwrap() error { return e.Err }

// RecordError reports a record-level decode or encode failure. Offset is
// the byte position within the record buffer, or -1 for encode-time errors
// with no buffer position.
type RecordError struct {
	Offset int
	Err    error
}

func (e *RecordError) Error() string {
	if e.Offset < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (record offset %d)", e.Err, e.Offset)
}

func (e *RecordError) Unwrap() error { return e.Err }
