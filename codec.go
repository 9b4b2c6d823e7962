package marc21

import (
	"encoding"
	"io"
)

// Wire-level constants of the ISO 2709 container shared by all MARC 21
// formats. The three delimiter bytes are reserved: they never appear
// inside tags, indicators, subfield codes or payload bytes.
const (
	// RecordTerminator (0x1D) marks the end of a record.
	RecordTerminator = 0x1D
	// FieldTerminator (0x1E) marks the end of the directory and of every
	// variable field.
	FieldTerminator = 0x1E
	// SubfieldDelimiter (0x1F) introduces each subfield inside a data field.
	SubfieldDelimiter = 0x1F
)

const (
	// LeaderLength is the fixed size of the record leader.
	LeaderLength = 24

	// MaxRecordLength is the largest encodable record. The leader stores
	// the record length as five right-justified ASCII digits, so anything
	// larger is unrepresentable and must fail at encode time.
	MaxRecordLength = 99999

	// TagLength is the fixed width of a field tag, in the directory and on
	// every Field.
	TagLength = 3

	// Conventional directory-entry digit widths. The encoder starts from
	// these and grows them (updating the leader entry map) only when a
	// field length or offset does not fit.
	DefaultLengthWidth = 4
	DefaultStartWidth  = 5
)

// Sizer is an interface for types that can report their binary size.
// This is useful for pre-allocating buffers before encoding.
type Sizer interface {
	// Size returns the size of the type in bytes when encoded.
	Size() int
}

// Marshaler defines the core methods for encoding a value into ISO 2709
// bytes. It integrates standard library interfaces and provides a
// zero-allocation option for pre-sized buffers.
type Marshaler interface {
	// encoding.BinaryMarshaler allocates and returns a new byte slice.
	encoding.BinaryMarshaler
	// io.WriterTo writes the encoded form to a stream.
	io.WriterTo

	// MarshalTo encodes into a pre-allocated buffer, returning
	// io.ErrShortBuffer if the buffer is too small.
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler defines the core methods for decoding ISO 2709 bytes.
type Unmarshaler interface {
	// encoding.BinaryUnmarshaler decodes from a byte slice holding exactly
	// one record.
	encoding.BinaryUnmarshaler
	// io.ReaderFrom consumes exactly one record from a stream.
	io.ReaderFrom
}

// Codec aggregates the serialization interfaces. Leader and Record are
// complete, self-sizing codecs.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}

// reserved reports whether b is one of the three delimiter bytes that may
// never appear as content.
func reserved(b byte) bool {
	return b == RecordTerminator || b == FieldTerminator || b == SubfieldDelimiter
}

// validTag reports whether tag is a well-formed three-byte field tag: any
// ASCII bytes except the reserved delimiters.
func validTag(tag string) bool {
	if len(tag) != TagLength {
		return false
	}
	for i := 0; i < TagLength; i++ {
		if tag[i] > 0x7F || reserved(tag[i]) {
			return false
		}
	}
	return true
}

// IsControlTag reports whether tag falls in the conventional control-field
// range ("001" through "009"). Control fields carry a raw payload with no
// indicator or subfield structure.
func IsControlTag(tag string) bool {
	return len(tag) == TagLength && tag < "010"
}
