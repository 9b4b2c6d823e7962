package marc21

// Field is one variable field of a record: a control field, a data field,
// or the preserved bytes of a field that failed to decode. The interface
// is sealed; type-switch on *ControlField, *DataField and *MalformedField.
type Field interface {
	// Tag returns the field's three-byte tag.
	Tag() string

	isField()
}

// ControlField is a variable field without indicator or subfield
// structure. Tags "001" through "009" decode as control fields.
type ControlField struct {
	tag string
	// Data is the raw payload, field terminator excluded. The container
	// never interprets it as text.
	Data []byte
}

// NewControlField builds a control field for programmatic record
// construction. The tag is validated at encode time.
func NewControlField(tag string, data []byte) *ControlField {
	return &ControlField{tag: tag, Data: data}
}

func (f *ControlField) Tag() string { return f.tag }
func (f *ControlField) isField()    {}

// Subfield is one (code, value) pair of a data field. Value bytes are
// preserved verbatim; text decoding is the caller's concern (see package
// charset).
type Subfield struct {
	Code  byte
	Value []byte
}

// DataField is a variable field with two indicator bytes and an ordered
// sequence of subfields. Indicators are opaque to the container: any byte
// except the reserved delimiters.
type DataField struct {
	tag        string
	Ind1, Ind2 byte
	Subfields  []Subfield
}

// NewDataField builds a data field with the given indicators and no
// subfields.
func NewDataField(tag string, ind1, ind2 byte) *DataField {
	return &DataField{tag: tag, Ind1: ind1, Ind2: ind2}
}

// AddSubfield appends a subfield and returns the field for chaining.
func (f *DataField) AddSubfield(code byte, value []byte) *DataField {
	f.Subfields = append(f.Subfields, Subfield{Code: code, Value: value})
	return f
}

func (f *DataField) Tag() string { return f.tag }
func (f *DataField) isField()    {}

// MalformedField preserves a field that failed to decode: its directory
// tag, its raw bytes as sliced from the data region, and the decode error.
// Keeping it in the record lets callers inspect or skip a single corrupt
// field without losing the rest of the record.
type MalformedField struct {
	tag string
	Raw []byte
	Err error
}

func (f *MalformedField) Tag() string { return f.tag }
func (f *MalformedField) isField()    {}

// clone copies payload bytes out of the shared record buffer so the
// decoded field owns its data. Empty input stays nil.
func clone(p []byte) []byte {
	return append([]byte(nil), p...)
}

// DecodeField parses one variable field from its raw bytes as addressed by
// a directory entry. raw must end with the field terminator; the
// terminator is not part of any payload. Tags in the control range yield
// a *ControlField, all others a *DataField.
func DecodeField(tag string, raw []byte) (Field, error) {
	if len(raw) == 0 || raw[len(raw)-1] != FieldTerminator {
		return nil, &FieldError{Tag: tag, Offset: len(raw), Err: ErrMissingFieldTerminator}
	}
	body := raw[:len(raw)-1]

	if IsControlTag(tag) {
		return &ControlField{tag: tag, Data: clone(body)}, nil
	}

	if len(body) < 2 || body[0] == SubfieldDelimiter || body[1] == SubfieldDelimiter {
		return nil, &FieldError{Tag: tag, Offset: 0, Err: ErrMissingIndicators}
	}
	f := &DataField{tag: tag, Ind1: body[0], Ind2: body[1]}

	rest := body[2:]
	if len(rest) == 0 {
		return f, nil
	}
	if rest[0] != SubfieldDelimiter {
		return nil, &FieldError{Tag: tag, Offset: 2, Err: ErrMissingSubfieldDelimiter}
	}

	// rest is a run of delimiter-introduced segments; each needs at least
	// a one-byte code.
	off := 2
	for len(rest) > 0 {
		rest = rest[1:] // consume the delimiter
		off++
		end := 0
		for end < len(rest) && rest[end] != SubfieldDelimiter {
			end++
		}
		if end == 0 {
			return nil, &FieldError{Tag: tag, Offset: off, Err: ErrEmptySubfieldCode}
		}
		f.Subfields = append(f.Subfields, Subfield{Code: rest[0], Value: clone(rest[1:end])})
		rest = rest[end:]
		off += end
	}
	return f, nil
}

// AppendField appends the encoded field, terminator included, to dst.
// Content containing a reserved delimiter byte fails with ErrReservedByte;
// overflow or corruption is never written silently.
func AppendField(dst []byte, f Field) ([]byte, error) {
	switch f := f.(type) {
	case *ControlField:
		if !validTag(f.tag) {
			return nil, &FieldError{Tag: f.tag, Err: ErrBadTag}
		}
		if !IsControlTag(f.tag) {
			return nil, &FieldError{Tag: f.tag, Err: ErrTagKindMismatch}
		}
		for i, b := range f.Data {
			if reserved(b) {
				return nil, &FieldError{Tag: f.tag, Offset: i, Err: ErrReservedByte}
			}
		}
		dst = append(dst, f.Data...)
		return append(dst, FieldTerminator), nil

	case *DataField:
		if !validTag(f.tag) {
			return nil, &FieldError{Tag: f.tag, Err: ErrBadTag}
		}
		if IsControlTag(f.tag) {
			return nil, &FieldError{Tag: f.tag, Err: ErrTagKindMismatch}
		}
		if reserved(f.Ind1) || reserved(f.Ind2) {
			return nil, &FieldError{Tag: f.tag, Err: ErrReservedByte}
		}
		dst = append(dst, f.Ind1, f.Ind2)
		for _, sf := range f.Subfields {
			if reserved(sf.Code) {
				return nil, &FieldError{Tag: f.tag, Err: ErrReservedByte}
			}
			dst = append(dst, SubfieldDelimiter, sf.Code)
			for i, b := range sf.Value {
				if reserved(b) {
					return nil, &FieldError{Tag: f.tag, Offset: i, Err: ErrReservedByte}
				}
			}
			dst = append(dst, sf.Value...)
		}
		return append(dst, FieldTerminator), nil

	case *MalformedField:
		return nil, &FieldError{Tag: f.tag, Err: ErrEncodeMalformed}

	default:
		return nil, &FieldError{Tag: f.Tag(), Err: ErrEncodeMalformed}
	}
}

// EncodeField encodes a single field into a fresh buffer, terminator
// included.
func EncodeField(f Field) ([]byte, error) {
	return AppendField(nil, f)
}
