package marc21

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type FieldTestSuite struct {
	suite.Suite
}

func (s *FieldTestSuite) TestDecodeControl() {
	f, err := DecodeField("001", []byte("ocm12345678\x1e"))
	s.Require().NoError(err)

	cf, ok := f.(*ControlField)
	s.Require().True(ok)
	s.Assert().Equal("001", cf.Tag())
	s.Assert().Equal([]byte("ocm12345678"), cf.Data)
}

func (s *FieldTestSuite) TestDecodeControlEmpty() {
	f, err := DecodeField("003", []byte{FieldTerminator})
	s.Require().NoError(err)

	cf := f.(*ControlField)
	s.Assert().Nil(cf.Data)
}

func (s *FieldTestSuite) TestDecodeData() {
	raw := []byte("10\x1faThe title :\x1fbremainder\x1e")
	f, err := DecodeField("245", raw)
	s.Require().NoError(err)

	df, ok := f.(*DataField)
	s.Require().True(ok)
	s.Assert().Equal("245", df.Tag())
	s.Assert().Equal(byte('1'), df.Ind1)
	s.Assert().Equal(byte('0'), df.Ind2)
	s.Assert().Equal([]Subfield{
		{Code: 'a', Value: []byte("The title :")},
		{Code: 'b', Value: []byte("remainder")},
	}, df.Subfields)
}

func (s *FieldTestSuite) TestDecodeDataEmptyValue() {
	f, err := DecodeField("650", []byte(" 0\x1fa\x1e"))
	s.Require().NoError(err)

	df := f.(*DataField)
	s.Require().Len(df.Subfields, 1)
	s.Assert().Equal(byte('a'), df.Subfields[0].Code)
	s.Assert().Nil(df.Subfields[0].Value)
}

func (s *FieldTestSuite) TestDecodeDataNoSubfields() {
	f, err := DecodeField("100", []byte("1 \x1e"))
	s.Require().NoError(err)

	df := f.(*DataField)
	s.Assert().Empty(df.Subfields)
}

func (s *FieldTestSuite) TestDecodeErrors() {
	s.T().Run("MissingTerminator", func(t *testing.T) {
		_, err := DecodeField("001", []byte("abc"))
		assert.ErrorIs(t, err, ErrMissingFieldTerminator)
	})

	s.T().Run("EmptyPayload", func(t *testing.T) {
		_, err := DecodeField("245", nil)
		assert.ErrorIs(t, err, ErrMissingFieldTerminator)
	})

	s.T().Run("MissingIndicators", func(t *testing.T) {
		_, err := DecodeField("245", []byte("1\x1e"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingIndicators)

		var ferr *FieldError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "245", ferr.Tag)
	})

	s.T().Run("IndicatorCutShortByDelimiter", func(t *testing.T) {
		_, err := DecodeField("245", []byte("1\x1faX\x1e"))
		assert.ErrorIs(t, err, ErrMissingIndicators)
	})

	s.T().Run("StrayBytesBeforeFirstSubfield", func(t *testing.T) {
		_, err := DecodeField("245", []byte("10junk\x1faX\x1e"))
		assert.ErrorIs(t, err, ErrMissingSubfieldDelimiter)
	})

	s.T().Run("EmptySubfieldCodeAtTerminator", func(t *testing.T) {
		_, err := DecodeField("245", []byte("10\x1faX\x1f\x1e"))
		assert.ErrorIs(t, err, ErrEmptySubfieldCode)
	})

	s.T().Run("EmptySubfieldCodeBeforeDelimiter", func(t *testing.T) {
		_, err := DecodeField("245", []byte("10\x1f\x1faX\x1e"))
		assert.ErrorIs(t, err, ErrEmptySubfieldCode)
	})
}

func (s *FieldTestSuite) TestEncodeControl() {
	out, err := EncodeField(NewControlField("008", []byte("920701s1991")))
	s.Require().NoError(err)
	s.Assert().Equal([]byte("920701s1991\x1e"), out)
}

func (s *FieldTestSuite) TestEncodeData() {
	f := NewDataField("245", '1', '0').
		AddSubfield('a', []byte("Title")).
		AddSubfield('c', []byte("by A. Author"))
	out, err := EncodeField(f)
	s.Require().NoError(err)
	s.Assert().Equal([]byte("10\x1faTitle\x1fcby A. Author\x1e"), out)

	decoded, err := DecodeField("245", out)
	s.Require().NoError(err)
	s.Assert().Equal(f, decoded)
}

func (s *FieldTestSuite) TestEncodeErrors() {
	s.T().Run("BadTag", func(t *testing.T) {
		_, err := EncodeField(NewControlField("01", nil))
		assert.ErrorIs(t, err, ErrBadTag)
	})

	s.T().Run("ControlTagOnDataField", func(t *testing.T) {
		_, err := EncodeField(NewDataField("005", ' ', ' '))
		assert.ErrorIs(t, err, ErrTagKindMismatch)
	})

	s.T().Run("DataTagOnControlField", func(t *testing.T) {
		_, err := EncodeField(NewControlField("245", []byte("x")))
		assert.ErrorIs(t, err, ErrTagKindMismatch)
	})

	s.T().Run("ReservedByteInControlData", func(t *testing.T) {
		_, err := EncodeField(NewControlField("001", []byte("ab\x1ecd")))
		assert.ErrorIs(t, err, ErrReservedByte)
	})

	s.T().Run("ReservedIndicator", func(t *testing.T) {
		_, err := EncodeField(NewDataField("245", SubfieldDelimiter, ' '))
		assert.ErrorIs(t, err, ErrReservedByte)
	})

	s.T().Run("ReservedByteInValue", func(t *testing.T) {
		f := NewDataField("245", '1', '0').AddSubfield('a', []byte("a\x1db"))
		_, err := EncodeField(f)
		assert.ErrorIs(t, err, ErrReservedByte)
	})

	s.T().Run("ReservedSubfieldCode", func(t *testing.T) {
		f := NewDataField("245", '1', '0').AddSubfield(FieldTerminator, nil)
		_, err := EncodeField(f)
		assert.ErrorIs(t, err, ErrReservedByte)
	})

	s.T().Run("MalformedField", func(t *testing.T) {
		f := &MalformedField{tag: "245", Raw: []byte("10\x1f"), Err: ErrEmptySubfieldCode}
		_, err := EncodeField(f)
		assert.ErrorIs(t, err, ErrEncodeMalformed)
	})
}

func TestField(t *testing.T) {
	suite.Run(t, new(FieldTestSuite))
}
