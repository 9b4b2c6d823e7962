package marc21

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// A typical bibliographic leader, 24 bytes.
var sampleLeader = []byte("01142cam a2200301 a 4500")

type LeaderTestSuite struct {
	suite.Suite
}

func (s *LeaderTestSuite) TestDecode() {
	l, err := DecodeLeader(sampleLeader)
	s.Require().NoError(err)

	s.Assert().Equal(1142, l.RecordLength)
	s.Assert().Equal(byte('c'), l.Status)
	s.Assert().Equal(byte('a'), l.Type)
	s.Assert().Equal([3]byte{'m', ' ', 'a'}, l.Implementation)
	s.Assert().Equal(2, l.IndicatorCount)
	s.Assert().Equal(2, l.SubfieldCodeLength)
	s.Assert().Equal(301, l.BaseAddress)
	s.Assert().Equal([3]byte{' ', 'a', ' '}, l.UserSystem)
	s.Assert().Equal(EntryMap{LengthOfLength: 4, LengthOfStart: 5, LengthOfImpl: 0, Undefined: '0'}, l.EntryMap)
	s.Assert().Equal(12, l.EntryMap.EntryWidth())
}

func (s *LeaderTestSuite) TestDecodeErrors() {
	s.T().Run("TooShort", func(t *testing.T) {
		_, err := DecodeLeader(sampleLeader[:23])
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLeaderTooShort)

		var lerr *LeaderError
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, 23, lerr.Offset)
	})

	s.T().Run("NonDigitRecordLength", func(t *testing.T) {
		bad := append([]byte(nil), sampleLeader...)
		bad[2] = 'x'
		_, err := DecodeLeader(bad)
		assert.ErrorIs(t, err, ErrInvalidDigits)
	})

	s.T().Run("NonDigitBaseAddress", func(t *testing.T) {
		bad := append([]byte(nil), sampleLeader...)
		bad[14] = ' '
		_, err := DecodeLeader(bad)
		assert.ErrorIs(t, err, ErrInvalidDigits)

		var lerr *LeaderError
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, 12, lerr.Offset)
	})

	s.T().Run("NonDigitIndicatorCount", func(t *testing.T) {
		bad := append([]byte(nil), sampleLeader...)
		bad[10] = ' '
		_, err := DecodeLeader(bad)
		assert.ErrorIs(t, err, ErrInvalidDigits)
	})

	s.T().Run("ZeroLengthWidth", func(t *testing.T) {
		bad := append([]byte(nil), sampleLeader...)
		bad[20] = '0'
		_, err := DecodeLeader(bad)
		assert.ErrorIs(t, err, ErrInconsistentEntryMap)
	})

	s.T().Run("ZeroStartWidth", func(t *testing.T) {
		bad := append([]byte(nil), sampleLeader...)
		bad[21] = '0'
		_, err := DecodeLeader(bad)
		assert.ErrorIs(t, err, ErrInconsistentEntryMap)
	})

	s.T().Run("EntryTooWide", func(t *testing.T) {
		bad := append([]byte(nil), sampleLeader...)
		bad[20], bad[21], bad[22] = '9', '9', '9' // 3+27 bytes per entry
		_, err := DecodeLeader(bad)
		assert.ErrorIs(t, err, ErrInconsistentEntryMap)
	})
}

func (s *LeaderTestSuite) TestEncodeRoundTrip() {
	l, err := DecodeLeader(sampleLeader)
	s.Require().NoError(err)
	s.Assert().Equal(sampleLeader, l.AppendBinary(nil))
}

func (s *LeaderTestSuite) TestDefaults() {
	l := NewLeader()
	s.Assert().Equal(2, l.IndicatorCount)
	s.Assert().Equal(2, l.SubfieldCodeLength)
	s.Assert().Equal(EntryMap{LengthOfLength: 4, LengthOfStart: 5, Undefined: '0'}, l.EntryMap)

	encoded := l.AppendBinary(nil)
	s.Require().Len(encoded, LeaderLength)
	decoded, err := DecodeLeader(encoded)
	s.Require().NoError(err)
	s.Assert().Equal(l, decoded)
}

func (s *LeaderTestSuite) TestCodecInterface() {
	l, err := DecodeLeader(sampleLeader)
	s.Require().NoError(err)

	s.T().Run("MarshalBinary", func(t *testing.T) {
		out, err := l.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, sampleLeader, out)
	})

	s.T().Run("MarshalToShortBuffer", func(t *testing.T) {
		_, err := l.MarshalTo(make([]byte, LeaderLength-1))
		assert.ErrorIs(t, err, io.ErrShortBuffer)
	})

	s.T().Run("WriteTo", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := l.WriteTo(&buf)
		require.NoError(t, err)
		assert.EqualValues(t, LeaderLength, n)
		assert.Equal(t, sampleLeader, buf.Bytes())
	})

	s.T().Run("ReadFrom", func(t *testing.T) {
		var decoded Leader
		n, err := decoded.ReadFrom(bytes.NewReader(sampleLeader))
		require.NoError(t, err)
		assert.EqualValues(t, LeaderLength, n)
		assert.Equal(t, l, decoded)
	})

	s.T().Run("ReadFromShortStream", func(t *testing.T) {
		var decoded Leader
		_, err := decoded.ReadFrom(bytes.NewReader(sampleLeader[:10]))
		assert.ErrorIs(t, err, ErrLeaderTooShort)
	})
}

func TestLeader(t *testing.T) {
	suite.Run(t, new(LeaderTestSuite))
}
