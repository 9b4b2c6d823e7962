package marc21

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDigits(t *testing.T) {
	v, ok := parseDigits[int]([]byte("99999"))
	assert.True(t, ok)
	assert.Equal(t, 99999, v)

	v, ok = parseDigits[int]([]byte("00000"))
	assert.True(t, ok)
	assert.Zero(t, v)

	_, ok = parseDigits[int]([]byte("-1000"))
	assert.False(t, ok)

	_, ok = parseDigits[int]([]byte("12 45"))
	assert.False(t, ok)
}

func TestAppendDigits(t *testing.T) {
	assert.Equal(t, []byte("00042"), appendDigits(nil, 42, 5))
	assert.Equal(t, []byte("0"), appendDigits(nil, 0, 1))
	assert.Equal(t, []byte("99999"), appendDigits(nil, 99999, 5))
}

func TestDigitWidth(t *testing.T) {
	assert.Equal(t, 1, digitWidth(0))
	assert.Equal(t, 1, digitWidth(9))
	assert.Equal(t, 2, digitWidth(10))
	assert.Equal(t, 5, digitWidth(99999))
	assert.Equal(t, 6, digitWidth(100000))
}

func TestFitsDigits(t *testing.T) {
	assert.True(t, fitsDigits(9999, 4))
	assert.False(t, fitsDigits(10000, 4))
	assert.False(t, fitsDigits(-1, 4))
}
