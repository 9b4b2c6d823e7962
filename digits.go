package marc21

import "golang.org/x/exp/constraints"

// The container stores every number as right-justified, zero-padded ASCII
// decimal digits whose width is dictated by the leader, not by the value.
// Numbers therefore travel through the codec as (value, width) pairs; these
// helpers convert between that representation and raw bytes.

// parseDigits decodes a fixed-width run of ASCII digits. It returns false
// if any byte is not in '0'..'9'; it never guesses or skips.
func parseDigits[T constraints.Integer](p []byte) (T, bool) {
	var v T
	for _, b := range p {
		if b < '0' || b > '9' {
			return 0, false
		}
		v = v*10 + T(b-'0')
	}
	return v, true
}

// appendDigits appends v as exactly width zero-padded ASCII digits.
// The caller must have checked that v fits (see digitWidth).
func appendDigits[T constraints.Integer](dst []byte, v T, width int) []byte {
	var buf [16]byte
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[:width]...)
}

// digitWidth returns the number of decimal digits needed to represent v.
// Zero needs one digit.
func digitWidth[T constraints.Integer](v T) int {
	w := 1
	for v >= 10 {
		v /= 10
		w++
	}
	return w
}

// pow10 returns 10^n for the small n used by digit widths.
func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// fitsDigits reports whether v can be written in width decimal digits.
func fitsDigits[T constraints.Integer](v T, width int) bool {
	return v >= 0 && int(v) < pow10(width)
}
