// Package charset names the text decoders a caller may apply to subfield
// values. The container codec itself never transcodes: which encoding a
// record uses (leader position 9 in the bibliographic format) is a choice
// consumed here, outside the byte-level decode/encode path.
package charset

import (
	"errors"
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/text/encoding/unicode"
)

// Decoder converts raw subfield bytes into text.
type Decoder func(p []byte) (string, error)

// ErrUnknownEncoding indicates a Lookup of a name with no registered
// decoder.
var ErrUnknownEncoding = errors.New("charset: unknown encoding name")

// registry maps encoding names to decoders. Concurrent because callers
// commonly decode record batches from many goroutines.
var registry = xsync.NewMap[string, Decoder]()

func init() {
	// "none" passes bytes through untouched.
	Register("none", func(p []byte) (string, error) {
		return string(p), nil
	})

	// "utf8" validates the bytes as UTF-8, replacing invalid sequences
	// with U+FFFD rather than failing: archival batches routinely contain
	// stray high bytes.
	Register("utf8", func(p []byte) (string, error) {
		// A fresh transformer per call: encoding.Decoder carries state and
		// is not safe for concurrent use.
		out, err := unicode.UTF8.NewDecoder().Bytes(p)
		if err != nil {
			return "", fmt.Errorf("charset: utf8 decode: %w", err)
		}
		return string(out), nil
	})

	// "marc8" is intentionally absent: the MARC-8 transliteration tables
	// live outside this module. Callers that need it register their own
	// implementation under the name.
}

// Register installs or replaces the decoder for name.
func Register(name string, d Decoder) {
	registry.Store(name, d)
}

// Lookup returns the decoder registered under name ("none", "utf8", or
// anything installed via Register).
func Lookup(name string) (Decoder, error) {
	d, ok := registry.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return d, nil
}
