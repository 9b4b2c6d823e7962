package marc21

import (
	"encoding"
	"io"
)

// writeToGeneric adapts a slice-producing marshaler to the streaming
// io.WriterTo interface.
func writeToGeneric[T encoding.BinaryMarshaler](v T, w io.Writer) (int64, error) {
	buf, err := v.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), err
	}
	if n < len(buf) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// marshalToGeneric adapts a slice-producing marshaler to the
// pre-allocated-buffer MarshalTo shape.
func marshalToGeneric[T encoding.BinaryMarshaler](v T, p []byte) (int, error) {
	buf, err := v.MarshalBinary()
	if err != nil {
		return 0, err
	}
	if len(p) < len(buf) {
		return 0, io.ErrShortBuffer
	}
	return copy(p, buf), nil
}
