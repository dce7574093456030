package codec

import (
	"math"
	"unsafe"

	"github.com/wippyai/archive/errors"
)

// String is the string codec with default options.
var String = StringWith()

// Bytes is the byte string codec with default options.
var Bytes = BytesWith()

// StringWith returns a string codec. The length prefix is a signed s64.
func StringWith(opts ...Option) Codec[string] {
	return stringCodec{maxLength: buildOptions(opts).maxLength}
}

// BytesWith returns a codec for byte strings. It shares the string wire
// format and decodes directly into the destination slice.
func BytesWith(opts ...Option) Codec[[]byte] {
	return bytesCodec{maxLength: buildOptions(opts).maxLength}
}

type stringCodec struct {
	maxLength uint64
}

func (c stringCodec) Encode(s Sink, v string) error {
	if err := Int64.Encode(s, int64(len(v))); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}
	// Sinks never retain or modify p, so the string bytes can be passed as is.
	return s.Append(unsafe.Slice(unsafe.StringData(v), len(v)))
}

// Decode clears dst, then reads the length and the payload. Go strings have
// no writable backing store, so the payload goes through a temporary buffer
// whose ownership is handed to the string without a second copy.
func (c stringCodec) Decode(r Stream, dst *string) error {
	*dst = ""

	n, err := readLength(r, c.maxLength)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	buf := make([]byte, n)
	if err := readFull(r, buf); err != nil {
		return err
	}
	*dst = unsafe.String(unsafe.SliceData(buf), len(buf))
	return nil
}

type bytesCodec struct {
	maxLength uint64
}

func (c bytesCodec) Encode(s Sink, v []byte) error {
	if err := Int64.Encode(s, int64(len(v))); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}
	return s.Append(v)
}

func (c bytesCodec) Decode(r Stream, dst *[]byte) error {
	*dst = (*dst)[:0]

	n, err := readLength(r, c.maxLength)
	if err != nil {
		return err
	}

	buf := *dst
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	buf = buf[:n]
	*dst = buf
	if err := readFull(r, buf); err != nil {
		*dst = buf[:0]
		return err
	}
	return nil
}

// readLength reads a signed s64 length prefix and validates it.
func readLength(r Stream, maxLength uint64) (int, error) {
	var n int64
	if err := Int64.Decode(r, &n); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.InvalidLength(n)
	}
	if uint64(n) > maxLength {
		return 0, errors.Overflow(errors.PhaseDecode, "string length", uint64(n), maxLength)
	}
	if rest, ok := remaining(r); ok && n > int64(rest) {
		return 0, errors.Truncated(int(min(n, math.MaxInt)), rest)
	}
	return int(n), nil
}

// remaining reports how many bytes r still holds, when r knows.
func remaining(r Stream) (int, bool) {
	l, ok := r.(interface{ Remaining() int })
	if !ok {
		return 0, false
	}
	n := l.Remaining()
	return n, n >= 0
}
