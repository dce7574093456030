package codec

import (
	"github.com/wippyai/archive"
	"github.com/wippyai/archive/errors"
	"github.com/wippyai/archive/stream"
)

type Sink = archive.Sink
type Stream = archive.Stream

// Codec encodes and decodes values of type T.
type Codec[T any] interface {
	// Encode appends v to s.
	Encode(s Sink, v T) error
	// Decode reads one value from r into dst.
	Decode(r Stream, dst *T) error
}

// Marshal encodes v into a new byte slice.
func Marshal[T any](c Codec[T], v T) ([]byte, error) {
	w := stream.NewWriter()
	if err := c.Encode(w, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes data into dst. Bytes left over after the value are
// reported as invalid data. A decode failure is wrapped in a
// *stream.PositionError carrying the offset at which decoding stopped.
func Unmarshal[T any](c Codec[T], data []byte, dst *T) error {
	r := stream.NewBytesReader(data)
	if err := c.Decode(r, dst); err != nil {
		return r.WrapError(err)
	}
	if rest := r.Remaining(); rest > 0 {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Value(rest).
			Detail("%d trailing bytes after value", rest).
			Build()
	}
	return nil
}

// readFull fills p from r, mapping a hard failure to a stream error and an
// early end of stream to a truncated read.
func readFull(r Stream, p []byte) error {
	n, err := archive.ForceRead(r, p)
	if err != nil {
		return errors.StreamFailure(errors.PhaseDecode, err)
	}
	if n < len(p) {
		return errors.Truncated(len(p), n)
	}
	return nil
}
