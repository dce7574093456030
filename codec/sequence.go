package codec

import (
	"math"

	"github.com/wippyai/archive/errors"
)

// SliceOf returns a codec for contiguous sequences of elem.
func SliceOf[T any](elem Codec[T], opts ...Option) Codec[[]T] {
	return sliceCodec[T]{elem: elem, maxLength: buildOptions(opts).maxLength}
}

type sliceCodec[T any] struct {
	elem      Codec[T]
	maxLength uint64
}

func (c sliceCodec[T]) Encode(s Sink, v []T) error {
	if err := Uint64.Encode(s, uint64(len(v))); err != nil {
		return err
	}
	for i := range v {
		if err := c.elem.Encode(s, v[i]); err != nil {
			return err
		}
	}
	return nil
}

// Decode resizes dst to exactly count zero values and decodes each position
// in index order. On failure positions before the failing index are
// populated and the rest keep their zero value.
func (c sliceCodec[T]) Decode(r Stream, dst *[]T) error {
	*dst = (*dst)[:0]

	var count uint64
	if err := Uint64.Decode(r, &count); err != nil {
		return err
	}
	if limit := min(c.maxLength, math.MaxInt); count > limit {
		return errors.Overflow(errors.PhaseDecode, "sequence count", count, limit)
	}
	// Every element occupies at least one byte, so a count beyond what a
	// bounded stream still holds cannot succeed.
	if rest, ok := remaining(r); ok && count > uint64(rest) {
		return errors.Truncated(int(count), rest)
	}

	n := int(count)
	v := *dst
	if cap(v) < n {
		v = make([]T, n)
	} else {
		v = v[:n]
		clear(v)
	}
	*dst = v

	for i := range v {
		if err := c.elem.Decode(r, &v[i]); err != nil {
			logDecodeFailure("sequence", uint64(i), count, err)
			return err
		}
	}
	return nil
}
