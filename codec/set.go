package codec

import (
	"cmp"

	"github.com/wippyai/archive/container"
)

// SetOf returns a codec for ordered sets of naturally ordered elements.
func SetOf[T cmp.Ordered](elem Codec[T]) Codec[container.Set[T]] {
	return SetFunc(elem, cmp.Compare[T])
}

// SetFunc returns a codec for ordered sets whose elements are ordered by
// compare. Decoded sets are initialized with compare.
func SetFunc[T any](elem Codec[T], compare func(a, b T) int) Codec[container.Set[T]] {
	return setCodec[T]{elem: elem, compare: compare}
}

type setCodec[T any] struct {
	elem    Codec[T]
	compare func(a, b T) int
}

func (c setCodec[T]) Encode(s Sink, set container.Set[T]) error {
	if err := Uint64.Encode(s, uint64(set.Len())); err != nil {
		return err
	}
	for v := range set.All() {
		if err := c.elem.Encode(s, v); err != nil {
			return err
		}
	}
	return nil
}

func (c setCodec[T]) Decode(r Stream, dst *container.Set[T]) error {
	dst.Init(c.compare)

	var count uint64
	if err := Uint64.Decode(r, &count); err != nil {
		return err
	}

	pos := dst.Begin()
	for i := uint64(0); i < count; i++ {
		var v T
		if err := c.elem.Decode(r, &v); err != nil {
			logDecodeFailure("set", i, count, err)
			return err
		}
		pos = dst.InsertHint(pos, v)
	}
	return nil
}
