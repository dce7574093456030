package codec

import "github.com/wippyai/archive/container"

// ListOf returns a codec for linked lists of elem. The wire shape is the same
// as SliceOf.
//
// The decoder is a lower-assurance path: it does not check the declared count
// against any limit. Each element is allocated only when it is about to be
// read, so a corrupt count costs at most one element before the stream runs
// dry and the decode fails with a truncated read.
func ListOf[T any](elem Codec[T]) Codec[container.List[T]] {
	return listCodec[T]{elem: elem}
}

type listCodec[T any] struct {
	elem Codec[T]
}

func (c listCodec[T]) Encode(s Sink, v container.List[T]) error {
	if err := Uint64.Encode(s, uint64(v.Len())); err != nil {
		return err
	}
	for e := v.Front(); e != nil; e = e.Next() {
		if err := c.elem.Encode(s, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Decode appends a zero element for every entry and decodes directly into
// it, so a populated value is never copied.
func (c listCodec[T]) Decode(r Stream, dst *container.List[T]) error {
	dst.Clear()

	var count uint64
	if err := Uint64.Decode(r, &count); err != nil {
		return err
	}

	var zero T
	for i := uint64(0); i < count; i++ {
		e := dst.PushBack(zero)
		if err := c.elem.Decode(r, &e.Value); err != nil {
			logDecodeFailure("list", i, count, err)
			return err
		}
	}
	return nil
}
