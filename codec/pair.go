package codec

import "github.com/wippyai/archive/container"

// PairOf returns a codec that writes first then second with no prefix.
func PairOf[A, B any](first Codec[A], second Codec[B]) Codec[container.Pair[A, B]] {
	return pairCodec[A, B]{first: first, second: second}
}

type pairCodec[A, B any] struct {
	first  Codec[A]
	second Codec[B]
}

func (c pairCodec[A, B]) Encode(s Sink, p container.Pair[A, B]) error {
	if err := c.first.Encode(s, p.First); err != nil {
		return err
	}
	return c.second.Encode(s, p.Second)
}

// Decode stops after the first field when it fails; the second field is left
// untouched.
func (c pairCodec[A, B]) Decode(r Stream, dst *container.Pair[A, B]) error {
	if err := c.first.Decode(r, &dst.First); err != nil {
		return err
	}
	return c.second.Decode(r, &dst.Second)
}
