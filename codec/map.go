package codec

import (
	"cmp"

	"github.com/wippyai/archive/container"
)

// MapOf returns a codec for ordered maps with naturally ordered keys.
func MapOf[K cmp.Ordered, V any](key Codec[K], value Codec[V]) Codec[container.Map[K, V]] {
	return MapFunc(key, value, cmp.Compare[K])
}

// MapFunc returns a codec for ordered maps whose keys are ordered by compare.
// Decoded maps are initialized with compare.
func MapFunc[K, V any](key Codec[K], value Codec[V], compare func(a, b K) int) Codec[container.Map[K, V]] {
	return mapCodec[K, V]{pair: pairCodec[K, V]{first: key, second: value}, compare: compare}
}

type mapCodec[K, V any] struct {
	pair    pairCodec[K, V]
	compare func(a, b K) int
}

// Encode writes entries in ascending key order.
func (c mapCodec[K, V]) Encode(s Sink, m container.Map[K, V]) error {
	if err := Uint64.Encode(s, uint64(m.Len())); err != nil {
		return err
	}
	for i := m.Begin(); i < m.End(); i++ {
		k, v := m.At(i)
		if err := c.pair.Encode(s, container.Pair[K, V]{First: k, Second: v}); err != nil {
			return err
		}
	}
	return nil
}

// Decode rebuilds the map using the previous insertion as a hint. Input in
// ascending order is rebuilt in linear time. On failure dst holds the entries
// inserted before the failing pair.
func (c mapCodec[K, V]) Decode(r Stream, dst *container.Map[K, V]) error {
	dst.Init(c.compare)

	var count uint64
	if err := Uint64.Decode(r, &count); err != nil {
		return err
	}

	pos := dst.Begin()
	for i := uint64(0); i < count; i++ {
		var p container.Pair[K, V]
		if err := c.pair.Decode(r, &p); err != nil {
			logDecodeFailure("map", i, count, err)
			return err
		}
		pos = dst.InsertHint(pos, p.First, p.Second)
	}
	return nil
}
