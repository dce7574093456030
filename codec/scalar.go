package codec

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/archive/errors"
)

// Scalar codecs. All multi-byte values are little endian.
var (
	Bool    Codec[bool]    = boolCodec{}
	Uint8   Codec[uint8]   = fixed[uint8]{1, func(b []byte, v uint8) { b[0] = v }, func(b []byte) uint8 { return b[0] }}
	Int8    Codec[int8]    = fixed[int8]{1, func(b []byte, v int8) { b[0] = uint8(v) }, func(b []byte) int8 { return int8(b[0]) }}
	Uint16  Codec[uint16]  = fixed[uint16]{2, le.PutUint16, le.Uint16}
	Int16   Codec[int16]   = fixed[int16]{2, func(b []byte, v int16) { le.PutUint16(b, uint16(v)) }, func(b []byte) int16 { return int16(le.Uint16(b)) }}
	Uint32  Codec[uint32]  = fixed[uint32]{4, le.PutUint32, le.Uint32}
	Int32   Codec[int32]   = fixed[int32]{4, func(b []byte, v int32) { le.PutUint32(b, uint32(v)) }, func(b []byte) int32 { return int32(le.Uint32(b)) }}
	Uint64  Codec[uint64]  = fixed[uint64]{8, le.PutUint64, le.Uint64}
	Int64   Codec[int64]   = fixed[int64]{8, func(b []byte, v int64) { le.PutUint64(b, uint64(v)) }, func(b []byte) int64 { return int64(le.Uint64(b)) }}
	Float32 Codec[float32] = fixed[float32]{4, func(b []byte, v float32) { le.PutUint32(b, math.Float32bits(v)) }, func(b []byte) float32 { return math.Float32frombits(le.Uint32(b)) }}
	Float64 Codec[float64] = fixed[float64]{8, func(b []byte, v float64) { le.PutUint64(b, math.Float64bits(v)) }, func(b []byte) float64 { return math.Float64frombits(le.Uint64(b)) }}
)

var le = binary.LittleEndian

// fixed is a codec for a value with a fixed wire width of at most 8 bytes.
type fixed[T any] struct {
	size int
	put  func([]byte, T)
	get  func([]byte) T
}

func (c fixed[T]) Encode(s Sink, v T) error {
	var buf [8]byte
	c.put(buf[:c.size], v)
	return s.Append(buf[:c.size])
}

func (c fixed[T]) Decode(r Stream, dst *T) error {
	var buf [8]byte
	if err := readFull(r, buf[:c.size]); err != nil {
		return err
	}
	*dst = c.get(buf[:c.size])
	return nil
}

type boolCodec struct{}

func (boolCodec) Encode(s Sink, v bool) error {
	var b uint8
	if v {
		b = 1
	}
	return Uint8.Encode(s, b)
}

func (boolCodec) Decode(r Stream, dst *bool) error {
	var b uint8
	if err := Uint8.Decode(r, &b); err != nil {
		return err
	}
	if b > 1 {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Value(b).
			Detail("bool byte %d is neither 0 nor 1", b).
			Build()
	}
	*dst = b == 1
	return nil
}

// Integer is the set of types an enum may be declared with.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Enum returns a codec for an enumeration with count values numbered from
// zero. Values are written as s32; decoding rejects values outside
// [0, count).
func Enum[E Integer](count int) Codec[E] {
	return enumCodec[E]{count: count}
}

type enumCodec[E Integer] struct {
	count int
}

func (c enumCodec[E]) Encode(s Sink, v E) error {
	if int64(v) < 0 || int64(v) >= int64(c.count) {
		return errors.New(errors.PhaseEncode, errors.KindInvalidEnum).
			Value(v).
			Detail("enum value %d out of range (count %d)", int64(v), c.count).
			Build()
	}
	return Int32.Encode(s, int32(v))
}

func (c enumCodec[E]) Decode(r Stream, dst *E) error {
	var v int32
	if err := Int32.Decode(r, &v); err != nil {
		return err
	}
	if v < 0 || int(v) >= c.count {
		return errors.InvalidEnum(v, c.count)
	}
	*dst = E(v)
	return nil
}
