package shape

import (
	"fmt"
	"sync"

	"github.com/wippyai/archive/codec"
	"github.com/wippyai/archive/errors"
)

// Compiler builds dynamic codecs from shapes and caches them by canonical
// shape text. A Compiler is safe for concurrent use.
type Compiler struct {
	opts  []codec.Option
	cache sync.Map // string -> codec.Codec[any]
}

// NewCompiler returns a compiler whose codecs are built with opts.
func NewCompiler(opts ...codec.Option) *Compiler {
	return &Compiler{opts: opts}
}

// Compile is shorthand for NewCompiler(opts...).Compile(s).
func Compile(s *Shape, opts ...codec.Option) (codec.Codec[any], error) {
	return NewCompiler(opts...).Compile(s)
}

// Compile returns a codec over dynamic values of shape s.
//
// Dynamic values use these Go types:
//
//	bool, u8..s64, f32, f64   bool, uint8 ... int64, float32, float64
//	string                    string
//	bytes                     []byte
//	list<T>                   []any
//	linked<T>                 *container.List[any]
//	map<K,V>                  *container.Map[any, any]
//	set<T>                    *container.Set[any]
//	tuple<A,B>                container.Pair[any, any]
//
// Maps and sets decode with the ordering returned by Compare for their key
// or element shape. Encoding a value of the wrong Go type fails with a
// type mismatch.
func (c *Compiler) Compile(s *Shape) (codec.Codec[any], error) {
	if s == nil {
		return nil, errors.InvalidInput(errors.PhaseCompile, "nil shape")
	}

	key := s.String()
	if cached, ok := c.cache.Load(key); ok {
		return cached.(codec.Codec[any]), nil
	}

	compiled, err := c.compile(s)
	if err != nil {
		return nil, err
	}

	actual, _ := c.cache.LoadOrStore(key, compiled)
	return actual.(codec.Codec[any]), nil
}

func (c *Compiler) compile(s *Shape) (codec.Codec[any], error) {
	switch s.Kind {
	case Bool:
		return value(s, codec.Bool), nil
	case U8:
		return value(s, codec.Uint8), nil
	case S8:
		return value(s, codec.Int8), nil
	case U16:
		return value(s, codec.Uint16), nil
	case S16:
		return value(s, codec.Int16), nil
	case U32:
		return value(s, codec.Uint32), nil
	case S32:
		return value(s, codec.Int32), nil
	case U64:
		return value(s, codec.Uint64), nil
	case S64:
		return value(s, codec.Int64), nil
	case F32:
		return value(s, codec.Float32), nil
	case F64:
		return value(s, codec.Float64), nil
	case String:
		return value(s, codec.StringWith(c.opts...)), nil
	case Bytes:
		return value(s, codec.BytesWith(c.opts...)), nil
	}

	if s.Elem == nil || (s.Kind.arity() == 2 && s.Value == nil) {
		return nil, errors.InvalidInput(errors.PhaseCompile, fmt.Sprintf("%v shape is missing a type argument", s.Kind))
	}

	elem, err := c.compile(s.Elem)
	if err != nil {
		return nil, err
	}

	switch s.Kind {
	case List:
		return value(s, codec.SliceOf(elem, c.opts...)), nil
	case Linked:
		return pointer(s, codec.ListOf(elem)), nil
	case Set:
		return pointer(s, codec.SetFunc(elem, Compare(s.Elem))), nil
	}

	second, err := c.compile(s.Value)
	if err != nil {
		return nil, err
	}

	switch s.Kind {
	case Map:
		return pointer(s, codec.MapFunc(elem, second, Compare(s.Elem))), nil
	case Tuple:
		return value(s, codec.PairOf(elem, second)), nil
	}

	return nil, errors.Unsupported(errors.PhaseCompile, fmt.Sprintf("shape kind %d", s.Kind))
}

// valueCodec carries dynamic values of Go type T.
type valueCodec[T any] struct {
	shape *Shape
	codec codec.Codec[T]
}

func value[T any](s *Shape, c codec.Codec[T]) codec.Codec[any] {
	return valueCodec[T]{shape: s, codec: c}
}

func (c valueCodec[T]) Encode(s codec.Sink, v any) error {
	x, ok := v.(T)
	if !ok {
		return mismatch(v, c.shape)
	}
	return c.codec.Encode(s, x)
}

// Decode stores the decoded value in dst even on failure, so a partially
// decoded container stays observable.
func (c valueCodec[T]) Decode(r codec.Stream, dst *any) error {
	var x T
	err := c.codec.Decode(r, &x)
	*dst = x
	return err
}

// pointerCodec carries dynamic values of Go type *T.
type pointerCodec[T any] struct {
	shape *Shape
	codec codec.Codec[T]
}

func pointer[T any](s *Shape, c codec.Codec[T]) codec.Codec[any] {
	return pointerCodec[T]{shape: s, codec: c}
}

func (c pointerCodec[T]) Encode(s codec.Sink, v any) error {
	x, ok := v.(*T)
	if !ok || x == nil {
		return mismatch(v, c.shape)
	}
	return c.codec.Encode(s, *x)
}

func (c pointerCodec[T]) Decode(r codec.Stream, dst *any) error {
	x := new(T)
	err := c.codec.Decode(r, x)
	*dst = x
	return err
}

func mismatch(v any, s *Shape) error {
	return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), s.String())
}
