package codec

// Marshaler is implemented by types that encode themselves.
type Marshaler interface {
	MarshalArchive(s Sink) error
}

// Unmarshaler is implemented by types that decode themselves.
type Unmarshaler interface {
	UnmarshalArchive(r Stream) error
}

// Object returns a codec for a struct type whose pointer implements both
// Marshaler and Unmarshaler. This is how user types built from the codecs in
// this package become elements of other containers:
//
//	type point struct{ X, Y int64 }
//
//	func (p *point) MarshalArchive(s codec.Sink) error { ... }
//	func (p *point) UnmarshalArchive(r codec.Stream) error { ... }
//
//	c := codec.SliceOf(codec.Object[point]())
func Object[T any, P interface {
	*T
	Marshaler
	Unmarshaler
}]() Codec[T] {
	return objectCodec[T, P]{}
}

type objectCodec[T any, P interface {
	*T
	Marshaler
	Unmarshaler
}] struct{}

func (objectCodec[T, P]) Encode(s Sink, v T) error {
	return P(&v).MarshalArchive(s)
}

func (objectCodec[T, P]) Decode(r Stream, dst *T) error {
	return P(dst).UnmarshalArchive(r)
}

// Func adapts a pair of functions into a codec.
type Func[T any] struct {
	EncodeFunc func(s Sink, v T) error
	DecodeFunc func(r Stream, dst *T) error
}

func (f Func[T]) Encode(s Sink, v T) error {
	return f.EncodeFunc(s, v)
}

func (f Func[T]) Decode(r Stream, dst *T) error {
	return f.DecodeFunc(r, dst)
}
