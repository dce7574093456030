package shape

import "strings"

// Kind identifies a shape node.
type Kind uint8

const (
	Bool Kind = iota
	U8
	S8
	U16
	S16
	U32
	S32
	U64
	S64
	F32
	F64
	String
	Bytes
	List
	Linked
	Map
	Set
	Tuple
)

var kindNames = [...]string{
	Bool:   "bool",
	U8:     "u8",
	S8:     "s8",
	U16:    "u16",
	S16:    "s16",
	U32:    "u32",
	S32:    "s32",
	U64:    "u64",
	S64:    "s64",
	F32:    "f32",
	F64:    "f64",
	String: "string",
	Bytes:  "bytes",
	List:   "list",
	Linked: "linked",
	Map:    "map",
	Set:    "set",
	Tuple:  "tuple",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsContainer reports whether values of this kind carry a size prefix or
// nested elements.
func (k Kind) IsContainer() bool {
	return k >= List
}

// arity is the number of type arguments a kind takes.
func (k Kind) arity() int {
	switch k {
	case List, Linked, Set:
		return 1
	case Map, Tuple:
		return 2
	}
	return 0
}

// Shape describes the layout of a serialized value.
//
// Elem is the element of a list, linked list or set, the key of a map and the
// first member of a tuple. Value is the value of a map and the second member
// of a tuple.
type Shape struct {
	Elem  *Shape
	Value *Shape
	Kind  Kind
}

// Scalar returns a shape for a scalar, string or bytes kind.
func Scalar(k Kind) *Shape {
	return &Shape{Kind: k}
}

func ListOf(elem *Shape) *Shape {
	return &Shape{Kind: List, Elem: elem}
}

func LinkedOf(elem *Shape) *Shape {
	return &Shape{Kind: Linked, Elem: elem}
}

func SetOf(elem *Shape) *Shape {
	return &Shape{Kind: Set, Elem: elem}
}

func MapOf(key, value *Shape) *Shape {
	return &Shape{Kind: Map, Elem: key, Value: value}
}

func TupleOf(first, second *Shape) *Shape {
	return &Shape{Kind: Tuple, Elem: first, Value: second}
}

// String returns the canonical text form, which Parse accepts.
func (s *Shape) String() string {
	var b strings.Builder
	s.write(&b)
	return b.String()
}

func (s *Shape) write(b *strings.Builder) {
	b.WriteString(s.Kind.String())
	switch s.Kind.arity() {
	case 1:
		b.WriteByte('<')
		s.Elem.write(b)
		b.WriteByte('>')
	case 2:
		b.WriteByte('<')
		s.Elem.write(b)
		b.WriteByte(',')
		s.Value.write(b)
		b.WriteByte('>')
	}
}

// Equal reports whether s and o describe the same layout.
func (s *Shape) Equal(o *Shape) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind.arity() {
	case 1:
		return s.Elem.Equal(o.Elem)
	case 2:
		return s.Elem.Equal(o.Elem) && s.Value.Equal(o.Value)
	}
	return true
}
