package shape

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/archive/errors"
)

// FromWIT converts a WIT type into a shape. Primitive types map to scalars,
// string to string, list<u8> to bytes, other lists to list and two-element
// tuples to tuple. Type aliases are followed. Other WIT types (records,
// variants, options, resources, char) have no archive layout and fail with
// an unsupported error.
func FromWIT(t wit.Type) (*Shape, error) {
	switch v := t.(type) {
	case wit.Bool:
		return Scalar(Bool), nil
	case wit.U8:
		return Scalar(U8), nil
	case wit.S8:
		return Scalar(S8), nil
	case wit.U16:
		return Scalar(U16), nil
	case wit.S16:
		return Scalar(S16), nil
	case wit.U32:
		return Scalar(U32), nil
	case wit.S32:
		return Scalar(S32), nil
	case wit.U64:
		return Scalar(U64), nil
	case wit.S64:
		return Scalar(S64), nil
	case wit.F32:
		return Scalar(F32), nil
	case wit.F64:
		return Scalar(F64), nil
	case wit.String:
		return Scalar(String), nil
	case *wit.TypeDef:
		return fromWITTypeDef(v)
	}
	return nil, errors.Unsupported(errors.PhaseCompile, fmt.Sprintf("WIT type %T has no archive shape", t))
}

func fromWITTypeDef(td *wit.TypeDef) (*Shape, error) {
	switch kind := td.Kind.(type) {
	case *wit.List:
		if _, ok := kind.Type.(wit.U8); ok {
			return Scalar(Bytes), nil
		}
		elem, err := FromWIT(kind.Type)
		if err != nil {
			return nil, err
		}
		return ListOf(elem), nil
	case *wit.Tuple:
		if len(kind.Types) != 2 {
			return nil, errors.Unsupported(errors.PhaseCompile, fmt.Sprintf("WIT tuple of %d types has no archive shape", len(kind.Types)))
		}
		first, err := FromWIT(kind.Types[0])
		if err != nil {
			return nil, err
		}
		second, err := FromWIT(kind.Types[1])
		if err != nil {
			return nil, err
		}
		return TupleOf(first, second), nil
	case wit.Type:
		return FromWIT(kind)
	}
	return nil, errors.Unsupported(errors.PhaseCompile, fmt.Sprintf("WIT type definition %T has no archive shape", td.Kind))
}

// WIT returns the WIT type closest to s. WIT has no ordered map, set or
// linked list, so those become lists (maps as list<tuple<K,V>>) and bytes
// becomes list<u8>. FromWIT(s.WIT()) therefore equals s only for shapes built
// from scalars, strings, bytes, lists and tuples.
func (s *Shape) WIT() wit.Type {
	switch s.Kind {
	case Bool:
		return wit.Bool{}
	case U8:
		return wit.U8{}
	case S8:
		return wit.S8{}
	case U16:
		return wit.U16{}
	case S16:
		return wit.S16{}
	case U32:
		return wit.U32{}
	case S32:
		return wit.S32{}
	case U64:
		return wit.U64{}
	case S64:
		return wit.S64{}
	case F32:
		return wit.F32{}
	case F64:
		return wit.F64{}
	case String:
		return wit.String{}
	case Bytes:
		return &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}
	case List, Linked, Set:
		return &wit.TypeDef{Kind: &wit.List{Type: s.Elem.WIT()}}
	case Map:
		entry := &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{s.Elem.WIT(), s.Value.WIT()}}}
		return &wit.TypeDef{Kind: &wit.List{Type: entry}}
	case Tuple:
		return &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{s.Elem.WIT(), s.Value.WIT()}}}
	}
	return nil
}

// FormatWIT renders a WIT type in WIT syntax, e.g. list<tuple<string, s64>>.
// Named type definitions are rendered by name.
func FormatWIT(t wit.Type) string {
	var b strings.Builder
	formatWIT(&b, t)
	return b.String()
}

func formatWIT(b *strings.Builder, t wit.Type) {
	switch v := t.(type) {
	case wit.Bool:
		b.WriteString("bool")
	case wit.U8:
		b.WriteString("u8")
	case wit.S8:
		b.WriteString("s8")
	case wit.U16:
		b.WriteString("u16")
	case wit.S16:
		b.WriteString("s16")
	case wit.U32:
		b.WriteString("u32")
	case wit.S32:
		b.WriteString("s32")
	case wit.U64:
		b.WriteString("u64")
	case wit.S64:
		b.WriteString("s64")
	case wit.F32:
		b.WriteString("f32")
	case wit.F64:
		b.WriteString("f64")
	case wit.Char:
		b.WriteString("char")
	case wit.String:
		b.WriteString("string")
	case *wit.TypeDef:
		if v.Name != nil {
			b.WriteString(*v.Name)
			return
		}
		switch kind := v.Kind.(type) {
		case *wit.List:
			b.WriteString("list<")
			formatWIT(b, kind.Type)
			b.WriteByte('>')
		case *wit.Option:
			b.WriteString("option<")
			formatWIT(b, kind.Type)
			b.WriteByte('>')
		case *wit.Tuple:
			b.WriteString("tuple<")
			for i, elem := range kind.Types {
				if i > 0 {
					b.WriteString(", ")
				}
				formatWIT(b, elem)
			}
			b.WriteByte('>')
		case wit.Type:
			formatWIT(b, kind)
		default:
			fmt.Fprintf(b, "%T", kind)
		}
	default:
		fmt.Fprintf(b, "%T", t)
	}
}
