package shape

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/archive/container"
)

// Format renders a dynamic value of shape s on one line:
//
//	list     [1, 2, 3]
//	linked   <1, 2, 3>
//	set      {1, 2, 3}
//	map      {"a": 1, "b": 2}
//	tuple    ("a", 1)
//	bytes    0x0102ff
//
// Values that do not match s are rendered as %!shape(T=v).
func Format(s *Shape, v any) string {
	var b strings.Builder
	format(&b, s, v)
	return b.String()
}

func format(b *strings.Builder, s *Shape, v any) {
	switch s.Kind {
	case String:
		if str, ok := v.(string); ok {
			b.WriteString(strconv.Quote(str))
			return
		}
	case Bytes:
		if data, ok := v.([]byte); ok {
			b.WriteString("0x")
			b.WriteString(hex.EncodeToString(data))
			return
		}
	case List:
		if items, ok := v.([]any); ok {
			formatSeq(b, '[', ']', s.Elem, items)
			return
		}
	case Linked:
		if l, ok := v.(*container.List[any]); ok && l != nil {
			formatSeq(b, '<', '>', s.Elem, l.Values())
			return
		}
	case Set:
		if set, ok := v.(*container.Set[any]); ok && set != nil {
			formatSeq(b, '{', '}', s.Elem, set.Values())
			return
		}
	case Map:
		if m, ok := v.(*container.Map[any, any]); ok && m != nil {
			b.WriteByte('{')
			i := 0
			for k, val := range m.All() {
				if i > 0 {
					b.WriteString(", ")
				}
				format(b, s.Elem, k)
				b.WriteString(": ")
				format(b, s.Value, val)
				i++
			}
			b.WriteByte('}')
			return
		}
	case Tuple:
		if p, ok := v.(container.Pair[any, any]); ok {
			b.WriteByte('(')
			format(b, s.Elem, p.First)
			b.WriteString(", ")
			format(b, s.Value, p.Second)
			b.WriteByte(')')
			return
		}
	default:
		if matchesScalar(s.Kind, v) {
			fmt.Fprint(b, v)
			return
		}
	}
	fmt.Fprintf(b, "%%!%s(%T=%v)", s, v, v)
}

func formatSeq(b *strings.Builder, left, right byte, elem *Shape, items []any) {
	b.WriteByte(left)
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		format(b, elem, item)
	}
	b.WriteByte(right)
}

func matchesScalar(k Kind, v any) bool {
	switch v.(type) {
	case bool:
		return k == Bool
	case uint8:
		return k == U8
	case int8:
		return k == S8
	case uint16:
		return k == U16
	case int16:
		return k == S16
	case uint32:
		return k == U32
	case int32:
		return k == S32
	case uint64:
		return k == U64
	case int64:
		return k == S64
	case float32:
		return k == F32
	case float64:
		return k == F64
	}
	return false
}
