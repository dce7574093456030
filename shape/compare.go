package shape

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/wippyai/archive/container"
)

// Compare returns a total order over dynamic values of shape s. Scalars use
// their natural order (false before true), containers compare element-wise
// and then by length, tuples compare their first member and then the second.
//
// Values that do not match s are ordered after matching values and among
// themselves by their formatted representation.
func Compare(s *Shape) func(a, b any) int {
	switch s.Kind {
	case Bool:
		return scalarCompare(func(a, b bool) int {
			switch {
			case a == b:
				return 0
			case !a:
				return -1
			}
			return 1
		})
	case U8:
		return scalarCompare(cmp.Compare[uint8])
	case S8:
		return scalarCompare(cmp.Compare[int8])
	case U16:
		return scalarCompare(cmp.Compare[uint16])
	case S16:
		return scalarCompare(cmp.Compare[int16])
	case U32:
		return scalarCompare(cmp.Compare[uint32])
	case S32:
		return scalarCompare(cmp.Compare[int32])
	case U64:
		return scalarCompare(cmp.Compare[uint64])
	case S64:
		return scalarCompare(cmp.Compare[int64])
	case F32:
		return scalarCompare(cmp.Compare[float32])
	case F64:
		return scalarCompare(cmp.Compare[float64])
	case String:
		return scalarCompare(cmp.Compare[string])
	case Bytes:
		return scalarCompare(bytes.Compare)
	case List:
		elem := Compare(s.Elem)
		return scalarCompare(func(a, b []any) int {
			return slices.CompareFunc(a, b, elem)
		})
	case Linked:
		elem := Compare(s.Elem)
		return scalarCompare(nilFirst(func(a, b *container.List[any]) int {
			return slices.CompareFunc(a.Values(), b.Values(), elem)
		}))
	case Set:
		elem := Compare(s.Elem)
		return scalarCompare(nilFirst(func(a, b *container.Set[any]) int {
			return slices.CompareFunc(a.Values(), b.Values(), elem)
		}))
	case Map:
		entry := pairCompare(Compare(s.Elem), Compare(s.Value))
		return scalarCompare(nilFirst(func(a, b *container.Map[any, any]) int {
			return slices.CompareFunc(a.Entries(), b.Entries(), entry)
		}))
	case Tuple:
		return scalarCompare(pairCompare(Compare(s.Elem), Compare(s.Value)))
	}
	return compareMismatched
}

func scalarCompare[T any](compare func(a, b T) int) func(a, b any) int {
	return func(a, b any) int {
		x, okA := a.(T)
		y, okB := b.(T)
		switch {
		case okA && okB:
			return compare(x, y)
		case okA:
			return -1
		case okB:
			return 1
		}
		return compareMismatched(a, b)
	}
}

// nilFirst orders nil pointers before any container.
func nilFirst[T any](compare func(a, b *T) int) func(a, b *T) int {
	return func(a, b *T) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		case b == nil:
			return 1
		}
		return compare(a, b)
	}
}

func compareMismatched(a, b any) int {
	return cmp.Compare(fmt.Sprintf("%T:%v", a, a), fmt.Sprintf("%T:%v", b, b))
}

func pairCompare(first, second func(a, b any) int) func(a, b container.Pair[any, any]) int {
	return func(a, b container.Pair[any, any]) int {
		if c := first(a.First, b.First); c != 0 {
			return c
		}
		return second(a.Second, b.Second)
	}
}
