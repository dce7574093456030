// Package container provides the container types the codecs reconstruct.
//
// Map and Set keep their entries sorted by a comparator in a contiguous slice.
// InsertHint takes the position of the previous insertion as a starting point;
// when keys arrive in ascending order every hinted insertion is an append, so
// rebuilding a container from sorted input is linear.
//
// List is a generic doubly linked list whose elements are addressable, so a
// value can be decoded directly into a freshly appended element.
//
// The zero Map and Set have no comparator; create them with NewMap, NewSet,
// their Func variants, or call Init before use.
package container

// Pair holds two heterogeneous values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns a Pair of a and b.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}
