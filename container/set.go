package container

import (
	"cmp"
	"iter"
	"slices"
)

// Set is an ordered set of T.
type Set[T any] struct {
	compare func(a, b T) int
	items   []T
}

// NewSet creates an empty set ordered by the natural order of T.
func NewSet[T cmp.Ordered]() *Set[T] {
	return NewSetFunc(cmp.Compare[T])
}

// NewSetFunc creates an empty set ordered by compare.
func NewSetFunc[T any](compare func(a, b T) int) *Set[T] {
	return new(Set[T]).Init(compare)
}

// Init clears s and sets its comparator, keeping allocated capacity.
func (s *Set[T]) Init(compare func(a, b T) int) *Set[T] {
	s.compare = compare
	s.Clear()
	return s
}

// Clear removes all elements.
func (s *Set[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Begin returns the position of the first element.
func (s *Set[T]) Begin() int {
	return 0
}

// End returns the position one past the last element.
func (s *Set[T]) End() int {
	return len(s.items)
}

// At returns the element at position i.
func (s *Set[T]) At(i int) T {
	return s.items[i]
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := slices.BinarySearchFunc(s.items, v, s.compare)
	return ok
}

// Add inserts v and reports whether it was absent.
func (s *Set[T]) Add(v T) bool {
	_, ok := s.Insert(v)
	return ok
}

// Insert inserts v if absent. It returns the position of v and whether an
// insertion took place.
func (s *Set[T]) Insert(v T) (int, bool) {
	i, ok := slices.BinarySearchFunc(s.items, v, s.compare)
	if ok {
		return i, false
	}
	s.items = slices.Insert(s.items, i, v)
	return i, true
}

// InsertHint inserts v if absent, using hint as the position of the element
// expected to precede v. It returns the position of v. See Map.InsertHint.
func (s *Set[T]) InsertHint(hint int, v T) int {
	if i, ok := hintPosition(s.items, hint, v, s.compare); ok {
		if i < len(s.items) && s.compare(s.items[i], v) == 0 {
			return i
		}
		if i == len(s.items) {
			s.items = append(s.items, v)
		} else {
			s.items = slices.Insert(s.items, i, v)
		}
		return i
	}
	i, _ := s.Insert(v)
	return i
}

// Delete removes v and reports whether it was present.
func (s *Set[T]) Delete(v T) bool {
	i, ok := slices.BinarySearchFunc(s.items, v, s.compare)
	if !ok {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// All iterates over elements in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

// Values returns a copy of the elements in ascending order.
func (s *Set[T]) Values() []T {
	return slices.Clone(s.items)
}
