package container

import (
	"cmp"
	"iter"
	"slices"
)

// Map is an ordered map from K to V.
type Map[K, V any] struct {
	compare func(a, b K) int
	entries []Pair[K, V]
}

// NewMap creates an empty map ordered by the natural order of K.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return NewMapFunc[K, V](cmp.Compare[K])
}

// NewMapFunc creates an empty map ordered by compare.
func NewMapFunc[K, V any](compare func(a, b K) int) *Map[K, V] {
	return new(Map[K, V]).Init(compare)
}

// Init clears m and sets its comparator, keeping allocated capacity.
func (m *Map[K, V]) Init(compare func(a, b K) int) *Map[K, V] {
	m.compare = compare
	m.Clear()
	return m
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	clear(m.entries)
	m.entries = m.entries[:0]
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Begin returns the position of the first entry.
func (m *Map[K, V]) Begin() int {
	return 0
}

// End returns the position one past the last entry.
func (m *Map[K, V]) End() int {
	return len(m.entries)
}

// At returns the entry at position i.
func (m *Map[K, V]) At(i int) (K, V) {
	e := m.entries[i]
	return e.First, e.Second
}

// Get returns the value stored for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if i, ok := m.search(k); ok {
		return m.entries[i].Second, true
	}
	var zero V
	return zero, false
}

// Set stores v for k, replacing any existing value.
func (m *Map[K, V]) Set(k K, v V) {
	i, ok := m.search(k)
	if ok {
		m.entries[i].Second = v
		return
	}
	m.insertAt(i, k, v)
}

// Insert adds k with v if k is absent. It returns the position of the entry
// for k and whether an insertion took place.
func (m *Map[K, V]) Insert(k K, v V) (int, bool) {
	i, ok := m.search(k)
	if ok {
		return i, false
	}
	m.insertAt(i, k, v)
	return i, true
}

// InsertHint adds k with v if k is absent, using hint as the position of the
// entry expected to precede k. It returns the position of the entry for k.
// A correct hint costs O(1) plus the shift of later entries, which is zero
// when keys arrive in ascending order. A wrong hint falls back to a search.
// Existing entries are never overwritten.
func (m *Map[K, V]) InsertHint(hint int, k K, v V) int {
	if i, ok := hintPosition(m.entries, hint, k, m.keyCompare); ok {
		if i < len(m.entries) && m.compare(m.entries[i].First, k) == 0 {
			return i
		}
		m.insertAt(i, k, v)
		return i
	}
	i, _ := m.Insert(k, v)
	return i
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	i, ok := m.search(k)
	if !ok {
		return false
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	return true
}

// All iterates over entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.First, e.Second) {
				return
			}
		}
	}
}

// Keys iterates over keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range m.entries {
			if !yield(e.First) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in ascending key order.
func (m *Map[K, V]) Entries() []Pair[K, V] {
	return slices.Clone(m.entries)
}

func (m *Map[K, V]) keyCompare(e Pair[K, V], k K) int {
	return m.compare(e.First, k)
}

func (m *Map[K, V]) search(k K) (int, bool) {
	return slices.BinarySearchFunc(m.entries, k, m.keyCompare)
}

func (m *Map[K, V]) insertAt(i int, k K, v V) {
	if i == len(m.entries) {
		m.entries = append(m.entries, Pair[K, V]{First: k, Second: v})
		return
	}
	m.entries = slices.Insert(m.entries, i, Pair[K, V]{First: k, Second: v})
}

// hintPosition checks whether k belongs directly next to entries[hint]. It
// returns the insertion position, or the position of an equal entry, when the
// hint is usable.
func hintPosition[E, K any](entries []E, hint int, k K, compare func(E, K) int) (int, bool) {
	n := len(entries)
	if hint < 0 || hint > n {
		return 0, false
	}
	if n == 0 {
		return 0, true
	}
	if hint == n {
		c := compare(entries[n-1], k)
		if c < 0 {
			return n, true
		}
		if c == 0 {
			return n - 1, true
		}
		return 0, false
	}
	switch c := compare(entries[hint], k); {
	case c == 0:
		return hint, true
	case c < 0:
		if hint+1 == n {
			return n, true
		}
		if compare(entries[hint+1], k) >= 0 {
			return hint + 1, true
		}
	default:
		if hint == 0 {
			return 0, true
		}
		c = compare(entries[hint-1], k)
		if c < 0 {
			return hint, true
		}
		if c == 0 {
			return hint - 1, true
		}
	}
	return 0, false
}
