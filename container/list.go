package container

import "iter"

// Element is a node of a List.
type Element[T any] struct {
	Value T

	next, prev *Element[T]
	list       *List[T]
}

// Next returns the next element or nil.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// Prev returns the previous element or nil.
func (e *Element[T]) Prev() *Element[T] {
	return e.prev
}

// List is a doubly linked list. The zero value is an empty list.
type List[T any] struct {
	front, back *Element[T]
	len         int
}

// NewList creates a list holding values in order.
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.len
}

// Front returns the first element or nil.
func (l *List[T]) Front() *Element[T] {
	return l.front
}

// Back returns the last element or nil.
func (l *List[T]) Back() *Element[T] {
	return l.back
}

// PushBack appends v and returns its element.
func (l *List[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{Value: v, prev: l.back, list: l}
	if l.back != nil {
		l.back.next = e
	} else {
		l.front = e
	}
	l.back = e
	l.len++
	return e
}

// PushFront prepends v and returns its element.
func (l *List[T]) PushFront(v T) *Element[T] {
	e := &Element[T]{Value: v, next: l.front, list: l}
	if l.front != nil {
		l.front.prev = e
	} else {
		l.back = e
	}
	l.front = e
	l.len++
	return e
}

// Remove unlinks e if it belongs to l and returns its value.
func (l *List[T]) Remove(e *Element[T]) T {
	if e.list != l {
		return e.Value
	}
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.front = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.back = e.prev
	}
	e.next, e.prev, e.list = nil, nil, nil
	l.len--
	return e.Value
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	for e := l.front; e != nil; {
		next := e.next
		e.next, e.prev, e.list = nil, nil, nil
		e = next
	}
	l.front, l.back, l.len = nil, nil, 0
}

// All iterates over values from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.front; e != nil; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Values returns the values from front to back.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.len)
	for e := l.front; e != nil; e = e.next {
		out = append(out, e.Value)
	}
	return out
}
