// Package stack provides the LIFO worklist used for iterative tree walks.
package stack

import "slices"

type Stack[T any] struct {
	items []T
}

// NewWithCapacity reduces allocations when approximate stack size is known.
func NewWithCapacity[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		items: make([]T, 0, capacity),
	}
}

// Push adds elements in order with the last element at the top.
func (s *Stack[T]) Push(items ...T) {
	s.items = append(s.items, items...)
}

// PushReversed adds elements so the first one ends up on top. Popping then
// yields them in the order given, which keeps a depth-first walk
// left to right.
func (s *Stack[T]) PushReversed(items ...T) {
	for _, item := range slices.Backward(items) {
		s.items = append(s.items, item)
	}
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	index := len(s.items) - 1
	item := s.items[index]
	var zero T
	s.items[index] = zero
	s.items = s.items[:index]
	return item, true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}
