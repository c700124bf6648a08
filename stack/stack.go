// Package stack provides a generic Last-In-First-Out (LIFO) container with explicit underflow errors.
package stack

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Stack implements a parameterized Last-In-First-Out (LIFO) data structure.
//
// The zero value is an empty stack ready to use.
// A Stack is owned by a single caller and is not safe for concurrent use.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack with room for capacity elements before the first reallocation.
// Capacity is a hint only, the stack grows without bound.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, max(capacity, 0))}
}

// Push appends a new element to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the topmost element of the stack.
// It fails with *EmptyStackError if the stack holds no elements.
func (s *Stack[T]) Pop() (item T, err error) {
	if len(s.items) == 0 {
		return item, &EmptyStackError{Op: OpPop}
	}

	idx := len(s.items) - 1
	item = s.items[idx]

	// release the reference held by the backing array
	var zero T
	s.items[idx] = zero
	s.items = s.items[:idx]
	return item, nil
}

// Peek returns the topmost element without removing it.
// It fails with *EmptyStackError if the stack holds no elements.
func (s *Stack[T]) Peek() (item T, err error) {
	if len(s.items) == 0 {
		return item, &EmptyStackError{Op: OpPeek}
	}
	return s.items[len(s.items)-1], nil
}

// TryPop is like Pop but reports underflow as an absent value.
func (s *Stack[T]) TryPop() mo.Option[T] {
	item, err := s.Pop()
	if err != nil {
		return mo.None[T]()
	}
	return mo.Some(item)
}

// TryPeek is like Peek but reports underflow as an absent value.
func (s *Stack[T]) TryPeek() mo.Option[T] {
	item, err := s.Peek()
	if err != nil {
		return mo.None[T]()
	}
	return mo.Some(item)
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Size returns the total number of elements currently stored in the stack.
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// Clear removes all elements from the stack, resetting it to an empty state.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Values returns a copy of the stored elements ordered from top to bottom.
func (s *Stack[T]) Values() []T {
	return lo.Reverse(append([]T(nil), s.items...))
}

func (s *Stack[T]) String() string {
	return fmt.Sprint(s.items)
}
