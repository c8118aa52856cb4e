/*
Package stack implements a LIFO stack on top of a linked list.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package stack

import (
	"errors"

	"github.com/npillmayer/containers/list"
)

// ErrEmpty signals access to the top of an empty stack.
var ErrEmpty = errors.New("stack: stack is empty")

// Stack is a last-in first-out stack. The zero Stack is an empty stack.
type Stack[T any] struct {
	items list.List[T] // top is the front
}

// New creates a stack by pushing items in order, so the last of them ends up
// on top.
func New[T any](items ...T) *Stack[T] {
	s := &Stack[T]{}
	for _, v := range items {
		s.Push(v)
	}
	return s
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return s.items.Len() }

// IsEmpty reports whether s holds no items.
func (s *Stack[T]) IsEmpty() bool { return s.items.IsEmpty() }

// Top returns the item on top.
func (s *Stack[T]) Top() (T, error) {
	v, err := s.items.Front()
	if err != nil {
		return v, ErrEmpty
	}
	return v, nil
}

// Push puts v on top.
func (s *Stack[T]) Push(v T) {
	s.items.PushFront(v)
}

// EmplaceFront puts items on top as a block, the first of them topmost.
func (s *Stack[T]) EmplaceFront(items ...T) {
	s.items.EmplaceFront(items...)
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	v, err := s.Top()
	if err != nil {
		return v, err
	}
	s.items.PopFront()
	return v, nil
}

// Swap exchanges the contents of two stacks.
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.items.Swap(&other.items)
}

// Clone returns a copy of s.
func (s *Stack[T]) Clone() *Stack[T] {
	c := &Stack[T]{}
	for v := range s.items.All() {
		c.items.PushBack(v)
	}
	return c
}
