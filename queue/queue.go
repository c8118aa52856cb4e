/*
Package queue implements a FIFO queue on top of a linked list.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package queue

import (
	"errors"

	"github.com/npillmayer/containers/list"
)

// ErrEmpty signals access to an element of an empty queue.
var ErrEmpty = errors.New("queue: queue is empty")

// Queue is a first-in first-out queue. The zero Queue is an empty queue.
type Queue[T any] struct {
	items list.List[T]
}

// New creates a queue holding items, the first of them at the front.
func New[T any](items ...T) *Queue[T] {
	q := &Queue[T]{}
	q.EmplaceBack(items...)
	return q
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.items.Len() }

// IsEmpty reports whether q holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.items.IsEmpty() }

// Front returns the oldest item.
func (q *Queue[T]) Front() (T, error) {
	v, err := q.items.Front()
	if err != nil {
		return v, ErrEmpty
	}
	return v, nil
}

// Back returns the newest item.
func (q *Queue[T]) Back() (T, error) {
	v, err := q.items.Back()
	if err != nil {
		return v, ErrEmpty
	}
	return v, nil
}

// Push appends v at the back.
func (q *Queue[T]) Push(v T) {
	q.items.PushBack(v)
}

// EmplaceBack appends items in order.
func (q *Queue[T]) EmplaceBack(items ...T) {
	q.items.EmplaceBack(items...)
}

// Pop removes and returns the front item.
func (q *Queue[T]) Pop() (T, error) {
	v, err := q.Front()
	if err != nil {
		return v, err
	}
	q.items.PopFront()
	return v, nil
}

// Swap exchanges the contents of two queues.
func (q *Queue[T]) Swap(other *Queue[T]) {
	q.items.Swap(&other.items)
}

// Clone returns a copy of q.
func (q *Queue[T]) Clone() *Queue[T] {
	c := &Queue[T]{}
	for v := range q.items.All() {
		c.items.PushBack(v)
	}
	return c
}
