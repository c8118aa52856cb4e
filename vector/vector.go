/*
Package vector implements a growable array with explicit size and capacity.

A Vector keeps its elements in a backing buffer of `Cap()` slots, of which the
first `Len()` are live. Growth is under control of the vector, not of append:
PushBack grows a full buffer by 5 slots, Insert rebuilds a full buffer at twice
the size plus one. Slots beyond Len() are always reset to the zero value, so
that a vector does not retain objects it no longer holds.

Copying and assignment use copy-and-swap: the copy is built first and swapped
in only when complete, leaving the receiver untouched if building fails.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package vector

import (
	"fmt"
	"iter"
	"math"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// growBy is the number of slots PushBack adds to a full buffer.
const growBy = 5

// Vector is a dynamic array of elements of type E.
//
// A Vector created by
//
//	Vector[E]{}
//
// is valid and empty.
type Vector[E any] struct {
	buf  []E // len(buf) is the capacity
	size int
}

// New creates an empty vector without allocating storage.
func New[E any]() *Vector[E] {
	return &Vector[E]{}
}

// WithSize creates a vector holding n zero values.
func WithSize[E any](n int) (*Vector[E], error) {
	if n < 0 || n > MaxSize() {
		return nil, fmt.Errorf("%w: requested %d", ErrLengthExceeded, n)
	}
	return &Vector[E]{buf: make([]E, n), size: n}, nil
}

// From creates a vector holding a copy of items, with capacity len(items).
func From[E any](items ...E) *Vector[E] {
	v := &Vector[E]{buf: make([]E, len(items)), size: len(items)}
	copy(v.buf, items)
	return v
}

// MaxSize returns the upper bound for the number of elements. It is a fixed
// value derived from the platform's int width.
func MaxSize() int {
	return math.MaxInt / 2
}

// MaxSize returns the upper bound for the number of elements.
func (v *Vector[E]) MaxSize() int {
	return MaxSize()
}

// --- Copy, move, assign ----------------------------------------------------

// Clone returns a copy of v with the same capacity. Elements are copied by
// assignment.
func (v *Vector[E]) Clone() *Vector[E] {
	c, _ := v.CloneFunc(nil)
	return c
}

// CloneFunc returns a copy of v, copying each element with copier. A nil
// copier copies by assignment. If copier fails, the error is returned and no
// vector is produced.
func (v *Vector[E]) CloneFunc(copier func(E) (E, error)) (*Vector[E], error) {
	c := &Vector[E]{buf: make([]E, len(v.buf)), size: v.size}
	if copier == nil {
		copy(c.buf, v.buf[:v.size])
		return c, nil
	}
	for i := 0; i < v.size; i++ {
		item, err := copier(v.buf[i])
		if err != nil {
			return nil, fmt.Errorf("vector: copying element %d: %w", i, err)
		}
		c.buf[i] = item
	}
	return c, nil
}

// Assign replaces the contents of v by a copy of other.
func (v *Vector[E]) Assign(other *Vector[E]) {
	_ = v.AssignFunc(other, nil)
}

// AssignFunc replaces the contents of v by a copy of other, made with copier.
//
// The copy is completed before v is touched: if copier fails, v keeps its
// buffer, size and capacity. Self-assignment is a no-op.
func (v *Vector[E]) AssignFunc(other *Vector[E], copier func(E) (E, error)) error {
	if v == other {
		return nil
	}
	tmp, err := other.CloneFunc(copier)
	if err != nil {
		return err
	}
	v.Swap(tmp)
	return nil
}

// MoveFrom transfers the contents of other into v, leaving other empty.
func (v *Vector[E]) MoveFrom(other *Vector[E]) {
	if v == other {
		return
	}
	tmp := &Vector[E]{}
	tmp.Swap(other)
	v.Swap(tmp)
}

// Swap exchanges the contents of two vectors.
func (v *Vector[E]) Swap(other *Vector[E]) {
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
}

// --- Element access --------------------------------------------------------

// At returns the element at position pos, with bounds checking.
func (v *Vector[E]) At(pos int) (E, error) {
	if pos < 0 || pos >= v.size {
		var zero E
		return zero, fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, pos, v.size)
	}
	return v.buf[pos], nil
}

// Index returns the element at position pos without bounds checking against
// the size. Indexing outside the buffer panics, like slice indexing does.
func (v *Vector[E]) Index(pos int) E {
	return v.buf[pos]
}

// Ref returns a pointer to the slot at position pos. The pointer is
// invalidated by any operation that reallocates the buffer.
func (v *Vector[E]) Ref(pos int) (*E, error) {
	if pos < 0 || pos >= v.size {
		return nil, fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, pos, v.size)
	}
	return &v.buf[pos], nil
}

// Set replaces the element at position pos.
func (v *Vector[E]) Set(pos int, item E) error {
	if pos < 0 || pos >= v.size {
		return fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, pos, v.size)
	}
	v.buf[pos] = item
	return nil
}

// Front returns the first element.
func (v *Vector[E]) Front() (E, error) {
	if v.size == 0 {
		var zero E
		return zero, fmt.Errorf("%w: front of empty vector", ErrOutOfRange)
	}
	return v.buf[0], nil
}

// Back returns the last element.
func (v *Vector[E]) Back() (E, error) {
	if v.size == 0 {
		var zero E
		return zero, fmt.Errorf("%w: back of empty vector", ErrOutOfRange)
	}
	return v.buf[v.size-1], nil
}

// Data returns the live elements as a slice sharing the vector's buffer.
func (v *Vector[E]) Data() []E {
	return v.buf[:v.size:v.size]
}

// All iterates over positions and elements.
func (v *Vector[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// --- Capacity --------------------------------------------------------------

// Len returns the number of elements.
func (v *Vector[E]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[E]) Cap() int { return len(v.buf) }

// IsEmpty reports whether v holds no elements.
func (v *Vector[E]) IsEmpty() bool { return v.size == 0 }

// Reserve makes room for at least n elements. It never shrinks the buffer.
func (v *Vector[E]) Reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	if n > MaxSize() {
		return fmt.Errorf("%w: reserve %d", ErrLengthExceeded, n)
	}
	v.realloc(n)
	return nil
}

// ShrinkToFit releases unused capacity.
func (v *Vector[E]) ShrinkToFit() {
	if len(v.buf) > v.size {
		v.realloc(v.size)
	}
}

// realloc moves the live elements into a fresh buffer of n slots.
func (v *Vector[E]) realloc(n int) {
	assertThat(n >= v.size, "vector: realloc below size")
	T().Debugf("vector: realloc %d -> %d slots", len(v.buf), n)
	buf := make([]E, n)
	copy(buf, v.buf[:v.size])
	clear(v.buf)
	v.buf = buf
}

// --- Modifiers -------------------------------------------------------------

// Clear removes all elements but keeps the capacity.
func (v *Vector[E]) Clear() {
	clear(v.buf[:v.size])
	v.size = 0
}

// PushBack appends item. A full buffer grows by 5 slots.
func (v *Vector[E]) PushBack(item E) {
	if v.size == len(v.buf) {
		v.realloc(v.size + growBy)
	}
	v.buf[v.size] = item
	v.size++
}

// PopBack removes the last element. It does nothing for an empty vector.
func (v *Vector[E]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	var zero E
	v.buf[v.size] = zero
}

// Insert puts item at position pos, shifting later elements one slot to the
// right, and returns the position of the inserted element. pos may equal Len().
//
// If the buffer is full, it is rebuilt with room for twice the size plus one,
// which invalidates references obtained earlier.
func (v *Vector[E]) Insert(pos int, item E) (int, error) {
	if pos < 0 || pos > v.size {
		return 0, fmt.Errorf("%w: insert at %d, size %d", ErrOutOfRange, pos, v.size)
	}
	if v.size == 0 {
		v.PushBack(item)
		return 0, nil
	}
	if v.size < len(v.buf) {
		copy(v.buf[pos+1:v.size+1], v.buf[pos:v.size])
		v.buf[pos] = item
		v.size++
		return pos, nil
	}
	n := v.size*2 + 1
	T().Debugf("vector: insert rebuilds %d -> %d slots", len(v.buf), n)
	buf := make([]E, n)
	copy(buf, v.buf[:pos])
	buf[pos] = item
	copy(buf[pos+1:], v.buf[pos:v.size])
	clear(v.buf)
	v.buf = buf
	v.size++
	return pos, nil
}

// Erase removes the element at pos, shifting later elements one slot to the
// left. Erasing at Len(), the end position, is a usage error.
func (v *Vector[E]) Erase(pos int) error {
	if pos == v.size {
		T().Errorf("vector: erase at end position %d", pos)
		return ErrEraseEnd
	}
	if pos < 0 || pos > v.size {
		return fmt.Errorf("%w: erase at %d, size %d", ErrOutOfRange, pos, v.size)
	}
	copy(v.buf[pos:v.size-1], v.buf[pos+1:v.size])
	v.size--
	var zero E
	v.buf[v.size] = zero
	return nil
}

// Emplace inserts items in order, starting at pos, and returns the position of
// the last inserted item. Without items it returns pos unchanged.
func (v *Vector[E]) Emplace(pos int, items ...E) (int, error) {
	if pos < 0 || pos > v.size {
		return 0, fmt.Errorf("%w: emplace at %d, size %d", ErrOutOfRange, pos, v.size)
	}
	at := pos
	for i, item := range items {
		p, err := v.Insert(pos+i, item)
		if err != nil {
			return 0, err
		}
		at = p
	}
	return at, nil
}

// EmplaceBack appends items in order.
func (v *Vector[E]) EmplaceBack(items ...E) {
	for _, item := range items {
		v.PushBack(item)
	}
}

func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
