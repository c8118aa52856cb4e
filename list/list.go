/*
Package list implements a doubly linked list with a sentinel element.

Elements are kept in a ring of nodes closed by a sentinel, which acts as the
end position: Begin().Prev() and Last().Next() both reach End(). Iterators stay
valid until their own element is erased, including across Sort, Merge, Splice
and Reverse, which relink nodes instead of moving values.

Lists order their elements with a comparison function. Sort is a stable merge
sort, Merge combines two sorted lists and Unique drops adjacent duplicates.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package list

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"unsafe"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

type element[E any] struct {
	value      E
	prev, next *element[E]
	list       *List[E] // nil for detached elements
}

// List is a doubly linked list of values of type E.
type List[E any] struct {
	end  element[E] // sentinel
	size int
	cmp  func(a, b E) int
}

// New creates an empty list for an ordered element type.
func New[E cmp.Ordered]() *List[E] {
	return NewFunc[E](cmp.Compare[E])
}

// NewFunc creates an empty list ordering its elements with compare. compare
// is used only by Sort, Merge and Unique and may be nil if none of them is
// called.
func NewFunc[E any](compare func(a, b E) int) *List[E] {
	l := &List[E]{cmp: compare}
	l.init()
	return l
}

// From creates an ordered list holding items in order.
func From[E cmp.Ordered](items ...E) *List[E] {
	l := New[E]()
	for _, item := range items {
		l.PushBack(item)
	}
	return l
}

// WithSize creates a list of n zero values.
func WithSize[E cmp.Ordered](n int) (*List[E], error) {
	if n < 0 || n > MaxSize[E]() {
		return nil, fmt.Errorf("%w: requested %d", ErrLengthExceeded, n)
	}
	l := New[E]()
	var zero E
	for range n {
		l.PushBack(zero)
	}
	return l, nil
}

func (l *List[E]) init() {
	l.end.next = &l.end
	l.end.prev = &l.end
	l.end.list = l
	l.size = 0
}

// lazyInit makes the zero List usable.
func (l *List[E]) lazyInit() {
	if l.end.next == nil {
		l.init()
	}
}

// MaxSize returns the upper bound for the number of elements of a list of E.
func MaxSize[E any]() int {
	return math.MaxInt / int(unsafe.Sizeof(element[E]{}))
}

// MaxSize returns the upper bound for the number of elements.
func (l *List[E]) MaxSize() int {
	return MaxSize[E]()
}

// Len returns the number of elements.
func (l *List[E]) Len() int { return l.size }

// IsEmpty reports whether l holds no elements.
func (l *List[E]) IsEmpty() bool { return l.size == 0 }

// --- Copy, move, assign ----------------------------------------------------

// Clone returns an element-wise copy of l with the same comparison function.
func (l *List[E]) Clone() *List[E] {
	c := NewFunc(l.cmp)
	for v := range l.All() {
		c.PushBack(v)
	}
	return c
}

// Assign replaces the contents of l by a copy of other. The copy is
// built before l is changed. Self-assignment is a no-op.
func (l *List[E]) Assign(other *List[E]) {
	if l == other {
		return
	}
	tmp := other.Clone()
	l.Swap(tmp)
}

// MoveFrom transfers all elements of other into l, replacing l's contents.
// Elements are relinked, so iterators into other now refer into l. other is
// left empty.
func (l *List[E]) MoveFrom(other *List[E]) {
	if l == other {
		return
	}
	l.Clear()
	l.cmp = other.cmp
	l.Splice(l.End(), other)
}

// Swap exchanges the contents of two lists, including their comparison
// functions. Iterators follow their elements.
func (l *List[E]) Swap(other *List[E]) {
	if l == other {
		return
	}
	l.lazyInit()
	other.lazyInit()
	ln, on := l.size, other.size
	lFirst, lLast := l.end.next, l.end.prev
	oFirst, oLast := other.end.next, other.end.prev
	l.init()
	other.init()
	if on > 0 {
		l.linkRange(&l.end, oFirst, oLast, on)
	}
	if ln > 0 {
		other.linkRange(&other.end, lFirst, lLast, ln)
	}
	l.cmp, other.cmp = other.cmp, l.cmp
}

// --- Access ----------------------------------------------------------------

// Front returns the first element.
func (l *List[E]) Front() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, fmt.Errorf("%w: front", ErrEmpty)
	}
	return l.end.next.value, nil
}

// Back returns the last element.
func (l *List[E]) Back() (E, error) {
	if l.size == 0 {
		var zero E
		return zero, fmt.Errorf("%w: back", ErrEmpty)
	}
	return l.end.prev.value, nil
}

// Begin returns an iterator to the first element, or End() for an empty list.
func (l *List[E]) Begin() Iterator[E] {
	l.lazyInit()
	return Iterator[E]{e: l.end.next}
}

// Last returns an iterator to the last element, or End() for an empty list.
func (l *List[E]) Last() Iterator[E] {
	l.lazyInit()
	return Iterator[E]{e: l.end.prev}
}

// End returns the iterator to the sentinel position.
func (l *List[E]) End() Iterator[E] {
	l.lazyInit()
	return Iterator[E]{e: &l.end}
}

// All iterates over the elements front to back.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if l.size == 0 {
			return
		}
		for e := l.end.next; e != &l.end; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Backward iterates over the elements back to front.
func (l *List[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		if l.size == 0 {
			return
		}
		for e := l.end.prev; e != &l.end; e = e.prev {
			if !yield(e.value) {
				return
			}
		}
	}
}

// --- Modifiers -------------------------------------------------------------

// PushFront prepends v.
func (l *List[E]) PushFront(v E) {
	l.lazyInit()
	l.insertBefore(l.end.next, v)
}

// PushBack appends v.
func (l *List[E]) PushBack(v E) {
	l.lazyInit()
	l.insertBefore(&l.end, v)
}

// PopFront removes the first element. It does nothing for an empty list.
func (l *List[E]) PopFront() {
	if l.size > 0 {
		l.remove(l.end.next)
	}
}

// PopBack removes the last element. It does nothing for an empty list.
func (l *List[E]) PopBack() {
	if l.size > 0 {
		l.remove(l.end.prev)
	}
}

// Insert puts v before pos and returns an iterator to the new element.
func (l *List[E]) Insert(pos Iterator[E], v E) (Iterator[E], error) {
	if err := l.owns(pos); err != nil {
		return Iterator[E]{}, err
	}
	return Iterator[E]{e: l.insertBefore(pos.e, v)}, nil
}

// Erase removes the element at pos and returns an iterator to the element
// following it. Erasing End() is a usage error.
func (l *List[E]) Erase(pos Iterator[E]) (Iterator[E], error) {
	if err := l.owns(pos); err != nil {
		return Iterator[E]{}, err
	}
	if pos.e == &l.end {
		T().Errorf("list: attempt to erase the end position")
		return Iterator[E]{}, ErrEraseEnd
	}
	next := pos.e.next
	l.remove(pos.e)
	return Iterator[E]{e: next}, nil
}

// Emplace inserts items in order before pos and returns an iterator to the
// first inserted element, or pos when items is empty.
func (l *List[E]) Emplace(pos Iterator[E], items ...E) (Iterator[E], error) {
	if err := l.owns(pos); err != nil {
		return Iterator[E]{}, err
	}
	first := pos
	for i, v := range items {
		e := l.insertBefore(pos.e, v)
		if i == 0 {
			first = Iterator[E]{e: e}
		}
	}
	return first, nil
}

// EmplaceBack appends items in order.
func (l *List[E]) EmplaceBack(items ...E) {
	for _, v := range items {
		l.PushBack(v)
	}
}

// EmplaceFront prepends items, so that they end up at the front in the order
// given.
func (l *List[E]) EmplaceFront(items ...E) {
	l.lazyInit()
	first := l.end.next
	for _, v := range items {
		l.insertBefore(first, v)
	}
}

// Clear removes all elements.
func (l *List[E]) Clear() {
	l.lazyInit()
	for e := l.end.next; e != &l.end; {
		next := e.next
		e.detach()
		e = next
	}
	l.init()
}

func (l *List[E]) owns(pos Iterator[E]) error {
	l.lazyInit()
	if pos.e == nil || pos.e.list != l {
		return ErrForeignIterator
	}
	return nil
}

func (l *List[E]) insertBefore(at *element[E], v E) *element[E] {
	e := &element[E]{value: v}
	l.link(at, e)
	return e
}

// link puts e before at.
func (l *List[E]) link(at, e *element[E]) {
	e.prev = at.prev
	e.next = at
	at.prev.next = e
	at.prev = e
	e.list = l
	l.size++
}

// unlink takes e out of the ring without resetting its payload.
func (l *List[E]) unlink(e *element[E]) {
	assertThat(e != &l.end, "list: unlinking sentinel")
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next, e.list = nil, nil, nil
	l.size--
}

func (l *List[E]) remove(e *element[E]) {
	l.unlink(e)
	var zero E
	e.value = zero
}

func (e *element[E]) detach() {
	var zero E
	e.value = zero
	e.prev, e.next, e.list = nil, nil, nil
}

// linkRange puts the chain first..last of n elements before at, adopting them.
// The chain must already be cut out of its previous ring.
func (l *List[E]) linkRange(at, first, last *element[E], n int) {
	for e := first; ; e = e.next {
		e.list = l
		if e == last {
			break
		}
	}
	first.prev = at.prev
	last.next = at
	at.prev.next = first
	at.prev = last
	l.size += n
}

func assertThat(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
