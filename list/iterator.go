package list

// Iterator denotes a position within a list. The zero Iterator denotes no
// position at all.
//
// Stepping is circular: Next of the last element and Prev of the first
// element both yield the end position, and stepping from the end position
// reaches the first or last element respectively.
type Iterator[E any] struct {
	e *element[E]
}

// Next returns an iterator to the following position.
func (it Iterator[E]) Next() Iterator[E] {
	if it.e == nil || it.e.next == nil {
		return Iterator[E]{}
	}
	return Iterator[E]{e: it.e.next}
}

// Prev returns an iterator to the preceding position.
func (it Iterator[E]) Prev() Iterator[E] {
	if it.e == nil || it.e.prev == nil {
		return Iterator[E]{}
	}
	return Iterator[E]{e: it.e.prev}
}

// Value returns the element value. It panics for the end position and for
// iterators to erased elements.
func (it Iterator[E]) Value() E {
	return it.deref().value
}

// Set replaces the element value. It panics like Value.
func (it Iterator[E]) Set(v E) {
	it.deref().value = v
}

// IsEnd reports whether it denotes the end position of a list.
func (it Iterator[E]) IsEnd() bool {
	return it.e != nil && it.e.list != nil && it.e == &it.e.list.end
}

// Valid reports whether it denotes an element of a list.
func (it Iterator[E]) Valid() bool {
	return it.e != nil && it.e.list != nil && !it.IsEnd()
}

// Equal reports whether two iterators denote the same position.
func (it Iterator[E]) Equal(other Iterator[E]) bool {
	return it.e == other.e
}

func (it Iterator[E]) deref() *element[E] {
	if !it.Valid() {
		panic("list: dereferencing invalid or end iterator")
	}
	return it.e
}
