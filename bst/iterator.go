package bst

// Iterator is a bidirectional position within a tree.
//
// The zero Iterator points nowhere and must not be moved or dereferenced.
// Iterators compare equal if they point to the same node.
type Iterator[K, V any] struct {
	n *node[K, V]
}

// Next returns the position of the in-order successor.
//
// Next of the maximum is the end position. Next of the end position moves back
// to the maximum, the same as Prev does.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	assert(it.n != nil, "bst: Next on zero iterator")
	if it.n.isSentinel() {
		return it.Prev()
	}
	return Iterator[K, V]{n: it.n.successor()}
}

// Prev returns the position of the in-order predecessor.
//
// Prev of the end position is the maximum (or end again, for an empty tree).
// Prev of the minimum wraps around to the maximum.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	assert(it.n != nil, "bst: Prev on zero iterator")
	if it.n.isSentinel() {
		if it.n.parent == nil || it.n.parent.isVacant() {
			return it
		}
		return Iterator[K, V]{n: it.n.parent}
	}
	top := it.n.farTop()
	if it.n == top.farLeft() {
		return Iterator[K, V]{n: top.farRight().parent}
	}
	return Iterator[K, V]{n: it.n.predecessor()}
}

// Key returns the key at the current position. Calling Key on the end position
// is a programming error and panics.
func (it Iterator[K, V]) Key() K {
	it.mustDeref()
	return it.n.key
}

// Value returns the value at the current position. Calling Value on the end
// position is a programming error and panics.
func (it Iterator[K, V]) Value() V {
	it.mustDeref()
	return it.n.value
}

// SetValue replaces the value at the current position. Keys are immutable, as
// changing them would break tree order.
func (it Iterator[K, V]) SetValue(v V) {
	it.mustDeref()
	it.n.value = v
}

// ValueRef returns a pointer to the value slot at the current position.
func (it Iterator[K, V]) ValueRef() *V {
	it.mustDeref()
	return &it.n.value
}

// IsEnd reports whether the iterator is at the one-past-the-end position.
func (it Iterator[K, V]) IsEnd() bool {
	return it.n != nil && it.n.isSentinel()
}

// Valid reports whether the iterator may be dereferenced.
func (it Iterator[K, V]) Valid() bool {
	return it.n != nil && it.n.kind == realNode
}

// Equal reports whether both iterators point to the same node.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.n == other.n
}

func (it Iterator[K, V]) mustDeref() {
	assert(it.n != nil, "bst: dereferencing zero iterator")
	assert(!it.n.isSentinel(), "bst: dereferencing end iterator")
	assert(!it.n.isVacant(), "bst: dereferencing vacant root")
}
