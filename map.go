package containers

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/containers/bst"
	"github.com/npillmayer/containers/vector"
)

// MapIterator denotes a position within a Map.
type MapIterator[K, V any] = bst.Iterator[K, V]

// Entry is a key-value pair, used to fill maps.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered mapping from unique keys to values.
//
// The zero Map is not usable beyond Len and IsEmpty; create maps with NewMap
// or NewMapFunc.
type Map[K, V any] struct {
	tree *bst.Tree[K, V]
}

// NewMap creates a map holding entries. For entries with equal keys, the
// first one wins.
func NewMap[K cmp.Ordered, V any](entries ...Entry[K, V]) *Map[K, V] {
	m, err := NewMapFunc(cmp.Compare[K], entries...)
	assert(err == nil, "NewMap: cannot create tree")
	return m
}

// NewMapFunc creates a map ordering its keys by compare and holding entries.
func NewMapFunc[K, V any](compare func(a, b K) int, entries ...Entry[K, V]) (*Map[K, V], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: comparison function is required", ErrIllegalArguments)
	}
	tree, err := bst.New[K, V](compare, bst.Unique)
	if err != nil {
		return nil, err
	}
	m := &Map[K, V]{tree: tree}
	for _, e := range entries {
		m.tree.Insert(e.Key, e.Value)
	}
	return m, nil
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.tree.Len() }

// IsEmpty reports whether m holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.tree.IsEmpty() }

// MaxSize returns the upper bound for the number of entries.
func (m *Map[K, V]) MaxSize() int { return m.tree.MaxSize() }

// Begin returns an iterator to the entry with the smallest key.
func (m *Map[K, V]) Begin() MapIterator[K, V] { return m.tree.Begin() }

// End returns the one-past-the-end iterator.
func (m *Map[K, V]) End() MapIterator[K, V] { return m.tree.End() }

// Last returns an iterator to the entry with the largest key.
func (m *Map[K, V]) Last() MapIterator[K, V] { return m.tree.Last() }

// At returns the value stored for key. If key is absent, the error wraps
// ErrNoSuchElement.
func (m *Map[K, V]) At(key K) (V, error) {
	pos := m.tree.Find(key)
	if pos.IsEnd() {
		var zero V
		return zero, fmt.Errorf("%w: key %v", ErrNoSuchElement, key)
	}
	return pos.Value(), nil
}

// Access returns a pointer to the value stored for key, inserting the zero
// value first if key is absent. The pointer stays valid until the entry is
// erased.
func (m *Map[K, V]) Access(key K) *V {
	var zero V
	pos, _ := m.tree.Insert(key, zero)
	return pos.ValueRef()
}

// Find returns an iterator to the entry for key, or End().
func (m *Map[K, V]) Find(key K) MapIterator[K, V] { return m.tree.Find(key) }

// Contains reports whether m holds an entry for key.
func (m *Map[K, V]) Contains(key K) bool { return m.tree.Contains(key) }

// Insert adds an entry for key unless one exists. It returns the position of
// the entry for key and whether it has been added.
func (m *Map[K, V]) Insert(key K, value V) (MapIterator[K, V], bool) {
	return m.tree.Insert(key, value)
}

// InsertEntry is Insert for an Entry.
func (m *Map[K, V]) InsertEntry(e Entry[K, V]) (MapIterator[K, V], bool) {
	return m.tree.Insert(e.Key, e.Value)
}

// InsertOrAssign adds an entry for key, or overwrites the value of an
// existing one. The flag reports whether a new entry has been added.
func (m *Map[K, V]) InsertOrAssign(key K, value V) (MapIterator[K, V], bool) {
	pos, inserted := m.tree.Insert(key, value)
	if !inserted {
		pos.SetValue(value)
	}
	return pos, inserted
}

// Emplace inserts entries one after the other and reports the outcome of
// each insertion, in argument order.
func (m *Map[K, V]) Emplace(entries ...Entry[K, V]) *vector.Vector[InsertResult[MapIterator[K, V]]] {
	results := vector.New[InsertResult[MapIterator[K, V]]]()
	if err := results.Reserve(len(entries)); err != nil {
		T().Errorf("map emplace: %v", err)
	}
	for _, e := range entries {
		pos, ok := m.tree.Insert(e.Key, e.Value)
		results.PushBack(InsertResult[MapIterator[K, V]]{Pos: pos, Inserted: ok})
	}
	T().Debugf("map: emplaced %d entries, size now %d", len(entries), m.Len())
	return results
}

// Erase removes the entry at pos. Erasing End() is a usage error.
func (m *Map[K, V]) Erase(pos MapIterator[K, V]) error { return m.tree.Erase(pos) }

// Clear removes all entries.
func (m *Map[K, V]) Clear() { m.tree.Clear() }

// Clone returns an independent copy of m. Values are copied by assignment.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

// Assign replaces the contents of m by a copy of other.
func (m *Map[K, V]) Assign(other *Map[K, V]) {
	if m == other {
		return
	}
	m.tree.Swap(other.tree.Clone())
}

// MoveFrom transfers all entries of other into m, replacing the contents of
// m. other is left empty.
func (m *Map[K, V]) MoveFrom(other *Map[K, V]) {
	if m == other {
		return
	}
	m.tree.Clear()
	m.tree.Swap(other.tree)
}

// Swap exchanges the contents of two maps.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tree.Swap(other.tree)
}

// Merge moves every entry of other whose key is not yet present in m over
// to m. Entries with keys already present remain in other.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	m.tree.Merge(other.tree)
}

// All iterates over keys and values in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.tree.All() }

// Keys iterates over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] { return m.tree.Keys() }

// Check validates the internal tree structure.
func (m *Map[K, V]) Check() error { return m.tree.Check() }
