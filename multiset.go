package containers

import (
	"cmp"

	"github.com/npillmayer/containers/bst"
	"github.com/npillmayer/containers/vector"
)

// Multiset is an ordered collection of keys which may contain equal keys
// more than once. Equal keys are kept next to each other; a new key goes
// immediately before the first equal key met when descending the tree.
//
// The zero Multiset is not usable beyond Len and IsEmpty; create multisets
// with NewMultiset or NewMultisetFunc.
type Multiset[K any] struct {
	keySet[K]
}

// NewMultiset creates a multiset holding keys.
func NewMultiset[K cmp.Ordered](keys ...K) *Multiset[K] {
	m, err := NewMultisetFunc(cmp.Compare[K], keys...)
	assert(err == nil, "NewMultiset: cannot create tree")
	return m
}

// NewMultisetFunc creates a multiset ordering its keys by compare and holding
// keys.
func NewMultisetFunc[K any](compare func(a, b K) int, keys ...K) (*Multiset[K], error) {
	k, err := newKeys(compare, bst.Multi)
	if err != nil {
		return nil, err
	}
	m := &Multiset[K]{keySet: k}
	for _, key := range keys {
		m.tree.Insert(key, struct{}{})
	}
	return m, nil
}

// Insert adds key and returns its position. Insertion always succeeds.
func (m *Multiset[K]) Insert(key K) SetIterator[K] {
	pos, _ := m.tree.Insert(key, struct{}{})
	return pos
}

// Emplace inserts keys one after the other. Every result reports an
// insertion.
func (m *Multiset[K]) Emplace(keys ...K) *vector.Vector[InsertResult[SetIterator[K]]] {
	results := emplaceKeys(m.tree, keys)
	T().Debugf("multiset: emplaced %d keys, size now %d", len(keys), m.Len())
	return results
}

// Count returns the number of keys equal to key.
func (m *Multiset[K]) Count(key K) int { return m.tree.Count(key) }

// LowerBound returns an iterator to the first key not less than key.
func (m *Multiset[K]) LowerBound(key K) SetIterator[K] { return m.tree.LowerBound(key) }

// UpperBound returns an iterator to the first key greater than key.
func (m *Multiset[K]) UpperBound(key K) SetIterator[K] { return m.tree.UpperBound(key) }

// EqualRange returns the range [first, last) of keys equal to key.
func (m *Multiset[K]) EqualRange(key K) (SetIterator[K], SetIterator[K]) {
	return m.tree.EqualRange(key)
}

// Clone returns an independent copy of m.
func (m *Multiset[K]) Clone() *Multiset[K] {
	return &Multiset[K]{keySet: keySet[K]{tree: m.tree.Clone()}}
}

// Assign replaces the contents of m by a copy of other.
func (m *Multiset[K]) Assign(other *Multiset[K]) {
	if m == other {
		return
	}
	m.tree.Swap(other.tree.Clone())
}

// MoveFrom transfers all keys of other into m, replacing the contents of m.
// other is left empty.
func (m *Multiset[K]) MoveFrom(other *Multiset[K]) {
	if m == other {
		return
	}
	m.tree.Clear()
	m.tree.Swap(other.tree)
}

// Swap exchanges the contents of two multisets.
func (m *Multiset[K]) Swap(other *Multiset[K]) {
	m.tree.Swap(other.tree)
}

// Merge moves all keys of other over to m, leaving other empty.
func (m *Multiset[K]) Merge(other *Multiset[K]) {
	m.tree.Merge(other.tree)
}
