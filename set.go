package containers

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/containers/bst"
	"github.com/npillmayer/containers/vector"
)

// SetIterator denotes a position within a Set or Multiset.
type SetIterator[K any] = bst.Iterator[K, struct{}]

// InsertResult reports the outcome of inserting a single key or entry with
// Emplace. Pos points to the inserted key, or to the equal key which
// prevented insertion.
type InsertResult[It any] struct {
	Pos      It
	Inserted bool
}

// keySet is the part shared between Set and Multiset.
type keySet[K any] struct {
	tree *bst.Tree[K, struct{}]
}

func newKeys[K any](compare func(a, b K) int, policy bst.Policy) (keySet[K], error) {
	if compare == nil {
		return keySet[K]{}, fmt.Errorf("%w: comparison function is required", ErrIllegalArguments)
	}
	tree, err := bst.New[K, struct{}](compare, policy)
	if err != nil {
		return keySet[K]{}, err
	}
	return keySet[K]{tree: tree}, nil
}

// Len returns the number of keys.
func (s *keySet[K]) Len() int { return s.tree.Len() }

// IsEmpty reports whether the container holds no keys.
func (s *keySet[K]) IsEmpty() bool { return s.tree.IsEmpty() }

// MaxSize returns the upper bound for the number of keys.
func (s *keySet[K]) MaxSize() int { return s.tree.MaxSize() }

// Begin returns an iterator to the smallest key, or End() if empty.
func (s *keySet[K]) Begin() SetIterator[K] { return s.tree.Begin() }

// End returns the one-past-the-end iterator.
func (s *keySet[K]) End() SetIterator[K] { return s.tree.End() }

// Last returns an iterator to the largest key, or End() if empty.
func (s *keySet[K]) Last() SetIterator[K] { return s.tree.Last() }

// Find returns an iterator to key, or End() if key is not present.
func (s *keySet[K]) Find(key K) SetIterator[K] { return s.tree.Find(key) }

// Contains reports whether key is present.
func (s *keySet[K]) Contains(key K) bool { return s.tree.Contains(key) }

// Erase removes the key at pos. Erasing End() is a usage error.
func (s *keySet[K]) Erase(pos SetIterator[K]) error { return s.tree.Erase(pos) }

// Clear removes all keys.
func (s *keySet[K]) Clear() { s.tree.Clear() }

// All iterates over the keys in ascending order.
func (s *keySet[K]) All() iter.Seq[K] { return s.tree.Keys() }

// Check validates the internal tree structure.
func (s *keySet[K]) Check() error { return s.tree.Check() }

// --- Set -------------------------------------------------------------------

// Set is an ordered collection of unique keys.
//
// The zero Set has no ordering and is not usable beyond Len and IsEmpty;
// create sets with NewSet or NewSetFunc.
type Set[K any] struct {
	keySet[K]
}

// NewSet creates a set holding keys. Duplicates among keys are dropped.
func NewSet[K cmp.Ordered](keys ...K) *Set[K] {
	s, err := NewSetFunc(cmp.Compare[K], keys...)
	assert(err == nil, "NewSet: cannot create tree")
	return s
}

// NewSetFunc creates a set ordering its keys by compare and holding keys.
func NewSetFunc[K any](compare func(a, b K) int, keys ...K) (*Set[K], error) {
	k, err := newKeys(compare, bst.Unique)
	if err != nil {
		return nil, err
	}
	s := &Set[K]{keySet: k}
	for _, key := range keys {
		s.tree.Insert(key, struct{}{})
	}
	return s, nil
}

// Insert adds key. It returns the position of key and whether it has been
// added; false means an equal key was already present.
func (s *Set[K]) Insert(key K) (SetIterator[K], bool) {
	return s.tree.Insert(key, struct{}{})
}

// Emplace inserts keys one after the other and reports the outcome of each
// insertion, in argument order.
func (s *Set[K]) Emplace(keys ...K) *vector.Vector[InsertResult[SetIterator[K]]] {
	results := emplaceKeys(s.tree, keys)
	T().Debugf("set: emplaced %d keys, size now %d", len(keys), s.Len())
	return results
}

// Clone returns an independent copy of s.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{keySet: keySet[K]{tree: s.tree.Clone()}}
}

// Assign replaces the contents of s by a copy of other. The copy is completed
// before s is changed.
func (s *Set[K]) Assign(other *Set[K]) {
	if s == other {
		return
	}
	s.tree.Swap(other.tree.Clone())
}

// MoveFrom transfers all keys of other into s, replacing the contents of s.
// other is left empty. Iterators into other now refer to s.
func (s *Set[K]) MoveFrom(other *Set[K]) {
	if s == other {
		return
	}
	s.tree.Clear()
	s.tree.Swap(other.tree)
}

// Swap exchanges the contents of two sets.
func (s *Set[K]) Swap(other *Set[K]) {
	s.tree.Swap(other.tree)
}

// Merge moves every key of other which is not yet present in s over to s.
// Keys already present in s remain in other.
func (s *Set[K]) Merge(other *Set[K]) {
	s.tree.Merge(other.tree)
}

func emplaceKeys[K any](tree *bst.Tree[K, struct{}], keys []K) *vector.Vector[InsertResult[SetIterator[K]]] {
	results := vector.New[InsertResult[SetIterator[K]]]()
	if err := results.Reserve(len(keys)); err != nil {
		T().Errorf("emplace: %v", err)
	}
	for _, key := range keys {
		pos, ok := tree.Insert(key, struct{}{})
		results.PushBack(InsertResult[SetIterator[K]]{Pos: pos, Inserted: ok})
	}
	return results
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
