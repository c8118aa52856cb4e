package bst

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"unsafe"
)

// Policy selects how a tree treats equal keys.
type Policy uint8

const (
	// Unique trees reject a key equal to one already present.
	Unique Policy = iota
	// Multi trees accept equal keys. A new key is placed immediately before
	// the first equal key met on the way down.
	Multi
)

func (p Policy) String() string {
	switch p {
	case Unique:
		return "unique"
	case Multi:
		return "multi"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// Tree is an unbalanced binary search tree with a sentinel end node.
//
// K is the key type, ordered by the comparison function given to New. V is the
// payload type carried alongside each key; sets use struct{}.
type Tree[K, V any] struct {
	root   *node[K, V] // first real node, or a vacant placeholder when empty
	end    *node[K, V] // sentinel, always the rightmost node
	size   int
	cmp    func(a, b K) int
	policy Policy
}

// New creates an empty tree ordering keys by cmp.
//
// cmp must return a negative number, zero or a positive number when a is less
// than, equal to or greater than b.
func New[K, V any](cmp func(a, b K) int, policy Policy) (*Tree[K, V], error) {
	if cmp == nil {
		return nil, fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	if policy != Unique && policy != Multi {
		return nil, fmt.Errorf("%w: unknown policy %v", ErrInvalidConfig, policy)
	}
	t := &Tree[K, V]{cmp: cmp, policy: policy}
	t.end = &node[K, V]{kind: sentinelNode}
	t.resetRoot()
	return t, nil
}

// NewOrdered creates an empty tree for a naturally ordered key type.
func NewOrdered[K cmp.Ordered, V any](policy Policy) (*Tree[K, V], error) {
	return New[K, V](cmp.Compare[K], policy)
}

// resetRoot installs a fresh vacant root in front of the sentinel.
func (t *Tree[K, V]) resetRoot() {
	t.root = &node[K, V]{kind: vacantNode}
	t.root.right = t.end
	t.end.parent = t.root
	t.end.left, t.end.right = nil, nil
}

// Policy returns the duplicate policy of the tree.
func (t *Tree[K, V]) Policy() Policy {
	return t.policy
}

// Compare exposes the ordering used by the tree.
func (t *Tree[K, V]) Compare(a, b K) int {
	return t.cmp(a, b)
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.size == 0
}

// MaxSize returns a theoretical upper bound for the number of keys: the
// number of nodes of this key and value type which fit into the address
// space, i.e. math.MaxInt divided by the size of one node. The result depends
// on K and V only, never on the contents of the tree.
func (t *Tree[K, V]) MaxSize() int {
	var n node[K, V]
	return math.MaxInt / int(unsafe.Sizeof(n))
}

// Begin returns the position of the smallest key, or End for an empty tree.
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	if t.size == 0 {
		return t.End()
	}
	return Iterator[K, V]{n: t.root.farLeft()}
}

// End returns the one-past-the-end position.
func (t *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{n: t.end}
}

// Last returns the position of the largest key, or End for an empty tree.
func (t *Tree[K, V]) Last() Iterator[K, V] {
	return t.End().Prev()
}

// All iterates over keys and values in order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.size == 0 {
			return
		}
		for n := t.root.farLeft(); n != t.end; n = n.successor() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys iterates over keys in order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// --- Lookup ----------------------------------------------------------------

// Find returns the position of key, or End if key is not present.
//
// In a Multi tree, Find returns the leftmost of all equal keys.
func (t *Tree[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{n: t.find(key, t.root)}
}

func (t *Tree[K, V]) find(key K, n *node[K, V]) *node[K, V] {
	if n == nil || n == t.end || t.size == 0 {
		return t.end
	}
	c := t.cmp(key, n.key)
	switch {
	case c == 0:
		if t.policy == Multi {
			if left := t.find(key, n.left); left != t.end {
				return left
			}
		}
		return n
	case c < 0:
		return t.find(key, n.left)
	}
	return t.find(key, n.right)
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key, t.root) != t.end
}

// Count returns the number of keys equal to key.
func (t *Tree[K, V]) Count(key K) int {
	count := 0
	for n := t.find(key, t.root); n != t.end && t.cmp(n.key, key) == 0; n = n.successor() {
		count++
	}
	return count
}

// LowerBound returns the position of the first key not less than key.
func (t *Tree[K, V]) LowerBound(key K) Iterator[K, V] {
	return t.bound(func(k K) bool { return t.cmp(k, key) < 0 })
}

// UpperBound returns the position of the first key greater than key.
func (t *Tree[K, V]) UpperBound(key K) Iterator[K, V] {
	return t.bound(func(k K) bool { return t.cmp(k, key) <= 0 })
}

// EqualRange returns the half-open range of keys equal to key.
func (t *Tree[K, V]) EqualRange(key K) (Iterator[K, V], Iterator[K, V]) {
	return t.LowerBound(key), t.UpperBound(key)
}

// bound descends the tree and returns the leftmost node for which before is
// false. The sentinel compares greater than any key.
func (t *Tree[K, V]) bound(before func(K) bool) Iterator[K, V] {
	result := t.end
	if t.size == 0 {
		return Iterator[K, V]{n: result}
	}
	cur := t.root
	for cur != nil && cur != t.end {
		if before(cur.key) {
			cur = cur.right
		} else {
			result = cur
			cur = cur.left
		}
	}
	return Iterator[K, V]{n: result}
}

// --- Modifiers -------------------------------------------------------------

// Insert adds key with value to the tree.
//
// It returns the position of the new node and true, or, for a Unique tree
// already holding an equal key, the position of that key and false. Insert
// panics for a nil tree.
func (t *Tree[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	assert(t != nil, "bst: insert into uninitialized tree")
	if t.size == 0 {
		t.root.key, t.root.value = key, value
		t.root.kind = realNode
		t.size = 1
		return Iterator[K, V]{n: t.root}, true
	}
	n := &node[K, V]{key: key, value: value}
	if existing, ok := t.link(n); !ok {
		return Iterator[K, V]{n: existing}, false
	}
	t.size++
	return Iterator[K, V]{n: n}, true
}

// link walks down from the root and attaches the detached node n. For a Unique
// tree holding an equal key, n is left alone and the equal node is returned.
func (t *Tree[K, V]) link(n *node[K, V]) (*node[K, V], bool) {
	assert(t.size > 0, "bst: link into empty tree")
	cur := t.root
	for {
		if cur == t.end {
			last := t.end.parent
			last.right = n
			n.parent = last
			n.right = t.end
			t.end.parent = n
			return n, true
		}
		c := t.cmp(n.key, cur.key)
		switch {
		case c < 0:
			if cur.left == nil {
				cur.left = n
				n.parent = cur
				return n, true
			}
			cur = cur.left
		case c > 0:
			if cur.right == nil {
				cur.right = n
				n.parent = cur
				return n, true
			}
			cur = cur.right
		default:
			if t.policy == Unique {
				return cur, false
			}
			n.left = cur.left
			if n.left != nil {
				n.left.parent = n
			}
			cur.left = n
			n.parent = cur
			return n, true
		}
	}
}

// Erase removes the key at pos.
//
// Erasing End is a usage error. Iterators to all other keys stay valid.
func (t *Tree[K, V]) Erase(pos Iterator[K, V]) error {
	if err := t.owns(pos); err != nil {
		T().Errorf("bst: erase: %v", err)
		return err
	}
	n := pos.n
	t.unlink(n)
	t.size--
	n.unhook()
	var zk K
	var zv V
	n.key, n.value = zk, zv
	return nil
}

// owns checks that pos is a dereferenceable position of t.
func (t *Tree[K, V]) owns(pos Iterator[K, V]) error {
	switch {
	case pos.n == nil:
		return fmt.Errorf("%w: zero iterator", ErrForeignIterator)
	case pos.n == t.end:
		return ErrEraseEnd
	case pos.n.kind != realNode:
		return ErrForeignIterator
	case pos.n.farTop() != t.root:
		return ErrForeignIterator
	}
	return nil
}

// unlink detaches the real node n from the tree structure without touching
// the size. n keeps stale links which the caller has to clear or overwrite.
//
// Three cases are distinguished:
//
//   - n has no left child and its right link is empty or the sentinel,
//   - n has exactly one child,
//   - n has two children; its in-order predecessor takes its place.
func (t *Tree[K, V]) unlink(n *node[K, V]) {
	switch {
	case n.left == nil && (n.right == nil || n.right == t.end):
		t.unlinkLeaf(n)
	case n.left == nil || n.right == nil:
		t.unlinkOneChild(n)
	default:
		t.unlinkTwoChildren(n)
	}
}

func (t *Tree[K, V]) unlinkLeaf(n *node[K, V]) {
	if n == t.root {
		assert(n.right == t.end, "bst: root leaf without sentinel")
		t.resetRoot()
		return
	}
	p := n.parent
	if p.left == n {
		p.left = nil
		return
	}
	if n.right == t.end { // n was the maximum, p takes over
		p.right = t.end
		t.end.parent = p
		return
	}
	p.right = nil
}

func (t *Tree[K, V]) unlinkOneChild(n *node[K, V]) {
	child := n.left
	if child == nil {
		child = n.right
	}
	t.replaceChild(n, child)
}

func (t *Tree[K, V]) unlinkTwoChildren(n *node[K, V]) {
	pred := n.left.farRight()
	// take pred out of its position; it has no right child
	if pred.parent == n {
		n.left = pred.left
	} else {
		pred.parent.right = pred.left
	}
	if pred.left != nil {
		pred.left.parent = pred.parent
	}
	// move pred into the slot of n
	pred.left, pred.right = n.left, n.right
	if pred.left != nil {
		pred.left.parent = pred
	}
	pred.right.parent = pred
	t.replaceChild(n, pred)
}

// replaceChild puts c into the slot of n below n's parent (or at the root).
func (t *Tree[K, V]) replaceChild(n, c *node[K, V]) {
	p := n.parent
	c.parent = p
	switch {
	case p == nil:
		t.root = c
	case p.left == n:
		p.left = c
	default:
		p.right = c
	}
}

// Clear removes all keys.
func (t *Tree[K, V]) Clear() {
	t.resetRoot()
	t.size = 0
}

// Swap exchanges the contents of two trees.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	t.root, other.root = other.root, t.root
	t.end, other.end = other.end, t.end
	t.size, other.size = other.size, t.size
	t.cmp, other.cmp = other.cmp, t.cmp
	t.policy, other.policy = other.policy, t.policy
}

// Merge moves keys from other into t.
//
// Nodes are relinked, not copied: iterators to moved keys now point into t.
// A Unique tree leaves keys it already contains in other. Merging a tree into
// itself does nothing.
func (t *Tree[K, V]) Merge(other *Tree[K, V]) {
	if other == nil || other == t || other.size == 0 {
		return
	}
	moved := 0
	for cur := other.root.farLeft(); cur != other.end; {
		n := cur
		cur = cur.successor()
		if t.policy == Unique && t.Contains(n.key) {
			continue
		}
		other.unlink(n)
		other.size--
		n.unhook()
		t.adopt(n)
		t.size++
		moved++
	}
	T().Debugf("bst: merged %d nodes, %d left in source", moved, other.size)
}

// adopt links a detached node into t. For an empty tree the node replaces the
// vacant root.
func (t *Tree[K, V]) adopt(n *node[K, V]) {
	if t.size == 0 {
		t.root = n
		n.right = t.end
		t.end.parent = n
		return
	}
	_, ok := t.link(n)
	assert(ok, "bst: adopted node collides with existing key")
}

// Clone returns a deep copy of the tree with identical shape.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	c := &Tree[K, V]{cmp: t.cmp, policy: t.policy}
	c.end = &node[K, V]{kind: sentinelNode}
	if t.size == 0 {
		c.resetRoot()
		return c
	}
	c.root = t.copySubtree(t.root, nil, c.end)
	c.size = t.size
	return c
}

// copySubtree copies the subtree rooted at n. The source sentinel is mapped to
// end, whose parent link is set to the copy of the maximum.
func (t *Tree[K, V]) copySubtree(n, parent, end *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	if n == t.end {
		end.parent = parent
		return end
	}
	c := &node[K, V]{key: n.key, value: n.value, kind: n.kind, parent: parent}
	c.left = t.copySubtree(n.left, c, end)
	c.right = t.copySubtree(n.right, c, end)
	return c
}
