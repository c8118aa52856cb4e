package bst

type nodeKind uint8

const (
	realNode     nodeKind = iota // holds a key
	sentinelNode                 // one-past-the-end marker
	vacantNode                   // placeholder root of an empty tree
)

// node is a tree node. Child links own their subtrees, parent is a back-link
// used for navigation only.
type node[K, V any] struct {
	key    K
	value  V
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	kind   nodeKind
}

func (n *node[K, V]) isSentinel() bool { return n.kind == sentinelNode }
func (n *node[K, V]) isVacant() bool   { return n.kind == vacantNode }

// farLeft returns the leftmost node of the subtree rooted at n.
func (n *node[K, V]) farLeft() *node[K, V] {
	cur := n
	for cur.left != nil {
		cur = cur.left
	}
	return cur
}

// farRight returns the rightmost node of the subtree rooted at n. For the root
// of a tree this is always the sentinel.
func (n *node[K, V]) farRight() *node[K, V] {
	cur := n
	for cur.right != nil {
		cur = cur.right
	}
	return cur
}

// farTop climbs parent links up to the root.
func (n *node[K, V]) farTop() *node[K, V] {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// successor returns the in-order successor of n. The successor of the maximum
// is the sentinel.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right != nil {
		return n.right.farLeft()
	}
	cur := n
	for cur.parent != nil && cur == cur.parent.right {
		cur = cur.parent
	}
	return cur.parent
}

// predecessor returns the in-order predecessor of n, or nil for the minimum.
func (n *node[K, V]) predecessor() *node[K, V] {
	if n.left != nil {
		return n.left.farRight()
	}
	cur := n
	for cur.parent != nil && cur == cur.parent.left {
		cur = cur.parent
	}
	return cur.parent
}

// unhook clears all links of a node which has left its tree.
func (n *node[K, V]) unhook() {
	n.parent, n.left, n.right = nil, nil, nil
}
