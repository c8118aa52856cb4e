package bst

import "fmt"

// Check validates structural tree invariants.
//
// It verifies key order, parent back-links, the position of the sentinel and
// the element count. Check walks the whole tree and is meant for tests and
// debugging.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil || t.end == nil {
		return fmt.Errorf("%w: missing root or sentinel", ErrCorrupted)
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorrupted)
	}
	if t.end.left != nil || t.end.right != nil {
		return fmt.Errorf("%w: sentinel has children", ErrCorrupted)
	}
	if t.root.farRight() != t.end {
		return fmt.Errorf("%w: sentinel is not the rightmost node", ErrCorrupted)
	}
	if t.size == 0 {
		if !t.root.isVacant() || t.root.left != nil || t.root.right != t.end {
			return fmt.Errorf("%w: empty tree must consist of vacant root and sentinel", ErrCorrupted)
		}
		if t.end.parent != t.root {
			return fmt.Errorf("%w: sentinel of empty tree must hang below root", ErrCorrupted)
		}
		return nil
	}
	count, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrCorrupted, count, t.size)
	}
	return t.checkOrder()
}

// checkNode verifies links of the subtree rooted at n and returns the number of
// real nodes in it.
func (t *Tree[K, V]) checkNode(n *node[K, V]) (int, error) {
	if n == t.end {
		if n.parent == nil || n.parent.right != n {
			return 0, fmt.Errorf("%w: sentinel parent link broken", ErrCorrupted)
		}
		return 0, nil
	}
	if n.kind != realNode {
		return 0, fmt.Errorf("%w: non-real node inside non-empty tree", ErrCorrupted)
	}
	count := 1
	for _, child := range [2]*node[K, V]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return 0, fmt.Errorf("%w: broken parent link below key %v", ErrCorrupted, n.key)
		}
		c, err := t.checkNode(child)
		if err != nil {
			return 0, err
		}
		count += c
	}
	return count, nil
}

// checkOrder verifies in-order key order: strictly increasing for Unique trees,
// non-decreasing for Multi trees.
func (t *Tree[K, V]) checkOrder() error {
	prev := t.root.farLeft()
	steps := 1
	for n := prev.successor(); n != t.end; n = n.successor() {
		if n == nil {
			return fmt.Errorf("%w: in-order walk fell off the tree", ErrCorrupted)
		}
		c := t.cmp(prev.key, n.key)
		if c > 0 || (c == 0 && t.policy == Unique) {
			return fmt.Errorf("%w: keys out of order (%v before %v)", ErrCorrupted, prev.key, n.key)
		}
		prev = n
		steps++
	}
	if t.end.parent != prev {
		return fmt.Errorf("%w: sentinel does not point to maximum", ErrCorrupted)
	}
	if steps != t.size {
		return fmt.Errorf("%w: in-order walk took %d steps for %d keys", ErrCorrupted, steps, t.size)
	}
	return nil
}
