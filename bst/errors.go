package bst

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bst: invalid configuration")
	// ErrEraseEnd signals an attempt to erase the end position.
	ErrEraseEnd = errors.New("bst: the end iterator cannot be erased")
	// ErrForeignIterator signals an iterator which does not point into the tree.
	ErrForeignIterator = errors.New("bst: iterator does not belong to tree")
	// ErrCorrupted signals a violated structural invariant, found by Check.
	ErrCorrupted = errors.New("bst: tree invariant violated")
)
