package list

import "errors"

var (
	// ErrEmpty signals access to an element of an empty list.
	ErrEmpty = errors.New("list: list is empty")
	// ErrEraseEnd signals an attempt to erase the end position.
	ErrEraseEnd = errors.New("list: the end position cannot be erased")
	// ErrForeignIterator signals an iterator not belonging to the list.
	ErrForeignIterator = errors.New("list: iterator does not belong to this list")
	// ErrLengthExceeded signals a requested size larger than MaxSize.
	ErrLengthExceeded = errors.New("list: size exceeds maximum")
	// ErrNoOrder signals an ordering operation on a list without comparison
	// function.
	ErrNoOrder = errors.New("list: no comparison function")
)
