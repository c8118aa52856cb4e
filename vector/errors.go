package vector

import "errors"

var (
	// ErrOutOfRange signals an access beyond the live elements.
	ErrOutOfRange = errors.New("vector: position out of range")
	// ErrLengthExceeded signals a requested size larger than MaxSize.
	ErrLengthExceeded = errors.New("vector: size exceeds maximum")
	// ErrEraseEnd signals an attempt to erase at the end position.
	ErrEraseEnd = errors.New("vector: the end position cannot be erased")
)
