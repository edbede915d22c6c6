package uintarray

import "errors"

// Validation failures. All of them are local and synchronous: callers either
// validate inputs up front or propagate these to their own caller. Nothing is
// retried and no operation silently truncates an out-of-range value.
var (
	ErrNotPowerOfTwo    = errors.New("uintarray: element width must be a power of two")
	ErrSizeTooLarge     = errors.New("uintarray: element width exceeds half the word width")
	ErrInvalidLength    = errors.New("uintarray: encoded length exceeds capacity")
	ErrCapacityExceeded = errors.New("uintarray: capacity exceeded")
	ErrValueOutOfRange  = errors.New("uintarray: value does not fit the element width")
)
