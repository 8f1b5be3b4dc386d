package dynarray

import (
	"errors"
	"fmt"
)

// Errors returned by List operations, always wrapped in an *OpError.
var (
	// ErrIndexOutOfRange indicates a position outside the operation's valid range.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrInvalidArgument indicates an absent element was supplied.
	ErrInvalidArgument = errors.New("dynarray: absent element")

	// ErrInvalidOperation indicates the operation is not valid in the list's current state.
	ErrInvalidOperation = errors.New("dynarray: invalid operation")
)

// OpError wraps an error with the operation and list context it occurred in.
type OpError struct {
	Op      string
	Index   int
	Count   int
	Wrapped error
}

func (e *OpError) Error() string {
	switch {
	case errors.Is(e.Wrapped, ErrIndexOutOfRange):
		return fmt.Sprintf("%s: index %d (count %d): %v", e.Op, e.Index, e.Count, e.Wrapped)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Wrapped)
	}
}

func (e *OpError) Unwrap() error {
	return e.Wrapped
}

func rangeError(op string, index, count int) error {
	return &OpError{Op: op, Index: index, Count: count, Wrapped: ErrIndexOutOfRange}
}

func absentError(op string, count int) error {
	return &OpError{Op: op, Index: -1, Count: count, Wrapped: ErrInvalidArgument}
}
