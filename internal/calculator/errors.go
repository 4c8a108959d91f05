package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySet is returned when no symbols are supplied.
	ErrEmptySet = errors.New("the set must contain at least one element")
	// ErrInvalidSelectionSize is returned when the selection size is negative or exceeds the available elements.
	ErrInvalidSelectionSize = errors.New("invalid selection size")
	// ErrTooLarge is returned when a count does not fit into a 64-bit integer
	// or has too many results to enumerate.
	ErrTooLarge = errors.New("result is too large to compute")
)

// SelectionError describes a selection size that cannot be drawn from the set.
type SelectionError struct {
	Requested int
	Available int
}

func (e *SelectionError) Error() string {
	if e.Requested < 0 {
		return fmt.Sprintf("selection size must be non-negative, got %d", e.Requested)
	}
	return fmt.Sprintf("cannot select %d objects from a set of %d elements", e.Requested, e.Available)
}

// Unwrap allows errors.Is(err, ErrInvalidSelectionSize).
func (e *SelectionError) Unwrap() error {
	return ErrInvalidSelectionSize
}
