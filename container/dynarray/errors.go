package dynarray

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by the *RangeError returned from At.
	ErrOutOfRange = errors.New("dynarray: index out of range")
	// ErrCapacityExceeded is returned when an allocation would exceed
	// Config.MaxCapacity.
	ErrCapacityExceeded = errors.New("dynarray: capacity limit exceeded")
)

// RangeError reports a checked access outside [0, Size).
type RangeError struct {
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dynarray: index %d out of range [0, %d)", e.Index, e.Size)
}

// Is makes errors.Is(err, ErrOutOfRange) hold for any *RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
