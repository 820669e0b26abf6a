package router

import (
	"errors"
	"fmt"
)

// OutOfRangeError reports a tab index outside the allocated stacks.
type OutOfRangeError struct {
	Op    string // Operation that was refused (e.g., "switch_tab", "select")
	Index int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("fragnav: %s: tab index %d out of range, %d stacks allocated", e.Op, e.Index, e.Count)
}

// IsOutOfRange checks if an error is an out-of-range tab error.
func IsOutOfRange(err error) bool {
	var rangeErr *OutOfRangeError
	return errors.As(err, &rangeErr)
}
