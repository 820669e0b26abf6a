package fragnav

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav/router"
)

// ErrNoTabs is returned when a controller is constructed without any tabs.
var ErrNoTabs = errors.New("fragnav: at least one tab is required")

// OutOfRangeError reports a tab index outside the allocated stacks.
// The store is left unmodified.
type OutOfRangeError = router.OutOfRangeError

// MissingRootError reports a tab with no resolvable root view: none was
// supplied, none is cached on the stack and the RootProvider returned nil.
type MissingRootError struct {
	Index int
}

func (e *MissingRootError) Error() string {
	return fmt.Sprintf("fragnav: no root view for tab %d, supply one at construction or return one from the RootProvider", e.Index)
}

// HostError wraps a transaction the host refused. The store is left unmodified.
type HostError struct {
	Op  string // Navigation operation that issued the transaction (e.g., "push")
	Err error  // Error returned by the host
}

func (e *HostError) Error() string {
	return fmt.Sprintf("fragnav: %s: host rejected transaction: %v", e.Op, e.Err)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// IsOutOfRange checks if an error is an out-of-range tab error.
func IsOutOfRange(err error) bool {
	return router.IsOutOfRange(err)
}

// IsMissingRoot checks if an error reports a missing root view.
func IsMissingRoot(err error) bool {
	var rootErr *MissingRootError
	return errors.As(err, &rootErr)
}

// IsHostError checks if an error was caused by the host refusing a transaction.
func IsHostError(err error) bool {
	var hostErr *HostError
	return errors.As(err, &hostErr)
}
