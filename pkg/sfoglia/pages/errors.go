package pages

import (
	"errors"
	"fmt"
)

// Sentinel errors for navigation failures.
var (
	// ErrVetoed indicates an enter or leave guard returned false.
	// The controller has already fallen back to a valid page; this is
	// normal flow control, not a structural failure.
	ErrVetoed = errors.New("page transition vetoed by guard")

	// ErrBeyondReach indicates a direct jump target was more than one
	// page past the furthest page reached so far.
	ErrBeyondReach = errors.New("page is beyond the reachable range")

	// ErrReentrant indicates a controller method was called from within
	// one of the same controller's guards.
	ErrReentrant = errors.New("re-entrant controller call from within a guard")
)

// RangeError reports a page id outside the controller's current bounds.
// It is returned instead of a guard-style failure so callers can tell a
// bad id apart from a vetoed transition.
type RangeError struct {
	Op    string // Operation that rejected the id (e.g. "change", "remove")
	ID    int    // Offending page id
	Count int    // Page count at the time of the call
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("pages: %s: page id %d out of range [0, %d)", e.Op, e.ID, e.Count)
}

// IsRangeError checks if an error is a RangeError.
func IsRangeError(err error) bool {
	var rangeErr *RangeError
	return errors.As(err, &rangeErr)
}

// IsVetoed checks if an error indicates a guard veto.
func IsVetoed(err error) bool {
	return errors.Is(err, ErrVetoed)
}
