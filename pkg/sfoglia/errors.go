package sfoglia

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user cancelled the wizard (pressed back,
	// closed the window, etc.). This is normal flow control, not an
	// infrastructure failure.
	ErrCancelled = errors.New("wizard cancelled by user")
)

// InfrastructureError represents a framework-level error that indicates
// something is wrong with sfoglia itself (SDL init failed, font missing,
// SVG rasterization failed, etc.). These errors are typically fatal or
// require framework-level recovery.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g. "render_arrow", "load_style")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sfoglia: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sfoglia: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
