package game

import (
	"errors"
	"fmt"
)

// ValidationError reports an illegal action. No state is committed when an
// executor returns one.
type ValidationError struct {
	Action ActionType
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s action: %s", e.Action, e.Reason)
}

// Is matches any *ValidationError, so errors.Is(err, ErrValidation) works.
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// ErrValidation is the sentinel for errors.Is checks.
var ErrValidation = &ValidationError{}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func invalid(action ActionType, format string, args ...any) error {
	return &ValidationError{Action: action, Reason: fmt.Sprintf(format, args...)}
}
