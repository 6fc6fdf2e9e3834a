package platform

import (
	"errors"
	"fmt"
)

// ActionableError is an expected failure whose message can be shown to
// the end user as-is, e.g. an unsupported button or a missing tunnel.
type ActionableError struct {
	Message string
}

func (e *ActionableError) Error() string { return e.Message }

// Actionable creates an ActionableError with a formatted message.
func Actionable(format string, args ...any) error {
	return &ActionableError{Message: fmt.Sprintf(format, args...)}
}

// IsActionable reports whether err, or any error it wraps, is actionable.
func IsActionable(err error) bool {
	var ae *ActionableError
	return errors.As(err, &ae)
}
