package service

import (
	"errors"
	"fmt"

	"hs-exporter/internal/hscode"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested code, chapter or run does not exist.
	ErrNotFound = errors.New("not found")
	// ErrExternalService is returned when the upstream source could not be reached.
	ErrExternalService = errors.New("external service error")
	// ErrConflict is returned when an export is requested while one is running.
	ErrConflict = errors.New("export already running")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// IsExternal reports whether err was caused by the upstream source,
// either explicitly or through a *hscode.FetchError in its chain.
func IsExternal(err error) bool {
	if errors.Is(err, ErrExternalService) {
		return true
	}
	var fetchErr *hscode.FetchError
	return errors.As(err, &fetchErr)
}
