// Package apperrors holds the error taxonomy the API maps to HTTP
// statuses: not-found -> 404, invalid state / validation -> 400,
// everything else -> 500.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state for requested transition")
)

// ValidationError carries the missing/malformed field names so the API
// can surface them in the 400 response.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

func NewValidation(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
