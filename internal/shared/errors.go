package shared

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates no authenticated identity on the request.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPermissionDenied indicates the role lacks the required capability.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound indicates the referenced id is absent from its collection.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrCSRFTokenMissing occurs when CSRF token missing.
	ErrCSRFTokenMissing = errors.New("csrf token missing")
	// ErrCSRFTokenMismatch occurs when CSRF tokens do not match.
	ErrCSRFTokenMismatch = errors.New("csrf token mismatch")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("field %q is required", e.Field)
	}
	return fmt.Sprintf("field %q %s", e.Field, e.Reason)
}

// MissingField builds a ValidationError for an absent required field.
func MissingField(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// MalformedField builds a ValidationError for a field with the wrong shape.
func MalformedField(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// UserSafeMessage returns a message suitable for end users.
func UserSafeMessage(err error) string {
	var verr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, ErrNotFound):
		return "the requested record does not exist"
	case errors.Is(err, ErrPermissionDenied):
		return "you do not have permission to perform this action"
	case errors.Is(err, ErrUnauthorized):
		return "please log in first"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid credentials"
	default:
		return "something went wrong"
	}
}
