package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups that miss. Most service methods report a miss
// with a nil return instead; the HTTP layer uses this sentinel when it has
// to surface one as an error.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed input on a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// AuthenticationError reports wrong credentials or a missing session.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return e.Reason
}

func NewAuthenticationError(reason string) *AuthenticationError {
	return &AuthenticationError{Reason: reason}
}

// ConflictError reports a uniqueness violation, e.g. a duplicate ticker.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsAuthentication(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
