package models

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the service layer. Handlers map these onto
// HTTP status codes; services never import net/http.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("requester lacks permission on this organization")
	ErrConflict           = errors.New("operation conflicts with current state")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError marks semantically invalid input. All validation happens
// before any mutation, so a ValidationError guarantees nothing was written.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
