package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrClientNotFound     = errors.New("client not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrIdentityNotFound   = errors.New("credential identity not found")
	ErrConflict           = errors.New("record already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidTransition  = errors.New("invalid lifecycle transition")
	ErrUpstream           = errors.New("upstream service unavailable")
)

// ValidationError reports a single field that failed validation.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
