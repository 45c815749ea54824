package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by services and repositories. The HTTP error handler
// maps each of them to a fixed status code; everything else becomes a 500.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access forbidden")
	ErrAccountNotFound    = errors.New("account not found")
	ErrRecordNotFound     = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrRoleUnknown        = errors.New("role is not in the configured role set")
	ErrCategoryExists     = errors.New("category already exists")
	ErrValidation         = errors.New("invalid input")
)

// Validationf wraps ErrValidation with a specific message so callers can
// still match errors.Is(err, ErrValidation).
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
