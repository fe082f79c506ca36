package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey reports a username collision on signup.
	ErrDuplicateKey = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown users and bad passwords,
	// so a login failure never reveals which one it was. The admin
	// password check reuses it.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a missing required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError wraps an underlying database failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
