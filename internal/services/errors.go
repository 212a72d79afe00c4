package services

import (
	"errors"
	"fmt"
)

var (
	ErrRestaurantNotFound   = errors.New("restaurant not found")
	ErrDraftNotFound        = errors.New("edit draft not found or expired")
	ErrDescriptionNotFound  = errors.New("no description row to edit")
	ErrProfileNotFound      = errors.New("admin profile not found")
	ErrConfirmationRequired = errors.New("deletion must be confirmed")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrSessionExpired       = errors.New("session expired")
	ErrEmailTaken           = errors.New("user already exists")

	ErrNotImage       = errors.New("file is not an image")
	ErrImageTooLarge  = errors.New("image exceeds the size limit")
	ErrMenuImageLimit = errors.New("too many menu images")
	ErrRequired       = errors.New("value is required")
	ErrTooShort       = errors.New("value is too short")
	ErrInvalidFormat  = errors.New("value has an invalid format")
	ErrIndexRange     = errors.New("index out of range")
)

// ValidationError is a client-side failure detected before any remote call.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field string, err error, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...), Err: err}
}
