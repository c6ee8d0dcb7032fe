package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by storage when a record does not exist
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks request data that failed validation
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized is returned when credentials or tokens are rejected
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnavailable is returned when an upstream dependency cannot be reached
	ErrUnavailable = errors.New("service unavailable")
)

// FieldError names the request field that failed validation
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

// NewFieldError builds a FieldError for field
func NewFieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
