package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrValidation        = errors.New("validation failed")
)

// ValidationError reports a single violated input constraint.
type ValidationError struct {
	Field string
	Rule  string
	Param string
}

func NewValidationError(field, rule, param string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule, Param: param}
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field, e.Param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", e.Field, e.Param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field, e.Param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field)
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color", e.Field)
	case "format":
		return fmt.Sprintf("%s must be in %s format", e.Field, e.Param)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StorageError wraps a failure of the persistence layer. Op names the failed
// operation and is safe to expose; Err is the driver error.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// PublicMessage returns a description of err that does not leak driver
// details.
func PublicMessage(err error) string {
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return fmt.Sprintf("storage operation failed: %s", storageErr.Op)
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	if errors.Is(err, ErrTaskNotFound) || errors.Is(err, ErrUserNotFound) {
		return err.Error()
	}
	return "internal error"
}
