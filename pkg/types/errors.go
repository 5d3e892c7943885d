package types

import (
	"errors"
	"strings"
)

// Validation error kinds. Each failed field wraps one of these in a
// FieldError.
var (
	ErrMissingRequiredField = errors.New("required field is missing")
	ErrInvalidCPF           = errors.New("cpf must have 11 digits")
	ErrDuplicateCPF         = errors.New("cpf is already registered")
	ErrInvalidEmail         = errors.New("email is malformed")
	ErrDuplicateEmail       = errors.New("email is already registered")
	ErrInvalidBirthDate     = errors.New("birth date must use the DD/MM/YYYY layout")
	ErrInvalidState         = errors.New("state is not a recognized code")
)

// Store operation errors.
var (
	ErrNotFound           = errors.New("record not found")
	ErrConfirmRequired    = errors.New("delete confirmation required")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// FieldError ties a validation failure to the field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }

// ValidationErrors collects every field failure of one create or update so
// the caller can display them all at once. Validation never short-circuits
// on the first failure.
type ValidationErrors []*FieldError

func (ve ValidationErrors) Error() string {
	return strings.Join(ve.Messages(), "; ")
}

// Messages returns one display string per collected failure.
func (ve ValidationErrors) Messages() []string {
	msgs := make([]string, len(ve))
	for i, fe := range ve {
		msgs[i] = fe.Error()
	}
	return msgs
}

// Has reports whether any collected failure wraps target.
func (ve ValidationErrors) Has(target error) bool {
	for _, fe := range ve {
		if errors.Is(fe, target) {
			return true
		}
	}
	return false
}

// HasField reports whether any collected failure concerns the named field.
func (ve ValidationErrors) HasField(field string) bool {
	for _, fe := range ve {
		if fe.Field == field {
			return true
		}
	}
	return false
}
