package shared

import "fmt"

// ErrorCode identifies the variant of a domain error so callers can switch on it
// without type assertions.
type ErrorCode string

// DomainError is the base error type for all domain errors
type DomainError struct {
	Code    ErrorCode
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Validation error

type ValidationError struct {
	*DomainError
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(code ErrorCode, field, message string) *ValidationError {
	return &ValidationError{
		DomainError: NewDomainError(code, message),
		Field:       field,
	}
}
