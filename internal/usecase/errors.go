package usecase

import (
	"errors"

	"clinic-api/pkg/utils"
)

// The four terminal error kinds for a request. Handlers translate them to
// 404, 403, 401 and 422; anything else becomes a 500 with detail logged
// but never echoed to the client.
var (
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("unauthorized action")
	ErrInvalidCredentials = errors.New("the provided credentials are incorrect")
)

// ValidationError carries a field-keyed map of messages, including
// uniqueness violations mapped up from the storage layer.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func fieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
