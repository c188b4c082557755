package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
)

// ReferenceError reports a foreign key pointing at a record that does not exist.
type ReferenceError struct {
	Field string
	ID    int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", e.ID)
}

type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func NewValidationErrorResponse(errors map[string][]string) ValidationErrorResponse {
	return ValidationErrorResponse{
		Message: "validation failed",
		Errors:  errors,
	}
}
