package httputil

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBody      = errors.New("Invalid JSON")
	ErrRequestBodyEmpty = errors.New("Request body must not be empty")
)

// ValidationError is returned when a request does not pass validation.
//
// Its message is sent to the client unchanged.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// MissingField reports a required body field that was not sent.
func MissingField(name string) error {
	return ValidationError{fmt.Sprintf("Missing required field: %s", name)}
}

// MissingParameter reports a required query parameter that was not sent.
func MissingParameter(name string) error {
	return ValidationError{fmt.Sprintf("Missing required parameter: %s", name)}
}

// InvalidField reports a field with a value of the wrong type or format.
func InvalidField(name string) error {
	return ValidationError{fmt.Sprintf("Invalid value for field: %s", name)}
}
