package service

import (
	"errors"
	"fmt"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrDuplicateSerial    = errors.New("serial number already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a malformed field in a request payload
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on %s: %s", e.Field, e.Reason)
}
