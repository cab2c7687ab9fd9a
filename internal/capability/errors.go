package capability

import (
	"errors"
	"fmt"
)

// ErrCapabilityNotFound is wrapped by every error returned for an unregistered capability name.
var ErrCapabilityNotFound = errors.New("capability not found")

// ErrorType represents the type of error that occurred.
type ErrorType string

const (
	// ErrorTypeNotFound indicates that no capability is registered under the requested name.
	ErrorTypeNotFound ErrorType = "capability_not_found"
	// ErrorTypeMisconfigured indicates an invalid or duplicate registration.
	ErrorTypeMisconfigured ErrorType = "misconfigured"
)

// Error represents a registry error with type information.
type Error struct {
	Type    ErrorType
	Name    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind reports the error classification used in logs.
func (e *Error) Kind() string {
	return string(e.Type)
}
