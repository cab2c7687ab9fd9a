package templates

import "fmt"

// ErrorType represents the type of error that occurred.
type ErrorType string

const (
	// ErrorTypeNotFound indicates that no template is registered under the requested name.
	ErrorTypeNotFound ErrorType = "template_not_found"
	// ErrorTypeUnreadable indicates that a registered file source could not be read.
	ErrorTypeUnreadable ErrorType = "template_unreadable"
	// ErrorTypeMisconfigured indicates an invalid descriptor set at store construction.
	ErrorTypeMisconfigured ErrorType = "misconfigured"
)

// Error represents a template-related error with type information.
type Error struct {
	Type    ErrorType
	Name    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind reports the error classification used in logs.
func (e *Error) Kind() string {
	return string(e.Type)
}

// IsNotFound reports whether err is a TemplateNotFound error.
func IsNotFound(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

// IsUnreadable reports whether err is a TemplateUnreadable error.
func IsUnreadable(err error) bool {
	return hasType(err, ErrorTypeUnreadable)
}
