package types

import "fmt"

// ValidationError is raised locally, before any network interaction, when an
// input fails a structural or semantic check. Field is a path qualified with
// the entity type, e.g. "stockIssuance.security_id".
type ValidationError struct {
	Field    string
	Message  string
	Received any
}

// NewValidationError creates a ValidationError without a received value.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorValue creates a ValidationError carrying the offending
// value.
func NewValidationErrorValue(field, message string, received any) *ValidationError {
	return &ValidationError{Field: field, Message: message, Received: received}
}

func (e *ValidationError) Error() string {
	if e.Received != nil {
		return fmt.Sprintf("validation failed at %s: %s (received %v)", e.Field, e.Message, e.Received)
	}

	return fmt.Sprintf("validation failed at %s: %s", e.Field, e.Message)
}

// ParseError is raised by the read-side converters when data returned by the
// ledger has an unexpected shape.
type ParseError struct {
	Field    string
	Message  string
	Received any
}

// NewParseError creates a ParseError.
func NewParseError(field, message string, received any) *ParseError {
	return &ParseError{Field: field, Message: message, Received: received}
}

func (e *ParseError) Error() string {
	if e.Received != nil {
		return fmt.Sprintf("parse failed at %s: %s (received %v)", e.Field, e.Message, e.Received)
	}

	return fmt.Sprintf("parse failed at %s: %s", e.Field, e.Message)
}
