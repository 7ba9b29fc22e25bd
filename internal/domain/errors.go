package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared across the store and service layers
var (
	ErrNotFound        = errors.New("not found")         // No record matches the lookup (or it belongs to someone else)
	ErrInvalidArgument = errors.New("invalid argument")  // Bad kind or pagination parameters, rejected before any store access
	ErrUnavailable     = errors.New("store unavailable") // Routing signal only, never surfaced to callers
)

// FieldError names one offending input field
type FieldError struct {
	Field   string `json:"field"`   // Input field name
	Message string `json:"message"` // Why it was rejected
}

// ValidationError carries every failed field constraint of one request
type ValidationError struct {
	Fields []FieldError `json:"fields"` // One entry per offending field
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends a field error and returns the receiver for chaining
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// Err returns the error if any field failed, nil otherwise
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
