package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies calculation failures.
// Codes are strings so they serialize naturally into API error envelopes.
type ErrorCode string

const (
	// CodeMalformedInput indicates required structure is missing or a field has the wrong sign or shape.
	CodeMalformedInput ErrorCode = "MALFORMED_INPUT"

	// CodeConfigurationMismatch indicates no tax table is registered for the requested year and status.
	CodeConfigurationMismatch ErrorCode = "CONFIGURATION_MISMATCH"

	// CodeRangeViolation indicates a document amount is inconsistent with its declared meaning.
	CodeRangeViolation ErrorCode = "RANGE_VIOLATION"
)

// Sentinel errors that can be checked with errors.Is().

// ErrMalformedInput is matched by every TaxError carrying CodeMalformedInput.
var ErrMalformedInput = errors.New("malformed input")

// ErrConfigurationMismatch is matched by every TaxError carrying CodeConfigurationMismatch.
var ErrConfigurationMismatch = errors.New("configuration mismatch")

// ErrRangeViolation is matched by every TaxError carrying CodeRangeViolation.
var ErrRangeViolation = errors.New("range violation")

// TaxError is a typed failure raised before or during a pipeline run
type TaxError struct {
	Code    ErrorCode `json:"code"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
}

func (e *TaxError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

// Is lets errors.Is match a TaxError against the sentinel for its code
func (e *TaxError) Is(target error) bool {
	switch target {
	case ErrMalformedInput:
		return e.Code == CodeMalformedInput
	case ErrConfigurationMismatch:
		return e.Code == CodeConfigurationMismatch
	case ErrRangeViolation:
		return e.Code == CodeRangeViolation
	}
	return false
}

// NewMalformedInput creates a MALFORMED_INPUT error for the given field
func NewMalformedInput(field, format string, args ...any) *TaxError {
	return &TaxError{Code: CodeMalformedInput, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NewConfigurationMismatch creates a CONFIGURATION_MISMATCH error
func NewConfigurationMismatch(format string, args ...any) *TaxError {
	return &TaxError{Code: CodeConfigurationMismatch, Message: fmt.Sprintf(format, args...)}
}

// NewRangeViolation creates a RANGE_VIOLATION error for the given field
func NewRangeViolation(field, format string, args ...any) *TaxError {
	return &TaxError{Code: CodeRangeViolation, Field: field, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the error code from err, or "" when err is not a TaxError
func CodeOf(err error) ErrorCode {
	var te *TaxError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}
