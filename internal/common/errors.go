package common

import (
	"errors"
	"fmt"
)

// Error codes classify pipeline failures. Stable values (logged and tested).
const (
	CodeUnsupportedFormat   = "UNSUPPORTED_FORMAT"
	CodeExtractionFailure   = "EXTRACTION_FAILURE"
	CodeEmptyDataset        = "EMPTY_DATASET"
	CodeUpstreamCallFailure = "UPSTREAM_CALL_FAILURE"
	CodeMalformedResponse   = "MALFORMED_RESPONSE"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError builds an AppError with the given code and optional cause.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the AppError code wrapped anywhere in err, or "".
func CodeOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
