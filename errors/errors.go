package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the application error type. Configuration errors are raised
// before any per-item work begins; backend and CRM errors are caught by the
// batch driver and surfaced per item.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// IsConfig reports whether err is a configuration error (fatal before any
// per-item work).
func IsConfig(err error) bool {
	var app AppError
	if !errors.As(err, &app) {
		return false
	}
	switch app.Code {
	case ErrorCode_CONFIG_INVALID, ErrorCode_CONFIG_MISSING_CREDENTIAL, ErrorCode_CONFIG_UNKNOWN_BACKEND:
		return true
	}
	return false
}

// General errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// Configuration errors

func ErrUnknownBackend(kind, value string) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CONFIG_UNKNOWN_BACKEND,
		Message:  fmt.Sprintf("Unknown %s backend", kind),
	}.WithDetail("backend", value)
}

func ErrMissingCredential(name string) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CONFIG_MISSING_CREDENTIAL,
		Message:  fmt.Sprintf("%s is required", name),
	}
}

func ErrConfigInvalid(message string) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CONFIG_INVALID,
		Message:  message,
	}
}

// Summarization errors

func ErrSummaryBackendFailed(backend string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_SUMMARY_BACKEND_FAILED,
		Message:  "Summarization backend call failed",
	}.WithDetail("backend", backend)
}

func ErrSummaryEmptyResponse(backend string) AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_SUMMARY_EMPTY_RESPONSE,
		Message:  "Summarization backend returned an empty response",
	}.WithDetail("backend", backend)
}

func ErrSummaryParseFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_SUMMARY_PARSE_FAILED,
		Message:  "Failed to parse summarization output",
	}
}

// Transcription errors

func ErrTranscriptionFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_TRANSCRIPTION_FAILED,
		Message:  "Audio transcription failed",
	}
}

func ErrTranscriptionEmpty() AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_TRANSCRIPTION_EMPTY,
		Message:  "Transcription returned empty text",
	}
}

// CRM errors

func ErrCRMLoginFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_CRM_LOGIN_FAILED,
		Message:  "Salesforce login failed",
	}
}

func ErrCRMQueryFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_CRM_QUERY_FAILED,
		Message:  "Salesforce query failed",
	}
}

func ErrCRMUpdateFailed(object string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_CRM_UPDATE_FAILED,
		Message:  "Salesforce update failed",
	}.WithDetail("object", object)
}

// Infrastructure errors

func ErrDBQueryFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}
}

func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}
