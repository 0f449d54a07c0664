package errors

import (
	"fmt"
	"net/http"

	apperrors "cn7-transcriptor/internal/app/errors"
	"cn7-transcriptor/internal/app/preview"
	"cn7-transcriptor/internal/app/session"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation       ErrorKind = "validation"
	KindBadRequest       ErrorKind = "bad_request"
	KindNotFound         ErrorKind = "not_found"
	KindConflict         ErrorKind = "conflict"
	KindPayloadTooLarge  ErrorKind = "payload_too_large"
	KindUnsupportedMedia ErrorKind = "unsupported_media"
	KindInternal         ErrorKind = "internal"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	// Code carries the failure kind for transcription failures
	Code string `json:"code,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *APIError {
	return &APIError{
		Kind:    KindConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewPayloadTooLargeError reports an upload over the configured cap
func NewPayloadTooLargeError(limitMB int64) *APIError {
	return &APIError{
		Kind:    KindPayloadTooLarge,
		Message: fmt.Sprintf("file exceeds the %d MB upload limit", limitMB),
	}
}

// NewUnsupportedMediaError reports a declared type outside the allow-list
func NewUnsupportedMediaError(message string) *APIError {
	if message == "" {
		message = apperrors.MessageRejectedFormat
	}
	return &APIError{
		Kind:    KindUnsupportedMedia,
		Message: message,
		Code:    string(apperrors.KindRejectedFormat),
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// FromDomain maps an application error to its API form. Errors with no
// mapping become internal errors that hide the cause.
func FromDomain(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if apperrors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case apperrors.Is(err, apperrors.ErrRejectedFormat):
		return NewUnsupportedMediaError(apperrors.UserMessage(err))
	case apperrors.Is(err, apperrors.ErrBusy):
		return NewConflictError(err.Error())
	case apperrors.Is(err, session.ErrNotFound), apperrors.Is(err, apperrors.ErrClosed):
		return NewNotFoundError("session")
	case apperrors.Is(err, preview.ErrUnknownHandle):
		return NewNotFoundError("preview")
	case apperrors.Is(err, apperrors.ErrNoFile):
		return NewBadRequestError(err.Error())
	}

	if kind := apperrors.KindOf(err); kind != "" {
		return &APIError{
			Kind:    KindInternal,
			Message: apperrors.UserMessage(err),
			Code:    string(kind),
		}
	}
	return NewInternalError("Internal server error")
}
