package errors

import (
	stderrors "errors"
	"fmt"
)

// Common error types
var (
	// Configuration errors
	ErrMissingAPIKey = New("API key is required")

	// Session errors
	ErrNoFile = New("no file selected")
	ErrBusy   = New("transcription already in progress")
	ErrClosed = New("session closed")

	// File errors
	ErrFileReadFailed  = New("file read failed")
	ErrFileWriteFailed = New("file write failed")
)

// User-facing messages for the failure kinds that have a fixed text.
const (
	MessageRejectedFormat = "ERRO DE PROTOCOLO: Formato de arquivo não suportado."
	MessageEmptyResponse  = "Não foi possível gerar a transcrição. A resposta veio vazia."
	MessageUnknown        = "Ocorreu um erro desconhecido durante a transcrição."
	MessageCritical       = "FALHA CRÍTICA NO SISTEMA"
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// Kind classifies why a file could not be transcribed.
type Kind string

const (
	KindRejectedFormat Kind = "rejected_format"
	KindEmptyResponse  Kind = "empty_response"
	KindRemoteFailure  Kind = "remote_failure"
	KindUnknownFailure Kind = "unknown_failure"
)

// Failure is a typed transcription failure. Message is what the user sees.
type Failure struct {
	Kind    Kind
	Message string
	cause   error
}

// Sentinels for errors.Is matching on kind alone.
var (
	ErrRejectedFormat = &Failure{Kind: KindRejectedFormat}
	ErrEmptyResponse  = &Failure{Kind: KindEmptyResponse}
	ErrRemoteFailure  = &Failure{Kind: KindRemoteFailure}
	ErrUnknownFailure = &Failure{Kind: KindUnknownFailure}
)

func (f *Failure) Error() string {
	if f.Message == "" {
		return string(f.Kind)
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.cause
}

// Is reports a match when target is a Failure of the same kind.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok {
		return false
	}
	return f.Kind == t.Kind
}

// RejectedFormat returns the failure for a MIME type outside the allow-list.
func RejectedFormat(mimeType string) *Failure {
	return &Failure{
		Kind:    KindRejectedFormat,
		Message: MessageRejectedFormat,
		cause:   Newf("unsupported media type %q", mimeType),
	}
}

// EmptyResponse returns the failure for a successful call that produced no text.
func EmptyResponse() *Failure {
	return &Failure{Kind: KindEmptyResponse, Message: MessageEmptyResponse}
}

// Remote classifies a transport or endpoint error. The underlying message is
// kept verbatim; an error without one becomes an UnknownFailure.
func Remote(err error) *Failure {
	if err == nil || err.Error() == "" {
		return &Failure{Kind: KindUnknownFailure, Message: MessageUnknown, cause: err}
	}
	return &Failure{Kind: KindRemoteFailure, Message: err.Error(), cause: err}
}

// KindOf returns the failure kind carried by err, or "" if there is none.
func KindOf(err error) Kind {
	var f *Failure
	if stderrors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// UserMessage returns the text to show for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var f *Failure
	if stderrors.As(err, &f) && f.Message != "" {
		return f.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MessageCritical
}

// Is is a re-export of the standard library matcher so callers need a single import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is a re-export of the standard library matcher.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}
