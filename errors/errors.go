package errors

import (
	"fmt"
	"strings"
)

// ServiceError is the structured error raised by decoding failures and by
// catalog-driven call sites.
type ServiceError struct {
	// Code is the numeric error code (0 when not catalog-driven).
	Code int `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Source names the component or call site the error originated from.
	Source string `json:"source,omitempty"`
	// Entry is the catalog member the error was built from, if any.
	Entry *Entry `json:"-"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *ServiceError) Error() string {
	s := e.Message
	if e.Code != 0 {
		s = fmt.Sprintf("[%d] %s", e.Code, e.Message)
	}
	if e.Cause == nil {
		return s
	}
	// A cause whose text is already the message adds nothing.
	if cause := e.Cause.Error(); cause != e.Message && cause != s {
		return fmt.Sprintf("%s (cause: %s)", s, cause)
	}
	return s
}

// Unwrap returns the underlying cause of the error.
func (e *ServiceError) Unwrap() error { return e.Cause }

// WithSource sets the source tag and returns the receiver.
func (e *ServiceError) WithSource(source string) *ServiceError {
	e.Source = source
	return e
}

// WithCause sets the underlying cause and returns the receiver.
func (e *ServiceError) WithCause(cause error) *ServiceError {
	e.Cause = cause
	return e
}

// New creates a ServiceError from a plain message.
func New(message string) *ServiceError {
	return &ServiceError{Message: message}
}

// Newf creates a ServiceError with a formatted message.
func Newf(format string, args ...any) *ServiceError {
	return &ServiceError{Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a ServiceError around cause. An empty message adopts the
// cause's message. When cause is itself a ServiceError its source tag and
// catalog entry are carried forward.
func Wrap(message string, cause error) *ServiceError {
	e := &ServiceError{Message: message, Cause: cause}
	if cause == nil {
		return e
	}
	if message == "" {
		e.Message = cause.Error()
	}
	if inner, ok := AsServiceError(cause); ok {
		e.Source = inner.Source
		if message == "" {
			e.Message = inner.Message
		}
		if inner.Entry != nil {
			entry := *inner.Entry
			e.Entry = &entry
			e.Code = inner.Code
		}
	}
	return e
}

// FromEntry creates a ServiceError whose code and message come from entry.
func FromEntry(entry Entry) *ServiceError {
	return &ServiceError{
		Code:    entry.Code,
		Message: entry.Display,
		Entry:   &entry,
	}
}

// FromEntryf creates a catalog-driven ServiceError whose message is format
// with every %s replaced by the entry's display text. A format without %s
// is used as is.
func FromEntryf(entry Entry, format string) *ServiceError {
	return &ServiceError{
		Code:    entry.Code,
		Message: strings.ReplaceAll(format, "%s", entry.Display),
		Entry:   &entry,
	}
}

// Deserialization creates the error returned when a non-empty response text
// cannot be decoded into the named type.
func Deserialization(typeName, text string, cause error) *ServiceError {
	entry := DeserializeFailed
	return &ServiceError{
		Code:    entry.Code,
		Message: fmt.Sprintf("cannot deserialize response into type '%s': %s", typeName, text),
		Entry:   &entry,
		Cause:   cause,
	}
}
