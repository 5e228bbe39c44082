package errors

import (
	stderrors "errors"
)

// ErrorResponse is the JSON envelope for a ServiceError.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains the error fields sent to clients.
type ErrorBody struct {
	Code    int    `json:"code"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
	Source  string `json:"source,omitempty"`
}

// ToResponse converts a ServiceError to an ErrorResponse for JSON serialization.
func (e *ServiceError) ToResponse() ErrorResponse {
	body := ErrorBody{
		Code:    e.Code,
		Message: e.Message,
		Source:  e.Source,
	}
	if e.Entry != nil {
		body.Name = e.Entry.Name
	}
	return ErrorResponse{Error: body}
}

// IsServiceError checks if an error is a ServiceError.
func IsServiceError(err error) bool {
	var se *ServiceError
	return stderrors.As(err, &se)
}

// AsServiceError converts an error to a ServiceError if possible.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsDeserialization reports whether err is a response deserialization failure.
func IsDeserialization(err error) bool {
	se, ok := AsServiceError(err)
	return ok && se.Code == CodeDeserializeFailed
}

// Ensure converts any error to a ServiceError. Nil stays nil and existing
// ServiceErrors are returned unchanged.
func Ensure(err error) *ServiceError {
	if err == nil {
		return nil
	}
	if se, ok := AsServiceError(err); ok {
		return se
	}
	return Wrap("", err)
}
