package errors

import (
	"net/http"

	apperrors "speech-summarizer/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindBadRequest ErrorKind = "bad_request"
	KindUpstream   ErrorKind = "upstream"
	KindInternal   ErrorKind = "internal"
)

// InternalMessage is the only detail clients see for unexpected failures.
const InternalMessage = "Internal Server Error"

// APIError represents a structured API error response
type APIError struct {
	Kind    ErrorKind         `json:"-"`
	Message string            `json:"error"`
	Code    apperrors.Code    `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
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
	case KindUpstream:
		return http.StatusBadGateway
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

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// NewUpstreamError reports a classified failure of a remote service.
func NewUpstreamError(se *apperrors.ServiceError) *APIError {
	apiErr := &APIError{
		Kind:    KindUpstream,
		Message: se.Message,
		Code:    se.Code,
	}
	if se.Cause != "" {
		apiErr.Details = map[string]string{"cause": se.Cause}
	}
	return apiErr
}

// NewInternalError creates the generic internal server error
func NewInternalError() *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: InternalMessage,
	}
}
