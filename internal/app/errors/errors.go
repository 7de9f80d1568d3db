package errors

import (
	stderrors "errors"
	"fmt"
)

// Code is the stable numeric identifier of a failure class.
type Code int

const (
	CodeSTTConnection Code = 1000
	CodeSTTOperation  Code = 1001
	CodeCompletion    Code = 1002
	CodeTranslation   Code = 1003
	CodeStorage       Code = 1004
)

var messages = map[Code]string{
	CodeSTTConnection: "Connection to Google Speech to Text API Failed.",
	CodeSTTOperation:  "Getting text from Google Speech to Text Failed.",
	CodeCompletion:    "GPT failed.",
	CodeTranslation:   "Translator failed.",
	CodeStorage:       "Uploading file to cloud storage failed.",
}

// Message returns the fixed human-readable message of the code.
func (c Code) Message() string {
	if msg, ok := messages[c]; ok {
		return msg
	}
	return "Unknown service error."
}

// Sentinels for errors.Is; they match any ServiceError with the same code.
var (
	ErrSTTConnection = &ServiceError{Code: CodeSTTConnection, Message: CodeSTTConnection.Message()}
	ErrSTTOperation  = &ServiceError{Code: CodeSTTOperation, Message: CodeSTTOperation.Message()}
	ErrCompletion    = &ServiceError{Code: CodeCompletion, Message: CodeCompletion.Message()}
)

// ServiceError is a classified failure of one of the remote services.
type ServiceError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   string `json:"error"`

	err error
}

// New creates a ServiceError carrying a textual cause.
func New(code Code, cause string) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: code.Message(),
		Cause:   cause,
	}
}

// Wrap classifies err under code. It returns nil for a nil err.
func Wrap(code Code, err error) *ServiceError {
	if err == nil {
		return nil
	}
	e := New(code, err.Error())
	e.err = err
	return e
}

// STTConnection classifies a failure to reach the speech service.
func STTConnection(err error) *ServiceError { return Wrap(CodeSTTConnection, err) }

// STTOperation classifies a failed or timed out recognition call.
func STTOperation(err error) *ServiceError { return Wrap(CodeSTTOperation, err) }

// Completion classifies a failure reported by the completion service.
func Completion(err error) *ServiceError { return Wrap(CodeCompletion, err) }

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.Cause == "" {
		return fmt.Sprintf("[%d] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%d] %s Cause: %s", e.Code, e.Message, e.Cause)
}

// Unwrap returns the underlying error
func (e *ServiceError) Unwrap() error {
	return e.err
}

// Is reports whether target is a ServiceError with the same code.
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// As extracts the first ServiceError in err's chain.
func As(err error) (*ServiceError, bool) {
	var se *ServiceError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsClassified reports whether err carries a ServiceError.
func IsClassified(err error) bool {
	_, ok := As(err)
	return ok
}
