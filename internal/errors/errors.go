package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeNotFound     ErrorType = "NOT_FOUND"
	ErrTypeInvalidInput ErrorType = "INVALID_INPUT"
	ErrTypeInternal     ErrorType = "INTERNAL"
	ErrTypeUnavailable  ErrorType = "UNAVAILABLE"
)

// statusByType is how each error type surfaces over HTTP.
var statusByType = map[ErrorType]int{
	ErrTypeNotFound:     http.StatusNotFound,
	ErrTypeInvalidInput: http.StatusBadRequest,
	ErrTypeInternal:     http.StatusInternalServerError,
	ErrTypeUnavailable:  http.StatusInternalServerError,
}

// DomainError carries a classification, a message for the caller, the
// underlying cause and the stack where it was raised.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	msg := string(e.Type) + ": " + e.Message
	if e.Err == nil {
		return msg
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

func (e *DomainError) StackTrace() []byte { return e.Stack }

// New wraps err (which may be nil). A stack already captured by go-errors is
// reused; otherwise it is taken at the caller of the constructor.
func New(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   captureStack(message, err),
	}
}

func captureStack(message string, err error) []byte {
	var traced *goerrors.Error
	switch {
	case err == nil:
		return goerrors.Wrap(message, 3).Stack()
	case stderrors.As(err, &traced):
		return traced.Stack()
	default:
		return goerrors.Wrap(err, 3).Stack()
	}
}

func NotFound(message string, err error) *DomainError {
	return New(ErrTypeNotFound, message, err)
}

func InvalidInput(message string, err error) *DomainError {
	return New(ErrTypeInvalidInput, message, err)
}

func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}

func Unavailable(message string, err error) *DomainError {
	return New(ErrTypeUnavailable, message, err)
}

// TypeOf returns the type of the first DomainError in err's chain.
func TypeOf(err error) (ErrorType, bool) {
	var de *DomainError
	if !stderrors.As(err, &de) {
		return "", false
	}
	return de.Type, true
}

func Is(err error, errType ErrorType) bool {
	t, ok := TypeOf(err)
	return ok && t == errType
}

// HTTPStatus maps err to a response status; anything unclassified is a 500.
func HTTPStatus(err error) int {
	if t, ok := TypeOf(err); ok {
		if status, known := statusByType[t]; known {
			return status
		}
	}
	return http.StatusInternalServerError
}
