// Package apperr defines the error taxonomy shared by all services.
// Handlers map codes to HTTP statuses; services wrap collaborator
// failures so raw store/upload errors never reach the client.
package apperr

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeValidation      Code = "validation"
	CodeDuplicate       Code = "duplicate"
	CodeAuth            Code = "auth"
	CodeUnauthenticated Code = "unauthenticated"
	CodeForbidden       Code = "forbidden"
	CodeNotFound        Code = "not_found"
	CodeInternal        Code = "internal"
)

type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Err: cause}
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func Duplicate(message string) *Error {
	return &Error{Code: CodeDuplicate, Message: message}
}

func Auth(message string) *Error {
	return &Error{Code: CodeAuth, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Internal(message string, cause error) *Error {
	return &Error{Code: CodeInternal, Message: message, Err: cause}
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Message returns the client-safe message for err. Unwrapped errors
// are treated as internal and get a generic message.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code != CodeInternal {
		return appErr.Message
	}
	return "Internal server error"
}

// HTTPStatus maps an error to the status the API contract promises:
// 400 for validation/duplicate/auth, 401/403/404 for access and lookup
// failures, 500 for everything unexpected.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation, CodeDuplicate, CodeAuth:
		return http.StatusBadRequest
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
