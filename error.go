package brender

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is an error code that mirrors the http status codes. Handlers return errors carrying a code to have the
// host respond with that status.
type Code int

const (
	CodeUnknown              Code = 0
	CodeBadRequest           Code = http.StatusBadRequest
	CodeUnauthorized         Code = http.StatusUnauthorized
	CodeForbidden            Code = http.StatusForbidden
	CodeNotFound             Code = http.StatusNotFound
	CodeMethodNotAllowed     Code = http.StatusMethodNotAllowed
	CodeNotAcceptable        Code = http.StatusNotAcceptable
	CodeConflict             Code = http.StatusConflict
	CodeGone                 Code = http.StatusGone
	CodeUnsupportedMediaType Code = http.StatusUnsupportedMediaType
	CodeUnprocessableEntity  Code = http.StatusUnprocessableEntity
	CodeTooManyRequests      Code = http.StatusTooManyRequests

	CodeInternalServerError Code = http.StatusInternalServerError
	CodeNotImplemented      Code = http.StatusNotImplemented
	CodeBadGateway          Code = http.StatusBadGateway
	CodeServiceUnavailable  Code = http.StatusServiceUnavailable
	CodeGatewayTimeout      Code = http.StatusGatewayTimeout
)

// Error describes an http error.
type Error struct {
	code Code
	err  error
}

// NewError inits a new error given the error code.
func NewError(c Code, underlying error) *Error {
	return &Error{c, underlying}
}

func (e *Error) Code() Code    { return e.code }
func (e *Error) Unwrap() error { return e.err }
func (e *Error) Error() string {
	status := http.StatusText(int(e.Code()))
	if status == "" {
		status = "Unknown"
	}

	return fmt.Sprintf("%s: %s", status, e.err.Error())
}

// coder is implemented by errors that know their status code, such as [*Error] and [*RenderError].
type coder interface {
	error
	Code() Code
}

// CodeOf returns the code of the first error in err's chain that has one, and [CodeUnknown] otherwise.
func CodeOf(err error) Code {
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}

	return CodeUnknown
}
