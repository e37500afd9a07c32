package wind

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// ErrConfiguration marks setup-time failures: malformed route tables,
// invalid method names, nil handlers. These are fatal to startup and never
// reach a client.
var ErrConfiguration = errors.New("configuration error")

// Code mirrors the HTTP status codes. Handlers return a *Error carrying a
// Code to signal an HTTP condition; the responder maps it onto the response.
type Code int

const (
	CodeUnknown Code = 0

	CodeOK          Code = http.StatusOK
	CodeNoContent   Code = http.StatusNoContent
	CodeNotModified Code = http.StatusNotModified // RFC 9110, 15.4.5

	CodeBadRequest       Code = http.StatusBadRequest       // RFC 9110, 15.5.1
	CodeUnauthorized     Code = http.StatusUnauthorized     // RFC 9110, 15.5.2
	CodeForbidden        Code = http.StatusForbidden        // RFC 9110, 15.5.4
	CodeNotFound         Code = http.StatusNotFound         // RFC 9110, 15.5.5
	CodeMethodNotAllowed Code = http.StatusMethodNotAllowed // RFC 9110, 15.5.6
	CodeRequestTimeout   Code = http.StatusRequestTimeout   // RFC 9110, 15.5.9
	CodeConflict         Code = http.StatusConflict         // RFC 9110, 15.5.10
	CodeGone             Code = http.StatusGone             // RFC 9110, 15.5.11
	CodeTeapot           Code = http.StatusTeapot           // RFC 9110, 15.5.19 (Unused)
	CodeTooManyRequests  Code = http.StatusTooManyRequests  // RFC 6585, 4

	CodeInternalServerError Code = http.StatusInternalServerError // RFC 9110, 15.6.1
	CodeNotImplemented      Code = http.StatusNotImplemented      // RFC 9110, 15.6.2
	CodeBadGateway          Code = http.StatusBadGateway          // RFC 9110, 15.6.3
	CodeServiceUnavailable  Code = http.StatusServiceUnavailable  // RFC 9110, 15.6.4
)

// Reason returns the standard reason phrase for the code, or "Unknown".
func (c Code) Reason() string {
	status := http.StatusText(int(c))
	if status == "" {
		status = "Unknown"
	}

	return status
}

// Error describes an http condition raised while handling a request.
type Error struct {
	code Code
	err  error
}

// NewError inits a new error given the status code.
func NewError(c Code, underlying error) *Error {
	return &Error{c, underlying}
}

// Errorf is shorthand for NewError with a formatted underlying error.
func Errorf(c Code, format string, args ...any) *Error {
	return &Error{c, errors.Newf(format, args...)}
}

func (e *Error) Code() Code    { return e.code }
func (e *Error) Unwrap() error { return e.err }
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.code.Reason(), e.err.Error())
}

// CodeOf returns the error's status code if it is or wraps an [*Error] and
// [CodeUnknown] otherwise.
func CodeOf(err error) Code {
	if httpErr, ok := asError(err); ok {
		return httpErr.Code()
	}
	return CodeUnknown
}

// asError uses errors.As to unwrap any error and look for a wind *Error.
func asError(err error) (*Error, bool) {
	var httpErr *Error
	ok := errors.As(err, &httpErr)
	return httpErr, ok
}
