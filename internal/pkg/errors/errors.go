package errors

import "net/http"

const (
	KindBadRequest    = "bad_request"
	KindUnauthorized  = "unauthorized"
	KindForbidden     = "forbidden"
	KindNotFound      = "not_found"
	KindInternalError = "internal"
)

// CustomError is the error type every usecase returns to the transport layer.
// Code is the HTTP status, Kind a stable machine-readable reason.
type CustomError struct {
	Code    int         `json:"-"`
	Kind    string      `json:"kind"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e CustomError) Error() string {
	return e.Message
}

// WithDetails returns a copy of e carrying extra response data.
func (e CustomError) WithDetails(details interface{}) CustomError {
	e.Details = details
	return e
}

func New(code int, kind, message string) CustomError {
	return CustomError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

func BadRequest(message string) error {
	return New(http.StatusBadRequest, KindBadRequest, message)
}

func UnauthorizedError(message string) error {
	return New(http.StatusUnauthorized, KindUnauthorized, message)
}

func Forbidden(message string) error {
	return New(http.StatusForbidden, KindForbidden, message)
}

func NotFound(message string) error {
	return New(http.StatusNotFound, KindNotFound, message)
}

func InternalServerError(message string) error {
	return New(http.StatusInternalServerError, KindInternalError, message)
}
