package apperror

import "fmt"

// AppError is a client-facing failure: a stable code, a message safe to show,
// and the HTTP status it maps to. Err keeps the underlying cause for logs.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error

	// origin is the sentinel a WithCause copy was made from.
	origin *AppError
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a WithCause copy against its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && e.origin != nil && e.origin == t
}

// WithCause returns a copy of the sentinel e carrying cause.
// errors.Is(copy, e) still holds.
func (e *AppError) WithCause(cause error) *AppError {
	c := *e
	c.Err = cause
	c.origin = e
	if e.origin != nil {
		c.origin = e.origin
	}
	return &c
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap builds an AppError around err. A nil err stays nil.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}
