package errors

import (
	"errors"
	"fmt"
)

var (
	// Tokens
	ErrInvalidSigningMethod = errors.New("invalid token signing method")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")

	// Authorization
	ErrEmptyAuthHeader    = errors.New("authorization header is missing")
	ErrInvalidAuthHeader  = errors.New("authorization header must be 'Bearer <token>'")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("too many failed login attempts, try again later")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")

	// Context
	ErrUserIDNotFoundInContext = errors.New("user id not found in request context")

	// Domain
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("record already exists")
	ErrValidation = errors.New("validation failed")
	ErrBadRequest = errors.New("bad request")
)

// DomainError carries a caller-facing message while still matching its sentinel with errors.Is.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Kind }

func NewNotFoundError(entity string) error {
	return &DomainError{Kind: ErrNotFound, Message: fmt.Sprintf("%s not found", entity)}
}

func NewConflictError(format string, args ...interface{}) error {
	return &DomainError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func NewValidationError(format string, args ...interface{}) error {
	return &DomainError{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// HttpError is built by controllers when the status code is decided at the HTTP layer.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, ctx map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: ctx}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: 400, Message: message, Err: ErrBadRequest}
}
