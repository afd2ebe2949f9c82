// Package errors provides standardized error definitions for the Open Music system.
package errors

import (
	goerrors "errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error. Control flow branches on Kind,
// never on the concrete error value or message.
type Kind uint8

const (
	// KindInternal for unanticipated failures. Never exposed verbatim.
	KindInternal Kind = iota
	// KindValidation for malformed input caught before reaching storage.
	KindValidation
	// KindNotFound when a referenced entity is absent.
	KindNotFound
	// KindAuthentication when the caller's credential is missing or invalid.
	KindAuthentication
	// KindAuthorization when the caller lacks rights on the target resource.
	KindAuthorization
	// KindInvariant for business-rule violations such as duplicate membership.
	KindInvariant
)

// String returns the string representation of the error kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindNotFound:
		return "NOT_FOUND"
	case KindAuthentication:
		return "AUTHENTICATION_ERROR"
	case KindAuthorization:
		return "AUTHORIZATION_ERROR"
	case KindInvariant:
		return "INVARIANT_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// HTTPStatus returns the HTTP status code a kind maps to.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindInvariant:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error represents a structured application error.
type Error struct {
	Kind    Kind   `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"` // Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for the error.
func (e *Error) HTTPStatus() int {
	return e.Kind.HTTPStatus()
}

// New creates a new Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Code:    kind.String(),
		Message: message,
	}
}

// Validation creates a validation error (400).
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// NotFound creates a not-found error (404).
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Authentication creates an authentication error (401).
func Authentication(message string) *Error {
	return New(KindAuthentication, message)
}

// Authorization creates an authorization error (403).
func Authorization(message string) *Error {
	return New(KindAuthorization, message)
}

// Invariant creates an invariant-violation error (400).
func Invariant(message string) *Error {
	return New(KindInvariant, message)
}

// Internal wraps an unanticipated failure. The message is for logs only;
// the HTTP boundary substitutes an opaque message.
func Internal(err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Code:    KindInternal.String(),
		Message: "internal server error",
		Err:     err,
	}
}

// Wrap attaches a cause to a new error of the given kind.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Code:    kind.String(),
		Message: message,
		Err:     err,
	}
}

// KindOf reports the kind of an error. Non-application errors are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if goerrors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether the error has the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsValidation reports whether the error is a validation error.
func IsValidation(err error) bool { return Is(err, KindValidation) }

// IsNotFound reports whether the error is a not-found error.
func IsNotFound(err error) bool { return Is(err, KindNotFound) }

// IsAuthorization reports whether the error is an authorization error.
func IsAuthorization(err error) bool { return Is(err, KindAuthorization) }

// IsInvariant reports whether the error is an invariant violation.
func IsInvariant(err error) bool { return Is(err, KindInvariant) }

// GetHTTPStatus returns the HTTP status code for an error.
// If the error is not an *Error, returns 500.
func GetHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr *Error
	if goerrors.As(err, &appErr) {
		return appErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}
