// Package apperr defines the error taxonomy shared by all handlers and
// services: every failure a client can see carries a machine-readable
// kind and a human-readable message, and maps to exactly one HTTP status.
package apperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Kind string

const (
	KindValidation         Kind = "validation_error"
	KindDuplicateAccount   Kind = "duplicate_account"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindTokenInvalid       Kind = "token_invalid"
	KindTokenExpired       Kind = "token_expired"
	KindForbidden          Kind = "forbidden"
	KindNotFound           Kind = "not_found"
	KindInternal           Kind = "internal"
)

type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error { return New(KindValidation, message) }

func DuplicateAccount(message string) *Error { return New(KindDuplicateAccount, message) }

// InvalidCredentials is the single response for both unknown account and
// wrong password, so the two are indistinguishable to the caller.
func InvalidCredentials() *Error {
	return New(KindInvalidCredentials, "incorrect email or password")
}

func Forbidden(message string) *Error { return New(KindForbidden, message) }

func NotFound(message string) *Error { return New(KindNotFound, message) }

// From normalizes any error into an *Error; unrecognized errors become
// internal so no driver or library message leaks to the client.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return New(KindInternal, "internal server error")
}

func Status(err error) int {
	switch From(err).Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindDuplicateAccount:
		return http.StatusConflict
	case KindInvalidCredentials, KindTokenInvalid, KindTokenExpired:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// JSON writes err as the structured error response.
func JSON(c echo.Context, err error) error {
	return c.JSON(Status(err), From(err))
}
