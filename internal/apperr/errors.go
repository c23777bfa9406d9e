// Package apperr holds the errors shared by the gympro domain packages.
// Callers wrap them with fmt.Errorf("...: %w", err) and match with errors.Is.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrRegistrationFailed   = errors.New("registration failed")
	ErrRecordNotFound       = errors.New("record not found")
	ErrValidation           = errors.New("validation failed")
)

// HTTPStatus maps a domain error to the response status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthenticationFailed):
		return http.StatusUnauthorized
	case errors.Is(err, ErrRegistrationFailed):
		return http.StatusConflict
	case errors.Is(err, ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
