// Package auth provides account registration, credential verification,
// and bearer-token authentication for the API.
package auth

import (
	"errors"
	"net/http"

	"github.com/printhaus/printshop/internal/users"
)

// Domain errors for authentication operations.
var (
	// ErrInvalidCredentials covers both unknown emails and wrong
	// passwords so responses do not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive indicates the account exists but is disabled.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrInvalidToken indicates a missing, malformed, or expired token.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// MapHTTPStatus maps authentication errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAccountInactive):
		return http.StatusForbidden
	case errors.Is(err, users.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, users.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
