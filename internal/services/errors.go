package services

import (
	"errors"
	"net/http"
)

// Domain errors for catalog operations.
var (
	ErrNotFound  = errors.New("service not found")
	ErrDuplicate = errors.New("service already exists")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
