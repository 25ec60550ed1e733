package carts

import (
	"errors"
	"net/http"
)

// Domain errors for cart operations.
var (
	ErrNotFound  = errors.New("cart entry not found")
	ErrDuplicate = errors.New("order already in cart")
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
