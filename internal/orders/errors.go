package orders

import (
	"errors"
	"net/http"
)

// Domain errors for order operations.
var (
	ErrNotFound      = errors.New("order not found")
	ErrDuplicate     = errors.New("order number already exists")
	ErrInvalidStatus = errors.New("invalid order status")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
