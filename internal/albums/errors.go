package albums

import (
	"errors"
	"net/http"
)

// Domain errors for album operations.
var (
	ErrNotFound         = errors.New("album not found")
	ErrTemplateNotFound = errors.New("album template not found")
	ErrDuplicate        = errors.New("album already exists")
	ErrInvalidStatus    = errors.New("invalid album status")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrTemplateNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
