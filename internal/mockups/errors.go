// Package mockups provides the uploaded-asset pipeline: collision-safe
// storage naming, original blob persistence, best-effort thumbnail and
// metadata generation, retrieval, on-demand previews, and coordinated
// deletion of blobs and records.
package mockups

import (
	"errors"
	"net/http"

	"github.com/printhaus/printshop/internal/imaging"
)

// Domain errors for mockup operations.
var (
	// ErrEmptyFile indicates an upload without file bytes.
	ErrEmptyFile = errors.New("mockup file is empty")

	// ErrNotFound indicates no mockup exists for the given id.
	ErrNotFound = errors.New("mockup not found")

	// ErrDuplicate indicates a stored name collision at creation.
	ErrDuplicate = errors.New("mockup stored name already exists")

	// ErrFileMissing indicates the record exists but its referenced blob
	// is absent, meaning the record store and filesystem have diverged.
	ErrFileMissing = errors.New("mockup file missing from storage")

	// ErrNoThumbnail indicates a thumbnail was requested for a mockup
	// that never had one generated.
	ErrNoThumbnail = errors.New("mockup has no thumbnail")

	// ErrUnsupportedType indicates an image-only operation was invoked
	// on a non-image mockup.
	ErrUnsupportedType = errors.New("mockup is not an image")

	// ErrFileTooLarge indicates the upload exceeds the configured limit.
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")

	// ErrInvalidFile indicates the multipart file field is missing or unreadable.
	ErrInvalidFile = errors.New("invalid file")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrInvalidFile):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnsupportedType), errors.Is(err, imaging.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrFileMissing), errors.Is(err, ErrNoThumbnail):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
