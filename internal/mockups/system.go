package mockups

import (
	"context"

	"github.com/google/uuid"
	"github.com/printhaus/printshop/pkg/pagination"
)

// System defines the interface for mockup pipeline operations.
type System interface {
	Handler() *Handler

	// List returns a paginated list of mockups matching the provided filters.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Mockup], error)

	// Find retrieves a mockup record by its ID.
	Find(ctx context.Context, id uuid.UUID) (*Mockup, error)

	// Create stores the uploaded bytes as received, generates a thumbnail
	// and metadata on a best-effort basis, and persists the record.
	Create(ctx context.Context, cmd CreateCommand) (*Mockup, error)

	// Download retrieves the original file content for a mockup.
	Download(ctx context.Context, id uuid.UUID) (*Content, error)

	// Thumbnail retrieves the stored thumbnail content. Mockups without
	// a generated thumbnail return ErrNoThumbnail.
	Thumbnail(ctx context.Context, id uuid.UUID) (*Content, error)

	// Preview resizes the original on demand to fit inside the given
	// bounds. Non-image mockups return ErrUnsupportedType; non-positive
	// bounds fall back to the configured preview bound.
	Preview(ctx context.Context, id uuid.UUID, maxWidth, maxHeight int) (*Content, error)

	// Update modifies the mutable association fields. Nil command fields
	// are left unchanged; the stored file and derived data are immutable.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Mockup, error)

	// Delete removes the original blob, any thumbnail, and the record.
	// Blob removal is idempotent; a missing record returns ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
