package albums

import (
	"context"

	"github.com/google/uuid"
	"github.com/printhaus/printshop/pkg/pagination"
)

// System defines the interface for album and template operations.
type System interface {
	Handler() *Handler

	// ListTemplates returns a paginated list of active templates.
	ListTemplates(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Template], error)

	// FindTemplate retrieves a template by ID.
	FindTemplate(ctx context.Context, id uuid.UUID) (*Template, error)

	// CreateTemplate persists a new album template.
	CreateTemplate(ctx context.Context, cmd TemplateCommand) (*Template, error)

	// DeleteTemplate removes a template. Existing albums keep their
	// snapshot and are unaffected.
	DeleteTemplate(ctx context.Context, id uuid.UUID) error

	// List returns a paginated list of albums matching the filters.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Album], error)

	// Find retrieves an album by ID.
	Find(ctx context.Context, id uuid.UUID) (*Album, error)

	// Create builds an album from a template, storing the template
	// snapshot alongside it.
	Create(ctx context.Context, cmd CreateCommand) (*Album, error)

	// Update modifies mutable album fields. Status transitions are
	// validated against the known states.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Album, error)

	// Delete removes an album.
	Delete(ctx context.Context, id uuid.UUID) error
}
