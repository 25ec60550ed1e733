package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/printhaus/printshop/pkg/pagination"
)

// System defines the interface for catalog operations.
type System interface {
	Handler() *Handler

	// List returns a paginated list of catalog entries matching the filters.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Service], error)

	// Find retrieves a catalog entry by ID.
	Find(ctx context.Context, id uuid.UUID) (*Service, error)

	// Create persists a new catalog entry.
	Create(ctx context.Context, cmd CreateCommand) (*Service, error)

	// Update modifies mutable catalog fields. Nil command fields are left
	// unchanged.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Service, error)

	// Delete removes a catalog entry.
	Delete(ctx context.Context, id uuid.UUID) error
}
