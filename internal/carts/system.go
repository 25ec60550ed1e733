package carts

import (
	"context"

	"github.com/google/uuid"
	"github.com/printhaus/printshop/pkg/pagination"
)

// System defines the interface for cart operations.
type System interface {
	Handler() *Handler

	// ListByUser returns a paginated list of the user's cart entries.
	ListByUser(ctx context.Context, userID uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[Entry], error)

	// Find retrieves a cart entry by ID.
	Find(ctx context.Context, id uuid.UUID) (*Entry, error)

	// Create adds a cart entry. A duplicate user/order pair returns
	// ErrDuplicate.
	Create(ctx context.Context, cmd CreateCommand) (*Entry, error)

	// Update modifies mutable cart entry fields.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Entry, error)

	// Delete removes a single cart entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// Clear removes all of the user's cart entries and reports how many
	// were removed.
	Clear(ctx context.Context, userID uuid.UUID) (int, error)
}
