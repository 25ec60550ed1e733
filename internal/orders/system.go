package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/printhaus/printshop/pkg/pagination"
)

// System defines the interface for order operations.
type System interface {
	Handler() *Handler

	// List returns a paginated list of orders matching the filters.
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Order], error)

	// Find retrieves an order by ID.
	Find(ctx context.Context, id uuid.UUID) (*Order, error)

	// Create places a new order, assigning its number and computing the
	// total from price and quantity.
	Create(ctx context.Context, cmd CreateCommand) (*Order, error)

	// Update modifies mutable order fields. Status transitions are
	// validated against the known states.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Order, error)

	// Delete removes an order.
	Delete(ctx context.Context, id uuid.UUID) error
}
