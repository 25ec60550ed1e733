package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/printhaus/printshop/pkg/pagination"
)

// System defines the interface for user account operations.
type System interface {
	Handler() *Handler

	// List returns a paginated list of users.
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[User], error)

	// Find retrieves a user by ID.
	Find(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create persists a new user. Duplicate emails return ErrDuplicate.
	Create(ctx context.Context, cmd CreateCommand) (*User, error)

	// Update modifies mutable user fields. Nil command fields are left
	// unchanged.
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*User, error)

	// Delete removes a user account.
	Delete(ctx context.Context, id uuid.UUID) error
}
