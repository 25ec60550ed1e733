package auth

import (
	"context"
	"fmt"

	"github.com/printhaus/printshop/internal/users"
)

// RegisterCommand contains the data required to register an account.
type RegisterCommand struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Name         string  `json:"name"`
	Phone        *string `json:"phone,omitempty"`
	UserType     string  `json:"user_type,omitempty"`
	UNP          *string `json:"unp,omitempty"`
	LegalAddress *string `json:"legal_address,omitempty"`
	BankName     *string `json:"bank_name,omitempty"`
	BankAccount  *string `json:"bank_account,omitempty"`
	BankCode     *string `json:"bank_code,omitempty"`
}

// Validate checks registration fields required before hashing.
func (c *RegisterCommand) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("email required")
	}
	if c.Password == "" {
		return fmt.Errorf("password required")
	}
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	return nil
}

// LoginCommand contains login credentials.
type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of a successful registration or login.
type Session struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}

// System defines the interface for authentication operations.
type System interface {
	Handler() *Handler

	// Register creates an account and returns a session for it.
	// Duplicate emails return users.ErrDuplicate.
	Register(ctx context.Context, cmd RegisterCommand) (*Session, error)

	// Login verifies credentials and returns a session. Unknown emails
	// and wrong passwords both return ErrInvalidCredentials; inactive
	// accounts return ErrAccountInactive.
	Login(ctx context.Context, cmd LoginCommand) (*Session, error)

	// Verify parses a bearer token and returns the authenticated user.
	Verify(ctx context.Context, token string) (*users.User, error)
}
