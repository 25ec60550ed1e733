// Package users manages customer accounts for both individual and
// legal-entity customers.
package users

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Roles assignable to a user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Customer kinds. Legal-entity customers carry tax and bank details.
const (
	TypeIndividual = "individual"
	TypeLegal      = "legal"
)

// User represents a customer account. The password hash is never
// serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        *string   `json:"phone,omitempty"`
	Role         string    `json:"role"`
	UserType     string    `json:"user_type"`
	UNP          *string   `json:"unp,omitempty"`
	LegalAddress *string   `json:"legal_address,omitempty"`
	BankName     *string   `json:"bank_name,omitempty"`
	BankAccount  *string   `json:"bank_account,omitempty"`
	BankCode     *string   `json:"bank_code,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateCommand contains the data required to create a user. The
// password is expected to be hashed before it reaches this module.
type CreateCommand struct {
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Name         string  `json:"name"`
	Phone        *string `json:"phone,omitempty"`
	Role         string  `json:"role,omitempty"`
	UserType     string  `json:"user_type,omitempty"`
	UNP          *string `json:"unp,omitempty"`
	LegalAddress *string `json:"legal_address,omitempty"`
	BankName     *string `json:"bank_name,omitempty"`
	BankAccount  *string `json:"bank_account,omitempty"`
	BankCode     *string `json:"bank_code,omitempty"`
}

// Validate checks required fields and normalizes defaults.
func (c *CreateCommand) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("email required")
	}
	if c.PasswordHash == "" {
		return fmt.Errorf("password required")
	}
	if c.Name == "" {
		return fmt.Errorf("name required")
	}

	if c.Role == "" {
		c.Role = RoleUser
	}
	if c.Role != RoleUser && c.Role != RoleAdmin {
		return fmt.Errorf("invalid role: %s", c.Role)
	}

	if c.UserType == "" {
		c.UserType = TypeIndividual
	}
	if c.UserType != TypeIndividual && c.UserType != TypeLegal {
		return fmt.Errorf("invalid user type: %s", c.UserType)
	}

	return nil
}

// UpdateCommand contains the mutable user fields. Nil fields are left
// unchanged.
type UpdateCommand struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	UNP          *string `json:"unp,omitempty"`
	LegalAddress *string `json:"legal_address,omitempty"`
	BankName     *string `json:"bank_name,omitempty"`
	BankAccount  *string `json:"bank_account,omitempty"`
	BankCode     *string `json:"bank_code,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}
