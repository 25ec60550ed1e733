// Package carts manages per-user cart entries referencing in-progress
// orders held by the storefront.
package carts

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry represents one cart line. OrderID is the storefront's opaque
// identifier; one user can hold each order in the cart at most once.
type Entry struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	OrderName   string          `json:"order_name"`
	OrderType   string          `json:"order_type"`
	Items       json.RawMessage `json:"items"`
	Status      string          `json:"status"`
	Options     json.RawMessage `json:"options"`
	EditLink    string          `json:"edit_link"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateCommand contains the data required to add a cart entry.
type CreateCommand struct {
	UserID      uuid.UUID       `json:"user_id"`
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	OrderName   string          `json:"order_name"`
	OrderType   string          `json:"order_type"`
	Items       json.RawMessage `json:"items"`
	Status      string          `json:"status"`
	Options     json.RawMessage `json:"options"`
	EditLink    string          `json:"edit_link"`
}

// Validate checks required fields.
func (c *CreateCommand) Validate() error {
	if c.UserID == uuid.Nil {
		return fmt.Errorf("user_id required")
	}
	if c.OrderID == "" {
		return fmt.Errorf("order_id required")
	}
	if c.OrderNumber == "" {
		return fmt.Errorf("order_number required")
	}
	if len(c.Items) == 0 {
		return fmt.Errorf("items required")
	}
	return nil
}

// UpdateCommand contains the mutable cart entry fields. Nil fields are
// left unchanged.
type UpdateCommand struct {
	OrderName *string         `json:"order_name,omitempty"`
	Items     json.RawMessage `json:"items,omitempty"`
	Status    *string         `json:"status,omitempty"`
	Options   json.RawMessage `json:"options,omitempty"`
	EditLink  *string         `json:"edit_link,omitempty"`
}
