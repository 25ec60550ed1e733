// Package orders manages customer print orders.
package orders

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Order lifecycle states.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusReady      = "ready"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order represents one placed order. ServiceName and Price are captured
// at placement so later catalog edits do not rewrite order history.
type Order struct {
	ID             uuid.UUID       `json:"id"`
	OrderNumber    string          `json:"order_number"`
	UserID         uuid.UUID       `json:"user_id"`
	ServiceID      uuid.UUID       `json:"service_id"`
	ServiceName    string          `json:"service_name"`
	Quantity       int             `json:"quantity"`
	Price          float64         `json:"price"`
	Total          float64         `json:"total"`
	Status         string          `json:"status"`
	Options        json.RawMessage `json:"options,omitempty"`
	Files          json.RawMessage `json:"files,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateCommand contains the data required to place an order.
type CreateCommand struct {
	UserID      uuid.UUID       `json:"user_id"`
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceName string          `json:"service_name"`
	Quantity    int             `json:"quantity"`
	Price       float64         `json:"price"`
	Options     json.RawMessage `json:"options,omitempty"`
	Files       json.RawMessage `json:"files,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
}

// Validate checks required fields.
func (c *CreateCommand) Validate() error {
	if c.UserID == uuid.Nil {
		return fmt.Errorf("user_id required")
	}
	if c.ServiceID == uuid.Nil {
		return fmt.Errorf("service_id required")
	}
	if c.ServiceName == "" {
		return fmt.Errorf("service_name required")
	}
	if c.Quantity < 1 {
		return fmt.Errorf("quantity must be positive")
	}
	if c.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}

// UpdateCommand contains the mutable order fields. Nil fields are left
// unchanged.
type UpdateCommand struct {
	Status         *string         `json:"status,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	Options        json.RawMessage `json:"options,omitempty"`
	Files          json.RawMessage `json:"files,omitempty"`
}

// buildOrderNumber generates a human-readable order identifier from the
// placement timestamp.
func buildOrderNumber() string {
	return fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
}
