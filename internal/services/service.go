// Package services manages the print service catalog.
package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service represents one orderable catalog entry.
type Service struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	BasePrice   *float64        `json:"base_price,omitempty"`
	Image       *string         `json:"image,omitempty"`
	IsActive    bool            `json:"is_active"`
	Options     json.RawMessage `json:"options,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateCommand contains the data required to create a catalog entry.
type CreateCommand struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	BasePrice   *float64        `json:"base_price,omitempty"`
	Image       *string         `json:"image,omitempty"`
	Options     json.RawMessage `json:"options,omitempty"`
}

// Validate checks required fields.
func (c *CreateCommand) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title required")
	}
	if c.Category == "" {
		return fmt.Errorf("category required")
	}
	return nil
}

// UpdateCommand contains the mutable catalog fields. Nil fields are left
// unchanged.
type UpdateCommand struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Category    *string         `json:"category,omitempty"`
	BasePrice   *float64        `json:"base_price,omitempty"`
	Image       *string         `json:"image,omitempty"`
	IsActive    *bool           `json:"is_active,omitempty"`
	Options     json.RawMessage `json:"options,omitempty"`
}
