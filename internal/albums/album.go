// Package albums manages photo album templates and customer albums
// composed from them.
package albums

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Template layouts.
const (
	LayoutGrid     = "grid"
	LayoutMasonry  = "masonry"
	LayoutTimeline = "timeline"
)

// ValidLayout reports whether s is a known template layout.
func ValidLayout(s string) bool {
	switch s {
	case LayoutGrid, LayoutMasonry, LayoutTimeline:
		return true
	}
	return false
}

// Album lifecycle states.
const (
	StatusDraft      = "draft"
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusReady      = "ready"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is a known album status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPending, StatusProcessing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Template represents a reusable album design.
type Template struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    *string         `json:"description,omitempty"`
	Thumbnail      string          `json:"thumbnail"`
	Layout         string          `json:"layout"`
	Theme          string          `json:"theme"`
	Pages          int             `json:"pages"`
	LayoutSettings json.RawMessage `json:"layout_settings,omitempty"`
	ThemeSettings  json.RawMessage `json:"theme_settings,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TemplateCommand contains the data for creating or replacing a template.
type TemplateCommand struct {
	Name           string          `json:"name"`
	Description    *string         `json:"description,omitempty"`
	Thumbnail      string          `json:"thumbnail"`
	Layout         string          `json:"layout"`
	Theme          string          `json:"theme"`
	Pages          int             `json:"pages"`
	LayoutSettings json.RawMessage `json:"layout_settings,omitempty"`
	ThemeSettings  json.RawMessage `json:"theme_settings,omitempty"`
	CreatedBy      string          `json:"created_by"`
}

// Validate checks required template fields.
func (c *TemplateCommand) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Thumbnail == "" {
		return fmt.Errorf("thumbnail required")
	}
	if !ValidLayout(c.Layout) {
		return fmt.Errorf("invalid layout: %s", c.Layout)
	}
	if c.Theme == "" {
		return fmt.Errorf("theme required")
	}
	if c.Pages < 1 {
		return fmt.Errorf("pages must be positive")
	}
	return nil
}

// Album represents a customer album. Template holds a snapshot of the
// source template at creation so template edits never mutate existing
// albums.
type Album struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	UserID      uuid.UUID       `json:"user_id"`
	TemplateID  uuid.UUID       `json:"template_id"`
	Template    json.RawMessage `json:"template"`
	Settings    json.RawMessage `json:"settings,omitempty"`
	Pages       json.RawMessage `json:"pages,omitempty"`
	Price       float64         `json:"price"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateCommand contains the data required to create an album.
type CreateCommand struct {
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	UserID      uuid.UUID       `json:"user_id"`
	TemplateID  uuid.UUID       `json:"template_id"`
	Settings    json.RawMessage `json:"settings,omitempty"`
	Pages       json.RawMessage `json:"pages,omitempty"`
	Price       float64         `json:"price"`
}

// Validate checks required album fields.
func (c *CreateCommand) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title required")
	}
	if c.UserID == uuid.Nil {
		return fmt.Errorf("user_id required")
	}
	if c.TemplateID == uuid.Nil {
		return fmt.Errorf("template_id required")
	}
	if c.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}

// UpdateCommand contains the mutable album fields. Nil fields are left
// unchanged; the template snapshot is immutable.
type UpdateCommand struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Settings    json.RawMessage `json:"settings,omitempty"`
	Pages       json.RawMessage `json:"pages,omitempty"`
	Price       *float64        `json:"price,omitempty"`
	Status      *string         `json:"status,omitempty"`
}
