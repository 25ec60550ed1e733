package mockups

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mockup represents one uploaded file plus its derived thumbnail and
// metadata, tracked as a single record.
type Mockup struct {
	ID            uuid.UUID `json:"id"`
	StoredName    string    `json:"stored_name"`
	OriginalName  string    `json:"original_name"`
	MimeType      string    `json:"mime_type"`
	SizeBytes     int64     `json:"size_bytes"`
	ThumbnailName *string   `json:"thumbnail_name,omitempty"`
	OwnerID       *string   `json:"owner_id,omitempty"`
	OrderID       *string   `json:"order_id,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Metadata      *Metadata `json:"metadata,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsImage reports whether the stored mime type belongs to the image family.
func (m *Mockup) IsImage() bool {
	return strings.HasPrefix(m.MimeType, "image/")
}

// Metadata holds best-effort structured attributes extracted at upload
// time. Image uploads carry pixel dimensions, format, and color space;
// PDF uploads carry a page count. Absence of any field is not an error.
type Metadata struct {
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Format string `json:"format,omitempty"`
	Space  string `json:"space,omitempty"`
	Pages  *int   `json:"pages,omitempty"`
}

// CreateCommand contains the data required to upload a new mockup.
// Data holds the raw file bytes exactly as received.
type CreateCommand struct {
	OriginalName string
	MimeType     string
	OwnerID      *string
	OrderID      *string
	Description  *string
	Data         []byte
}

// UpdateCommand contains the mutable association fields. Nil fields are
// left untouched; the stored file, thumbnail, and metadata are immutable.
type UpdateCommand struct {
	OwnerID     *string `json:"owner_id,omitempty"`
	OrderID     *string `json:"order_id,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Content is a retrieved original ready for streaming.
type Content struct {
	Data        []byte
	ContentType string
	Filename    string
	SizeBytes   int64
}
