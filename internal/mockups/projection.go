package mockups

import "github.com/printhaus/printshop/pkg/query"

// projection maps database columns to Mockup struct fields for query building.
var projection = query.NewProjectionMap("public", "mockups", "m").
	Project("id", "ID").
	Project("stored_name", "StoredName").
	Project("original_name", "OriginalName").
	Project("mime_type", "MimeType").
	Project("size_bytes", "SizeBytes").
	Project("thumbnail_name", "ThumbnailName").
	Project("owner_id", "OwnerID").
	Project("order_id", "OrderID").
	Project("description", "Description").
	Project("metadata", "Metadata").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

// defaultSort orders mockups by creation time, newest first.
var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}
