package albums

import "github.com/printhaus/printshop/pkg/query"

var templateProjection = query.NewProjectionMap("public", "album_templates", "t").
	Project("id", "ID").
	Project("name", "Name").
	Project("description", "Description").
	Project("thumbnail", "Thumbnail").
	Project("layout", "Layout").
	Project("theme", "Theme").
	Project("pages", "Pages").
	Project("layout_settings", "LayoutSettings").
	Project("theme_settings", "ThemeSettings").
	Project("is_active", "IsActive").
	Project("created_by", "CreatedBy").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var albumProjection = query.NewProjectionMap("public", "albums", "a").
	Project("id", "ID").
	Project("title", "Title").
	Project("description", "Description").
	Project("user_id", "UserID").
	Project("template_id", "TemplateID").
	Project("template", "Template").
	Project("settings", "Settings").
	Project("pages", "Pages").
	Project("price", "Price").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var (
	templateSort = query.SortField{Field: "Name"}
	albumSort    = query.SortField{Field: "CreatedAt", Descending: true}
)
