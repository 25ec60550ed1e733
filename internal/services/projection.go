package services

import "github.com/printhaus/printshop/pkg/query"

var projection = query.NewProjectionMap("public", "services", "s").
	Project("id", "ID").
	Project("title", "Title").
	Project("description", "Description").
	Project("category", "Category").
	Project("base_price", "BasePrice").
	Project("image", "Image").
	Project("is_active", "IsActive").
	Project("options", "Options").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Title"}
