package carts

import "github.com/printhaus/printshop/pkg/query"

var projection = query.NewProjectionMap("public", "carts", "c").
	Project("id", "ID").
	Project("user_id", "UserID").
	Project("order_id", "OrderID").
	Project("order_number", "OrderNumber").
	Project("order_name", "OrderName").
	Project("order_type", "OrderType").
	Project("items", "Items").
	Project("status", "Status").
	Project("options", "Options").
	Project("edit_link", "EditLink").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}
