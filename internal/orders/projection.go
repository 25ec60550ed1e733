package orders

import "github.com/printhaus/printshop/pkg/query"

var projection = query.NewProjectionMap("public", "orders", "o").
	Project("id", "ID").
	Project("order_number", "OrderNumber").
	Project("user_id", "UserID").
	Project("service_id", "ServiceID").
	Project("service_name", "ServiceName").
	Project("quantity", "Quantity").
	Project("price", "Price").
	Project("total", "Total").
	Project("status", "Status").
	Project("options", "Options").
	Project("files", "Files").
	Project("notes", "Notes").
	Project("completion_date", "CompletionDate").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}
