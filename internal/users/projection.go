package users

import "github.com/printhaus/printshop/pkg/query"

var projection = query.NewProjectionMap("public", "users", "u").
	Project("id", "ID").
	Project("email", "Email").
	Project("password_hash", "PasswordHash").
	Project("name", "Name").
	Project("phone", "Phone").
	Project("role", "Role").
	Project("user_type", "UserType").
	Project("unp", "UNP").
	Project("legal_address", "LegalAddress").
	Project("bank_name", "BankName").
	Project("bank_account", "BankAccount").
	Project("bank_code", "BankCode").
	Project("is_active", "IsActive").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}
