package carts

import "github.com/printhaus/printshop/pkg/repository"

func scanEntry(s repository.Scanner) (Entry, error) {
	var e Entry
	var items, options []byte

	err := s.Scan(
		&e.ID,
		&e.UserID,
		&e.OrderID,
		&e.OrderNumber,
		&e.OrderName,
		&e.OrderType,
		&items,
		&e.Status,
		&options,
		&e.EditLink,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return e, err
	}

	e.Items = items
	e.Options = options
	return e, nil
}
