package orders

import "github.com/printhaus/printshop/pkg/repository"

func scanOrder(s repository.Scanner) (Order, error) {
	var o Order
	var options, files []byte

	err := s.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.UserID,
		&o.ServiceID,
		&o.ServiceName,
		&o.Quantity,
		&o.Price,
		&o.Total,
		&o.Status,
		&options,
		&files,
		&o.Notes,
		&o.CompletionDate,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return o, err
	}

	if len(options) > 0 {
		o.Options = options
	}
	if len(files) > 0 {
		o.Files = files
	}
	return o, nil
}
