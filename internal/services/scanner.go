package services

import "github.com/printhaus/printshop/pkg/repository"

func scanService(s repository.Scanner) (Service, error) {
	var svc Service
	var options []byte

	err := s.Scan(
		&svc.ID,
		&svc.Title,
		&svc.Description,
		&svc.Category,
		&svc.BasePrice,
		&svc.Image,
		&svc.IsActive,
		&options,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		return svc, err
	}

	if len(options) > 0 {
		svc.Options = options
	}
	return svc, nil
}
