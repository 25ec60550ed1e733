package users

import "github.com/printhaus/printshop/pkg/repository"

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Phone,
		&u.Role,
		&u.UserType,
		&u.UNP,
		&u.LegalAddress,
		&u.BankName,
		&u.BankAccount,
		&u.BankCode,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}
