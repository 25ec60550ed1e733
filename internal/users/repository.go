package users

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/printhaus/printshop/pkg/pagination"
	"github.com/printhaus/printshop/pkg/query"
	"github.com/printhaus/printshop/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a new user account system.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "users"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[User], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort)
	qb.WhereSearch(page.Search, "Email", "Name")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	list, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanUser)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}

	result := pagination.NewPageResult(list, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*User, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)
	u, err := repository.QueryOne(ctx, r.db, q, args, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}

func (r *repo) FindByEmail(ctx context.Context, email string) (*User, error) {
	q, args := query.NewBuilder(projection).BuildSingle("Email", email)
	u, err := repository.QueryOne(ctx, r.db, q, args, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `INSERT INTO users(id, email, password_hash, name, phone, role, user_type, unp, legal_address, bank_name, bank_account, bank_code)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, email, password_hash, name, phone, role, user_type, unp, legal_address, bank_name, bank_account, bank_code, is_active, created_at, updated_at`

	u, err := repository.QueryOne(ctx, r.db, q, []any{
		uuid.New(), cmd.Email, cmd.PasswordHash, cmd.Name, cmd.Phone,
		cmd.Role, cmd.UserType, cmd.UNP, cmd.LegalAddress,
		cmd.BankName, cmd.BankAccount, cmd.BankCode,
	}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user created", "id", u.ID, "email", u.Email, "user_type", u.UserType)
	return &u, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*User, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	name := current.Name
	if cmd.Name != nil {
		name = *cmd.Name
	}
	isActive := current.IsActive
	if cmd.IsActive != nil {
		isActive = *cmd.IsActive
	}

	phone := coalesce(current.Phone, cmd.Phone)
	unp := coalesce(current.UNP, cmd.UNP)
	legalAddress := coalesce(current.LegalAddress, cmd.LegalAddress)
	bankName := coalesce(current.BankName, cmd.BankName)
	bankAccount := coalesce(current.BankAccount, cmd.BankAccount)
	bankCode := coalesce(current.BankCode, cmd.BankCode)

	q := `UPDATE users
		SET name = $2, phone = $3, unp = $4, legal_address = $5, bank_name = $6, bank_account = $7, bank_code = $8, is_active = $9, updated_at = now()
		WHERE id = $1
		RETURNING id, email, password_hash, name, phone, role, user_type, unp, legal_address, bank_name, bank_account, bank_code, is_active, created_at, updated_at`

	u, err := repository.QueryOne(ctx, r.db, q, []any{
		id, name, phone, unp, legalAddress, bankName, bankAccount, bankCode, isActive,
	}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &u, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(ctx, r.db, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user deleted", "id", id)
	return nil
}

func coalesce(current, update *string) *string {
	if update == nil {
		return current
	}
	if *update == "" {
		return nil
	}
	return update
}
