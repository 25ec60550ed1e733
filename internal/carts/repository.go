package carts

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

// New creates a new cart system.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "carts"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) ListByUser(ctx context.Context, userID uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[Entry], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort)
	qb.WhereEquals("UserID", userID)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count cart entries: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	list, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("query cart entries: %w", err)
	}

	result := pagination.NewPageResult(list, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Entry, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)
	e, err := repository.QueryOne(ctx, r.db, q, args, scanEntry)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &e, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Entry, error) {
	q := `INSERT INTO carts(id, user_id, order_id, order_number, order_name, order_type, items, status, options, edit_link)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, user_id, order_id, order_number, order_name, order_type, items, status, options, edit_link, created_at, updated_at`

	e, err := repository.QueryOne(ctx, r.db, q, []any{
		uuid.New(), cmd.UserID, cmd.OrderID, cmd.OrderNumber, cmd.OrderName,
		cmd.OrderType, []byte(cmd.Items), cmd.Status, []byte(cmd.Options), cmd.EditLink,
	}, scanEntry)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("cart entry created", "id", e.ID, "user_id", e.UserID, "order_id", e.OrderID)
	return &e, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Entry, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	orderName := current.OrderName
	if cmd.OrderName != nil {
		orderName = *cmd.OrderName
	}
	status := current.Status
	if cmd.Status != nil {
		status = *cmd.Status
	}
	editLink := current.EditLink
	if cmd.EditLink != nil {
		editLink = *cmd.EditLink
	}
	items := current.Items
	if cmd.Items != nil {
		items = cmd.Items
	}
	options := current.Options
	if cmd.Options != nil {
		options = cmd.Options
	}

	q := `UPDATE carts
		SET order_name = $2, items = $3, status = $4, options = $5, edit_link = $6, updated_at = now()
		WHERE id = $1
		RETURNING id, user_id, order_id, order_number, order_name, order_type, items, status, options, edit_link, created_at, updated_at`

	e, err := repository.QueryOne(ctx, r.db, q, []any{
		id, orderName, []byte(items), status, []byte(options), editLink,
	}, scanEntry)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &e, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(ctx, r.db, `DELETE FROM carts WHERE id = $1`, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return nil
}

func (r *repo) Clear(ctx context.Context, userID uuid.UUID) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("clear cart: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	r.logger.Info("cart cleared", "user_id", userID, "removed", affected)
	return int(affected), nil
}
