package orders

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

// New creates a new order system.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "orders"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Order], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)
	qb.WhereContains("OrderNumber", page.Search)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	list, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanOrder)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	result := pagination.NewPageResult(list, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Order, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)
	o, err := repository.QueryOne(ctx, r.db, q, args, scanOrder)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &o, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Order, error) {
	total := cmd.Price * float64(cmd.Quantity)

	q := `INSERT INTO orders(id, order_number, user_id, service_id, service_name, quantity, price, total, status, options, files, notes)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, order_number, user_id, service_id, service_name, quantity, price, total, status, options, files, notes, completion_date, created_at, updated_at`

	o, err := repository.QueryOne(ctx, r.db, q, []any{
		uuid.New(), buildOrderNumber(), cmd.UserID, cmd.ServiceID, cmd.ServiceName,
		cmd.Quantity, cmd.Price, total, StatusPending,
		rawOrNil(cmd.Options), rawOrNil(cmd.Files), cmd.Notes,
	}, scanOrder)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("order created", "id", o.ID, "order_number", o.OrderNumber, "total", o.Total)
	return &o, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Order, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	status := current.Status
	if cmd.Status != nil {
		if !ValidStatus(*cmd.Status) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *cmd.Status)
		}
		status = *cmd.Status
	}

	notes := current.Notes
	if cmd.Notes != nil {
		notes = cmd.Notes
	}

	completionDate := current.CompletionDate
	if cmd.CompletionDate != nil {
		completionDate = cmd.CompletionDate
	}

	options := current.Options
	if cmd.Options != nil {
		options = cmd.Options
	}
	files := current.Files
	if cmd.Files != nil {
		files = cmd.Files
	}

	q := `UPDATE orders
		SET status = $2, notes = $3, completion_date = $4, options = $5, files = $6, updated_at = now()
		WHERE id = $1
		RETURNING id, order_number, user_id, service_id, service_name, quantity, price, total, status, options, files, notes, completion_date, created_at, updated_at`

	o, err := repository.QueryOne(ctx, r.db, q, []any{
		id, status, notes, completionDate, rawOrNil(options), rawOrNil(files),
	}, scanOrder)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if cmd.Status != nil && *cmd.Status != current.Status {
		r.logger.Info("order status changed", "id", id, "from", current.Status, "to", *cmd.Status)
	}
	return &o, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(ctx, r.db, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("order deleted", "id", id)
	return nil
}

func rawOrNil(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
