package services

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

// New creates a new catalog system.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "services"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Service], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)
	qb.WhereSearch(page.Search, "Title", "Description")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count services: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	list, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanService)
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}

	result := pagination.NewPageResult(list, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Service, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)
	svc, err := repository.QueryOne(ctx, r.db, q, args, scanService)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &svc, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Service, error) {
	q := `INSERT INTO services(id, title, description, category, base_price, image, options)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, description, category, base_price, image, is_active, options, created_at, updated_at`

	svc, err := repository.QueryOne(ctx, r.db, q, []any{
		uuid.New(), cmd.Title, cmd.Description, cmd.Category, cmd.BasePrice, cmd.Image, rawOrNil(cmd.Options),
	}, scanService)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("service created", "id", svc.ID, "title", svc.Title, "category", svc.Category)
	return &svc, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Service, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	title := current.Title
	if cmd.Title != nil {
		title = *cmd.Title
	}
	description := current.Description
	if cmd.Description != nil {
		description = *cmd.Description
	}
	category := current.Category
	if cmd.Category != nil {
		category = *cmd.Category
	}
	basePrice := current.BasePrice
	if cmd.BasePrice != nil {
		basePrice = cmd.BasePrice
	}
	image := current.Image
	if cmd.Image != nil {
		image = cmd.Image
	}
	isActive := current.IsActive
	if cmd.IsActive != nil {
		isActive = *cmd.IsActive
	}
	options := current.Options
	if cmd.Options != nil {
		options = cmd.Options
	}

	q := `UPDATE services
		SET title = $2, description = $3, category = $4, base_price = $5, image = $6, is_active = $7, options = $8, updated_at = now()
		WHERE id = $1
		RETURNING id, title, description, category, base_price, image, is_active, options, created_at, updated_at`

	svc, err := repository.QueryOne(ctx, r.db, q, []any{
		id, title, description, category, basePrice, image, isActive, rawOrNil(options),
	}, scanService)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &svc, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(ctx, r.db, `DELETE FROM services WHERE id = $1`, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("service deleted", "id", id)
	return nil
}

// rawOrNil converts empty raw JSON to nil so the column stores NULL
// instead of an empty string.
func rawOrNil(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
