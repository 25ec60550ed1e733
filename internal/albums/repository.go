package albums

import (
	"context"
	"database/sql"
	"encoding/json"
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

// New creates a new album system.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "albums"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) ListTemplates(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Template], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(templateProjection, templateSort)
	qb.WhereEquals("IsActive", true)
	qb.WhereSearch(page.Search, "Name", "Description")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count templates: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	list, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTemplate)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}

	result := pagination.NewPageResult(list, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) FindTemplate(ctx context.Context, id uuid.UUID) (*Template, error) {
	q, args := query.NewBuilder(templateProjection).BuildSingle("ID", id)
	t, err := repository.QueryOne(ctx, r.db, q, args, scanTemplate)
	if err != nil {
		return nil, repository.MapError(err, ErrTemplateNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) CreateTemplate(ctx context.Context, cmd TemplateCommand) (*Template, error) {
	q := `INSERT INTO album_templates(id, name, description, thumbnail, layout, theme, pages, layout_settings, theme_settings, created_by)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, name, description, thumbnail, layout, theme, pages, layout_settings, theme_settings, is_active, created_by, created_at, updated_at`

	t, err := repository.QueryOne(ctx, r.db, q, []any{
		uuid.New(), cmd.Name, cmd.Description, cmd.Thumbnail, cmd.Layout, cmd.Theme,
		cmd.Pages, rawOrNil(cmd.LayoutSettings), rawOrNil(cmd.ThemeSettings), cmd.CreatedBy,
	}, scanTemplate)
	if err != nil {
		return nil, repository.MapError(err, ErrTemplateNotFound, ErrDuplicate)
	}

	r.logger.Info("template created", "id", t.ID, "name", t.Name, "layout", t.Layout)
	return &t, nil
}

func (r *repo) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(ctx, r.db, `DELETE FROM album_templates WHERE id = $1`, id); err != nil {
		return repository.MapError(err, ErrTemplateNotFound, ErrDuplicate)
	}

	r.logger.Info("template deleted", "id", id)
	return nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Album], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(albumProjection, albumSort)
	filters.Apply(qb)
	qb.WhereContains("Title", page.Search)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count albums: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	list, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAlbum)
	if err != nil {
		return nil, fmt.Errorf("query albums: %w", err)
	}

	result := pagination.NewPageResult(list, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Album, error) {
	q, args := query.NewBuilder(albumProjection).BuildSingle("ID", id)
	a, err := repository.QueryOne(ctx, r.db, q, args, scanAlbum)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Album, error) {
	template, err := r.FindTemplate(ctx, cmd.TemplateID)
	if err != nil {
		return nil, err
	}

	snapshot, err := json.Marshal(template)
	if err != nil {
		return nil, fmt.Errorf("snapshot template: %w", err)
	}

	q := `INSERT INTO albums(id, title, description, user_id, template_id, template, settings, pages, price, status)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, title, description, user_id, template_id, template, settings, pages, price, status, created_at, updated_at`

	a, err := repository.QueryOne(ctx, r.db, q, []any{
		uuid.New(), cmd.Title, cmd.Description, cmd.UserID, cmd.TemplateID,
		snapshot, rawOrNil(cmd.Settings), rawOrNil(cmd.Pages), cmd.Price, StatusDraft,
	}, scanAlbum)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("album created", "id", a.ID, "user_id", a.UserID, "template_id", a.TemplateID)
	return &a, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Album, error) {
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
		description = cmd.Description
	}
	price := current.Price
	if cmd.Price != nil {
		price = *cmd.Price
	}
	status := current.Status
	if cmd.Status != nil {
		if !ValidStatus(*cmd.Status) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *cmd.Status)
		}
		status = *cmd.Status
	}
	settings := current.Settings
	if cmd.Settings != nil {
		settings = cmd.Settings
	}
	pages := current.Pages
	if cmd.Pages != nil {
		pages = cmd.Pages
	}

	q := `UPDATE albums
		SET title = $2, description = $3, settings = $4, pages = $5, price = $6, status = $7, updated_at = now()
		WHERE id = $1
		RETURNING id, title, description, user_id, template_id, template, settings, pages, price, status, created_at, updated_at`

	a, err := repository.QueryOne(ctx, r.db, q, []any{
		id, title, description, rawOrNil(settings), rawOrNil(pages), price, status,
	}, scanAlbum)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &a, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(ctx, r.db, `DELETE FROM albums WHERE id = $1`, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("album deleted", "id", id)
	return nil
}

func rawOrNil(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
