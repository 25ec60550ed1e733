package mockups

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/printhaus/printshop/internal/config"
	"github.com/printhaus/printshop/internal/imaging"
	"github.com/printhaus/printshop/internal/storage"
	"github.com/printhaus/printshop/pkg/pagination"
	"github.com/printhaus/printshop/pkg/query"
	"github.com/printhaus/printshop/pkg/repository"
)

type repo struct {
	db            *sql.DB
	storage       storage.System
	logger        *slog.Logger
	pagination    pagination.Config
	imaging       config.ImagingConfig
	maxUploadSize int64
}

// New creates a new mockup pipeline system.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
	imaging config.ImagingConfig,
	maxUploadSize int64,
) System {
	return &repo{
		db:            db,
		storage:       store,
		logger:        logger.With("system", "mockups"),
		pagination:    pagination,
		imaging:       imaging,
		maxUploadSize: maxUploadSize,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination, r.maxUploadSize)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Mockup], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort)
	filters.Apply(qb)
	qb.WhereContains("OriginalName", page.Search)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count mockups: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	mockups, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanMockup)
	if err != nil {
		return nil, fmt.Errorf("query mockups: %w", err)
	}

	result := pagination.NewPageResult(mockups, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Mockup, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)
	m, err := repository.QueryOne(ctx, r.db, q, args, scanMockup)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &m, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Mockup, error) {
	if len(cmd.Data) == 0 {
		return nil, ErrEmptyFile
	}
	if r.maxUploadSize > 0 && int64(len(cmd.Data)) > r.maxUploadSize {
		return nil, ErrFileTooLarge
	}

	storedName := buildStoredName(cmd.OriginalName)

	if err := r.storage.Store(ctx, storage.KindOriginal, storedName, cmd.Data); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	thumbnailName := r.generateThumbnail(ctx, storedName, cmd)
	meta := r.extractMetadata(storedName, cmd)

	metaRaw, err := marshalMetadata(meta)
	if err != nil {
		return nil, err
	}

	q := `INSERT INTO mockups(id, stored_name, original_name, mime_type, size_bytes, thumbnail_name, owner_id, order_id, description, metadata)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, stored_name, original_name, mime_type, size_bytes, thumbnail_name, owner_id, order_id, description, metadata, created_at, updated_at`

	m, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Mockup, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), storedName, cmd.OriginalName, cmd.MimeType, int64(len(cmd.Data)),
			thumbnailName, cmd.OwnerID, cmd.OrderID, cmd.Description, metaRaw,
		}, scanMockup)
	})

	if err != nil {
		r.cleanupBlobs(ctx, storedName, thumbnailName)
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("mockup created", "id", m.ID, "stored_name", m.StoredName, "size_bytes", m.SizeBytes)
	return &m, nil
}

func (r *repo) Download(ctx context.Context, id uuid.UUID) (*Content, error) {
	m, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := r.storage.Retrieve(ctx, storage.KindOriginal, m.StoredName)
	if err != nil {
		return nil, r.mapRetrieveError(err, m.StoredName)
	}

	return &Content{
		Data:        data,
		ContentType: m.MimeType,
		Filename:    m.OriginalName,
		SizeBytes:   int64(len(data)),
	}, nil
}

func (r *repo) Thumbnail(ctx context.Context, id uuid.UUID) (*Content, error) {
	m, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if m.ThumbnailName == nil {
		return nil, ErrNoThumbnail
	}

	data, err := r.storage.Retrieve(ctx, storage.KindDerived, *m.ThumbnailName)
	if err != nil {
		return nil, r.mapRetrieveError(err, *m.ThumbnailName)
	}

	return &Content{
		Data:        data,
		ContentType: "image/jpeg",
		Filename:    *m.ThumbnailName,
		SizeBytes:   int64(len(data)),
	}, nil
}

func (r *repo) Preview(ctx context.Context, id uuid.UUID, maxWidth, maxHeight int) (*Content, error) {
	m, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !m.IsImage() {
		return nil, ErrUnsupportedType
	}

	if maxWidth <= 0 {
		maxWidth = r.imaging.PreviewBound
	}
	if maxHeight <= 0 {
		maxHeight = r.imaging.PreviewBound
	}

	data, err := r.storage.Retrieve(ctx, storage.KindOriginal, m.StoredName)
	if err != nil {
		return nil, r.mapRetrieveError(err, m.StoredName)
	}

	resized, err := imaging.Resize(data, maxWidth, maxHeight, r.imaging.PreviewQuality)
	if err != nil {
		return nil, err
	}

	stem := m.StoredName[:len(m.StoredName)-len(filepath.Ext(m.StoredName))]
	return &Content{
		Data:        resized,
		ContentType: "image/jpeg",
		Filename:    fmt.Sprintf("preview_%s.jpg", stem),
		SizeBytes:   int64(len(resized)),
	}, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Mockup, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	owner := mergeField(current.OwnerID, cmd.OwnerID)
	order := mergeField(current.OrderID, cmd.OrderID)
	description := mergeField(current.Description, cmd.Description)

	q := `UPDATE mockups
		SET owner_id = $2, order_id = $3, description = $4, updated_at = now()
		WHERE id = $1
		RETURNING id, stored_name, original_name, mime_type, size_bytes, thumbnail_name, owner_id, order_id, description, metadata, created_at, updated_at`

	m, err := repository.QueryOne(ctx, r.db, q, []any{id, owner, order, description}, scanMockup)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &m, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	if err := r.storage.Delete(ctx, storage.KindOriginal, m.StoredName); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}

	if m.ThumbnailName != nil {
		if err := r.storage.Delete(ctx, storage.KindDerived, *m.ThumbnailName); err != nil {
			return fmt.Errorf("delete thumbnail: %w", err)
		}
	}

	if err := repository.ExecExpectOne(ctx, r.db, `DELETE FROM mockups WHERE id = $1`, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("mockup deleted", "id", id, "stored_name", m.StoredName)
	return nil
}

// generateThumbnail produces and stores the thumbnail for image uploads.
// Failures are logged and reported as a nil name; they never abort the upload.
func (r *repo) generateThumbnail(ctx context.Context, storedName string, cmd CreateCommand) *string {
	if !isImageMime(cmd.MimeType) {
		return nil
	}

	data, err := imaging.Resize(cmd.Data, r.imaging.ThumbnailBound, r.imaging.ThumbnailBound, r.imaging.ThumbnailQuality)
	if err != nil {
		r.logger.Warn("thumbnail generation failed", "stored_name", storedName, "error", err)
		return nil
	}

	name := buildThumbnailName(storedName)
	if err := r.storage.Store(ctx, storage.KindDerived, name, data); err != nil {
		r.logger.Warn("thumbnail store failed", "stored_name", storedName, "error", err)
		return nil
	}

	return &name
}

// extractMetadata derives structured attributes from the upload. Image
// uploads yield dimensions, format, and color space; PDF uploads yield a
// page count. Failures are logged and reported as nil metadata.
func (r *repo) extractMetadata(storedName string, cmd CreateCommand) *Metadata {
	switch {
	case isImageMime(cmd.MimeType):
		meta, err := imaging.ExtractMetadata(cmd.Data)
		if err != nil {
			r.logger.Warn("metadata extraction failed", "stored_name", storedName, "error", err)
			return nil
		}
		return &Metadata{
			Width:  meta.Width,
			Height: meta.Height,
			Format: meta.Format,
			Space:  meta.Space,
		}
	case cmd.MimeType == "application/pdf":
		pages, err := extractPDFPageCount(cmd.Data)
		if err != nil {
			r.logger.Warn("pdf page count failed", "stored_name", storedName, "error", err)
			return nil
		}
		return &Metadata{Format: "pdf", Pages: pages}
	default:
		return nil
	}
}

func (r *repo) cleanupBlobs(ctx context.Context, storedName string, thumbnailName *string) {
	if err := r.storage.Delete(ctx, storage.KindOriginal, storedName); err != nil {
		r.logger.Error("cleanup failed after db error", "stored_name", storedName, "error", err)
	}
	if thumbnailName != nil {
		if err := r.storage.Delete(ctx, storage.KindDerived, *thumbnailName); err != nil {
			r.logger.Error("cleanup failed after db error", "stored_name", *thumbnailName, "error", err)
		}
	}
}

// mapRetrieveError surfaces a missing blob for an existing record as
// ErrFileMissing, signaling the record store and filesystem diverged.
func (r *repo) mapRetrieveError(err error, name string) error {
	if errors.Is(err, storage.ErrNotFound) {
		r.logger.Error("blob missing for existing record", "name", name)
		return ErrFileMissing
	}
	return err
}

func mergeField(current, update *string) *string {
	if update == nil {
		return current
	}
	if *update == "" {
		return nil
	}
	return update
}

func isImageMime(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

func extractPDFPageCount(data []byte) (*int, error) {
	count, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, err
	}
	return &count, nil
}

func marshalMetadata(meta *Metadata) ([]byte, error) {
	if meta == nil {
		return nil, nil
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return raw, nil
}
