package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/printhaus/printshop/internal/config"
)

// filesystem implements System using the local filesystem, with one
// subdirectory per Kind under a configurable base path.
type filesystem struct {
	basePath string
	logger   *slog.Logger
}

// New creates a filesystem storage system. The base path is resolved to
// an absolute path during construction; directory creation is deferred
// to Start.
func New(cfg *config.StorageConfig, logger *slog.Logger) (System, error) {
	if cfg.BasePath == "" {
		return nil, fmt.Errorf("base_path required")
	}

	absPath, err := filepath.Abs(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base_path: %w", err)
	}

	return &filesystem{
		basePath: absPath,
		logger:   logger.With("system", "storage"),
	}, nil
}

func (f *filesystem) Start() error {
	for _, kind := range []Kind{KindOriginal, KindDerived} {
		dir := filepath.Join(f.basePath, string(kind))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s directory: %w", kind, err)
		}
	}

	f.logger.Info("storage directories initialized", "base_path", f.basePath)
	return nil
}

func (f *filesystem) Path(kind Kind, name string) (string, error) {
	if name == "" {
		return "", ErrInvalidName
	}

	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", ErrInvalidName
	}

	return filepath.Join(f.basePath, string(kind), cleaned), nil
}

func (f *filesystem) Validate(ctx context.Context, kind Kind, name string) (bool, error) {
	path, err := f.Path(kind, name)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		if errors.Is(err, fs.ErrPermission) {
			return false, ErrPermissionDenied
		}
		return false, fmt.Errorf("stat file: %w", err)
	}

	return true, nil
}

func (f *filesystem) Store(ctx context.Context, kind Kind, name string, data []byte) error {
	path, err := f.Path(kind, name)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (f *filesystem) Retrieve(ctx context.Context, kind Kind, name string) ([]byte, error) {
	path, err := f.Path(kind, name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, ErrPermissionDenied
		}
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

func (f *filesystem) Delete(ctx context.Context, kind Kind, name string) error {
	path, err := f.Path(kind, name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if errors.Is(err, fs.ErrPermission) {
			return ErrPermissionDenied
		}
		return fmt.Errorf("remove file: %w", err)
	}

	return nil
}
