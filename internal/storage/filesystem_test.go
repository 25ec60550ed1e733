package storage_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/printhaus/printshop/internal/config"
	"github.com/printhaus/printshop/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testSystem(t *testing.T) storage.System {
	t.Helper()
	cfg := &config.StorageConfig{BasePath: t.TempDir()}

	sys, err := storage.New(cfg, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := sys.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return sys
}

func TestNew_EmptyBasePath(t *testing.T) {
	cfg := &config.StorageConfig{BasePath: ""}

	_, err := storage.New(cfg, testLogger())
	if err == nil {
		t.Fatal("New() succeeded with empty BasePath, want error")
	}
}

func TestStart_CreatesKindDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.StorageConfig{BasePath: dir}

	sys, err := storage.New(cfg, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := sys.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	for _, kind := range []storage.Kind{storage.KindOriginal, storage.KindDerived} {
		path := filepath.Join(dir, string(kind))
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat(%s) failed: %v", path, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", path)
		}
	}

	// Start again to verify it tolerates existing directories.
	if err := sys.Start(); err != nil {
		t.Errorf("second Start() failed: %v", err)
	}
}

func TestStore_Retrieve_RoundTrip(t *testing.T) {
	sys := testSystem(t)
	ctx := context.Background()
	data := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0xff, 0xfe}

	if err := sys.Store(ctx, storage.KindOriginal, "mockup_1_abc.png", data); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	retrieved, err := sys.Retrieve(ctx, storage.KindOriginal, "mockup_1_abc.png")
	if err != nil {
		t.Fatalf("Retrieve() failed: %v", err)
	}

	if string(retrieved) != string(data) {
		t.Errorf("Retrieved data = %v, want %v", retrieved, data)
	}
}

func TestStore_Overwrites(t *testing.T) {
	sys := testSystem(t)
	ctx := context.Background()

	if err := sys.Store(ctx, storage.KindDerived, "thumb.jpg", []byte("first")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}
	if err := sys.Store(ctx, storage.KindDerived, "thumb.jpg", []byte("second")); err != nil {
		t.Fatalf("overwrite Store() failed: %v", err)
	}

	retrieved, err := sys.Retrieve(ctx, storage.KindDerived, "thumb.jpg")
	if err != nil {
		t.Fatalf("Retrieve() failed: %v", err)
	}
	if string(retrieved) != "second" {
		t.Errorf("Retrieved data = %q, want %q", retrieved, "second")
	}
}

func TestStore_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.StorageConfig{BasePath: dir}
	sys, err := storage.New(cfg, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := sys.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	if err := sys.Store(context.Background(), storage.KindOriginal, "file.bin", []byte("data")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(dir, string(storage.KindOriginal)))
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory entries = %d, want 1", len(entries))
	}
	if entries[0].Name() != "file.bin" {
		t.Errorf("entry name = %q, want %q", entries[0].Name(), "file.bin")
	}
}

func TestRetrieve_NotFound(t *testing.T) {
	sys := testSystem(t)

	_, err := sys.Retrieve(context.Background(), storage.KindOriginal, "absent.png")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Retrieve() error = %v, want ErrNotFound", err)
	}
}

func TestValidate(t *testing.T) {
	sys := testSystem(t)
	ctx := context.Background()

	exists, err := sys.Validate(ctx, storage.KindOriginal, "absent.png")
	if err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if exists {
		t.Error("Validate() = true for absent file")
	}

	if err := sys.Store(ctx, storage.KindOriginal, "present.png", []byte("x")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	exists, err = sys.Validate(ctx, storage.KindOriginal, "present.png")
	if err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if !exists {
		t.Error("Validate() = false for stored file")
	}
}

func TestDelete_Idempotent(t *testing.T) {
	sys := testSystem(t)
	ctx := context.Background()

	if err := sys.Store(ctx, storage.KindOriginal, "file.png", []byte("x")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	if err := sys.Delete(ctx, storage.KindOriginal, "file.png"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	if err := sys.Delete(ctx, storage.KindOriginal, "file.png"); err != nil {
		t.Errorf("second Delete() failed: %v", err)
	}

	if err := sys.Delete(ctx, storage.KindOriginal, "never-existed.png"); err != nil {
		t.Errorf("Delete() of absent file failed: %v", err)
	}
}

func TestPath_RejectsInvalidNames(t *testing.T) {
	sys := testSystem(t)

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"parent traversal", "../escape.png"},
		{"nested traversal", "a/../../escape.png"},
		{"subdirectory", "nested/file.png"},
		{"absolute", "/etc/passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sys.Path(storage.KindOriginal, tt.input)
			if !errors.Is(err, storage.ErrInvalidName) {
				t.Errorf("Path(%q) error = %v, want ErrInvalidName", tt.input, err)
			}
		})
	}
}

func TestKindIsolation(t *testing.T) {
	sys := testSystem(t)
	ctx := context.Background()

	if err := sys.Store(ctx, storage.KindOriginal, "shared.jpg", []byte("original")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	if _, err := sys.Retrieve(ctx, storage.KindDerived, "shared.jpg"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Retrieve() from other kind error = %v, want ErrNotFound", err)
	}
}
