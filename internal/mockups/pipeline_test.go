package mockups

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"log/slog"
	"os"
	"testing"

	"github.com/printhaus/printshop/internal/config"
	"github.com/printhaus/printshop/internal/storage"
)

func testRepo(t *testing.T) *repo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	store, err := storage.New(&config.StorageConfig{BasePath: t.TempDir()}, logger)
	if err != nil {
		t.Fatalf("storage.New failed: %v", err)
	}
	if err := store.Start(); err != nil {
		t.Fatalf("storage Start failed: %v", err)
	}

	imagingCfg := config.ImagingConfig{}
	if err := imagingCfg.Finalize(); err != nil {
		t.Fatalf("imaging config Finalize failed: %v", err)
	}

	return &repo{
		storage: store,
		logger:  logger,
		imaging: imagingCfg,
	}
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	return buf.Bytes()
}

func TestGenerateThumbnail_Image(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	cmd := CreateCommand{MimeType: "image/png", Data: pngBytes(t, 600, 300)}
	name := r.generateThumbnail(ctx, "mockup_1_aaaa.png", cmd)

	if name == nil {
		t.Fatal("generateThumbnail returned nil for valid image")
	}
	if *name != "thumb_mockup_1_aaaa.jpg" {
		t.Errorf("thumbnail name = %q, want %q", *name, "thumb_mockup_1_aaaa.jpg")
	}

	data, err := r.storage.Retrieve(ctx, storage.KindDerived, *name)
	if err != nil {
		t.Fatalf("thumbnail not stored: %v", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("thumbnail format = %q, want jpeg", format)
	}
	if cfg.Width > 300 || cfg.Height > 300 {
		t.Errorf("thumbnail dimensions = %dx%d, exceed 300x300 bound", cfg.Width, cfg.Height)
	}
}

func TestGenerateThumbnail_SmallImageKeepsSize(t *testing.T) {
	r := testRepo(t)
	ctx := context.Background()

	cmd := CreateCommand{MimeType: "image/png", Data: pngBytes(t, 10, 10)}
	name := r.generateThumbnail(ctx, "mockup_2_bbbb.png", cmd)
	if name == nil {
		t.Fatal("generateThumbnail returned nil for valid image")
	}

	data, err := r.storage.Retrieve(ctx, storage.KindDerived, *name)
	if err != nil {
		t.Fatalf("thumbnail not stored: %v", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if cfg.Width != 10 || cfg.Height != 10 {
		t.Errorf("thumbnail dimensions = %dx%d, want 10x10 (no upscaling)", cfg.Width, cfg.Height)
	}
}

func TestGenerateThumbnail_NonImage(t *testing.T) {
	r := testRepo(t)

	cmd := CreateCommand{MimeType: "application/pdf", Data: []byte("%PDF-1.4")}
	if name := r.generateThumbnail(context.Background(), "mockup_3_cccc.pdf", cmd); name != nil {
		t.Errorf("generateThumbnail = %q for non-image, want nil", *name)
	}
}

func TestGenerateThumbnail_CorruptImage(t *testing.T) {
	r := testRepo(t)

	cmd := CreateCommand{MimeType: "image/png", Data: []byte("not a png")}
	if name := r.generateThumbnail(context.Background(), "mockup_4_dddd.png", cmd); name != nil {
		t.Errorf("generateThumbnail = %q for corrupt image, want nil", *name)
	}
}

func TestExtractMetadata_Image(t *testing.T) {
	r := testRepo(t)

	cmd := CreateCommand{MimeType: "image/png", Data: pngBytes(t, 10, 10)}
	meta := r.extractMetadata("mockup_5_eeee.png", cmd)

	if meta == nil {
		t.Fatal("extractMetadata returned nil for valid image")
	}
	if meta.Width != 10 || meta.Height != 10 {
		t.Errorf("dimensions = %dx%d, want 10x10", meta.Width, meta.Height)
	}
	if meta.Format != "png" {
		t.Errorf("format = %q, want png", meta.Format)
	}
	if meta.Pages != nil {
		t.Errorf("pages = %d, want nil for image", *meta.Pages)
	}
}

func TestExtractMetadata_CorruptInputs(t *testing.T) {
	r := testRepo(t)

	tests := []struct {
		name string
		cmd  CreateCommand
	}{
		{"corrupt image", CreateCommand{MimeType: "image/png", Data: []byte("junk")}},
		{"corrupt pdf", CreateCommand{MimeType: "application/pdf", Data: []byte("junk")}},
		{"unhandled type", CreateCommand{MimeType: "text/plain", Data: []byte("hello")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if meta := r.extractMetadata("stored", tt.cmd); meta != nil {
				t.Errorf("extractMetadata = %+v, want nil", meta)
			}
		})
	}
}

func TestMergeField(t *testing.T) {
	current := "current"
	update := "update"
	empty := ""

	tests := []struct {
		name    string
		current *string
		update  *string
		want    *string
	}{
		{"nil update keeps current", &current, nil, &current},
		{"nil update keeps nil", nil, nil, nil},
		{"value update replaces", &current, &update, &update},
		{"empty string clears", &current, &empty, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeField(tt.current, tt.update)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("mergeField = %q, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("mergeField = nil, want %q", *tt.want)
			case tt.want != nil && got != nil && *got != *tt.want:
				t.Errorf("mergeField = %q, want %q", *got, *tt.want)
			}
		})
	}
}
