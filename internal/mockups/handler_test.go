package mockups_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/printhaus/printshop/internal/mockups"
	"github.com/printhaus/printshop/pkg/pagination"
	"github.com/printhaus/printshop/pkg/routes"
)

// stubSystem implements mockups.System with canned responses.
type stubSystem struct {
	mockup  *mockups.Mockup
	content *mockups.Content
	err     error

	lastCreate  mockups.CreateCommand
	lastPreview [2]int
}

func (s *stubSystem) Handler() *mockups.Handler { return nil }

func (s *stubSystem) List(ctx context.Context, page pagination.PageRequest, filters mockups.Filters) (*pagination.PageResult[mockups.Mockup], error) {
	if s.err != nil {
		return nil, s.err
	}
	result := pagination.NewPageResult([]mockups.Mockup{*s.mockup}, 1, page.Page, page.PageSize)
	return &result, nil
}

func (s *stubSystem) Find(ctx context.Context, id uuid.UUID) (*mockups.Mockup, error) {
	return s.mockup, s.err
}

func (s *stubSystem) Create(ctx context.Context, cmd mockups.CreateCommand) (*mockups.Mockup, error) {
	s.lastCreate = cmd
	return s.mockup, s.err
}

func (s *stubSystem) Download(ctx context.Context, id uuid.UUID) (*mockups.Content, error) {
	return s.content, s.err
}

func (s *stubSystem) Thumbnail(ctx context.Context, id uuid.UUID) (*mockups.Content, error) {
	return s.content, s.err
}

func (s *stubSystem) Preview(ctx context.Context, id uuid.UUID, maxWidth, maxHeight int) (*mockups.Content, error) {
	s.lastPreview = [2]int{maxWidth, maxHeight}
	return s.content, s.err
}

func (s *stubSystem) Update(ctx context.Context, id uuid.UUID, cmd mockups.UpdateCommand) (*mockups.Mockup, error) {
	return s.mockup, s.err
}

func (s *stubSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func testMockup() *mockups.Mockup {
	return &mockups.Mockup{
		ID:           uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		StoredName:   "mockup_1_aaaa.png",
		OriginalName: "design.png",
		MimeType:     "image/png",
		SizeBytes:    4,
	}
}

func buildHandler(sys mockups.System) http.Handler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	handler := mockups.NewHandler(sys, logger, pagination.Config{DefaultPageSize: 50, MaxPageSize: 500}, 1<<20)

	sys2 := routes.New(logger)
	sys2.RegisterGroup(handler.Routes())
	return sys2.Build()
}

func multipartUpload(t *testing.T, fields map[string]string, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("WriteField failed: %v", err)
		}
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("part write failed: %v", err)
	}
	writer.Close()

	return &body, writer.FormDataContentType()
}

func TestHandler_Upload(t *testing.T) {
	sys := &stubSystem{mockup: testMockup()}
	handler := buildHandler(sys)

	body, contentType := multipartUpload(t, map[string]string{
		"ownerId":     "user-1",
		"description": "front cover",
	}, "design.png", []byte{0x89, 'P', 'N', 'G'})

	req := httptest.NewRequest("POST", "/mockups/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	if sys.lastCreate.OriginalName != "design.png" {
		t.Errorf("OriginalName = %q, want %q", sys.lastCreate.OriginalName, "design.png")
	}
	if sys.lastCreate.OwnerID == nil || *sys.lastCreate.OwnerID != "user-1" {
		t.Error("OwnerID not forwarded")
	}
	if sys.lastCreate.OrderID != nil {
		t.Errorf("OrderID = %q, want nil for absent field", *sys.lastCreate.OrderID)
	}
	if sys.lastCreate.Description == nil || *sys.lastCreate.Description != "front cover" {
		t.Error("Description not forwarded")
	}
	if !bytes.Equal(sys.lastCreate.Data, []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("file bytes not forwarded intact")
	}
}

func TestHandler_Upload_MissingFile(t *testing.T) {
	sys := &stubSystem{mockup: testMockup()}
	handler := buildHandler(sys)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("ownerId", "user-1")
	writer.Close()

	req := httptest.NewRequest("POST", "/mockups/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandler_Find_InvalidID(t *testing.T) {
	handler := buildHandler(&stubSystem{mockup: testMockup()})

	req := httptest.NewRequest("GET", "/mockups/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandler_Find_NotFound(t *testing.T) {
	handler := buildHandler(&stubSystem{err: mockups.ErrNotFound})

	req := httptest.NewRequest("GET", "/mockups/11111111-1111-1111-1111-111111111111", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var payload map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if payload["error"] == "" {
		t.Error("error body missing error field")
	}
}

func TestHandler_Download_Headers(t *testing.T) {
	content := &mockups.Content{
		Data:        []byte("file-bytes"),
		ContentType: "image/png",
		Filename:    "design.png",
		SizeBytes:   10,
	}
	handler := buildHandler(&stubSystem{content: content})

	req := httptest.NewRequest("GET", "/mockups/11111111-1111-1111-1111-111111111111/download", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", got)
	}
	if got := rec.Header().Get("Content-Length"); got != "10" {
		t.Errorf("Content-Length = %q, want 10", got)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "attachment") || !strings.Contains(disposition, "design.png") {
		t.Errorf("Content-Disposition = %q, want attachment with filename", disposition)
	}
	if rec.Body.String() != "file-bytes" {
		t.Error("body does not match content bytes")
	}
}

func TestHandler_Thumbnail_CacheControl(t *testing.T) {
	content := &mockups.Content{Data: []byte("jpg"), ContentType: "image/jpeg"}
	handler := buildHandler(&stubSystem{content: content})

	req := httptest.NewRequest("GET", "/mockups/11111111-1111-1111-1111-111111111111/thumbnail", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=31536000" {
		t.Errorf("Cache-Control = %q, want long-lived public cache", got)
	}
}

func TestHandler_Preview(t *testing.T) {
	content := &mockups.Content{Data: []byte("jpg"), ContentType: "image/jpeg"}
	sys := &stubSystem{content: content}
	handler := buildHandler(sys)

	req := httptest.NewRequest("GET", "/mockups/11111111-1111-1111-1111-111111111111/preview?width=400&height=200", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if sys.lastPreview != [2]int{400, 200} {
		t.Errorf("preview bounds = %v, want [400 200]", sys.lastPreview)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=3600" {
		t.Errorf("Cache-Control = %q, want short-lived public cache", got)
	}
}

func TestHandler_Preview_NonImage(t *testing.T) {
	handler := buildHandler(&stubSystem{err: mockups.ErrUnsupportedType})

	req := httptest.NewRequest("GET", "/mockups/11111111-1111-1111-1111-111111111111/preview", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandler_Delete(t *testing.T) {
	handler := buildHandler(&stubSystem{})

	req := httptest.NewRequest("DELETE", "/mockups/11111111-1111-1111-1111-111111111111", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
