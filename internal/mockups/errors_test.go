package mockups_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/printhaus/printshop/internal/imaging"
	"github.com/printhaus/printshop/internal/mockups"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty file", mockups.ErrEmptyFile, http.StatusBadRequest},
		{"invalid file", mockups.ErrInvalidFile, http.StatusBadRequest},
		{"unsupported type", mockups.ErrUnsupportedType, http.StatusBadRequest},
		{"unsupported format", imaging.ErrUnsupportedFormat, http.StatusBadRequest},
		{"not found", mockups.ErrNotFound, http.StatusNotFound},
		{"file missing", mockups.ErrFileMissing, http.StatusNotFound},
		{"no thumbnail", mockups.ErrNoThumbnail, http.StatusNotFound},
		{"duplicate", mockups.ErrDuplicate, http.StatusConflict},
		{"file too large", mockups.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find mockup: %w", mockups.ErrNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mockups.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
