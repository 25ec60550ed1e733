package albums_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/printhaus/printshop/internal/albums"
)

func TestValidLayout(t *testing.T) {
	for _, s := range []string{albums.LayoutGrid, albums.LayoutMasonry, albums.LayoutTimeline} {
		if !albums.ValidLayout(s) {
			t.Errorf("ValidLayout(%q) = false, want true", s)
		}
	}

	for _, s := range []string{"", "collage", "GRID"} {
		if albums.ValidLayout(s) {
			t.Errorf("ValidLayout(%q) = true, want false", s)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		albums.StatusDraft, albums.StatusPending, albums.StatusProcessing,
		albums.StatusReady, albums.StatusDelivered, albums.StatusCancelled,
	} {
		if !albums.ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}

	if albums.ValidStatus("archived") {
		t.Error("ValidStatus(archived) = true, want false")
	}
}

func TestTemplateCommand_Validate(t *testing.T) {
	valid := func() albums.TemplateCommand {
		return albums.TemplateCommand{
			Name:      "Classic Grid",
			Thumbnail: "/thumbnails/classic.jpg",
			Layout:    albums.LayoutGrid,
			Theme:     "light",
			Pages:     20,
		}
	}

	cmd := valid()
	if err := cmd.Validate(); err != nil {
		t.Fatalf("valid command failed: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*albums.TemplateCommand)
	}{
		{"missing name", func(c *albums.TemplateCommand) { c.Name = "" }},
		{"missing thumbnail", func(c *albums.TemplateCommand) { c.Thumbnail = "" }},
		{"unknown layout", func(c *albums.TemplateCommand) { c.Layout = "collage" }},
		{"missing theme", func(c *albums.TemplateCommand) { c.Theme = "" }},
		{"zero pages", func(c *albums.TemplateCommand) { c.Pages = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid()
			tt.mutate(&cmd)
			if err := cmd.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCreateCommand_Validate(t *testing.T) {
	valid := func() albums.CreateCommand {
		return albums.CreateCommand{
			Title:      "Summer 2026",
			UserID:     uuid.New(),
			TemplateID: uuid.New(),
			Price:      49.90,
		}
	}

	cmd := valid()
	if err := cmd.Validate(); err != nil {
		t.Fatalf("valid command failed: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*albums.CreateCommand)
	}{
		{"missing title", func(c *albums.CreateCommand) { c.Title = "" }},
		{"missing user", func(c *albums.CreateCommand) { c.UserID = uuid.Nil }},
		{"missing template", func(c *albums.CreateCommand) { c.TemplateID = uuid.Nil }},
		{"negative price", func(c *albums.CreateCommand) { c.Price = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid()
			tt.mutate(&cmd)
			if err := cmd.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
