// Command seed populates the service catalog and album templates with
// the baseline offerings. Existing rows are left untouched, so it is
// safe to run repeatedly.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/printhaus/printshop/internal/config"
	"github.com/printhaus/printshop/internal/database"
	"github.com/printhaus/printshop/pkg/logging"
)

type catalogEntry struct {
	title       string
	description string
	category    string
	basePrice   float64
	options     map[string]any
}

type templateEntry struct {
	name        string
	description string
	thumbnail   string
	layout      string
	theme       string
	pages       int
}

var catalog = []catalogEntry{
	{
		title:       "Business Cards",
		description: "Double-sided business cards on premium stock",
		category:    "cards",
		basePrice:   25.00,
		options:     map[string]any{"sizes": []string{"90x50", "85x55"}, "finishes": []string{"matte", "gloss", "soft-touch"}},
	},
	{
		title:       "Flyers",
		description: "Single and double-sided promotional flyers",
		category:    "marketing",
		basePrice:   40.00,
		options:     map[string]any{"sizes": []string{"A6", "A5", "A4"}, "paper": []string{"130gsm", "170gsm"}},
	},
	{
		title:       "Posters",
		description: "Large format posters for indoor and outdoor use",
		category:    "large-format",
		basePrice:   15.00,
		options:     map[string]any{"sizes": []string{"A3", "A2", "A1", "A0"}},
	},
	{
		title:       "Photo Album",
		description: "Hardcover photo album printed from a customer design",
		category:    "albums",
		basePrice:   120.00,
		options:     map[string]any{"covers": []string{"hardcover", "leather"}, "pages": []int{20, 30, 40}},
	},
	{
		title:       "Canvas Print",
		description: "Gallery-wrapped canvas print of an uploaded image",
		category:    "decor",
		basePrice:   65.00,
		options:     map[string]any{"sizes": []string{"30x40", "50x70", "60x90"}},
	},
}

var templates = []templateEntry{
	{
		name:        "Classic Grid",
		description: "Even grid of photo slots with generous margins",
		thumbnail:   "/assets/templates/classic-grid.jpg",
		layout:      "grid",
		theme:       "light",
		pages:       20,
	},
	{
		name:        "Masonry Mix",
		description: "Mixed-size photo slots in a masonry flow",
		thumbnail:   "/assets/templates/masonry-mix.jpg",
		layout:      "masonry",
		theme:       "dark",
		pages:       30,
	},
	{
		name:        "Year in Review",
		description: "Chronological timeline layout with caption slots",
		thumbnail:   "/assets/templates/year-in-review.jpg",
		layout:      "timeline",
		theme:       "light",
		pages:       40,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := cfg.Finalize(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(&cfg.Logging)

	db, err := database.Open(&cfg.Database)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := seedCatalog(ctx, db, logger); err != nil {
		logger.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}

	if err := seedTemplates(ctx, db, logger); err != nil {
		logger.Error("failed to seed templates", "error", err)
		os.Exit(1)
	}

	logger.Info("seeding complete")
}

func seedCatalog(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	for _, entry := range catalog {
		var exists bool
		if err := db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM services WHERE title = $1)`, entry.title,
		).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		options, err := json.Marshal(entry.options)
		if err != nil {
			return err
		}

		if _, err := db.ExecContext(ctx,
			`INSERT INTO services(id, title, description, category, base_price, options)
			VALUES($1, $2, $3, $4, $5, $6)`,
			uuid.New(), entry.title, entry.description, entry.category, entry.basePrice, options,
		); err != nil {
			return err
		}

		logger.Info("seeded service", "title", entry.title, "category", entry.category)
	}
	return nil
}

func seedTemplates(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	for _, entry := range templates {
		var exists bool
		if err := db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM album_templates WHERE name = $1)`, entry.name,
		).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		if _, err := db.ExecContext(ctx,
			`INSERT INTO album_templates(id, name, description, thumbnail, layout, theme, pages, created_by)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), entry.name, entry.description, entry.thumbnail,
			entry.layout, entry.theme, entry.pages, "seed",
		); err != nil {
			return err
		}

		logger.Info("seeded template", "name", entry.name, "layout", entry.layout)
	}
	return nil
}
