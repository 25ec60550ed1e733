package albums

import "github.com/printhaus/printshop/pkg/repository"

func scanTemplate(s repository.Scanner) (Template, error) {
	var t Template
	var layoutSettings, themeSettings []byte

	err := s.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.Thumbnail,
		&t.Layout,
		&t.Theme,
		&t.Pages,
		&layoutSettings,
		&themeSettings,
		&t.IsActive,
		&t.CreatedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return t, err
	}

	if len(layoutSettings) > 0 {
		t.LayoutSettings = layoutSettings
	}
	if len(themeSettings) > 0 {
		t.ThemeSettings = themeSettings
	}
	return t, nil
}

func scanAlbum(s repository.Scanner) (Album, error) {
	var a Album
	var template, settings, pages []byte

	err := s.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.UserID,
		&a.TemplateID,
		&template,
		&settings,
		&pages,
		&a.Price,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return a, err
	}

	a.Template = template
	if len(settings) > 0 {
		a.Settings = settings
	}
	if len(pages) > 0 {
		a.Pages = pages
	}
	return a, nil
}
