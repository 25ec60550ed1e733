package mockups

import (
	"encoding/json"
	"fmt"

	"github.com/printhaus/printshop/pkg/repository"
)

// scanMockup reads a Mockup from a database row, unpacking the metadata
// JSON column when present.
func scanMockup(s repository.Scanner) (Mockup, error) {
	var m Mockup
	var metaRaw []byte

	err := s.Scan(
		&m.ID,
		&m.StoredName,
		&m.OriginalName,
		&m.MimeType,
		&m.SizeBytes,
		&m.ThumbnailName,
		&m.OwnerID,
		&m.OrderID,
		&m.Description,
		&metaRaw,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return m, err
	}

	if len(metaRaw) > 0 {
		var meta Metadata
		if err := json.Unmarshal(metaRaw, &meta); err != nil {
			return m, fmt.Errorf("unmarshal metadata: %w", err)
		}
		m.Metadata = &meta
	}

	return m, nil
}
