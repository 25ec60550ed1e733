package mockups

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// buildStoredName generates a filesystem name for an uploaded original:
// a fixed prefix, the upload timestamp, a random token, and the original
// extension. The timestamp plus 122 bits of randomness make the name
// collision-resistant by construction; the unique constraint on
// stored_name backs the remaining probability.
func buildStoredName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("mockup_%d_%s%s", time.Now().UnixMilli(), token, ext)
}

// buildThumbnailName derives the thumbnail name from a stored name.
// Thumbnails are always JPEG regardless of the original format.
func buildThumbnailName(storedName string) string {
	stem := strings.TrimSuffix(storedName, filepath.Ext(storedName))
	return "thumb_" + stem + ".jpg"
}
