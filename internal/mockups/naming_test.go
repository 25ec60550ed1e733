package mockups

import (
	"regexp"
	"strings"
	"testing"
)

var storedNamePattern = regexp.MustCompile(`^mockup_\d+_[0-9a-f]{32}\.[a-z0-9]+$`)

func TestBuildStoredName(t *testing.T) {
	tests := []struct {
		name     string
		original string
		wantExt  string
	}{
		{"png upload", "design.png", ".png"},
		{"uppercase extension lowered", "PHOTO.JPG", ".jpg"},
		{"pdf upload", "proof.pdf", ".pdf"},
		{"dotted filename keeps last extension", "final.v2.png", ".png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildStoredName(tt.original)

			if !strings.HasPrefix(got, "mockup_") {
				t.Errorf("buildStoredName(%q) = %q, want mockup_ prefix", tt.original, got)
			}
			if !strings.HasSuffix(got, tt.wantExt) {
				t.Errorf("buildStoredName(%q) = %q, want %q suffix", tt.original, got, tt.wantExt)
			}
			if !storedNamePattern.MatchString(got) {
				t.Errorf("buildStoredName(%q) = %q, does not match expected shape", tt.original, got)
			}
		})
	}
}

func TestBuildStoredName_NoExtension(t *testing.T) {
	got := buildStoredName("README")
	if strings.Contains(got, ".") {
		t.Errorf("buildStoredName(%q) = %q, want no extension", "README", got)
	}
}

func TestBuildStoredName_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		name := buildStoredName("design.png")
		if seen[name] {
			t.Fatalf("duplicate stored name generated: %s", name)
		}
		seen[name] = true
	}
}

func TestBuildThumbnailName(t *testing.T) {
	tests := []struct {
		stored string
		want   string
	}{
		{"mockup_123_abc.png", "thumb_mockup_123_abc.jpg"},
		{"mockup_123_abc.webp", "thumb_mockup_123_abc.jpg"},
		{"mockup_123_abc", "thumb_mockup_123_abc.jpg"},
	}

	for _, tt := range tests {
		if got := buildThumbnailName(tt.stored); got != tt.want {
			t.Errorf("buildThumbnailName(%q) = %q, want %q", tt.stored, got, tt.want)
		}
	}
}
