package config

import "fmt"

// ImagingConfig contains derivative image generation settings.
type ImagingConfig struct {
	// ThumbnailBound is the fit-inside bound for generated thumbnails.
	ThumbnailBound int `toml:"thumbnail_bound"`

	// ThumbnailQuality is the JPEG quality for thumbnails. Kept lower than
	// preview quality to cap derivative storage size.
	ThumbnailQuality int `toml:"thumbnail_quality"`

	// PreviewBound is the default fit-inside bound for on-demand previews.
	PreviewBound int `toml:"preview_bound"`

	// PreviewQuality is the JPEG quality for on-demand previews.
	PreviewQuality int `toml:"preview_quality"`
}

// Finalize applies defaults and validates the imaging configuration.
func (c *ImagingConfig) Finalize() error {
	c.loadDefaults()
	return c.validate()
}

// Merge applies non-zero values from overlay onto the receiver.
func (c *ImagingConfig) Merge(overlay *ImagingConfig) {
	if overlay.ThumbnailBound != 0 {
		c.ThumbnailBound = overlay.ThumbnailBound
	}
	if overlay.ThumbnailQuality != 0 {
		c.ThumbnailQuality = overlay.ThumbnailQuality
	}
	if overlay.PreviewBound != 0 {
		c.PreviewBound = overlay.PreviewBound
	}
	if overlay.PreviewQuality != 0 {
		c.PreviewQuality = overlay.PreviewQuality
	}
}

func (c *ImagingConfig) loadDefaults() {
	if c.ThumbnailBound == 0 {
		c.ThumbnailBound = 300
	}
	if c.ThumbnailQuality == 0 {
		c.ThumbnailQuality = 80
	}
	if c.PreviewBound == 0 {
		c.PreviewBound = 800
	}
	if c.PreviewQuality == 0 {
		c.PreviewQuality = 85
	}
}

func (c *ImagingConfig) validate() error {
	for name, value := range map[string]int{
		"thumbnail_quality": c.ThumbnailQuality,
		"preview_quality":   c.PreviewQuality,
	} {
		if value < 1 || value > 100 {
			return fmt.Errorf("%s must be between 1 and 100", name)
		}
	}
	if c.ThumbnailBound < 1 {
		return fmt.Errorf("thumbnail_bound must be positive")
	}
	if c.PreviewBound < 1 {
		return fmt.Errorf("preview_bound must be positive")
	}
	return nil
}
