// Package imaging provides stateless image transformation: metadata
// extraction and fit-inside resizing with JPEG re-encoding. Decoders for
// jpeg, png, gif, webp, bmp, and tiff are registered.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat indicates the input bytes are not a decodable image.
var ErrUnsupportedFormat = errors.New("imaging: unsupported image format")

// Metadata describes a decoded image.
type Metadata struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Space  string `json:"space"`
}

// ExtractMetadata decodes image dimensions, encoded format, and color
// space. Returns ErrUnsupportedFormat when the bytes cannot be decoded;
// callers treat metadata as best-effort and must not fail on it.
func ExtractMetadata(data []byte) (*Metadata, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	return &Metadata{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
		Space:  colorSpace(cfg.ColorModel),
	}, nil
}

// Resize scales an image down to fit inside maxWidth x maxHeight,
// preserving aspect ratio and never upscaling, then re-encodes it as
// JPEG at the given quality. Images already within bounds keep their
// dimensions but are still re-encoded.
func Resize(data []byte, maxWidth, maxHeight, quality int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	bounds := src.Bounds()
	width, height := fitInside(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	var out image.Image = src
	if width != bounds.Dx() || height != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return buf.Bytes(), nil
}

// fitInside computes target dimensions so neither dimension exceeds the
// bounds, preserving aspect ratio. Sources already within bounds are
// returned unchanged.
func fitInside(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	scaleW := float64(maxWidth) / float64(width)
	scaleH := float64(maxHeight) / float64(height)

	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	w := int(float64(width) * scale)
	h := int(float64(height) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return w, h
}

func colorSpace(model color.Model) string {
	switch model {
	case color.GrayModel, color.Gray16Model:
		return "b-w"
	case color.CMYKModel:
		return "cmyk"
	default:
		return "srgb"
	}
}
