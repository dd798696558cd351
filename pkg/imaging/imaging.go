// Package imaging normalizes uploaded photos before they are sent or stored.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	jpegQuality = 85
	// maxPixels bounds the decoded size of a photo, checked from its header.
	maxPixels = 40_000_000
)

var (
	ErrEmptyImage    = errors.New("empty image")
	ErrImageTooLarge = errors.New("image too large")
)

// Normalize decodes data, shrinks it to fit maxSide keeping the aspect ratio
// and re-encodes it as JPEG. Smaller images are only re-encoded. Images whose
// header declares more than maxPixels are rejected before decoding.
func Normalize(data []byte, maxSide int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image config: %w", err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrEmptyImage
	}

	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}

	if maxSide > 0 && (width > maxSide || height > maxSide) {
		newWidth, newHeight := fit(width, height, maxSide)

		resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

		img = resized
	}

	var buf bytes.Buffer

	err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	return buf.Bytes(), nil
}

func fit(width, height, maxSide int) (int, int) {
	if width > height {
		return maxSide, max(1, int(float64(height)*float64(maxSide)/float64(width)))
	}

	return max(1, int(float64(width)*float64(maxSide)/float64(height))), maxSide
}
