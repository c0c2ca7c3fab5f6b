package asset

import (
	"fmt"
	"image"
	"os"

	// Register decoders beyond the ones imaging pulls in
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"

	"github.com/OpticalFlyer/tagger/geom"
)

// Info describes an image file without decoding its pixels
type Info struct {
	Format string
	Width  int
	Height int
}

// Load decodes the image at path, applying its EXIF orientation
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}

// Measure returns the displayed pixel size of the image at path
func Measure(path string) (geom.Rect, error) {
	img, err := Load(path)
	if err != nil {
		return geom.Rect{}, err
	}
	return Size(img), nil
}

// Size returns the pixel size of img
func Size(img image.Image) geom.Rect {
	b := img.Bounds()
	return geom.NewRect(float64(b.Dx()), float64(b.Dy()))
}

// Inspect reads the image header at path
func Inspect(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("failed to read image header %s: %w", path, err)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
