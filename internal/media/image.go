package media

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"

	// Register decoders beyond the stdlib set so scans handle the full
	// image suffix list.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ImageInfo describes a still image file.
type ImageInfo struct {
	Width     int
	Height    int
	SizeBytes int64
}

// DecodeImage opens and decodes a still image, honoring EXIF orientation.
func DecodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// InspectImage reads image dimensions and file size without a full decode.
func InspectImage(path string) (ImageInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("decode image config: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		return ImageInfo{}, fmt.Errorf("stat image: %w", err)
	}
	return ImageInfo{Width: cfg.Width, Height: cfg.Height, SizeBytes: info.Size()}, nil
}

// Thumbnail downscales img to the given width, preserving aspect ratio.
// Images narrower than width are returned unchanged.
func Thumbnail(img image.Image, width int) image.Image {
	if width <= 0 || img.Bounds().Dx() <= width {
		return img
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}
