package processor

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
)

var (
	ErrNotRegularFile = errors.New("source is not a regular file")
	ErrFileTooLarge   = errors.New("source file too large")
	ErrImageTooLarge  = errors.New("source image has too many pixels")
)

// ValidateSource checks that path is a regular file within the size limit.
// Whether it is a decodable image is left to the decoder.
func (p *ImageProcessor) ValidateSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	if p.maxFileSize > 0 && info.Size() > p.maxFileSize {
		return fmt.Errorf("file size %d exceeds maximum allowed size %d: %w", info.Size(), p.maxFileSize, ErrFileTooLarge)
	}

	return nil
}

// ValidateDimensions reads only the image header from r and rejects images
// whose declared width*height exceeds the pixel limit.
func (p *ImageProcessor) ValidateDimensions(r io.Reader) error {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	pixels := int64(cfg.Width) * int64(cfg.Height)
	if p.maxPixels > 0 && pixels > p.maxPixels {
		return fmt.Errorf("image size %dx%d (%d pixels) exceeds limit of %d pixels: %w",
			cfg.Width, cfg.Height, pixels, p.maxPixels, ErrImageTooLarge)
	}

	return nil
}
