package processor

import (
	"fmt"
	"image"
	"io"
	"os"

	"go.uber.org/zap"
)

type ImageProcessor struct {
	maxFileSize int64
	maxPixels   int64
	logger      *zap.Logger
}

// NewImageProcessor returns a processor that rejects sources larger than
// maxFileSize bytes or declaring more than maxPixels pixels. A limit of 0
// disables that check.
func NewImageProcessor(maxFileSize, maxPixels int64, logger *zap.Logger) *ImageProcessor {
	return &ImageProcessor{
		maxFileSize: maxFileSize,
		maxPixels:   maxPixels,
		logger:      logger,
	}
}

// Load validates and decodes the source image at path. The returned format is
// the name the decoder registered itself under ("jpeg", "png", "webp", ...).
func (p *ImageProcessor) Load(path string) (image.Image, string, error) {
	if err := p.ValidateSource(path); err != nil {
		return nil, "", err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	// The header is checked before decoding so a bogus size cannot trigger
	// a huge pixel buffer allocation.
	if err := p.ValidateDimensions(file); err != nil {
		return nil, "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, "", fmt.Errorf("failed to rewind image: %w", err)
	}

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	p.logger.Debug("Source decoded",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
	)

	return img, format, nil
}
