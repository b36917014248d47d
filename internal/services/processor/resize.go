package processor

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/icon-generator/internal/models"
)

// Resize resamples img to exactly size using Lanczos, stretching it if the
// aspect ratios differ.
func (p *ImageProcessor) Resize(img image.Image, size models.IconSize) image.Image {
	width := max(1, size.Width)
	height := max(1, size.Height)

	return imaging.Resize(img, width, height, imaging.Lanczos)
}
