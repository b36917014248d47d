package processor

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Encode writes img to w in the format implied by filename's extension.
func (p *ImageProcessor) Encode(w io.Writer, img image.Image, filename string) error {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return fmt.Errorf("failed to pick format for %s: %w", filename, err)
	}

	if err := imaging.Encode(w, img, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return nil
}
