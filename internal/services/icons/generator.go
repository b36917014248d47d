// Package icons turns one source image into the fixed set of square app
// icons.
package icons

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phambaophuc/icon-generator/internal/models"
	"github.com/phambaophuc/icon-generator/internal/services/processor"
	"github.com/phambaophuc/icon-generator/internal/services/storage"
	"go.uber.org/zap"
)

type Generator struct {
	processor *processor.ImageProcessor
	storage   *storage.StorageService
	sizes     []models.IconSize
	logger    *zap.Logger
}

// NewGenerator returns a generator producing models.DefaultIconSizes.
func NewGenerator(processor *processor.ImageProcessor, storage *storage.StorageService, logger *zap.Logger) *Generator {
	return &Generator{
		processor: processor,
		storage:   storage,
		sizes:     models.DefaultIconSizes,
		logger:    logger,
	}
}

// Generate decodes req.SourcePath once and writes one PNG per icon size into
// req.DestDir, calling onCreated after each file is on disk. It stops at the
// first error; icons written before it are left in place.
func (g *Generator) Generate(ctx context.Context, req models.GenerateRequest, onCreated func(models.GeneratedIcon)) ([]models.GeneratedIcon, error) {
	src, _, err := g.processor.Load(req.SourcePath)
	if err != nil {
		return nil, err
	}

	icons := make([]models.GeneratedIcon, 0, len(g.sizes))
	encoded := make([][]byte, 0, len(g.sizes))

	for _, size := range g.sizes {
		name := size.Filename()

		var buf bytes.Buffer
		if err := g.processor.Encode(&buf, g.processor.Resize(src, size), name); err != nil {
			return icons, err
		}

		path, err := g.storage.Save(req.DestDir, name, buf.Bytes())
		if err != nil {
			return icons, err
		}

		icon := models.GeneratedIcon{
			Name:      name,
			Path:      path,
			Width:     size.Width,
			Height:    size.Height,
			FileSize:  int64(buf.Len()),
			CreatedAt: time.Now(),
		}
		icons = append(icons, icon)
		encoded = append(encoded, buf.Bytes())

		if onCreated != nil {
			onCreated(icon)
		}
	}

	if !g.storage.PublishEnabled() {
		return icons, nil
	}

	for i := range icons {
		url, err := g.storage.Publish(ctx, icons[i].Name, encoded[i])
		if err != nil {
			return icons, fmt.Errorf("failed to publish %s: %w", icons[i].Name, err)
		}
		icons[i].URL = url
	}

	g.logger.Info("Icons published", zap.Int("count", len(icons)))
	return icons, nil
}
