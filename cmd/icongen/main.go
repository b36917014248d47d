// Icongen resizes one source image into the 192x192 and 512x512 PNG icons a
// web app manifest needs.
//
// Usage:
//
//	icongen <source_image> <dest_dir>
//
// The destination directory must already exist. Icons are stretched to the
// square, the source aspect ratio is not preserved.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/phambaophuc/icon-generator/internal/config"
	"github.com/phambaophuc/icon-generator/internal/logger"
	"github.com/phambaophuc/icon-generator/internal/models"
	"github.com/phambaophuc/icon-generator/internal/services/icons"
	"github.com/phambaophuc/icon-generator/internal/services/processor"
	"github.com/phambaophuc/icon-generator/internal/services/storage"
	"go.uber.org/zap"
)

const usage = "Usage: icongen <source_image> <dest_dir>"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit status. Generation failures are reported on
// stdout and still exit 0; only bad usage and an unreadable ICONGEN_ENV_FILE
// exit non-zero.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "Failed to load configuration:", err)
		return 1
	}

	// Initialize logger
	log, err := logger.New(cfg.Log, stderr)
	if err != nil {
		log, _ = logger.New(config.LogConfig{Level: "warn", Format: logger.FormatJSON}, stderr)
		log.Warn("Invalid log settings, using defaults", zap.Error(err))
	}
	defer log.Sync()
	log = log.With(zap.String("run_id", uuid.NewString()))

	if cfg.Supabase.Enabled() {
		log.Warn("Icons will be published to Supabase Storage",
			zap.String("env_file", cfg.EnvFile),
			zap.String("url", cfg.Supabase.URL),
			zap.String("bucket", cfg.Supabase.BUCKET),
			zap.String("prefix", cfg.Storage.IconPrefix),
		)
	}

	// Initialize services
	generator := icons.NewGenerator(
		processor.NewImageProcessor(cfg.Storage.MaxFileSize, cfg.Storage.MaxPixels, log),
		storage.NewStorageService(cfg, log),
		log,
	)

	req := models.GenerateRequest{SourcePath: args[0], DestDir: args[1]}
	_, err = generator.Generate(ctx, req, func(icon models.GeneratedIcon) {
		fmt.Fprintf(stdout, "Created %s\n", icon.Name)
	})
	if err != nil {
		log.Error("Icon generation failed",
			zap.String("source", req.SourcePath),
			zap.String("dest", req.DestDir),
			zap.Error(err),
		)
		fmt.Fprintf(stdout, "Error: %v\n", err)
	}

	return 0
}
