package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phambaophuc/icon-generator/internal/config"
	storage_go "github.com/supabase-community/storage-go"
	"go.uber.org/zap"
)

// ObjectStore is the remote bucket icons are published to.
type ObjectStore interface {
	Upload(key string, data []byte, contentType string) error
	PublicURL(key string) string
}

type StorageService struct {
	remote ObjectStore
	prefix string
	logger *zap.Logger
}

// NewStorageService returns a service that writes icons locally and, when
// Supabase is configured, publishes them to the configured bucket.
func NewStorageService(cfg *config.Config, logger *zap.Logger) *StorageService {
	var remote ObjectStore
	if cfg.Supabase.Enabled() {
		remote = &supabaseBucket{
			client: storage_go.NewClient(cfg.Supabase.URL+"/storage/v1", cfg.Supabase.KEY, nil),
			bucket: cfg.Supabase.BUCKET,
		}
	}
	return NewStorageServiceWithStore(remote, cfg.Storage.IconPrefix, logger)
}

// NewStorageServiceWithStore is like NewStorageService with an explicit
// remote store. A nil store disables publishing.
func NewStorageServiceWithStore(remote ObjectStore, prefix string, logger *zap.Logger) *StorageService {
	return &StorageService{
		remote: remote,
		prefix: prefix,
		logger: logger,
	}
}

// Save writes data to destDir/name. destDir must already exist.
func (s *StorageService) Save(destDir, name string, data []byte) (string, error) {
	path := filepath.Join(destDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.logger.Info("Icon written",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
	)
	return path, nil
}

// PublishEnabled reports whether a remote store is configured.
func (s *StorageService) PublishEnabled() bool {
	return s.remote != nil
}
