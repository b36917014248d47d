package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phambaophuc/icon-generator/pkg/utils"
	storage_go "github.com/supabase-community/storage-go"
	"go.uber.org/zap"
)

type supabaseBucket struct {
	client *storage_go.Client
	bucket string
}

func (b *supabaseBucket) Upload(key string, data []byte, contentType string) error {
	upsert := true
	_, err := b.client.UploadFile(b.bucket, key, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	return err
}

func (b *supabaseBucket) PublicURL(key string) string {
	return b.client.GetPublicUrl(b.bucket, key).SignedURL
}

// Publish uploads an icon to the remote store and returns its public URL.
// It is a no-op returning "" when publishing is disabled.
func (s *StorageService) Publish(ctx context.Context, name string, data []byte) (string, error) {
	if s.remote == nil {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := utils.GenerateStorageKey(s.prefix, name)
	if err := s.remote.Upload(key, data, utils.ContentTypeFor(name)); err != nil {
		return "", fmt.Errorf("failed to upload to supabase: %w", err)
	}

	url := s.remote.PublicURL(key)
	s.logger.Info("Icon published",
		zap.String("key", key),
		zap.String("url", url),
	)
	return url, nil
}
