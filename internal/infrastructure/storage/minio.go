package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/salesnotes/sfdc-notes-agent/pkg/config"
)

// ArtifactStore archives run artifacts (run JSON, CSV exports) in an
// S3-compatible bucket.
type ArtifactStore struct {
	client *minio.Client
	bucket string
}

// NewArtifactStore creates the store and ensures the bucket exists.
func NewArtifactStore(cfg *config.StorageConfig) (*ArtifactStore, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	store := &ArtifactStore{client: minioClient, bucket: cfg.BucketName}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, store.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, store.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return store, nil
}

// PutRunJSON archives the serialized run document under runs/<run_id>.json.
func (s *ArtifactStore) PutRunJSON(ctx context.Context, runID string, doc []byte) error {
	return s.put(ctx, fmt.Sprintf("runs/%s.json", runID), doc, "application/json")
}

// PutCSV archives a CSV export under exports/<filename>.
func (s *ArtifactStore) PutCSV(ctx context.Context, filename string, doc []byte) error {
	return s.put(ctx, "exports/"+filename, doc, "text/csv")
}

func (s *ArtifactStore) put(ctx context.Context, key string, doc []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(doc), int64(len(doc)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}
