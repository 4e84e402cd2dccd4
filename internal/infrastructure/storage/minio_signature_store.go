// Package storage keeps signature drawings in S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"console_comercial/internal/infrastructure/config"
	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// MinioSignatureStore uploads drawings under signatures/{contract_id}/ and
// returns a URL the public contract page can embed.
type MinioSignatureStore struct {
	client  objectPutter
	bucket  string
	baseURL string
}

var _ interfaces.ISignatureImageStore = (*MinioSignatureStore)(nil)

// NewMinioSignatureStore connects to the endpoint and creates the bucket when
// it does not exist yet.
func NewMinioSignatureStore(ctx context.Context, cfg config.MinIO) (*MinioSignatureStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
		logging.For("storage.minio").WithField("bucket", cfg.Bucket).Info("bucket created")
	}

	return &MinioSignatureStore{client: client, bucket: cfg.Bucket, baseURL: publicBase(cfg)}, nil
}

func publicBase(cfg config.MinIO) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + cfg.Endpoint
}

func (s *MinioSignatureStore) Put(ctx context.Context, contractID string, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("signatures/%s/%s.%s", contractID, uuid.NewString(), extension(contentType))
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("minio put %s: %w", key, err)
	}
	return s.baseURL + "/" + s.bucket + "/" + key, nil
}

func extension(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/svg+xml":
		return "svg"
	case "image/webp":
		return "webp"
	default:
		return "png"
	}
}
