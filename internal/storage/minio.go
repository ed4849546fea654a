package storage

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"docdraft/internal/config"
)

// minioLibrary implements MediaLibrary using an S3-compatible backend (MinIO, AWS S3, etc.).
// It is safe for concurrent use by multiple goroutines.
type minioLibrary struct {
	client *minio.Client
	bucket string
}

// NewMinIO creates a media library backed by MinIO.
// It validates connectivity and requires the bucket to exist.
func NewMinIO(cfg config.MinIOConfig) (MediaLibrary, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("media bucket %q does not exist", cfg.Bucket)
	}

	return &minioLibrary{client: cli, bucket: cfg.Bucket}, nil
}

func validate(cfg config.MinIOConfig) error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return fmt.Errorf("minio bucket is required")
	}
	return nil
}

// List walks the bucket recursively below prefix.
func (m *minioLibrary) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	out := make([]ObjectInfo, 0)
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}
		out = append(out, toObjectInfo(obj))
	}
	return out, nil
}

// Stat fetches object metadata without reading its content.
func (m *minioLibrary) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	st, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return ObjectInfo{}, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return ObjectInfo{}, err
	}
	return toObjectInfo(st), nil
}

// PresignGet generates a pre-signed URL for GET with the specified expiry.
func (m *minioLibrary) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func toObjectInfo(o minio.ObjectInfo) ObjectInfo {
	return ObjectInfo{
		Key:          o.Key,
		Size:         o.Size,
		ETag:         o.ETag,
		ContentType:  o.ContentType,
		LastModified: o.LastModified,
	}
}
