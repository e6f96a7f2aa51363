package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig holds the settings for the S3-compatible upload backend.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	// BaseURL is the public prefix returned to clients; when empty, URLs
	// are built from the endpoint and bucket.
	BaseURL string
}

// MinioStorage stores uploads in an S3-compatible bucket via minio-go.
type MinioStorage struct {
	cfg    MinioConfig
	client *mclient.Client
}

// NewMinioStorage creates the client and fails fast when the target bucket
// is missing.
func NewMinioStorage(ctx context.Context, cfg MinioConfig) (*MinioStorage, error) {
	endpoint := cfg.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", cfg.Bucket)
	}

	return &MinioStorage{cfg: cfg, client: client}, nil
}

// Save puts the object into the bucket under a unique key.
func (s *MinioStorage) Save(ctx context.Context, originalName, contentType string, content io.Reader) (string, string, error) {
	if !IsAllowedType(contentType) {
		return "", "", ErrDisallowedType
	}

	filename := uniqueFilename(originalName)

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, filename, content, -1, mclient.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}

	base := s.cfg.BaseURL
	if base == "" {
		base = strings.TrimSuffix(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket
	}

	return strings.TrimSuffix(base, "/") + "/" + filename, filename, nil
}
