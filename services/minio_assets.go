package services

import (
	"bytes"
	"context"
	"fmt"

	"portal-api/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOAssetService is the alternate asset backend for deployments that keep
// uploads in object storage instead of the data repository. The bucket is
// expected to have a public-read policy; URLs are plain object URLs.
type MinIOAssetService struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinIOAssetService(cfg *config.Config) (*MinIOAssetService, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinIOAssetService{
		client:    client,
		bucket:    cfg.MinIOBucket,
		publicURL: cfg.MinIOPublicURL,
	}, nil
}

func (s *MinIOAssetService) Upload(ctx context.Context, path string, data []byte, contentType, message string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, path), nil
}

func (s *MinIOAssetService) Delete(ctx context.Context, path string) error {
	err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}
