package minio

import (
	"context"
	"fmt"
	"time"

	"beatstream-go/internal/config"
	"beatstream-go/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

var client *minio.Client

// Init creates the object-store client and ensures the upload bucket
// exists.
func Init(cfg *config.MinIOConfig) error {
	var err error
	client, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		opts := minio.MakeBucketOptions{Region: cfg.Region}
		if err := client.MakeBucket(ctx, cfg.Bucket, opts); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("Object store bucket created", zap.String("bucket", cfg.Bucket))
	}

	logger.Info("Object store connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket),
	)

	return nil
}

// Get returns the object-store client.
func Get() *minio.Client {
	return client
}

// Uploader issues pre-signed upload URLs for a single bucket.
type Uploader struct {
	bucket string
}

// NewUploader returns an Uploader bound to the given bucket.
func NewUploader(bucket string) *Uploader {
	return &Uploader{bucket: bucket}
}

// PresignedPutURL asks the store for a URL permitting a single PUT to
// key within expiry. Nothing is stored locally.
func (u *Uploader) PresignedPutURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	presignedURL, err := client.PresignedPutObject(ctx, u.bucket, key, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned url: %w", err)
	}
	return presignedURL.String(), nil
}
