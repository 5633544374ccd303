package service

import (
	"context"
	"fmt"
	"time"
)

// Pre-signed URL expiry bounds in seconds.
const (
	minUploadExpiry     = 60
	maxUploadExpiry     = 3600
	defaultUploadExpiry = 1800
)

// Presigner is the object-store port: one URL permitting one PUT.
type Presigner interface {
	PresignedPutURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// UploadService delegates pre-signed uploads to the object store.
// Stateless; nothing is recorded about issued URLs.
type UploadService struct {
	presigner Presigner
}

func NewUploadService(presigner Presigner) *UploadService {
	return &UploadService{presigner: presigner}
}

// PresignUpload returns a URL allowing a single PUT to key.
// expiresIn is in seconds; zero means the default, out-of-range
// values are clamped into [60, 3600].
func (s *UploadService) PresignUpload(ctx context.Context, key string, expiresIn int) (string, error) {
	expiresIn = NormalizeUploadExpiry(expiresIn)

	url, err := s.presigner.PresignedPutURL(ctx, key, time.Duration(expiresIn)*time.Second)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return url, nil
}

// NormalizeUploadExpiry applies the default and clamps into bounds.
func NormalizeUploadExpiry(expiresIn int) int {
	switch {
	case expiresIn == 0:
		return defaultUploadExpiry
	case expiresIn < minUploadExpiry:
		return minUploadExpiry
	case expiresIn > maxUploadExpiry:
		return maxUploadExpiry
	default:
		return expiresIn
	}
}
