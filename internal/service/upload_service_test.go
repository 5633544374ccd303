package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPresigner struct {
	url string
	err error

	gotKey    string
	gotExpiry time.Duration
}

func (s *stubPresigner) PresignedPutURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	s.gotKey = key
	s.gotExpiry = expiry
	return s.url, s.err
}

func TestNormalizeUploadExpiry(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 1800},
		{30, 60},
		{60, 60},
		{600, 600},
		{3600, 3600},
		{7200, 3600},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeUploadExpiry(tc.in), "expires_in %d", tc.in)
	}
}

func TestUploadService_PresignUpload(t *testing.T) {
	presigner := &stubPresigner{url: "https://minio.local/bucket/key?sig=x"}
	svc := NewUploadService(presigner)

	url, err := svc.PresignUpload(context.Background(), "uploads/set.mp4", 600)
	require.NoError(t, err)

	assert.Equal(t, presigner.url, url)
	assert.Equal(t, "uploads/set.mp4", presigner.gotKey)
	assert.Equal(t, 10*time.Minute, presigner.gotExpiry)
}

func TestUploadService_PresignUpload_UpstreamFailure(t *testing.T) {
	presigner := &stubPresigner{err: errors.New("minio down")}
	svc := NewUploadService(presigner)

	_, err := svc.PresignUpload(context.Background(), "uploads/set.mp4", 0)
	assert.ErrorIs(t, err, ErrUpstream)
}
