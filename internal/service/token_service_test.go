package service

import (
	"context"
	"testing"
	"time"

	"beatstream-go/internal/api/dto"
	"beatstream-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubTokenStore struct {
	create     func(token *model.UserToken) error
	listActive func(userID string) ([]model.UserToken, error)
	revoke     func(id int64, userID string, now time.Time) error
}

func (s *stubTokenStore) Create(token *model.UserToken) error {
	if s.create != nil {
		return s.create(token)
	}
	return nil
}

func (s *stubTokenStore) ListActive(userID string) ([]model.UserToken, error) {
	if s.listActive != nil {
		return s.listActive(userID)
	}
	return nil, nil
}

func (s *stubTokenStore) Revoke(id int64, userID string, now time.Time) error {
	if s.revoke != nil {
		return s.revoke(id, userID, now)
	}
	return nil
}

func TestTokenService_Create(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &stubTokenStore{
		create: func(token *model.UserToken) error {
			token.ID = 3
			token.CreatedAt = createdAt
			return nil
		},
	}
	svc := NewTokenService(store)

	expires := createdAt.AddDate(0, 1, 0)
	created, err := svc.Create(context.Background(), "admin-1", &dto.NewTokenRequest{
		Name:      "ci-deploy",
		ExpiredAt: &expires,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	require.NotNil(t, created.ExpiredAt)
	assert.Equal(t, expires, *created.ExpiredAt)
}

func TestTokenService_Revoke_ScopedToOwner(t *testing.T) {
	var gotID int64
	var gotUser string
	store := &stubTokenStore{
		revoke: func(id int64, userID string, now time.Time) error {
			gotID, gotUser = id, userID
			return nil
		},
	}
	svc := NewTokenService(store)

	require.NoError(t, svc.Revoke(context.Background(), 3, "admin-1"))
	assert.Equal(t, int64(3), gotID)
	assert.Equal(t, "admin-1", gotUser)
}

func TestTokenService_Revoke_NotFound(t *testing.T) {
	store := &stubTokenStore{
		revoke: func(int64, string, time.Time) error { return gorm.ErrRecordNotFound },
	}
	svc := NewTokenService(store)

	err := svc.Revoke(context.Background(), 99, "admin-1")
	assert.ErrorIs(t, err, ErrUserTokenNotFound)
}
