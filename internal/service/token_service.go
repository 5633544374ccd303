package service

import (
	"context"
	"errors"
	"time"

	"beatstream-go/internal/api/dto"
	"beatstream-go/internal/model"

	"gorm.io/gorm"
)

// TokenStore is the primary-store port for admin API token rows.
type TokenStore interface {
	Create(token *model.UserToken) error
	ListActive(userID string) ([]model.UserToken, error)
	Revoke(id int64, userID string, now time.Time) error
}

// TokenService tracks API token row lifecycle. The bearer credential
// is minted by an external signer; only the row is managed here.
type TokenService struct {
	tokenRepo TokenStore
	now       func() time.Time
}

func NewTokenService(tokenRepo TokenStore) *TokenService {
	return &TokenService{
		tokenRepo: tokenRepo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts a token row for the admin.
func (s *TokenService) Create(ctx context.Context, admin string, req *dto.NewTokenRequest) (*dto.TokenCreated, error) {
	token := &model.UserToken{
		UserID:    admin,
		Name:      req.Name,
		ExpiredAt: req.ExpiredAt,
	}
	if err := s.tokenRepo.Create(token); err != nil {
		return nil, err
	}

	return &dto.TokenCreated{
		ID:        token.ID,
		CreatedAt: token.CreatedAt,
		ExpiredAt: token.ExpiredAt,
	}, nil
}

// List returns the admin's non-revoked tokens.
func (s *TokenService) List(ctx context.Context, admin string) ([]model.UserToken, error) {
	return s.tokenRepo.ListActive(admin)
}

// Revoke soft-deletes one active token owned by the admin.
func (s *TokenService) Revoke(ctx context.Context, id int64, admin string) error {
	if err := s.tokenRepo.Revoke(id, admin, s.now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserTokenNotFound
		}
		return err
	}
	return nil
}
