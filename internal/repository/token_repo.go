package repository

import (
	"time"

	"beatstream-go/internal/model"

	"gorm.io/gorm"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create inserts a token row.
func (r *TokenRepository) Create(token *model.UserToken) error {
	return r.db.Create(token).Error
}

// ListActive returns the admin's non-revoked tokens, newest first.
func (r *TokenRepository) ListActive(userID string) ([]model.UserToken, error) {
	var tokens []model.UserToken
	err := r.db.Where("user_id = ? AND revoked_at IS NULL", userID).
		Order("created_at DESC").Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// Revoke soft-deletes one active token owned by the admin.
func (r *TokenRepository) Revoke(id int64, userID string, now time.Time) error {
	result := r.db.Model(&model.UserToken{}).
		Where("id = ? AND user_id = ? AND revoked_at IS NULL", id, userID).
		Update("revoked_at", now)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
