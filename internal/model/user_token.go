package model

import "time"

// UserToken is an admin API token row. The bearer credential itself is
// minted by an external signer; this row only tracks lifecycle.
// Revocation is a soft write: lookups filter revoked_at IS NULL.
type UserToken struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string     `gorm:"size:255;not null;index:idx_users_tokens_user_id" json:"user_id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ExpiredAt *time.Time `json:"expired_at"`
	RevokedAt *time.Time `gorm:"index:idx_users_tokens_revoked_at" json:"-"`
}

func (UserToken) TableName() string {
	return "users_tokens"
}
