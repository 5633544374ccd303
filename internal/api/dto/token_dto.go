package dto

import "time"

// NewTokenRequest creates an admin API token row. The bearer
// credential itself is minted by an external signer.
type NewTokenRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=255"`
	ExpiredAt *time.Time `json:"expired_at"`
}

// TokenCreated is the creation response.
type TokenCreated struct {
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiredAt *time.Time `json:"expired_at"`
}
