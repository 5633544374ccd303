package model

import "time"

// LikedVideo is the per-user like edge. The composite primary key
// makes like/unlike idempotent-by-presence.
type LikedVideo struct {
	UserID    string    `gorm:"primaryKey;size:255" json:"user_id"`
	VideoID   int64     `gorm:"primaryKey;autoIncrement:false" json:"video_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Video Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LikedVideo) TableName() string {
	return "liked_videos"
}
