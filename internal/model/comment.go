package model

import "time"

// Comment is a user remark on a video. The deleted column exists for
// schema compatibility; no use case reads or writes it.
type Comment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"size:255;not null;index:idx_comments_user_id" json:"user_id"`
	VideoID     int64     `gorm:"not null;index:idx_comments_video_id" json:"video_id"`
	Text        string    `gorm:"size:120;not null" json:"text"`
	PublishedAt time.Time `gorm:"autoCreateTime" json:"published_at"`
	Deleted     bool      `gorm:"not null;default:false" json:"-"`

	Video Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
