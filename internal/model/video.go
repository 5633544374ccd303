package model

import "time"

// Video is a catalog item backed by an external video provider.
// Slug and YtID are unique among non-deleted rows only, so both
// constraints are partial. IsFavorite is a per-principal read overlay
// projected by the repository, never a column.
type Video struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title             string    `gorm:"size:255;not null" json:"title"`
	Slug              string    `gorm:"size:255;not null;uniqueIndex:uq_videos_slug,where:deleted = false" json:"slug"`
	Date              time.Time `gorm:"type:date;not null" json:"date"`
	YtID              string    `gorm:"column:yt_id;size:64;not null;uniqueIndex:uq_videos_yt_id,where:deleted = false" json:"yt_id"`
	YtThumbnail       string    `gorm:"column:yt_thumbnail;size:500;not null" json:"yt_thumbnail"`
	Duration          int       `gorm:"not null;default:0" json:"duration"`
	IsBlockedInRussia bool      `gorm:"not null;default:false" json:"is_blocked_in_russia"`
	Deleted           bool      `gorm:"not null;default:false;index:idx_videos_deleted" json:"-"`
	IsFavorite        *bool     `gorm:"->;-:migration" json:"is_favorite,omitempty"`

	Comments []Comment `gorm:"foreignKey:VideoID" json:"comments,omitempty"`
}

func (Video) TableName() string {
	return "videos"
}
