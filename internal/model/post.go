package model

import (
	"time"

	"gorm.io/datatypes"
)

// Post is a news/article item. Text is a structured document stored
// opaque as JSONB. A post is visible only once PublishedAt has passed.
type Post struct {
	ID          int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string            `gorm:"size:100;not null;uniqueIndex:uq_posts_title" json:"title"`
	Annotation  *string           `gorm:"size:500" json:"annotation"`
	Text        datatypes.JSONMap `gorm:"not null" json:"text"`
	Slug        string            `gorm:"size:255;not null;uniqueIndex:uq_posts_slug" json:"slug"`
	PublishedAt time.Time         `gorm:"not null;index:idx_posts_published_at" json:"published_at"`
	Thumbnail   *string           `gorm:"size:500" json:"thumbnail"`
	UserID      string            `gorm:"size:255;not null" json:"user_id"`
	UpdatedAt   *time.Time        `gorm:"autoUpdateTime:false" json:"updated_at"`
	UpdatedBy   *string           `gorm:"size:255" json:"updated_by"`

	EditHistory []PostEditHistory `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}
