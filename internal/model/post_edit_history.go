package model

import "time"

// PostEditHistory is an append-only change-audit record. Rows cascade
// when the parent post is deleted.
type PostEditHistory struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID      int64     `gorm:"not null;index:idx_post_edit_history_post_id" json:"post_id"`
	EditedAt    time.Time `gorm:"autoCreateTime" json:"edited_at"`
	Description string    `gorm:"type:text;not null" json:"description"`
	EditedBy    string    `gorm:"size:255;not null" json:"edited_by"`
}

func (PostEditHistory) TableName() string {
	return "post_edit_history"
}
