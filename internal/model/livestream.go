package model

import (
	"time"

	"gorm.io/datatypes"
)

// LiveStream is a scheduled broadcast. The (start_time, slug) pair is
// unique so a slug can recur on a different date.
type LiveStream struct {
	ID        int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string                      `gorm:"size:256;not null" json:"title"`
	Slug      string                      `gorm:"size:256;not null;uniqueIndex:uq_livestreams_start_time_slug,priority:2" json:"slug"`
	Cancelled bool                        `gorm:"not null;default:false" json:"cancelled"`
	StartTime time.Time                   `gorm:"not null;uniqueIndex:uq_livestreams_start_time_slug,priority:1;index:idx_livestreams_start_time" json:"start_time"`
	EndTime   time.Time                   `gorm:"not null" json:"end_time"`
	Image     string                      `gorm:"size:500" json:"image"`
	URL       string                      `gorm:"size:500" json:"url"`
	Genres    datatypes.JSONSlice[string] `json:"genres"`
}

func (LiveStream) TableName() string {
	return "livestreams"
}
