package dto

import "time"

// NewLiveStreamRequest schedules a broadcast. Slug is derived from the
// title when omitted.
type NewLiveStreamRequest struct {
	Title     string    `json:"title" binding:"required,min=1,max=256"`
	Slug      string    `json:"slug" binding:"omitempty,max=256"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Image     string    `json:"image" binding:"omitempty,url,max=500"`
	URL       string    `json:"url" binding:"omitempty,url,max=500"`
	Genres    []string  `json:"genres"`
}

// UpdateLiveStreamRequest replaces the mutable fields of a broadcast.
type UpdateLiveStreamRequest struct {
	Title     string    `json:"title" binding:"required,min=1,max=256"`
	Slug      string    `json:"slug" binding:"omitempty,max=256"`
	Cancelled bool      `json:"cancelled"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Image     string    `json:"image" binding:"omitempty,url,max=500"`
	URL       string    `json:"url" binding:"omitempty,url,max=500"`
	Genres    []string  `json:"genres"`
}
