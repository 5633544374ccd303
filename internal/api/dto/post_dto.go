package dto

import "time"

// NewPostRequest creates a post. Text is a structured document stored
// opaque. PublishedAt must not be in the past.
type NewPostRequest struct {
	Title       string                 `json:"title" binding:"required,min=1,max=100"`
	Annotation  *string                `json:"annotation" binding:"omitempty,max=500"`
	Text        map[string]interface{} `json:"text" binding:"required"`
	Slug        string                 `json:"slug" binding:"omitempty,max=255"`
	PublishedAt time.Time              `json:"published_at" binding:"required"`
	Thumbnail   *string                `json:"thumbnail" binding:"omitempty,url,max=500"`
}

// UpdatePostRequest patches a post. When SaveHistory is set a
// non-empty HistoryDescription is required and an audit record is
// appended in the same transaction as the patch.
type UpdatePostRequest struct {
	Title              *string                `json:"title" binding:"omitempty,min=1,max=100"`
	Annotation         *string                `json:"annotation" binding:"omitempty,max=500"`
	Text               map[string]interface{} `json:"text"`
	PublishedAt        *time.Time             `json:"published_at"`
	Thumbnail          *string                `json:"thumbnail" binding:"omitempty,url,max=500"`
	SaveHistory        bool                   `json:"save_history"`
	HistoryDescription string                 `json:"history_description"`
}
