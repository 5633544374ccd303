package dto

// NewVideoRequest creates a catalog item. Slug is derived from the
// title when omitted. Date is a calendar date.
type NewVideoRequest struct {
	Title             string `json:"title" binding:"required,min=1,max=255"`
	Slug              string `json:"slug" binding:"omitempty,max=255"`
	Date              string `json:"date" binding:"required,datetime=2006-01-02"`
	YtID              string `json:"yt_id" binding:"required,max=64"`
	YtThumbnail       string `json:"yt_thumbnail" binding:"required,url,max=500"`
	Duration          int    `json:"duration" binding:"omitempty,min=0"`
	IsBlockedInRussia bool   `json:"is_blocked_in_russia"`
}

// UpdateVideoRequest patches a video; only provided fields change.
type UpdateVideoRequest struct {
	Title             *string `json:"title" binding:"omitempty,min=1,max=255"`
	Date              *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	YtThumbnail       *string `json:"yt_thumbnail" binding:"omitempty,url,max=500"`
	Duration          *int    `json:"duration" binding:"omitempty,min=0"`
	IsBlockedInRussia *bool   `json:"is_blocked_in_russia"`
}
