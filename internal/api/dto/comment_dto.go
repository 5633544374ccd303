package dto

// NewCommentRequest adds a comment to a video.
type NewCommentRequest struct {
	Text string `json:"text" binding:"required,min=1,max=120"`
}
