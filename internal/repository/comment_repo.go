package repository

import (
	"beatstream-go/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment; published_at is server-assigned.
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// ListByVideo returns a video's comments, oldest first by id.
func (r *CommentRepository) ListByVideo(videoID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Where("video_id = ?", videoID).
		Order("id ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// List returns comments across all videos, oldest first by id.
func (r *CommentRepository) List(skip, limit int) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Order("id ASC").Offset(skip).Limit(limit).Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Count returns the global comment count.
func (r *CommentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Count(&count).Error
	return count, err
}
