package service

import (
	"context"
	"errors"

	"beatstream-go/internal/model"

	"gorm.io/gorm"
)

const commentCountKey = "comments"

// CommentStore is the primary-store port for the comment stream.
type CommentStore interface {
	Create(comment *model.Comment) error
	ListByVideo(videoID int64) ([]model.Comment, error)
	List(skip, limit int) ([]model.Comment, error)
	Count() (int64, error)
}

// CommentService manages the per-video comment stream. Comments have
// no update path.
type CommentService struct {
	commentRepo CommentStore
	videoRepo   VideoStore
	counts      CountCache
}

func NewCommentService(commentRepo CommentStore, videoRepo VideoStore, counts CountCache) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		counts:      counts,
	}
}

// Create stores a comment on a non-deleted video; published_at is
// server-assigned.
func (s *CommentService) Create(ctx context.Context, principal, videoSlug, text string) (*model.Comment, error) {
	video, err := s.videoRepo.GetBySlug(videoSlug, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		UserID:  principal,
		VideoID: video.ID,
		Text:    text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if s.counts != nil {
		s.counts.Invalidate(ctx, commentCountKey)
	}
	return comment, nil
}

// GetForVideo returns a video's comments, oldest first by id.
func (s *CommentService) GetForVideo(ctx context.Context, videoSlug string) ([]model.Comment, error) {
	video, err := s.videoRepo.GetBySlug(videoSlug, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return s.commentRepo.ListByVideo(video.ID)
}

// GetAll returns comments across videos, oldest first by id.
func (s *CommentService) GetAll(ctx context.Context, skip, limit int) ([]model.Comment, error) {
	return s.commentRepo.List(skip, limit)
}

// Count returns the global comment count, cached.
func (s *CommentService) Count(ctx context.Context) (int64, error) {
	if s.counts != nil {
		if n, ok := s.counts.Get(ctx, commentCountKey); ok {
			return n, nil
		}
	}

	n, err := s.commentRepo.Count()
	if err != nil {
		return 0, err
	}
	if s.counts != nil {
		s.counts.Set(ctx, commentCountKey, n)
	}
	return n, nil
}
