package service

import (
	"context"
	"errors"

	"beatstream-go/internal/model"

	"gorm.io/gorm"
)

// LikeStore is the primary-store port for the user-video like graph.
type LikeStore interface {
	Exists(userID string, videoID int64) (bool, error)
	Create(userID string, videoID int64) error
	Delete(userID string, videoID int64) (bool, error)
	ListVideos(userID string, skip, limit int) ([]model.Video, error)
}

// LikeService manages the per-user like graph. Like and unlike are
// idempotent-by-presence: repeating either fails.
type LikeService struct {
	likeRepo  LikeStore
	videoRepo VideoStore
}

func NewLikeService(likeRepo LikeStore, videoRepo VideoStore) *LikeService {
	return &LikeService{likeRepo: likeRepo, videoRepo: videoRepo}
}

// Like marks the video liked by the principal.
func (s *LikeService) Like(ctx context.Context, principal, videoSlug string) error {
	video, err := s.getVideo(videoSlug)
	if err != nil {
		return err
	}

	liked, err := s.likeRepo.Exists(principal, video.ID)
	if err != nil {
		return err
	}
	if liked {
		return ErrAlreadyLiked
	}

	if err := s.likeRepo.Create(principal, video.ID); err != nil {
		// The composite key closed the race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyLiked
		}
		return err
	}
	return nil
}

// Unlike removes the mark.
func (s *LikeService) Unlike(ctx context.Context, principal, videoSlug string) error {
	video, err := s.getVideo(videoSlug)
	if err != nil {
		return err
	}

	deleted, err := s.likeRepo.Delete(principal, video.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotLiked
	}
	return nil
}

// List returns the principal's liked videos, newest catalog date first.
func (s *LikeService) List(ctx context.Context, principal string, skip, limit int) ([]model.Video, error) {
	return s.likeRepo.ListVideos(principal, skip, limit)
}

// IsLiked probes the (principal, video) pair.
func (s *LikeService) IsLiked(ctx context.Context, principal, videoSlug string) (bool, error) {
	video, err := s.getVideo(videoSlug)
	if err != nil {
		return false, err
	}
	return s.likeRepo.Exists(principal, video.ID)
}

func (s *LikeService) getVideo(videoSlug string) (*model.Video, error) {
	video, err := s.videoRepo.GetBySlug(videoSlug, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}
