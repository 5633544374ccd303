package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beatstream-go/internal/api/dto"
	infraES "beatstream-go/internal/infra/elasticsearch"
	infraKafka "beatstream-go/internal/infra/kafka"
	"beatstream-go/internal/model"
	"beatstream-go/pkg/logger"
	"beatstream-go/pkg/slug"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const videoCountKey = "videos"

// VideoStore is the primary-store port for the video aggregate.
type VideoStore interface {
	List(skip, limit int, principal *string) ([]model.Video, error)
	Count() (int64, error)
	GetBySlug(slug string, principal *string) (*model.Video, error)
	GetByIDs(ids []int64) ([]model.Video, error)
	ExistsSlug(slug string) (bool, error)
	ExistsYtID(ytID string) (bool, error)
	Create(video *model.Video) error
	Update(slug string, updates map[string]interface{}) (*model.Video, error)
	SoftDelete(id int64) error
}

// VideoService orchestrates the video lifecycle: primary writes first,
// then fan-out to the full-text index and the permission store.
type VideoService struct {
	videoRepo VideoStore
	index     VideoIndex
	relations RelationStore
	events    VideoEventSink
	counts    CountCache
}

func NewVideoService(videoRepo VideoStore, index VideoIndex, relations RelationStore, events VideoEventSink, counts CountCache) *VideoService {
	return &VideoService{
		videoRepo: videoRepo,
		index:     index,
		relations: relations,
		events:    events,
		counts:    counts,
	}
}

// GetAll returns non-deleted videos, newest first by id. A non-nil
// principal adds the is_favorite overlay without changing the set.
func (s *VideoService) GetAll(ctx context.Context, skip, limit int, principal *string) ([]model.Video, error) {
	return s.videoRepo.List(skip, limit, principal)
}

// GetCount returns the number of non-deleted videos, cached.
func (s *VideoService) GetCount(ctx context.Context) (int64, error) {
	if s.counts != nil {
		if n, ok := s.counts.Get(ctx, videoCountKey); ok {
			return n, nil
		}
	}

	n, err := s.videoRepo.Count()
	if err != nil {
		return 0, err
	}
	if s.counts != nil {
		s.counts.Set(ctx, videoCountKey, n)
	}
	return n, nil
}

// GetBySlug returns one non-deleted video.
func (s *VideoService) GetBySlug(ctx context.Context, videoSlug string, principal *string) (*model.Video, error) {
	video, err := s.videoRepo.GetBySlug(videoSlug, principal)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

// Search runs a full-text title query against the index and hydrates
// matches from the primary store, keeping relevance order.
func (s *VideoService) Search(ctx context.Context, q string, skip, limit int) ([]model.Video, int64, error) {
	ids, total, err := s.index.Search(ctx, q, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	videos, err := s.videoRepo.GetByIDs(ids)
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

// Create validates uniqueness, persists the row, then fans out to the
// index and the permission store. The fan-out runs after the primary
// commit; a failure there surfaces even though the row exists.
func (s *VideoService) Create(ctx context.Context, req *dto.NewVideoRequest) (*model.Video, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}
	if date.After(time.Now().UTC().Truncate(24 * time.Hour)) {
		return nil, ErrVideoDateInFuture
	}

	taken, err := s.videoRepo.ExistsYtID(req.YtID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrVideoYtIDNotUnique
	}

	videoSlug := req.Slug
	if videoSlug == "" {
		videoSlug = slug.Make(req.Title)
	}
	// Derivation can come up empty (title without ASCII alphanumerics),
	// so both paths are validated.
	if !slug.Valid(videoSlug) {
		return nil, ErrInvalidSlug
	}

	// Preflight only; the partial unique indexes are authoritative.
	taken, err = s.videoRepo.ExistsSlug(videoSlug)
	if err != nil {
		return nil, err
	}
	expanded := false
	if taken {
		videoSlug = slug.Expand(videoSlug)
		expanded = true
	}

	video := &model.Video{
		Title:             req.Title,
		Slug:              videoSlug,
		Date:              date,
		YtID:              req.YtID,
		YtThumbnail:       req.YtThumbnail,
		Duration:          req.Duration,
		IsBlockedInRussia: req.IsBlockedInRussia,
	}

	if err := s.videoRepo.Create(video); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// The constraint fired under a race. Recheck which one.
		taken, err = s.videoRepo.ExistsYtID(req.YtID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrVideoYtIDNotUnique
		}
		if expanded {
			// Second slug collision is a hard error.
			return nil, ErrVideoSlugNotUnique
		}
		video.Slug = slug.Expand(video.Slug)
		expanded = true
		if err := s.videoRepo.Create(video); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrVideoSlugNotUnique
			}
			return nil, err
		}
	}

	if s.counts != nil {
		s.counts.Invalidate(ctx, videoCountKey)
	}

	if err := s.index.Index(ctx, videoDoc(video)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if err := writeResourceTuples(ctx, s.relations, "video", video.ID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	s.publishEvent(ctx, infraKafka.ActionVideoCreated, video.ID)

	return video, nil
}

// Update patches a non-deleted row by slug and re-indexes it.
func (s *VideoService) Update(ctx context.Context, videoSlug string, req *dto.UpdateVideoRequest) (*model.Video, error) {
	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("parse date: %w", err)
		}
		updates["date"] = date
	}
	if req.YtThumbnail != nil {
		updates["yt_thumbnail"] = *req.YtThumbnail
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.IsBlockedInRussia != nil {
		updates["is_blocked_in_russia"] = *req.IsBlockedInRussia
	}

	if len(updates) == 0 {
		return s.GetBySlug(ctx, videoSlug, nil)
	}

	video, err := s.videoRepo.Update(videoSlug, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if err := s.index.Index(ctx, videoDoc(video)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	s.publishEvent(ctx, infraKafka.ActionVideoUpdated, video.ID)

	return video, nil
}

// Delete soft-deletes the row, then removes the index document and the
// reader tuple. The row is already gone from every read, so secondary
// failures are logged and swallowed; the reconciler converges later.
func (s *VideoService) Delete(ctx context.Context, videoSlug string) error {
	video, err := s.videoRepo.GetBySlug(videoSlug, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	if err := s.videoRepo.SoftDelete(video.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	if s.counts != nil {
		s.counts.Invalidate(ctx, videoCountKey)
	}

	if err := s.index.Delete(ctx, video.ID); err != nil {
		logger.Warn("Failed to delete video from index",
			zap.Int64("video_id", video.ID), zap.Error(err))
	}
	if err := deleteReaderTuple(ctx, s.relations, "video", video.ID); err != nil {
		logger.Warn("Failed to delete video reader tuple",
			zap.Int64("video_id", video.ID), zap.Error(err))
	}

	s.publishEvent(ctx, infraKafka.ActionVideoDeleted, video.ID)

	return nil
}

// SyncToIndex re-projects one row into the index: missing or deleted
// rows drop the document, live rows upsert it. Used by the reconciler.
func (s *VideoService) SyncToIndex(ctx context.Context, videoID int64) error {
	videos, err := s.videoRepo.GetByIDs([]int64{videoID})
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		return s.index.Delete(ctx, videoID)
	}
	return s.index.Index(ctx, videoDoc(&videos[0]))
}

func (s *VideoService) publishEvent(ctx context.Context, action string, videoID int64) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, action, videoID); err != nil {
		logger.Warn("Failed to publish video event",
			zap.String("action", action),
			zap.Int64("video_id", videoID),
			zap.Error(err),
		)
	}
}

func videoDoc(v *model.Video) *infraES.VideoDoc {
	return &infraES.VideoDoc{
		ID:       v.ID,
		Title:    v.Title,
		Slug:     v.Slug,
		YtID:     v.YtID,
		Date:     v.Date.Format("2006-01-02"),
		Duration: v.Duration,
	}
}
