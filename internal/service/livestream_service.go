package service

import (
	"context"
	"errors"
	"time"

	"beatstream-go/internal/api/dto"
	"beatstream-go/internal/model"
	"beatstream-go/pkg/slug"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Slug-reuse window around a new livestream's start time. A slug may
// recur only with a start time outside [start-2d, start+31d].
const (
	slugWindowBefore = 2 * 24 * time.Hour
	slugWindowAfter  = 31 * 24 * time.Hour
)

// LiveStreamStore is the primary-store port for the schedule.
type LiveStreamStore interface {
	ListBetween(start, end time.Time) ([]model.LiveStream, error)
	GetByID(id int64) (*model.LiveStream, error)
	ExistsSlugInWindow(slug string, from, to time.Time) (bool, error)
	Create(stream *model.LiveStream) error
	Update(stream *model.LiveStream) error
	Delete(id int64) error
}

// LiveStreamService orchestrates the broadcast schedule.
type LiveStreamService struct {
	streamRepo LiveStreamStore
}

func NewLiveStreamService(streamRepo LiveStreamStore) *LiveStreamService {
	return &LiveStreamService{streamRepo: streamRepo}
}

// GetAll returns livestreams starting inside [start, end].
func (s *LiveStreamService) GetAll(ctx context.Context, start, end time.Time) ([]model.LiveStream, error) {
	return s.streamRepo.ListBetween(start, end)
}

// GetByID returns one livestream.
func (s *LiveStreamService) GetByID(ctx context.Context, id int64) (*model.LiveStream, error) {
	stream, err := s.streamRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLiveStreamNotFound
		}
		return nil, err
	}
	return stream, nil
}

// Create schedules a broadcast, refusing a slug already scheduled
// inside the reuse window.
func (s *LiveStreamService) Create(ctx context.Context, req *dto.NewLiveStreamRequest) (*model.LiveStream, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrLiveStreamInvalidTime
	}

	streamSlug := req.Slug
	if streamSlug == "" {
		streamSlug = slug.Make(req.Title)
	}
	// Derivation can come up empty (title without ASCII alphanumerics),
	// so both paths are validated.
	if !slug.Valid(streamSlug) {
		return nil, ErrInvalidSlug
	}

	taken, err := s.streamRepo.ExistsSlugInWindow(
		streamSlug,
		req.StartTime.Add(-slugWindowBefore),
		req.StartTime.Add(slugWindowAfter),
	)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrLiveStreamAlreadyExists
	}

	stream := &model.LiveStream{
		Title:     req.Title,
		Slug:      streamSlug,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Image:     req.Image,
		URL:       req.URL,
		Genres:    datatypes.NewJSONSlice(req.Genres),
	}

	if err := s.streamRepo.Create(stream); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLiveStreamAlreadyExists
		}
		return nil, err
	}
	return stream, nil
}

// Update replaces a broadcast's mutable fields by id.
func (s *LiveStreamService) Update(ctx context.Context, id int64, req *dto.UpdateLiveStreamRequest) (*model.LiveStream, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrLiveStreamInvalidTime
	}

	streamSlug := req.Slug
	if streamSlug == "" {
		streamSlug = slug.Make(req.Title)
	}
	if !slug.Valid(streamSlug) {
		return nil, ErrInvalidSlug
	}

	stream := &model.LiveStream{
		ID:        id,
		Title:     req.Title,
		Slug:      streamSlug,
		Cancelled: req.Cancelled,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Image:     req.Image,
		URL:       req.URL,
		Genres:    datatypes.NewJSONSlice(req.Genres),
	}

	if err := s.streamRepo.Update(stream); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLiveStreamNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLiveStreamAlreadyExists
		}
		return nil, err
	}
	return stream, nil
}

// Delete removes a broadcast by id.
func (s *LiveStreamService) Delete(ctx context.Context, id int64) error {
	if err := s.streamRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLiveStreamNotFound
		}
		return err
	}
	return nil
}
