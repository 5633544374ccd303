package service

import (
	"context"
	"testing"
	"time"

	"beatstream-go/internal/api/dto"
	"beatstream-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubStreamStore struct {
	listBetween        func(start, end time.Time) ([]model.LiveStream, error)
	getByID            func(id int64) (*model.LiveStream, error)
	existsSlugInWindow func(slug string, from, to time.Time) (bool, error)
	create             func(stream *model.LiveStream) error
	update             func(stream *model.LiveStream) error
	deleteFn           func(id int64) error
}

func (s *stubStreamStore) ListBetween(start, end time.Time) ([]model.LiveStream, error) {
	if s.listBetween != nil {
		return s.listBetween(start, end)
	}
	return nil, nil
}

func (s *stubStreamStore) GetByID(id int64) (*model.LiveStream, error) {
	if s.getByID != nil {
		return s.getByID(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubStreamStore) ExistsSlugInWindow(slug string, from, to time.Time) (bool, error) {
	if s.existsSlugInWindow != nil {
		return s.existsSlugInWindow(slug, from, to)
	}
	return false, nil
}

func (s *stubStreamStore) Create(stream *model.LiveStream) error {
	if s.create != nil {
		return s.create(stream)
	}
	return nil
}

func (s *stubStreamStore) Update(stream *model.LiveStream) error {
	if s.update != nil {
		return s.update(stream)
	}
	return nil
}

func (s *stubStreamStore) Delete(id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

func newStreamRequest(start time.Time) *dto.NewLiveStreamRequest {
	return &dto.NewLiveStreamRequest{
		Title:     "Friday Night Mix",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Genres:    []string{"techno", "house"},
	}
}

func TestLiveStreamService_Create_ChecksReuseWindow(t *testing.T) {
	start := time.Date(2024, 7, 5, 20, 0, 0, 0, time.UTC)

	var gotFrom, gotTo time.Time
	store := &stubStreamStore{
		existsSlugInWindow: func(slug string, from, to time.Time) (bool, error) {
			assert.Equal(t, "friday-night-mix", slug)
			gotFrom, gotTo = from, to
			return false, nil
		},
		create: func(stream *model.LiveStream) error {
			stream.ID = 1
			return nil
		},
	}
	svc := NewLiveStreamService(store)

	stream, err := svc.Create(context.Background(), newStreamRequest(start))
	require.NoError(t, err)

	assert.Equal(t, "friday-night-mix", stream.Slug)
	assert.Equal(t, start.Add(-2*24*time.Hour), gotFrom)
	assert.Equal(t, start.Add(31*24*time.Hour), gotTo)
}

func TestLiveStreamService_Create_SlugInWindowConflicts(t *testing.T) {
	store := &stubStreamStore{
		existsSlugInWindow: func(string, time.Time, time.Time) (bool, error) { return true, nil },
	}
	svc := NewLiveStreamService(store)

	start := time.Date(2024, 7, 5, 20, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), newStreamRequest(start))
	assert.ErrorIs(t, err, ErrLiveStreamAlreadyExists)
}

func TestLiveStreamService_Create_EndBeforeStartRejected(t *testing.T) {
	svc := NewLiveStreamService(&stubStreamStore{})

	start := time.Date(2024, 7, 5, 20, 0, 0, 0, time.UTC)
	req := newStreamRequest(start)
	req.EndTime = start.Add(-time.Hour)

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrLiveStreamInvalidTime)
}

func TestLiveStreamService_Create_TitleWithoutASCIIRejected(t *testing.T) {
	created := false
	store := &stubStreamStore{
		create: func(*model.LiveStream) error {
			created = true
			return nil
		},
	}
	svc := NewLiveStreamService(store)

	start := time.Date(2024, 7, 5, 20, 0, 0, 0, time.UTC)
	req := newStreamRequest(start)
	req.Title = "Привет Мир"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlug)
	assert.False(t, created)
}

func TestLiveStreamService_Create_RaceFallsBackToConflict(t *testing.T) {
	store := &stubStreamStore{
		create: func(*model.LiveStream) error { return gorm.ErrDuplicatedKey },
	}
	svc := NewLiveStreamService(store)

	start := time.Date(2024, 7, 5, 20, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), newStreamRequest(start))
	assert.ErrorIs(t, err, ErrLiveStreamAlreadyExists)
}

func TestLiveStreamService_Update_NotFound(t *testing.T) {
	store := &stubStreamStore{
		update: func(*model.LiveStream) error { return gorm.ErrRecordNotFound },
	}
	svc := NewLiveStreamService(store)

	start := time.Date(2024, 7, 5, 20, 0, 0, 0, time.UTC)
	_, err := svc.Update(context.Background(), 99, &dto.UpdateLiveStreamRequest{
		Title:     "Friday Night Mix",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrLiveStreamNotFound)
}

func TestLiveStreamService_Delete_NotFound(t *testing.T) {
	store := &stubStreamStore{
		deleteFn: func(int64) error { return gorm.ErrRecordNotFound },
	}
	svc := NewLiveStreamService(store)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrLiveStreamNotFound)
}
