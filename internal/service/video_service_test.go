package service

import (
	"context"
	"errors"
	"testing"

	"beatstream-go/internal/api/dto"
	infraKafka "beatstream-go/internal/infra/kafka"
	"beatstream-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVideoRequest() *dto.NewVideoRequest {
	return &dto.NewVideoRequest{
		Title:       "Live at X",
		Date:        "2024-05-01",
		YtID:        "abc123",
		YtThumbnail: "https://img.example.com/abc123.jpg",
		Duration:    3600,
	}
}

func TestVideoService_Create_DerivesSlugFromTitle(t *testing.T) {
	store := &stubVideoStore{
		create: func(v *model.Video) error {
			v.ID = 1
			return nil
		},
	}
	index := &stubIndex{}
	relations := &stubRelations{}
	events := &stubEvents{}
	counts := newStubCounts()

	svc := NewVideoService(store, index, relations, events, counts)

	video, err := svc.Create(context.Background(), newVideoRequest())
	require.NoError(t, err)

	assert.Equal(t, "live-at-x", video.Slug)
	assert.Equal(t, date("2024-05-01"), video.Date)

	// Fan-out after the primary commit.
	require.Len(t, index.indexed, 1)
	assert.Equal(t, int64(1), index.indexed[0].ID)
	assert.Equal(t, "live-at-x", index.indexed[0].Slug)

	require.Len(t, relations.writes, 2)
	assert.Equal(t, "writer", relations.writes[0].relation)
	assert.Equal(t, "video", relations.writes[0].resource.Type)
	assert.Equal(t, "reader", relations.writes[1].relation)

	require.Len(t, events.events, 1)
	assert.Equal(t, infraKafka.ActionVideoCreated, events.events[0].action)

	assert.Contains(t, counts.invalidated, "videos")
}

func TestVideoService_Create_YtIDConflict(t *testing.T) {
	store := &stubVideoStore{
		existsYtID: func(string) (bool, error) { return true, nil },
	}
	svc := NewVideoService(store, &stubIndex{}, &stubRelations{}, nil, nil)

	_, err := svc.Create(context.Background(), newVideoRequest())
	assert.ErrorIs(t, err, ErrVideoYtIDNotUnique)
}

func TestVideoService_Create_SlugTakenExpandsOnce(t *testing.T) {
	store := &stubVideoStore{
		existsSlug: func(string) (bool, error) { return true, nil },
		create: func(v *model.Video) error {
			v.ID = 2
			return nil
		},
	}
	svc := NewVideoService(store, &stubIndex{}, &stubRelations{}, nil, nil)

	video, err := svc.Create(context.Background(), newVideoRequest())
	require.NoError(t, err)

	assert.Regexp(t, `^[0-9a-f]{8}-live-at-x$`, video.Slug)
}

func TestVideoService_Create_SlugRaceExpandsThenFails(t *testing.T) {
	// Preflight sees the slug free, insert collides twice.
	attempts := 0
	store := &stubVideoStore{
		create: func(v *model.Video) error {
			attempts++
			return gorm.ErrDuplicatedKey
		},
	}
	svc := NewVideoService(store, &stubIndex{}, &stubRelations{}, nil, nil)

	_, err := svc.Create(context.Background(), newVideoRequest())
	assert.ErrorIs(t, err, ErrVideoSlugNotUnique)
	assert.Equal(t, 2, attempts)
}

func TestVideoService_Create_FutureDateRejected(t *testing.T) {
	svc := NewVideoService(&stubVideoStore{}, &stubIndex{}, &stubRelations{}, nil, nil)

	req := newVideoRequest()
	req.Date = "2099-01-01"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrVideoDateInFuture)
}

func TestVideoService_Create_InvalidExplicitSlug(t *testing.T) {
	svc := NewVideoService(&stubVideoStore{}, &stubIndex{}, &stubRelations{}, nil, nil)

	req := newVideoRequest()
	req.Slug = "Not A Slug"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlug)
}

func TestVideoService_Create_TitleWithoutASCIIRejected(t *testing.T) {
	// The derived slug is empty, so no row may be persisted under it.
	created := false
	store := &stubVideoStore{
		create: func(*model.Video) error {
			created = true
			return nil
		},
	}
	svc := NewVideoService(store, &stubIndex{}, &stubRelations{}, nil, nil)

	req := newVideoRequest()
	req.Title = "Привет Мир"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlug)
	assert.False(t, created)
}

func TestVideoService_Create_YtIDRecheckErrorSurfaces(t *testing.T) {
	// A failed recheck after a duplicate-key race must surface as-is,
	// not be misreported as a slug conflict.
	recheckErr := errors.New("store unavailable")
	checks := 0
	store := &stubVideoStore{
		existsYtID: func(string) (bool, error) {
			checks++
			if checks > 1 {
				return false, recheckErr
			}
			return false, nil
		},
		create: func(*model.Video) error { return gorm.ErrDuplicatedKey },
	}
	svc := NewVideoService(store, &stubIndex{}, &stubRelations{}, nil, nil)

	_, err := svc.Create(context.Background(), newVideoRequest())
	assert.ErrorIs(t, err, recheckErr)
	assert.NotErrorIs(t, err, ErrVideoSlugNotUnique)
}

func TestVideoService_Create_IndexFailureSurfaces(t *testing.T) {
	store := &stubVideoStore{
		create: func(v *model.Video) error {
			v.ID = 3
			return nil
		},
	}
	index := &stubIndex{indexErr: errors.New("es down")}
	svc := NewVideoService(store, index, &stubRelations{}, nil, nil)

	_, err := svc.Create(context.Background(), newVideoRequest())
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestVideoService_Update_NeverTouchesSlug(t *testing.T) {
	// The row must stay reachable under its slug after a patch.
	store := &stubVideoStore{
		update: func(slug string, updates map[string]interface{}) (*model.Video, error) {
			assert.NotContains(t, updates, "slug")
			return &model.Video{ID: 4, Slug: slug, Date: date("2024-05-01")}, nil
		},
	}
	svc := NewVideoService(store, &stubIndex{}, &stubRelations{}, nil, nil)

	title := "New Title"
	video, err := svc.Update(context.Background(), "live-at-x", &dto.UpdateVideoRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "live-at-x", video.Slug)
}

func TestVideoService_GetBySlug_NotFound(t *testing.T) {
	svc := NewVideoService(&stubVideoStore{}, &stubIndex{}, &stubRelations{}, nil, nil)

	_, err := svc.GetBySlug(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideoService_Search_HydratesInRelevanceOrder(t *testing.T) {
	store := &stubVideoStore{
		getByIDs: func(ids []int64) ([]model.Video, error) {
			assert.Equal(t, []int64{7, 3}, ids)
			return []model.Video{{ID: 7}, {ID: 3}}, nil
		},
	}
	index := &stubIndex{searchIDs: []int64{7, 3}, total: 12}
	svc := NewVideoService(store, index, &stubRelations{}, nil, nil)

	videos, total, err := svc.Search(context.Background(), "techno", 0, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, videos, 2)
	assert.Equal(t, int64(7), videos[0].ID)
}

func TestVideoService_Search_UpstreamFailure(t *testing.T) {
	index := &stubIndex{searchErr: errors.New("es down")}
	svc := NewVideoService(&stubVideoStore{}, index, &stubRelations{}, nil, nil)

	_, _, err := svc.Search(context.Background(), "techno", 0, 25)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestVideoService_Delete_SecondaryFailuresSwallowed(t *testing.T) {
	deleted := false
	store := &stubVideoStore{
		getBySlug: func(slug string, principal *string) (*model.Video, error) {
			return &model.Video{ID: 5, Slug: slug}, nil
		},
		softDelete: func(id int64) error {
			deleted = true
			return nil
		},
	}
	index := &stubIndex{deleteErr: errors.New("es down")}
	relations := &stubRelations{deleteErr: errors.New("keto down")}
	events := &stubEvents{}
	counts := newStubCounts()

	svc := NewVideoService(store, index, relations, events, counts)

	// The row is gone from the primary store, so the caller sees success.
	err := svc.Delete(context.Background(), "live-at-x")
	require.NoError(t, err)
	assert.True(t, deleted)

	require.Len(t, events.events, 1)
	assert.Equal(t, infraKafka.ActionVideoDeleted, events.events[0].action)
	assert.Contains(t, counts.invalidated, "videos")
}

func TestVideoService_Delete_NotFound(t *testing.T) {
	svc := NewVideoService(&stubVideoStore{}, &stubIndex{}, &stubRelations{}, nil, nil)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideoService_GetCount_Cached(t *testing.T) {
	calls := 0
	store := &stubVideoStore{
		count: func() (int64, error) {
			calls++
			return 42, nil
		},
	}
	counts := newStubCounts()
	svc := NewVideoService(store, &stubIndex{}, &stubRelations{}, nil, counts)

	n, err := svc.GetCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = svc.GetCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.Equal(t, 1, calls)
}

func TestVideoService_SyncToIndex(t *testing.T) {
	store := &stubVideoStore{
		getByIDs: func(ids []int64) ([]model.Video, error) {
			if ids[0] == 1 {
				return []model.Video{{ID: 1, Title: "Live at X", Slug: "live-at-x", Date: date("2024-05-01")}}, nil
			}
			return nil, nil
		},
	}
	index := &stubIndex{}
	svc := NewVideoService(store, index, &stubRelations{}, nil, nil)

	// Live row upserts the document.
	require.NoError(t, svc.SyncToIndex(context.Background(), 1))
	require.Len(t, index.indexed, 1)

	// Missing or soft-deleted row drops it.
	require.NoError(t, svc.SyncToIndex(context.Background(), 9))
	assert.Equal(t, []int64{9}, index.deleted)
}
