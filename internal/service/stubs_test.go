package service

import (
	"context"
	"time"

	infraES "beatstream-go/internal/infra/elasticsearch"
	"beatstream-go/internal/infra/permission"
	"beatstream-go/internal/model"

	"gorm.io/gorm"
)

// Hand-rolled stubs for the store ports. Each method delegates to a
// func field when set and falls back to an empty success otherwise.

type stubVideoStore struct {
	list       func(skip, limit int, principal *string) ([]model.Video, error)
	count      func() (int64, error)
	getBySlug  func(slug string, principal *string) (*model.Video, error)
	getByIDs   func(ids []int64) ([]model.Video, error)
	existsSlug func(slug string) (bool, error)
	existsYtID func(ytID string) (bool, error)
	create     func(video *model.Video) error
	update     func(slug string, updates map[string]interface{}) (*model.Video, error)
	softDelete func(id int64) error
}

func (s *stubVideoStore) List(skip, limit int, principal *string) ([]model.Video, error) {
	if s.list != nil {
		return s.list(skip, limit, principal)
	}
	return nil, nil
}

func (s *stubVideoStore) Count() (int64, error) {
	if s.count != nil {
		return s.count()
	}
	return 0, nil
}

func (s *stubVideoStore) GetBySlug(slug string, principal *string) (*model.Video, error) {
	if s.getBySlug != nil {
		return s.getBySlug(slug, principal)
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubVideoStore) GetByIDs(ids []int64) ([]model.Video, error) {
	if s.getByIDs != nil {
		return s.getByIDs(ids)
	}
	return nil, nil
}

func (s *stubVideoStore) ExistsSlug(slug string) (bool, error) {
	if s.existsSlug != nil {
		return s.existsSlug(slug)
	}
	return false, nil
}

func (s *stubVideoStore) ExistsYtID(ytID string) (bool, error) {
	if s.existsYtID != nil {
		return s.existsYtID(ytID)
	}
	return false, nil
}

func (s *stubVideoStore) Create(video *model.Video) error {
	if s.create != nil {
		return s.create(video)
	}
	return nil
}

func (s *stubVideoStore) Update(slug string, updates map[string]interface{}) (*model.Video, error) {
	if s.update != nil {
		return s.update(slug, updates)
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubVideoStore) SoftDelete(id int64) error {
	if s.softDelete != nil {
		return s.softDelete(id)
	}
	return nil
}

type stubIndex struct {
	indexErr  error
	deleteErr error
	searchErr error

	indexed   []*infraES.VideoDoc
	deleted   []int64
	searchIDs []int64
	total     int64
}

func (s *stubIndex) Index(ctx context.Context, doc *infraES.VideoDoc) error {
	if s.indexErr != nil {
		return s.indexErr
	}
	s.indexed = append(s.indexed, doc)
	return nil
}

func (s *stubIndex) Delete(ctx context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubIndex) Search(ctx context.Context, q string, skip, limit int) ([]int64, int64, error) {
	if s.searchErr != nil {
		return nil, 0, s.searchErr
	}
	return s.searchIDs, s.total, nil
}

type tupleCall struct {
	resource permission.Object
	relation string
	subject  *permission.Object
}

type stubRelations struct {
	writeErr  error
	deleteErr error

	writes  []tupleCall
	deletes []tupleCall
}

func (s *stubRelations) Write(ctx context.Context, resource permission.Object, relation string, subject permission.Object, subjectRelation string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes = append(s.writes, tupleCall{resource: resource, relation: relation, subject: &subject})
	return nil
}

func (s *stubRelations) Delete(ctx context.Context, resource permission.Object, relation string, subject *permission.Object, subjectRelation string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletes = append(s.deletes, tupleCall{resource: resource, relation: relation, subject: subject})
	return nil
}

type eventCall struct {
	action  string
	videoID int64
}

type stubEvents struct {
	err    error
	events []eventCall
}

func (s *stubEvents) Publish(ctx context.Context, action string, videoID int64) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, eventCall{action: action, videoID: videoID})
	return nil
}

type stubCounts struct {
	values      map[string]int64
	sets        []string
	invalidated []string
}

func newStubCounts() *stubCounts {
	return &stubCounts{values: make(map[string]int64)}
}

func (s *stubCounts) Get(ctx context.Context, key string) (int64, bool) {
	n, ok := s.values[key]
	return n, ok
}

func (s *stubCounts) Set(ctx context.Context, key string, count int64) {
	s.values[key] = count
	s.sets = append(s.sets, key)
}

func (s *stubCounts) Invalidate(ctx context.Context, key string) {
	delete(s.values, key)
	s.invalidated = append(s.invalidated, key)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
