package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beatstream-go/internal/api/dto"
	"beatstream-go/internal/model"
	"beatstream-go/pkg/logger"
	"beatstream-go/pkg/slug"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PostStore is the primary-store port for the post aggregate,
// including its append-only edit history.
type PostStore interface {
	Create(post *model.Post) error
	GetBySlug(slug string) (*model.Post, error)
	GetVisibleBySlug(slug string, now time.Time) (*model.Post, error)
	ListVisible(skip, limit int, now time.Time) ([]model.Post, error)
	CountVisible(now time.Time) (int64, error)
	ExistsSlug(slug string) (bool, error)
	Delete(id int64) error
	UpdateWithHistory(id int64, updates map[string]interface{}, history *model.PostEditHistory) (*model.Post, error)
	GetHistory(postID int64) ([]model.PostEditHistory, error)
}

// PostService orchestrates the post lifecycle. A post becomes visible
// only once published_at has passed; creation in the past is refused.
type PostService struct {
	postRepo  PostStore
	relations RelationStore
	now       func() time.Time
}

func NewPostService(postRepo PostStore, relations RelationStore) *PostService {
	return &PostService{
		postRepo:  postRepo,
		relations: relations,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts a future-published post and emits permission tuples.
func (s *PostService) Create(ctx context.Context, principal string, req *dto.NewPostRequest) (*model.Post, error) {
	now := s.now()
	if req.PublishedAt.Before(now) {
		return nil, ErrPostPublishedInPast
	}

	postSlug := req.Slug
	if postSlug == "" {
		postSlug = slug.Make(req.Title)
	}
	// Derivation can come up empty (title without ASCII alphanumerics),
	// so both paths are validated.
	if !slug.Valid(postSlug) {
		return nil, ErrInvalidSlug
	}

	taken, err := s.postRepo.ExistsSlug(postSlug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPostSlugNotUnique
	}

	post := &model.Post{
		Title:       req.Title,
		Annotation:  req.Annotation,
		Text:        datatypes.JSONMap(req.Text),
		Slug:        postSlug,
		PublishedAt: req.PublishedAt,
		Thumbnail:   req.Thumbnail,
		UserID:      principal,
	}

	if err := s.postRepo.Create(post); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// Title and slug are both unique; recheck the slug to name the
		// conflicting field.
		taken, slugErr := s.postRepo.ExistsSlug(postSlug)
		if slugErr != nil {
			return nil, slugErr
		}
		if taken {
			return nil, ErrPostSlugNotUnique
		}
		return nil, ErrPostTitleNotUnique
	}

	if err := writeResourceTuples(ctx, s.relations, "post", post.ID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return post, nil
}

// GetBySlug returns a visible post.
func (s *PostService) GetBySlug(ctx context.Context, postSlug string) (*model.Post, error) {
	post, err := s.postRepo.GetVisibleBySlug(postSlug, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// GetAll returns visible posts, newest publication first.
func (s *PostService) GetAll(ctx context.Context, skip, limit int) ([]model.Post, error) {
	return s.postRepo.ListVisible(skip, limit, s.now())
}

// Count counts visible posts.
func (s *PostService) Count(ctx context.Context) (int64, error) {
	return s.postRepo.CountVisible(s.now())
}

// Delete removes the post; history rows cascade with the row. The
// reader tuple removal is best effort.
func (s *PostService) Delete(ctx context.Context, postSlug string) error {
	post, err := s.postRepo.GetBySlug(postSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if err := s.postRepo.Delete(post.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if err := deleteReaderTuple(ctx, s.relations, "post", post.ID); err != nil {
		logger.Warn("Failed to delete post reader tuple",
			zap.Int64("post_id", post.ID), zap.Error(err))
	}

	return nil
}

// Update patches a visible post. With save_history set, the audit
// record lands in the same transaction as the patch.
func (s *PostService) Update(ctx context.Context, postSlug, principal string, req *dto.UpdatePostRequest) (*model.Post, error) {
	now := s.now()

	post, err := s.postRepo.GetVisibleBySlug(postSlug, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	var history *model.PostEditHistory
	if req.SaveHistory {
		if req.HistoryDescription == "" {
			return nil, ErrHistoryDescriptionEmpty
		}
		history = &model.PostEditHistory{
			Description: req.HistoryDescription,
			EditedBy:    principal,
		}
	}

	updates := map[string]interface{}{
		"updated_at": now,
		"updated_by": principal,
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Annotation != nil {
		updates["annotation"] = *req.Annotation
	}
	if req.Text != nil {
		updates["text"] = datatypes.JSONMap(req.Text)
	}
	if req.PublishedAt != nil {
		updates["published_at"] = *req.PublishedAt
	}
	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}

	updated, err := s.postRepo.UpdateWithHistory(post.ID, updates, history)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		// Updates never touch the slug, so a duplicate here is the
		// title constraint.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPostTitleNotUnique
		}
		return nil, err
	}
	return updated, nil
}

// GetHistory returns a post's audit records, newest edit first.
func (s *PostService) GetHistory(ctx context.Context, postSlug string) ([]model.PostEditHistory, error) {
	post, err := s.postRepo.GetBySlug(postSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return s.postRepo.GetHistory(post.ID)
}
