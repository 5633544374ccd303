package repository

import (
	"time"

	"beatstream-go/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a post row.
func (r *PostRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

// GetBySlug returns a post regardless of visibility.
func (r *PostRepository) GetBySlug(slug string) (*model.Post, error) {
	var post model.Post
	if err := r.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetVisibleBySlug returns a post only once its publication instant
// has passed.
func (r *PostRepository) GetVisibleBySlug(slug string, now time.Time) (*model.Post, error) {
	var post model.Post
	err := r.db.Where("slug = ? AND published_at <= ?", slug, now).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListVisible returns visible posts, newest publication first.
func (r *PostRepository) ListVisible(skip, limit int, now time.Time) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Where("published_at <= ?", now).
		Order("published_at DESC").Offset(skip).Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// CountVisible counts visible posts.
func (r *PostRepository) CountVisible(now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Where("published_at <= ?", now).Count(&count).Error
	return count, err
}

// ExistsSlug reports whether any post holds the slug.
func (r *PostRepository) ExistsSlug(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Delete removes the post row. History rows go with it through the
// ON DELETE CASCADE foreign key.
func (r *PostRepository) Delete(id int64) error {
	result := r.db.Delete(&model.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateWithHistory patches the post and, when history is non-nil,
// appends the audit record in the same transaction. Both writes commit
// together or not at all.
func (r *PostRepository) UpdateWithHistory(id int64, updates map[string]interface{}, history *model.PostEditHistory) (*model.Post, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Post{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if history != nil {
			history.PostID = id
			if err := tx.Create(history).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetHistory returns the post's audit records, newest edit first.
func (r *PostRepository) GetHistory(postID int64) ([]model.PostEditHistory, error) {
	var history []model.PostEditHistory
	err := r.db.Where("post_id = ?", postID).
		Order("edited_at DESC").Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}
