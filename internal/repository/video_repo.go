package repository

import (
	"beatstream-go/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// withFavoriteOverlay projects is_favorite for the given principal via
// a LEFT OUTER JOIN on liked_videos. The join never changes which rows
// are returned.
func withFavoriteOverlay(q *gorm.DB, principal string) *gorm.DB {
	return q.
		Select("videos.*, (liked_videos.user_id IS NOT NULL) AS is_favorite").
		Joins("LEFT JOIN liked_videos ON liked_videos.video_id = videos.id AND liked_videos.user_id = ?", principal)
}

// List returns non-deleted videos, newest first by id. A non-nil
// principal adds the is_favorite overlay.
func (r *VideoRepository) List(skip, limit int, principal *string) ([]model.Video, error) {
	query := r.db.Model(&model.Video{}).Where("videos.deleted = false")
	if principal != nil {
		query = withFavoriteOverlay(query, *principal)
	}

	var videos []model.Video
	err := query.Order("videos.id DESC").Offset(skip).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// Count returns the number of non-deleted videos.
func (r *VideoRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Video{}).Where("deleted = false").Count(&count).Error
	return count, err
}

// GetBySlug returns one non-deleted video, with the favorite overlay
// when a principal is given.
func (r *VideoRepository) GetBySlug(slug string, principal *string) (*model.Video, error) {
	query := r.db.Model(&model.Video{}).Where("videos.slug = ? AND videos.deleted = false", slug)
	if principal != nil {
		query = withFavoriteOverlay(query, *principal)
	}

	var video model.Video
	if err := query.First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByID returns one non-deleted video.
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Where("id = ? AND deleted = false", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDs returns non-deleted videos for the given ids, in the order
// the ids were passed (search results keep ES relevance order).
func (r *VideoRepository) GetByIDs(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var videos []model.Video
	err := r.db.Where("id IN ? AND deleted = false", ids).Find(&videos).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = &videos[i]
	}

	ordered := make([]model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, *v)
		}
	}
	return ordered, nil
}

// ExistsSlug reports whether a non-deleted video holds the slug.
func (r *VideoRepository) ExistsSlug(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Video{}).
		Where("slug = ? AND deleted = false", slug).Count(&count).Error
	return count > 0, err
}

// ExistsYtID reports whether a non-deleted video holds the provider id.
func (r *VideoRepository) ExistsYtID(ytID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Video{}).
		Where("yt_id = ? AND deleted = false", ytID).Count(&count).Error
	return count > 0, err
}

// Create inserts a video row.
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// Update patches a non-deleted row by slug and returns it refreshed.
func (r *VideoRepository) Update(slug string, updates map[string]interface{}) (*model.Video, error) {
	result := r.db.Model(&model.Video{}).
		Where("slug = ? AND deleted = false", slug).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	// The slug itself is immutable through this path, so the refreshed
	// row is reachable under the same key.
	return r.GetBySlug(slug, nil)
}

// SoftDelete marks a row deleted. The row never leaves the table.
func (r *VideoRepository) SoftDelete(id int64) error {
	result := r.db.Model(&model.Video{}).
		Where("id = ? AND deleted = false", id).
		Update("deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
