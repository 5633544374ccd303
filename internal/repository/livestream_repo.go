package repository

import (
	"time"

	"beatstream-go/internal/model"

	"gorm.io/gorm"
)

type LiveStreamRepository struct {
	db *gorm.DB
}

func NewLiveStreamRepository(db *gorm.DB) *LiveStreamRepository {
	return &LiveStreamRepository{db: db}
}

// ListBetween returns livestreams starting inside [start, end],
// earliest first.
func (r *LiveStreamRepository) ListBetween(start, end time.Time) ([]model.LiveStream, error) {
	var streams []model.LiveStream
	err := r.db.Where("start_time >= ? AND start_time <= ?", start, end).
		Order("start_time ASC").Find(&streams).Error
	if err != nil {
		return nil, err
	}
	return streams, nil
}

// GetByID returns one livestream.
func (r *LiveStreamRepository) GetByID(id int64) (*model.LiveStream, error) {
	var stream model.LiveStream
	if err := r.db.First(&stream, id).Error; err != nil {
		return nil, err
	}
	return &stream, nil
}

// ExistsSlugInWindow reports whether the slug is already scheduled
// with a start time inside [from, to]. Slug reuse is allowed only
// outside that window.
func (r *LiveStreamRepository) ExistsSlugInWindow(slug string, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&model.LiveStream{}).
		Where("slug = ? AND start_time >= ? AND start_time <= ?", slug, from, to).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a livestream row.
func (r *LiveStreamRepository) Create(stream *model.LiveStream) error {
	return r.db.Create(stream).Error
}

// Update replaces the mutable fields of a row by id.
func (r *LiveStreamRepository) Update(stream *model.LiveStream) error {
	result := r.db.Model(&model.LiveStream{}).Where("id = ?", stream.ID).
		Updates(map[string]interface{}{
			"title":      stream.Title,
			"slug":       stream.Slug,
			"cancelled":  stream.Cancelled,
			"start_time": stream.StartTime,
			"end_time":   stream.EndTime,
			"image":      stream.Image,
			"url":        stream.URL,
			"genres":     stream.Genres,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a row by id.
func (r *LiveStreamRepository) Delete(id int64) error {
	result := r.db.Delete(&model.LiveStream{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
