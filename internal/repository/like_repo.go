package repository

import (
	"beatstream-go/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Exists probes the (user, video) edge.
func (r *LikeRepository) Exists(userID string, videoID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikedVideo{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).Count(&count).Error
	return count > 0, err
}

// Create inserts the edge. The composite primary key rejects a
// duplicate under a race.
func (r *LikeRepository) Create(userID string, videoID int64) error {
	return r.db.Create(&model.LikedVideo{UserID: userID, VideoID: videoID}).Error
}

// Delete removes the edge, reporting whether a row was present.
func (r *LikeRepository) Delete(userID string, videoID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&model.LikedVideo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListVideos returns the non-deleted videos the user liked, newest
// catalog date first.
func (r *LikeRepository) ListVideos(userID string, skip, limit int) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Model(&model.Video{}).
		Joins("JOIN liked_videos ON liked_videos.video_id = videos.id").
		Where("liked_videos.user_id = ? AND videos.deleted = false", userID).
		Order("videos.date DESC").
		Offset(skip).Limit(limit).
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}
