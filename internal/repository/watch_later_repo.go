package repository

import (
	"context"

	"tubehub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchLaterRepository struct {
	db *gorm.DB
}

func NewWatchLaterRepository(db *gorm.DB) *WatchLaterRepository {
	return &WatchLaterRepository{db: db}
}

// Add 加入稍后观看，重复加入为空操作
func (r *WatchLaterRepository) Add(ctx context.Context, userID, videoID string) (bool, error) {
	entry := &model.WatchLaterEntry{UserID: userID, VideoID: videoID}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *WatchLaterRepository) Remove(ctx context.Context, userID, videoID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&model.WatchLaterEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *WatchLaterRepository) Exists(ctx context.Context, userID, videoID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.WatchLaterEntry{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).Count(&count).Error
	return count > 0, err
}

// ListVideoIDs 获取稍后观看的视频 ID，最近加入的在前
func (r *WatchLaterRepository) ListVideoIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.WatchLaterEntry{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").Pluck("video_id", &ids).Error
	return ids, err
}
