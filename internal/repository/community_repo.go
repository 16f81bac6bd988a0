package repository

import (
	"context"

	"tubehub/internal/model"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

func (r *CommunityRepository) Create(ctx context.Context, msg *model.CommunityMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// List 最新的在前
func (r *CommunityRepository) List(ctx context.Context, limit int) ([]model.CommunityMessage, error) {
	var msgs []model.CommunityMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&msgs).Error
	return msgs, err
}

// Delete 按 ID 删除，返回是否删除了记录
func (r *CommunityRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommunityMessage{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
