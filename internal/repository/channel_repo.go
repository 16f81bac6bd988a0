package repository

import (
	"context"
	"strings"

	"tubehub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChannelRepository struct {
	db *gorm.DB
}

func NewChannelRepository(db *gorm.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

// GetByID 根据 ID 查询频道
func (r *ChannelRepository) GetByID(ctx context.Context, id string) (*model.Channel, error) {
	var ch model.Channel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ch).Error
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// CreateIfAbsent 与用户一起创建频道，已存在则忽略
func (r *ChannelRepository) CreateIfAbsent(ctx context.Context, ch *model.Channel) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(ch)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Update 更新频道字段（传入 map，只更新给出的字段）
func (r *ChannelRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Channel, error) {
	result := r.db.WithContext(ctx).Model(&model.Channel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchByName 按名称匹配频道（大小写不敏感）。prefix 为 true 时做前缀匹配，否则做子串匹配
func (r *ChannelRepository) SearchByName(ctx context.Context, term string, prefix bool, limit int) ([]model.Channel, error) {
	pattern := likeEscaper.Replace(strings.ToLower(term)) + "%"
	if !prefix {
		pattern = "%" + pattern
	}

	var channels []model.Channel
	err := r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).
		Order("verified DESC").Order("name ASC").
		Limit(limit).
		Find(&channels).Error
	return channels, err
}
