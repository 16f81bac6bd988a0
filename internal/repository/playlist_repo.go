package repository

import (
	"context"

	"tubehub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create 创建播放列表，生成的 ID 直接回填到返回值
func (r *PlaylistRepository) Create(ctx context.Context, userID, name string) (*model.Playlist, error) {
	p := &model.Playlist{UserID: userID, Name: name}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// GetOwned 查询属于指定 profile 的播放列表
func (r *PlaylistRepository) GetOwned(ctx context.Context, userID string, id int64) (*model.Playlist, error) {
	var p model.Playlist
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByUser 获取 profile 的全部播放列表，按创建顺序
func (r *PlaylistRepository) ListByUser(ctx context.Context, userID string) ([]model.Playlist, error) {
	var playlists []model.Playlist
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at ASC").Order("id ASC").Find(&playlists).Error
	return playlists, err
}

// AddItem 插入成员行，已存在时忽略。返回是否真正插入
func (r *PlaylistRepository) AddItem(ctx context.Context, playlistID int64, videoID string) (bool, error) {
	item := &model.PlaylistItem{PlaylistID: playlistID, VideoID: videoID}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(item)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RemoveItem 删除成员行，不存在时不报错
func (r *PlaylistRepository) RemoveItem(ctx context.Context, playlistID int64, videoID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// BatchCheckMembership 一次查询得到视频在多个播放列表中的成员状态
func (r *PlaylistRepository) BatchCheckMembership(ctx context.Context, videoID string, playlistIDs []int64) (map[int64]bool, error) {
	if len(playlistIDs) == 0 {
		return map[int64]bool{}, nil
	}

	var memberIDs []int64
	err := r.db.WithContext(ctx).Model(&model.PlaylistItem{}).
		Where("video_id = ? AND playlist_id IN ?", videoID, playlistIDs).
		Pluck("playlist_id", &memberIDs).Error
	if err != nil {
		return nil, err
	}

	memberSet := make(map[int64]bool, len(memberIDs))
	for _, id := range memberIDs {
		memberSet[id] = true
	}

	result := make(map[int64]bool, len(playlistIDs))
	for _, id := range playlistIDs {
		result[id] = memberSet[id]
	}
	return result, nil
}

// ListVideoIDs 获取播放列表中的视频 ID，按加入时间
func (r *PlaylistRepository) ListVideoIDs(ctx context.Context, playlistID int64) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.PlaylistItem{}).
		Where("playlist_id = ?", playlistID).
		Order("created_at ASC").Pluck("video_id", &ids).Error
	return ids, err
}
