package service

import (
	"context"
	"errors"
	"strings"

	"tubehub/internal/api/dto"
	"tubehub/internal/model"
	"tubehub/internal/repository"

	"gorm.io/gorm"
)

// SchemaEnsurer 惰性建表
type SchemaEnsurer interface {
	Ensure(ctx context.Context, feature string) error
}

// EngagementService 维护 profile 的保存状态（稍后观看 / 播放列表）。
// 不做任何缓存，每次读取都以关系库当前状态为准
type EngagementService struct {
	schema         SchemaEnsurer
	playlistRepo   *repository.PlaylistRepository
	watchLaterRepo *repository.WatchLaterRepository
}

func NewEngagementService(schema SchemaEnsurer, playlistRepo *repository.PlaylistRepository, watchLaterRepo *repository.WatchLaterRepository) *EngagementService {
	return &EngagementService{
		schema:         schema,
		playlistRepo:   playlistRepo,
		watchLaterRepo: watchLaterRepo,
	}
}

// EnsureSchema 确保播放列表 / 稍后观看相关表存在
func (s *EngagementService) EnsureSchema(ctx context.Context) error {
	return s.schema.Ensure(ctx, repository.FeatureEngagement)
}

func (s *EngagementService) prepare(ctx context.Context, profileID, videoID string) error {
	if profileID == "" {
		return ErrNoActiveProfile
	}
	if strings.TrimSpace(videoID) == "" {
		return ErrMissingVideoID
	}
	return s.EnsureSchema(ctx)
}

// GetSaveStatus 查询视频是否在稍后观看中，以及在 profile 各播放列表中的成员状态
func (s *EngagementService) GetSaveStatus(ctx context.Context, profileID, videoID string) (*dto.SaveStatus, error) {
	if err := s.prepare(ctx, profileID, videoID); err != nil {
		return nil, err
	}

	inWatchLater, err := s.watchLaterRepo.Exists(ctx, profileID, videoID)
	if err != nil {
		return nil, err
	}

	playlists, err := s.playlistRepo.ListByUser(ctx, profileID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(playlists))
	for i := range playlists {
		ids = append(ids, playlists[i].ID)
	}
	membership, err := s.playlistRepo.BatchCheckMembership(ctx, videoID, ids)
	if err != nil {
		return nil, err
	}

	statuses := make([]dto.PlaylistStatus, 0, len(playlists))
	for i := range playlists {
		statuses = append(statuses, dto.PlaylistStatus{
			ID:    playlists[i].ID,
			Name:  playlists[i].Name,
			Saved: membership[playlists[i].ID],
		})
	}

	return &dto.SaveStatus{
		VideoID:    videoID,
		WatchLater: inWatchLater,
		Playlists:  statuses,
	}, nil
}

// Save 保存视频。target=playlist 且未给 playlistId 时按 newPlaylistName 新建播放列表
func (s *EngagementService) Save(ctx context.Context, profileID string, req *dto.SaveRequest) (*dto.SaveResult, error) {
	if err := s.prepare(ctx, profileID, req.VideoID); err != nil {
		return nil, err
	}

	switch req.Target {
	case dto.TargetWatchLater:
		added, err := s.watchLaterRepo.Add(ctx, profileID, req.VideoID)
		if err != nil {
			return nil, err
		}
		return &dto.SaveResult{VideoID: req.VideoID, Target: req.Target, Added: added}, nil

	case dto.TargetPlaylist:
		return s.saveToPlaylist(ctx, profileID, req)

	default:
		return nil, ErrInvalidTarget
	}
}

func (s *EngagementService) saveToPlaylist(ctx context.Context, profileID string, req *dto.SaveRequest) (*dto.SaveResult, error) {
	result := &dto.SaveResult{VideoID: req.VideoID, Target: req.Target}

	var playlistID int64
	switch {
	case req.PlaylistID != nil:
		if err := s.checkOwnership(ctx, profileID, *req.PlaylistID); err != nil {
			return nil, err
		}
		playlistID = *req.PlaylistID

	case strings.TrimSpace(req.NewPlaylistName) != "":
		p, err := s.playlistRepo.Create(ctx, profileID, strings.TrimSpace(req.NewPlaylistName))
		if err != nil {
			return nil, err
		}
		playlistID = p.ID
		result.Playlist = &dto.PlaylistInfo{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}

	default:
		return nil, ErrMissingPlaylist
	}

	added, err := s.playlistRepo.AddItem(ctx, playlistID, req.VideoID)
	if err != nil {
		return nil, err
	}
	result.PlaylistID = &playlistID
	result.Added = added
	return result, nil
}

// Unsave 取消保存，对未保存的视频是空操作
func (s *EngagementService) Unsave(ctx context.Context, profileID string, req *dto.UnsaveRequest) error {
	if err := s.prepare(ctx, profileID, req.VideoID); err != nil {
		return err
	}

	switch req.Target {
	case dto.TargetWatchLater:
		_, err := s.watchLaterRepo.Remove(ctx, profileID, req.VideoID)
		return err

	case dto.TargetPlaylist:
		if req.PlaylistID == nil {
			return ErrMissingPlaylistID
		}
		if err := s.checkOwnership(ctx, profileID, *req.PlaylistID); err != nil {
			return err
		}
		_, err := s.playlistRepo.RemoveItem(ctx, *req.PlaylistID, req.VideoID)
		return err

	default:
		return ErrInvalidTarget
	}
}

func (s *EngagementService) checkOwnership(ctx context.Context, profileID string, playlistID int64) error {
	if _, err := s.playlistRepo.GetOwned(ctx, profileID, playlistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlaylistNotFound
		}
		return err
	}
	return nil
}

// ListPlaylists 获取 profile 的播放列表
func (s *EngagementService) ListPlaylists(ctx context.Context, profileID string) ([]dto.PlaylistInfo, error) {
	if profileID == "" {
		return nil, ErrNoActiveProfile
	}
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	playlists, err := s.playlistRepo.ListByUser(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return toPlaylistInfos(playlists), nil
}

// ListPlaylistVideos 获取自己某个播放列表中的视频 ID
func (s *EngagementService) ListPlaylistVideos(ctx context.Context, profileID string, playlistID int64) ([]string, error) {
	if profileID == "" {
		return nil, ErrNoActiveProfile
	}
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, profileID, playlistID); err != nil {
		return nil, err
	}
	ids, err := s.playlistRepo.ListVideoIDs(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// ListWatchLater 获取稍后观看的视频 ID
func (s *EngagementService) ListWatchLater(ctx context.Context, profileID string) ([]string, error) {
	if profileID == "" {
		return nil, ErrNoActiveProfile
	}
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	ids, err := s.watchLaterRepo.ListVideoIDs(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func toPlaylistInfos(playlists []model.Playlist) []dto.PlaylistInfo {
	items := make([]dto.PlaylistInfo, 0, len(playlists))
	for i := range playlists {
		items = append(items, dto.PlaylistInfo{
			ID:        playlists[i].ID,
			Name:      playlists[i].Name,
			CreatedAt: playlists[i].CreatedAt,
		})
	}
	return items
}
