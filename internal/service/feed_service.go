package service

import (
	"context"

	"tubehub/internal/config"
	"tubehub/internal/model"
	"tubehub/internal/repository"
)

const (
	defaultFeedLimit = 24
	maxFeedLimit     = 100
)

// VideoLister 视频目录的列表能力
type VideoLister interface {
	ListVideos(ctx context.Context, q repository.FeedQuery) ([]model.Video, error)
}

// FeedService 首页视频流与 Styles 短视频流
type FeedService struct {
	catalog VideoLister
	cfg     config.SearchConfig
}

func NewFeedService(catalog VideoLister, cfg config.SearchConfig) *FeedService {
	return &FeedService{catalog: catalog, cfg: cfg}
}

func (s *FeedService) list(ctx context.Context, shorts bool, limit int) ([]model.Video, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	videos, err := s.catalog.ListVideos(ctx, repository.FeedQuery{
		Shorts:            shorts,
		Limit:             limit,
		ExcludeChannelIDs: s.cfg.ExcludedChannelIDs,
	})
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []model.Video{}
	}
	return videos, nil
}

// Videos 普通视频，最新的在前
func (s *FeedService) Videos(ctx context.Context, limit int) ([]model.Video, error) {
	return s.list(ctx, false, limit)
}

// Styles 短视频，最新的在前
func (s *FeedService) Styles(ctx context.Context, limit int) ([]model.Video, error) {
	return s.list(ctx, true, limit)
}
