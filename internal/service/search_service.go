package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"tubehub/internal/api/dto"
	"tubehub/internal/config"
	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/pkg/logger"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

// 少于该长度（按字符）的查询直接返回空结果
const minQueryLength = 2

// VideoCatalog 视频目录的搜索能力
type VideoCatalog interface {
	SearchVideos(ctx context.Context, q repository.CatalogQuery) ([]model.Video, error)
}

// ChannelFinder 关系库中按名称查找频道
type ChannelFinder interface {
	SearchByName(ctx context.Context, term string, prefix bool, limit int) ([]model.Channel, error)
}

// SearchService 把一次查询同时发往视频目录和频道表并合并结果。
// 两路互相隔离：一路失败只让该路结果为空
type SearchService struct {
	catalog  VideoCatalog
	channels ChannelFinder
	cfg      config.SearchConfig
}

func NewSearchService(catalog VideoCatalog, channels ChannelFinder, cfg config.SearchConfig) *SearchService {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 5
	}
	if cfg.DropdownMax <= 0 {
		cfg.DropdownMax = 8
	}
	if cfg.MaxLimit < cfg.DefaultLimit {
		cfg.MaxLimit = 50
	}
	return &SearchService{catalog: catalog, channels: channels, cfg: cfg}
}

func (s *SearchService) normalizeLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultLimit
	}
	if limit > s.cfg.MaxLimit {
		return s.cfg.MaxLimit
	}
	return limit
}

// Search 执行聚合搜索
func (s *SearchService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResult, error) {
	result := &dto.SearchResult{
		Videos:   []model.Video{},
		Channels: []dto.ChannelInfo{},
	}

	term := strings.ToLower(strings.TrimSpace(req.Q))
	if utf8.RuneCountInString(term) < minQueryLength {
		return result, nil
	}

	limit := s.normalizeLimit(req.Limit)
	q := repository.CatalogQuery{
		Term:              term,
		ExcludeChannelIDs: s.cfg.ExcludedChannelIDs,
	}
	prefix := false
	if req.Dropdown {
		limit = min(limit, s.cfg.DropdownMax)
		q.Fields = []string{repository.FieldTitle}
		q.SortField = repository.SortByViews
		prefix = true
	} else {
		q.Fields = []string{repository.FieldTitle, repository.FieldDescription, repository.FieldChannelName}
		q.SortField = repository.SortByCreatedAt
	}
	q.Limit = limit

	var (
		videos     []model.Video
		channels   []model.Channel
		videoErr   error
		channelErr error
		wg         conc.WaitGroup
	)
	wg.Go(func() {
		videoErr = isolate(func() error {
			var err error
			videos, err = s.catalog.SearchVideos(ctx, q)
			return err
		})
	})
	wg.Go(func() {
		channelErr = isolate(func() error {
			var err error
			channels, err = s.channels.SearchByName(ctx, term, prefix, limit)
			return err
		})
	})
	wg.Wait()

	if videoErr != nil && channelErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchUnavailable, errors.Join(videoErr, channelErr))
	}

	if videoErr != nil {
		logger.Error("Catalog search failed", zap.String("q", term), zap.Error(videoErr))
	} else {
		result.Videos = s.filterVideos(videos, term, req.Dropdown)
	}

	if channelErr != nil {
		logger.Error("Channel search failed", zap.String("q", term), zap.Error(channelErr))
	} else {
		for i := range channels {
			result.Channels = append(result.Channels, *toChannelInfo(&channels[i]))
		}
	}

	return result, nil
}

// isolate 把一路查询中的 panic 转成 error，避免影响另一路
func isolate(fn func() error) (err error) {
	var pc panics.Catcher
	pc.Try(func() { err = fn() })
	if r := pc.Recovered(); r != nil {
		return r.AsError()
	}
	return err
}

// filterVideos 去掉排除频道的视频；完整模式下再按小写包含关系复核一遍，
// 防止目录存储的大小写处理与预期不一致
func (s *SearchService) filterVideos(videos []model.Video, term string, dropdown bool) []model.Video {
	excluded := make(map[string]bool, len(s.cfg.ExcludedChannelIDs))
	for _, id := range s.cfg.ExcludedChannelIDs {
		excluded[id] = true
	}

	out := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if excluded[v.ChannelID] {
			continue
		}
		if !dropdown && !videoContains(&v, term) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func videoContains(v *model.Video, term string) bool {
	return strings.Contains(strings.ToLower(v.Title), term) ||
		strings.Contains(strings.ToLower(v.Description), term) ||
		strings.Contains(strings.ToLower(v.ChannelName), term)
}
