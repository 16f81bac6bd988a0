package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"tubehub/internal/api/dto"
	"tubehub/internal/config"
	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog 内存中的视频目录，按 CatalogQuery 做子串匹配
type fakeCatalog struct {
	mu      sync.Mutex
	videos  []model.Video
	err     error
	panics  bool
	calls   int
	lastQry repository.CatalogQuery
}

func (f *fakeCatalog) SearchVideos(_ context.Context, q repository.CatalogQuery) ([]model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastQry = q
	if f.panics {
		panic("catalog exploded")
	}
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Video
	for _, v := range f.videos {
		if len(out) >= q.Limit {
			break
		}
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeCatalog) ListVideos(_ context.Context, q repository.FeedQuery) ([]model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Video
	for _, v := range f.videos {
		if v.IsShort == q.Shorts {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeChannels struct {
	mu         sync.Mutex
	channels   []model.Channel
	err        error
	calls      int
	lastPrefix bool
	lastLimit  int
}

func (f *fakeChannels) SearchByName(_ context.Context, term string, prefix bool, limit int) ([]model.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastPrefix = prefix
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Channel
	for _, ch := range f.channels {
		name := strings.ToLower(ch.Name)
		if (prefix && strings.HasPrefix(name, term)) || (!prefix && strings.Contains(name, term)) {
			out = append(out, ch)
		}
	}
	return out, nil
}

const sentinelChannel = "UC_internal_test_channel"

func searchConfig() config.SearchConfig {
	return config.SearchConfig{
		DefaultLimit:       5,
		MaxLimit:           50,
		DropdownMax:        8,
		ExcludedChannelIDs: []string{sentinelChannel},
	}
}

func TestSearch_ShortQueryTouchesNoStore(t *testing.T) {
	catalog := &fakeCatalog{}
	channels := &fakeChannels{}
	svc := service.NewSearchService(catalog, channels, searchConfig())

	for _, q := range []string{"", " ", "a", " b ", "é"} {
		res, err := svc.Search(context.Background(), &dto.SearchRequest{Q: q})
		require.NoError(t, err)
		assert.NotNil(t, res.Videos)
		assert.NotNil(t, res.Channels)
		assert.Empty(t, res.Videos)
		assert.Empty(t, res.Channels)
	}
	assert.Zero(t, catalog.calls)
	assert.Zero(t, channels.calls)
}

func TestSearch_ExcludesSentinelChannel(t *testing.T) {
	catalog := &fakeCatalog{videos: []model.Video{
		{ID: "v1", Title: "Abacus Tutorial", ChannelID: "c1"},
		{ID: "v2", Title: "Abacus Internals", ChannelID: sentinelChannel},
	}}
	channels := &fakeChannels{channels: []model.Channel{
		{ID: "c1", Name: "Abacus Academy"},
		{ID: "c2", Name: "Cooking"},
	}}
	svc := service.NewSearchService(catalog, channels, searchConfig())

	res, err := svc.Search(context.Background(), &dto.SearchRequest{Q: "aba"})
	require.NoError(t, err)
	require.Len(t, res.Videos, 1)
	assert.Equal(t, "v1", res.Videos[0].ID)
	require.Len(t, res.Channels, 1)
	assert.Equal(t, "Abacus Academy", res.Channels[0].Name)

	assert.Equal(t, []string{sentinelChannel}, catalog.lastQry.ExcludeChannelIDs)
}

func TestSearch_FullModeQuery(t *testing.T) {
	catalog := &fakeCatalog{videos: []model.Video{
		{ID: "v1", Title: "Intro", Description: "learn the ABACUS"},
		{ID: "v2", Title: "Unrelated", Description: "nothing here"},
	}}
	channels := &fakeChannels{channels: []model.Channel{{ID: "c1", Name: "The Abacus Show"}}}
	svc := service.NewSearchService(catalog, channels, searchConfig())

	res, err := svc.Search(context.Background(), &dto.SearchRequest{Q: "  AbAcUs "})
	require.NoError(t, err)

	assert.Equal(t, "abacus", catalog.lastQry.Term)
	assert.Equal(t, repository.SortByCreatedAt, catalog.lastQry.SortField)
	assert.ElementsMatch(t, []string{repository.FieldTitle, repository.FieldDescription, repository.FieldChannelName}, catalog.lastQry.Fields)
	assert.Equal(t, 5, catalog.lastQry.Limit)
	assert.False(t, channels.lastPrefix)

	require.Len(t, res.Videos, 1, "non-matching documents are filtered out")
	assert.Equal(t, "v1", res.Videos[0].ID)
	require.Len(t, res.Channels, 1, "substring match on channel name")
}

func TestSearch_DropdownMode(t *testing.T) {
	catalog := &fakeCatalog{}
	channels := &fakeChannels{channels: []model.Channel{
		{ID: "c1", Name: "Abacus Academy"},
		{ID: "c2", Name: "The Abacus Show"},
	}}
	svc := service.NewSearchService(catalog, channels, searchConfig())

	res, err := svc.Search(context.Background(), &dto.SearchRequest{Q: "abacus", Dropdown: true, Limit: 40})
	require.NoError(t, err)

	assert.Equal(t, []string{repository.FieldTitle}, catalog.lastQry.Fields)
	assert.Equal(t, repository.SortByViews, catalog.lastQry.SortField)
	assert.Equal(t, 8, catalog.lastQry.Limit)
	assert.Equal(t, 8, channels.lastLimit)
	assert.True(t, channels.lastPrefix)
	require.Len(t, res.Channels, 1)
	assert.Equal(t, "c1", res.Channels[0].ID)
}

func TestSearch_LimitClamp(t *testing.T) {
	catalog := &fakeCatalog{}
	svc := service.NewSearchService(catalog, &fakeChannels{}, searchConfig())

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Q: "abacus", Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 50, catalog.lastQry.Limit)

	_, err = svc.Search(context.Background(), &dto.SearchRequest{Q: "abacus", Limit: -3})
	require.NoError(t, err)
	assert.Equal(t, 5, catalog.lastQry.Limit)
}

func TestSearch_OneBranchFailing(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("es down")}
	channels := &fakeChannels{channels: []model.Channel{{ID: "c1", Name: "Abacus Academy"}}}
	svc := service.NewSearchService(catalog, channels, searchConfig())

	res, err := svc.Search(context.Background(), &dto.SearchRequest{Q: "abacus"})
	require.NoError(t, err)
	assert.Empty(t, res.Videos)
	assert.NotNil(t, res.Videos)
	assert.Len(t, res.Channels, 1)

	catalog = &fakeCatalog{videos: []model.Video{{ID: "v1", Title: "abacus"}}}
	channels = &fakeChannels{err: errors.New("db down")}
	svc = service.NewSearchService(catalog, channels, searchConfig())

	res, err = svc.Search(context.Background(), &dto.SearchRequest{Q: "abacus"})
	require.NoError(t, err)
	assert.Len(t, res.Videos, 1)
	assert.Empty(t, res.Channels)
}

func TestSearch_PanicIsIsolated(t *testing.T) {
	catalog := &fakeCatalog{panics: true}
	channels := &fakeChannels{channels: []model.Channel{{ID: "c1", Name: "Abacus Academy"}}}
	svc := service.NewSearchService(catalog, channels, searchConfig())

	res, err := svc.Search(context.Background(), &dto.SearchRequest{Q: "abacus"})
	require.NoError(t, err)
	assert.Empty(t, res.Videos)
	assert.Len(t, res.Channels, 1)
}

func TestSearch_BothBranchesFailing(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("es down")}
	channels := &fakeChannels{err: errors.New("db down")}
	svc := service.NewSearchService(catalog, channels, searchConfig())

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Q: "abacus"})
	assert.ErrorIs(t, err, service.ErrSearchUnavailable)
}

func TestFeed_SplitsShortsAndClampsLimit(t *testing.T) {
	catalog := &fakeCatalog{videos: []model.Video{
		{ID: "v1", Title: "long one"},
		{ID: "s1", Title: "short one", IsShort: true},
	}}
	svc := service.NewFeedService(catalog, searchConfig())

	videos, err := svc.Videos(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "v1", videos[0].ID)

	styles, err := svc.Styles(context.Background(), 500)
	require.NoError(t, err)
	require.Len(t, styles, 1)
	assert.Equal(t, "s1", styles[0].ID)

	empty, err := service.NewFeedService(&fakeCatalog{}, searchConfig()).Styles(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, empty)
}
