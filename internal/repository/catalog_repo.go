package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tubehub/internal/model"

	"github.com/elastic/go-elasticsearch/v8"
)

// 目录排序字段
const (
	SortByViews     = "views"
	SortByCreatedAt = "created_at"
)

// 可做子串匹配的目录字段
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldChannelName = "channel_name"
)

// CatalogQuery 目录子串查询参数，Term 需已小写
type CatalogQuery struct {
	Term              string
	Fields            []string
	SortField         string
	Limit             int
	ExcludeChannelIDs []string
}

// FeedQuery 目录列表查询参数
type FeedQuery struct {
	Shorts            bool
	Limit             int
	ExcludeChannelIDs []string
}

// CatalogRepository 视频目录（Elasticsearch）的读写适配
type CatalogRepository struct {
	client *elasticsearch.Client
	index  string
}

func NewCatalogRepository(client *elasticsearch.Client, index string) *CatalogRepository {
	return &CatalogRepository{client: client, index: index}
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func excludeChannels(ids []string) []interface{} {
	if len(ids) == 0 {
		return nil
	}
	return []interface{}{
		map[string]interface{}{"terms": map[string]interface{}{"channel_id": ids}},
	}
}

// buildSearchBody 生成子串匹配查询：任一字段包含 Term 即命中
func buildSearchBody(q CatalogQuery) map[string]interface{} {
	pattern := "*" + wildcardEscaper.Replace(q.Term) + "*"

	should := make([]interface{}, 0, len(q.Fields))
	for _, f := range q.Fields {
		should = append(should, map[string]interface{}{
			"wildcard": map[string]interface{}{
				f + ".keyword": map[string]interface{}{
					"value":            pattern,
					"case_insensitive": true,
				},
			},
		})
		// description.keyword 设了 ignore_above，超长描述只能靠分词字段按短语命中
		if f == FieldDescription {
			should = append(should, map[string]interface{}{
				"match_phrase": map[string]interface{}{f: q.Term},
			})
		}
	}

	boolQ := map[string]interface{}{
		"should":               should,
		"minimum_should_match": 1,
	}
	if mustNot := excludeChannels(q.ExcludeChannelIDs); mustNot != nil {
		boolQ["must_not"] = mustNot
	}

	sortField := q.SortField
	if sortField == "" {
		sortField = SortByCreatedAt
	}

	return map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQ},
		"size":  q.Limit,
		"sort": []interface{}{
			map[string]interface{}{sortField: map[string]string{"order": "desc"}},
		},
	}
}

func buildFeedBody(q FeedQuery) map[string]interface{} {
	boolQ := map[string]interface{}{
		"filter": []interface{}{
			map[string]interface{}{"term": map[string]interface{}{"is_short": q.Shorts}},
		},
	}
	if mustNot := excludeChannels(q.ExcludeChannelIDs); mustNot != nil {
		boolQ["must_not"] = mustNot
	}
	return map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQ},
		"size":  q.Limit,
		"sort": []interface{}{
			map[string]interface{}{SortByCreatedAt: map[string]string{"order": "desc"}},
		},
	}
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID     string      `json:"_id"`
			Source model.Video `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (r *CatalogRepository) search(ctx context.Context, body map[string]interface{}) ([]model.Video, error) {
	if r.client == nil {
		return nil, fmt.Errorf("elasticsearch client not initialized")
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("catalog search error: %s", resp.String())
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	videos := make([]model.Video, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		v := h.Source
		if v.ID == "" {
			v.ID = h.ID
		}
		videos = append(videos, v)
	}
	return videos, nil
}

// SearchVideos 子串搜索视频
func (r *CatalogRepository) SearchVideos(ctx context.Context, q CatalogQuery) ([]model.Video, error) {
	return r.search(ctx, buildSearchBody(q))
}

// ListVideos 最新视频列表（普通视频或 Styles 短视频）
func (r *CatalogRepository) ListVideos(ctx context.Context, q FeedQuery) ([]model.Video, error) {
	return r.search(ctx, buildFeedBody(q))
}

// MirrorChannel 把频道的冗余字段（channel_name / channel_avatar 等）写入该频道的全部视频文档
func (r *CatalogRepository) MirrorChannel(ctx context.Context, channelID string, fields map[string]string) error {
	if r.client == nil {
		return fmt.Errorf("elasticsearch client not initialized")
	}
	if len(fields) == 0 {
		return nil
	}

	body := map[string]interface{}{
		"script": map[string]interface{}{
			"lang":   "painless",
			"source": "for (e in params.fields.entrySet()) { ctx._source[e.getKey()] = e.getValue(); }",
			"params": map[string]interface{}{"fields": fields},
		},
		"query": map[string]interface{}{
			"term": map[string]interface{}{"channel_id": channelID},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := r.client.UpdateByQuery(
		[]string{r.index},
		r.client.UpdateByQuery.WithContext(ctx),
		r.client.UpdateByQuery.WithBody(bytes.NewReader(payload)),
		r.client.UpdateByQuery.WithConflicts("proceed"),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("catalog mirror error: %s", resp.String())
	}
	return nil
}
