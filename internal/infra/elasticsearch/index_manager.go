package elasticsearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tubehub/pkg/logger"

	"go.uber.org/zap"
)

// VideosIndexMapping 视频目录索引的 mapping。
// title/description/channel_name 带小写归一化的 keyword 子字段，供子串匹配使用
const VideosIndexMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0,
		"analysis": {
			"normalizer": {
				"lowercase_normalizer": {
					"type": "custom",
					"filter": ["lowercase"]
				}
			}
		}
	},
	"mappings": {
		"properties": {
			"id": {"type": "keyword"},
			"title": {
				"type": "text",
				"fields": {"keyword": {"type": "keyword", "normalizer": "lowercase_normalizer", "ignore_above": 512}}
			},
			"description": {
				"type": "text",
				"fields": {"keyword": {"type": "keyword", "normalizer": "lowercase_normalizer", "ignore_above": 8191}}
			},
			"channel_id": {"type": "keyword"},
			"channel_name": {
				"type": "text",
				"fields": {"keyword": {"type": "keyword", "normalizer": "lowercase_normalizer", "ignore_above": 256}}
			},
			"channel_avatar": {"type": "keyword", "index": false},
			"views": {"type": "long"},
			"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"},
			"duration": {"type": "integer"},
			"is_live": {"type": "boolean"},
			"is_short": {"type": "boolean"}
		}
	}
}`

// EnsureVideosIndex 确保视频目录索引存在，不存在则创建
func EnsureVideosIndex(ctx context.Context, indexName string) error {
	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch videos index already exists", zap.String("index", indexName))
		return nil
	}

	resp, err := IndicesCreate(ctx, indexName, strings.NewReader(VideosIndexMapping))
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	// 多实例同时启动时另一方可能已建好索引
	if resp.IsError() && !strings.Contains(resp.String(), "resource_already_exists_exception") {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch videos index created", zap.String("index", indexName))
	return nil
}

// InitIndexes 初始化所有索引（启动时调用）
func InitIndexes(videosIndex string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return EnsureVideosIndex(ctx, videosIndex)
}
