package model

import "time"

// Video 视频目录文档，由外部目录存储（Elasticsearch）持有，应用侧只读
type Video struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ChannelID     string    `json:"channel_id"`
	ChannelName   string    `json:"channel_name"`
	ChannelAvatar string    `json:"channel_avatar"`
	Views         int64     `json:"views"`
	CreatedAt     time.Time `json:"created_at"`
	Duration      int       `json:"duration"`
	IsLive        bool      `json:"is_live"`
	IsShort       bool      `json:"is_short"`
}
