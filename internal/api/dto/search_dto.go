package dto

import "tubehub/internal/model"

// SearchRequest 搜索请求参数
type SearchRequest struct {
	Q        string `form:"q"`
	Limit    int    `form:"limit"`
	Dropdown bool   `form:"dropdown"`
}

// SearchResult 聚合搜索结果，两个列表始终非 nil
type SearchResult struct {
	Videos   []model.Video `json:"videos"`
	Channels []ChannelInfo `json:"channels"`
}
