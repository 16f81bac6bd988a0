package dto

import "time"

// ChannelInfo 频道信息
type ChannelInfo struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Avatar      string    `json:"avatar"`
	Banner      string    `json:"banner"`
	Verified    bool      `json:"verified"`
	AccountType string    `json:"account_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// UpdateBannerRequest 更新频道横幅
type UpdateBannerRequest struct {
	Banner string `json:"banner"`
}

// UpdateProfileRequest 更新频道资料，nil 字段不修改
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Avatar      *string `json:"avatar"`
	AccountType *string `json:"account_type"`
}
