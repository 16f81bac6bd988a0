package model

import "time"

// Channel 频道模型，与 User 一一对应，ID 由用户 ID 确定性派生
type Channel struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	UserID      string    `gorm:"size:128;not null;uniqueIndex:uq_channels_user_id" json:"user_id"`
	Name        string    `gorm:"size:255;not null;index:idx_channels_name" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Avatar      string    `gorm:"size:500" json:"avatar"`
	Banner      string    `gorm:"size:500" json:"banner"`
	Verified    bool      `gorm:"not null;default:false" json:"verified"`
	AccountType string    `gorm:"size:32;not null;default:'personal'" json:"account_type"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Channel) TableName() string {
	return "channels"
}
