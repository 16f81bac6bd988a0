package model

import "time"

const (
	CommunityTypeProblem = "problem"
	CommunityTypeFeature = "feature"
)

// CommunityMessage 社区反馈（问题 / 功能建议）
type CommunityMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Type      string    `gorm:"size:16;not null;index:idx_community_messages_type" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_community_messages_created_at" json:"created_at"`
}

func (CommunityMessage) TableName() string {
	return "community_messages"
}
