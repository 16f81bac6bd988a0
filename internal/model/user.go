package model

import "time"

// 账号类型枚举
const (
	AccountTypePersonal = "personal"
	AccountTypeCreator  = "creator"
	AccountTypeBrand    = "brand"
)

// ValidAccountType 判断账号类型是否在枚举内
func ValidAccountType(t string) bool {
	switch t {
	case AccountTypePersonal, AccountTypeCreator, AccountTypeBrand:
		return true
	}
	return false
}

// User 用户模型，ID 为身份提供方的 subject
type User struct {
	ID          string    `gorm:"primaryKey;size:128" json:"id"`
	Email       string    `gorm:"size:255;index:idx_users_email" json:"email"`
	Username    string    `gorm:"size:255;not null" json:"username"`
	AccountType string    `gorm:"size:32;not null;default:'personal'" json:"account_type"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
