package dto

// SyncRequest 身份提供方登录后同步用户
type SyncRequest struct {
	Token string `json:"token"`
}

// SessionInfo 同步结果
type SessionInfo struct {
	Channel    ChannelInfo `json:"channel"`
	NewAccount bool        `json:"new_account"`
}
