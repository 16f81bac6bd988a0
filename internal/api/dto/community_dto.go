package dto

// CreateCommunityMessageRequest 提交社区反馈
type CreateCommunityMessageRequest struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
