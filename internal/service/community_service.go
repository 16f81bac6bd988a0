package service

import (
	"context"
	"strings"

	"tubehub/internal/model"
	"tubehub/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultCommunityLimit = 50
	maxCommunityLimit     = 200
)

type CommunityService struct {
	schema        SchemaEnsurer
	communityRepo *repository.CommunityRepository
}

func NewCommunityService(schema SchemaEnsurer, communityRepo *repository.CommunityRepository) *CommunityService {
	return &CommunityService{schema: schema, communityRepo: communityRepo}
}

// NormalizeType 只接受 feature，其它值一律归为 problem
func NormalizeType(t string) string {
	if strings.EqualFold(strings.TrimSpace(t), model.CommunityTypeFeature) {
		return model.CommunityTypeFeature
	}
	return model.CommunityTypeProblem
}

// List 列出反馈，最新的在前
func (s *CommunityService) List(ctx context.Context, limit int) ([]model.CommunityMessage, error) {
	if limit <= 0 {
		limit = defaultCommunityLimit
	}
	if limit > maxCommunityLimit {
		limit = maxCommunityLimit
	}
	if err := s.schema.Ensure(ctx, repository.FeatureCommunity); err != nil {
		return nil, err
	}
	msgs, err := s.communityRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []model.CommunityMessage{}
	}
	return msgs, nil
}

// Create 提交反馈，消息去空白后不能为空
func (s *CommunityService) Create(ctx context.Context, msgType, message string) (*model.CommunityMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if err := s.schema.Ensure(ctx, repository.FeatureCommunity); err != nil {
		return nil, err
	}

	msg := &model.CommunityMessage{
		ID:      uuid.NewString(),
		Type:    NormalizeType(msgType),
		Message: message,
	}
	if err := s.communityRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Delete 按 ID 删除反馈
func (s *CommunityService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMissingMessageID
	}
	if err := s.schema.Ensure(ctx, repository.FeatureCommunity); err != nil {
		return err
	}
	deleted, err := s.communityRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMessageNotFound
	}
	return nil
}
