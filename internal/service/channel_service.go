package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"tubehub/internal/api/dto"
	infraKafka "tubehub/internal/infra/kafka"
	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ChannelMirror 把频道冗余字段写入视频目录
type ChannelMirror interface {
	MirrorChannel(ctx context.Context, channelID string, fields map[string]string) error
}

// ChannelEventPublisher 发布频道变更事件
type ChannelEventPublisher interface {
	PublishChannelUpdated(ctx context.Context, ev *infraKafka.ChannelEvent) error
}

// AssetStorage 存放频道素材的对象存储
type AssetStorage interface {
	PutPublic(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

type ChannelService struct {
	schema      SchemaEnsurer
	channelRepo *repository.ChannelRepository
	userRepo    *repository.UserRepository
	mirror      ChannelMirror
	events      ChannelEventPublisher
	assets      AssetStorage
}

func NewChannelService(
	schema SchemaEnsurer,
	channelRepo *repository.ChannelRepository,
	userRepo *repository.UserRepository,
	mirror ChannelMirror,
	events ChannelEventPublisher,
	assets AssetStorage,
) *ChannelService {
	return &ChannelService{
		schema:      schema,
		channelRepo: channelRepo,
		userRepo:    userRepo,
		mirror:      mirror,
		events:      events,
		assets:      assets,
	}
}

func (s *ChannelService) load(ctx context.Context, channelID string) (*model.Channel, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, ErrMissingChannelID
	}
	if err := s.schema.Ensure(ctx, repository.FeatureChannels); err != nil {
		return nil, err
	}
	ch, err := s.channelRepo.GetByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}
	return ch, nil
}

// CheckChannelOwner 活跃 profile 必须与频道 ID 一致。
// handler 在解析请求体之前调用，非所有者一律 403。
// cookie 只是明文 ID，这里的校验只保证界面行为一致，不是安全边界
func CheckChannelOwner(activeProfileID, channelID string) error {
	if activeProfileID == "" || activeProfileID != channelID {
		return ErrNotChannelOwner
	}
	return nil
}

// GetChannel 获取频道信息
func (s *ChannelService) GetChannel(ctx context.Context, channelID string) (*dto.ChannelInfo, error) {
	ch, err := s.load(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return toChannelInfo(ch), nil
}

// UpdateBanner 更新频道横幅（仅频道所有者）
func (s *ChannelService) UpdateBanner(ctx context.Context, activeProfileID, channelID, banner string) (*dto.ChannelInfo, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, ErrMissingChannelID
	}
	if err := CheckChannelOwner(activeProfileID, channelID); err != nil {
		return nil, err
	}
	banner = strings.TrimSpace(banner)
	if banner == "" {
		return nil, ErrMissingBanner
	}
	return s.update(ctx, channelID, map[string]interface{}{"banner": banner})
}

// UploadBanner 上传横幅图片到对象存储并更新频道
func (s *ChannelService) UploadBanner(ctx context.Context, activeProfileID, channelID, filename string, reader io.Reader, size int64, contentType string) (*dto.ChannelInfo, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, ErrMissingChannelID
	}
	if err := CheckChannelOwner(activeProfileID, channelID); err != nil {
		return nil, err
	}
	if _, err := s.load(ctx, channelID); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("banners/%s/%s%s", channelID, uuid.NewString(), strings.ToLower(path.Ext(filename)))
	url, err := s.assets.PutPublic(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	logger.Info("Channel banner uploaded",
		zap.String("channel_id", channelID),
		zap.String("object", objectName),
	)
	return s.update(ctx, channelID, map[string]interface{}{"banner": url})
}

// UpdateProfile 更新频道资料，名称或头像变化时发布变更事件供 worker 同步到目录
func (s *ChannelService) UpdateProfile(ctx context.Context, activeProfileID, channelID string, req *dto.UpdateProfileRequest) (*dto.ChannelInfo, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, ErrMissingChannelID
	}
	if err := CheckChannelOwner(activeProfileID, channelID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Avatar != nil {
		updates["avatar"] = strings.TrimSpace(*req.Avatar)
	}
	if req.AccountType != nil {
		if !model.ValidAccountType(*req.AccountType) {
			return nil, ErrInvalidAccountType
		}
		updates["account_type"] = *req.AccountType
	}
	if len(updates) == 0 {
		return nil, ErrEmptyProfileUpdate
	}

	info, err := s.update(ctx, channelID, updates)
	if err != nil {
		return nil, err
	}

	if at, ok := updates["account_type"]; ok {
		if err := s.userRepo.Update(ctx, info.UserID, map[string]interface{}{"account_type": at}); err != nil {
			logger.Error("Failed to sync account type to user",
				zap.String("user_id", info.UserID),
				zap.Error(err),
			)
		}
	}

	_, nameChanged := updates["name"]
	_, avatarChanged := updates["avatar"]
	if nameChanged || avatarChanged {
		ev := &infraKafka.ChannelEvent{
			ChannelID: info.ID,
			Name:      info.Name,
			Avatar:    info.Avatar,
			UpdatedAt: time.Now().UTC(),
		}
		if err := s.events.PublishChannelUpdated(ctx, ev); err != nil {
			logger.Error("Failed to publish channel event",
				zap.String("channel_id", info.ID),
				zap.Error(err),
			)
		}
	}

	return info, nil
}

func (s *ChannelService) update(ctx context.Context, channelID string, updates map[string]interface{}) (*dto.ChannelInfo, error) {
	if err := s.schema.Ensure(ctx, repository.FeatureChannels); err != nil {
		return nil, err
	}
	ch, err := s.channelRepo.Update(ctx, channelID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}
	return toChannelInfo(ch), nil
}

// GetAvatar 返回频道头像，并尽力把头像同步到目录中该频道的视频文档。
// 同步失败只记录日志，不影响返回
func (s *ChannelService) GetAvatar(ctx context.Context, channelID string) (string, error) {
	ch, err := s.load(ctx, channelID)
	if err != nil {
		return "", err
	}

	if ch.Avatar != "" {
		if err := s.mirror.MirrorChannel(ctx, ch.ID, map[string]string{"channel_avatar": ch.Avatar}); err != nil {
			logger.Warn("Failed to mirror channel avatar into catalog",
				zap.String("channel_id", ch.ID),
				zap.Error(err),
			)
		}
	}

	return ch.Avatar, nil
}

// MirrorEvent 处理 worker 收到的频道变更事件
func MirrorEvent(ctx context.Context, mirror ChannelMirror, ev *infraKafka.ChannelEvent) error {
	fields := make(map[string]string, 2)
	if ev.Name != "" {
		fields["channel_name"] = ev.Name
	}
	if ev.Avatar != "" {
		fields["channel_avatar"] = ev.Avatar
	}
	if err := mirror.MirrorChannel(ctx, ev.ChannelID, fields); err != nil {
		return fmt.Errorf("mirror channel %s: %w", ev.ChannelID, err)
	}
	logger.Info("Channel mirrored into catalog",
		zap.String("channel_id", ev.ChannelID),
		zap.Int("fields", len(fields)),
	)
	return nil
}

func toChannelInfo(ch *model.Channel) *dto.ChannelInfo {
	return &dto.ChannelInfo{
		ID:          ch.ID,
		UserID:      ch.UserID,
		Name:        ch.Name,
		Description: ch.Description,
		Avatar:      ch.Avatar,
		Banner:      ch.Banner,
		Verified:    ch.Verified,
		AccountType: ch.AccountType,
		CreatedAt:   ch.CreatedAt,
	}
}
