package service

import (
	"context"
	"strings"

	"tubehub/internal/api/dto"
	"tubehub/internal/config"
	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/pkg/logger"
	"tubehub/pkg/utils"

	"go.uber.org/zap"
)

// AuthService 把身份提供方的用户同步到本地 users / channels
type AuthService struct {
	schema      SchemaEnsurer
	userRepo    *repository.UserRepository
	channelRepo *repository.ChannelRepository
	cfg         config.IdentityConfig
}

func NewAuthService(schema SchemaEnsurer, userRepo *repository.UserRepository, channelRepo *repository.ChannelRepository, cfg config.IdentityConfig) *AuthService {
	return &AuthService{schema: schema, userRepo: userRepo, channelRepo: channelRepo, cfg: cfg}
}

// Sync 校验身份 token，首次登录时创建用户及其频道，返回频道（即活跃 profile）
func (s *AuthService) Sync(ctx context.Context, token string) (*dto.SessionInfo, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingIdentityToken
	}

	claims, err := utils.ParseIdentityToken(token, s.cfg.JWTSecret, s.cfg.Issuer)
	if err != nil {
		logger.Debug("Identity token rejected", zap.Error(err))
		return nil, ErrInvalidIdentity
	}

	if err := s.schema.Ensure(ctx, repository.FeatureChannels); err != nil {
		return nil, err
	}

	accountType := claims.AccountType
	if !model.ValidAccountType(accountType) {
		accountType = model.AccountTypePersonal
	}
	username := claims.Username
	if username == "" {
		username, _, _ = strings.Cut(claims.Email, "@")
	}
	if username == "" {
		username = claims.Subject
	}

	created, err := s.userRepo.CreateIfAbsent(ctx, &model.User{
		ID:          claims.Subject,
		Email:       claims.Email,
		Username:    username,
		AccountType: accountType,
	})
	if err != nil {
		return nil, err
	}

	channelID := utils.ChannelIDForUser(claims.Subject)
	if _, err := s.channelRepo.CreateIfAbsent(ctx, &model.Channel{
		ID:          channelID,
		UserID:      claims.Subject,
		Name:        username,
		AccountType: accountType,
	}); err != nil {
		return nil, err
	}

	ch, err := s.channelRepo.GetByID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	if created {
		logger.Info("New account synced",
			zap.String("user_id", claims.Subject),
			zap.String("channel_id", channelID),
		)
	}

	return &dto.SessionInfo{Channel: *toChannelInfo(ch), NewAccount: created}, nil
}
