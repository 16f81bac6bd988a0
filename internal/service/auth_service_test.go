package service_test

import (
	"context"
	"testing"
	"time"

	"tubehub/internal/config"
	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/internal/service"
	"tubehub/internal/testutil"
	"tubehub/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signIdentity(t *testing.T, claims utils.IdentityClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newAuthService(t *testing.T) (*service.AuthService, *repository.UserRepository) {
	t.Helper()
	db := testutil.NewDB(t)
	schema := repository.NewSchemaManager(db, nil, 0)
	users := repository.NewUserRepository(db)
	svc := service.NewAuthService(schema, users, repository.NewChannelRepository(db), config.IdentityConfig{JWTSecret: testSecret, Issuer: "idp"})
	return svc, users
}

func TestAuth_SyncCreatesAccountOnce(t *testing.T) {
	svc, users := newAuthService(t)
	ctx := context.Background()

	token := signIdentity(t, utils.IdentityClaims{
		Email:       "alice@example.com",
		AccountType: "brand",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "idp",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	first, err := svc.Sync(ctx, token)
	require.NoError(t, err)
	assert.True(t, first.NewAccount)
	assert.Equal(t, utils.ChannelIDForUser("user-1"), first.Channel.ID)
	assert.Equal(t, "alice", first.Channel.Name)
	assert.Equal(t, model.AccountTypeBrand, first.Channel.AccountType)

	second, err := svc.Sync(ctx, token)
	require.NoError(t, err)
	assert.False(t, second.NewAccount)
	assert.Equal(t, first.Channel.ID, second.Channel.ID)

	user, err := users.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestAuth_SyncFallsBackToPersonal(t *testing.T) {
	svc, _ := newAuthService(t)

	token := signIdentity(t, utils.IdentityClaims{
		Username:         "bob",
		AccountType:      "superuser",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-2", Issuer: "idp"},
	})
	info, err := svc.Sync(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "bob", info.Channel.Name)
	assert.Equal(t, model.AccountTypePersonal, info.Channel.AccountType)
}

func TestAuth_SyncRejectsBadTokens(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Sync(ctx, "  ")
	assert.ErrorIs(t, err, service.ErrMissingIdentityToken)

	_, err = svc.Sync(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	wrongIssuer := signIdentity(t, utils.IdentityClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u", Issuer: "other"}})
	_, err = svc.Sync(ctx, wrongIssuer)
	assert.ErrorIs(t, err, service.ErrInvalidIdentity)
}
