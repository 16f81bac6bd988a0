package service_test

import (
	"context"
	"testing"

	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/internal/service"
	"tubehub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommunityService(t *testing.T) (*service.CommunityService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	schema := repository.NewSchemaManager(db, nil, 0)
	return service.NewCommunityService(schema, repository.NewCommunityRepository(db)), db
}

func TestCommunity_BlankMessageCreatesNothing(t *testing.T) {
	svc, db := newCommunityService(t)

	_, err := svc.Create(context.Background(), "feature", "   \n\t")
	assert.ErrorIs(t, err, service.ErrEmptyMessage)
	assert.ErrorIs(t, err, service.ErrBadRequest)

	msgs, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	var n int64
	require.NoError(t, db.Model(&model.CommunityMessage{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCommunity_CreateListDelete(t *testing.T) {
	svc, _ := newCommunityService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "feature", "  dark mode please  ")
	require.NoError(t, err)
	assert.Equal(t, model.CommunityTypeFeature, first.Type)
	assert.Equal(t, "dark mode please", first.Message)
	assert.Len(t, first.ID, 36)

	second, err := svc.Create(ctx, "whatever", "player stutters")
	require.NoError(t, err)
	assert.Equal(t, model.CommunityTypeProblem, second.Type)

	msgs, err := svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	require.NoError(t, svc.Delete(ctx, first.ID))
	assert.ErrorIs(t, svc.Delete(ctx, first.ID), service.ErrMessageNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, " "), service.ErrMissingMessageID)

	msgs, err = svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, second.ID, msgs[0].ID)
}

func TestNormalizeType(t *testing.T) {
	assert.Equal(t, model.CommunityTypeFeature, service.NormalizeType("Feature"))
	assert.Equal(t, model.CommunityTypeProblem, service.NormalizeType("problem"))
	assert.Equal(t, model.CommunityTypeProblem, service.NormalizeType(""))
	assert.Equal(t, model.CommunityTypeProblem, service.NormalizeType("bug"))
}
