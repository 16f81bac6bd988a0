package repository_test

import (
	"context"
	"errors"
	"testing"

	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedChannels(t *testing.T, repo *repository.ChannelRepository, names ...string) {
	t.Helper()
	for i, name := range names {
		_, err := repo.CreateIfAbsent(context.Background(), &model.Channel{
			ID:          "ch-" + name,
			UserID:      "user-" + string(rune('a'+i)),
			Name:        name,
			AccountType: model.AccountTypePersonal,
		})
		require.NoError(t, err)
	}
}

func channelNames(chs []model.Channel) []string {
	names := make([]string, 0, len(chs))
	for _, ch := range chs {
		names = append(names, ch.Name)
	}
	return names
}

func TestChannelRepository_SearchPrefixVsSubstring(t *testing.T) {
	db, _ := testutil.NewSchemaDB(t)
	repo := repository.NewChannelRepository(db)
	seedChannels(t, repo, "Abacus Academy", "The Abacus Guy", "Cooking")
	ctx := context.Background()

	prefix, err := repo.SearchByName(ctx, "aba", true, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Abacus Academy"}, channelNames(prefix))

	substr, err := repo.SearchByName(ctx, "aba", false, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Abacus Academy", "The Abacus Guy"}, channelNames(substr))

	limited, err := repo.SearchByName(ctx, "aba", false, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestChannelRepository_SearchEscapesWildcards(t *testing.T) {
	db, _ := testutil.NewSchemaDB(t)
	repo := repository.NewChannelRepository(db)
	seedChannels(t, repo, "100% Real", "1000 Reels")

	got, err := repo.SearchByName(context.Background(), "100%", false, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Real"}, channelNames(got))
}

func TestChannelRepository_CreateIfAbsentAndUpdate(t *testing.T) {
	db, _ := testutil.NewSchemaDB(t)
	repo := repository.NewChannelRepository(db)
	ctx := context.Background()

	ch := &model.Channel{ID: "ch-1", UserID: "u-1", Name: "First", AccountType: model.AccountTypePersonal}
	created, err := repo.CreateIfAbsent(ctx, ch)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, &model.Channel{ID: "ch-1", UserID: "u-1", Name: "Renamed"})
	require.NoError(t, err)
	assert.False(t, created)

	updated, err := repo.Update(ctx, "ch-1", map[string]interface{}{"banner": "https://cdn/banner.png"})
	require.NoError(t, err)
	assert.Equal(t, "First", updated.Name)
	assert.Equal(t, "https://cdn/banner.png", updated.Banner)

	_, err = repo.Update(ctx, "missing", map[string]interface{}{"banner": "x"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCommunityRepository(t *testing.T) {
	db, _ := testutil.NewSchemaDB(t)
	repo := repository.NewCommunityRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.CommunityMessage{ID: "m1", Type: model.CommunityTypeProblem, Message: "broken"}))
	require.NoError(t, repo.Create(ctx, &model.CommunityMessage{ID: "m2", Type: model.CommunityTypeFeature, Message: "dark mode"}))

	msgs, err := repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	deleted, err := repo.Delete(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "m1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserRepository(t *testing.T) {
	db, _ := testutil.NewSchemaDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.CreateIfAbsent(ctx, &model.User{ID: "sub-1", Email: "a@b.c", Username: "alice", AccountType: model.AccountTypePersonal})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, &model.User{ID: "sub-1", Username: "other"})
	require.NoError(t, err)
	assert.False(t, created)

	require.NoError(t, repo.Update(ctx, "sub-1", map[string]interface{}{"account_type": model.AccountTypeCreator}))
	u, err := repo.GetByID(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, model.AccountTypeCreator, u.AccountType)
}
