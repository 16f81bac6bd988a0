package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/internal/testutil"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaManager_EnsureIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	schema := repository.NewSchemaManager(db, nil, 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, schema.Ensure(ctx, repository.FeatureEngagement))
	}

	migrator := db.Migrator()
	assert.True(t, migrator.HasTable(&model.Playlist{}))
	assert.True(t, migrator.HasTable(&model.PlaylistItem{}))
	assert.True(t, migrator.HasTable(&model.WatchLaterEntry{}))
	assert.False(t, migrator.HasTable(&model.CommunityMessage{}))
}

func TestSchemaManager_EnsureAll(t *testing.T) {
	db := testutil.NewDB(t)
	schema := repository.NewSchemaManager(db, nil, 0)

	require.NoError(t, schema.EnsureAll(context.Background()))
	require.NoError(t, schema.EnsureAll(context.Background()))

	for _, table := range []interface{}{&model.User{}, &model.Channel{}, &model.CommunityMessage{}, &model.Playlist{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
}

func TestSchemaManager_AddsLateColumns(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	// 旧版本的 channels 表没有 banner 列
	require.NoError(t, db.Exec(`CREATE TABLE channels (
		id varchar(64) PRIMARY KEY,
		user_id varchar(128) NOT NULL,
		name varchar(255) NOT NULL,
		description text,
		avatar varchar(500),
		verified boolean NOT NULL DEFAULT false,
		created_at datetime,
		updated_at datetime
	)`).Error)
	require.False(t, db.Migrator().HasColumn(&model.Channel{}, "Banner"))

	schema := repository.NewSchemaManager(db, nil, 0)
	require.NoError(t, schema.Ensure(ctx, repository.FeatureChannels))

	assert.True(t, db.Migrator().HasColumn(&model.Channel{}, "Banner"))
	assert.True(t, db.Migrator().HasColumn(&model.Channel{}, "AccountType"))
}

func TestSchemaManager_UnknownFeature(t *testing.T) {
	schema := repository.NewSchemaManager(testutil.NewDB(t), nil, 0)
	err := schema.Ensure(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrSchemaUnavailable)
}

func TestIsAlreadyExists_DriverErrors(t *testing.T) {
	db := testutil.NewDB(t)
	migrator := db.Migrator()

	require.NoError(t, migrator.CreateTable(&model.Playlist{}))
	err := migrator.CreateTable(&model.Playlist{})
	require.Error(t, err)
	assert.True(t, repository.IsAlreadyExists(err), "second CREATE TABLE: %v", err)

	require.NoError(t, db.Exec("CREATE TABLE legacy (id integer PRIMARY KEY)").Error)
	require.NoError(t, db.Exec("ALTER TABLE legacy ADD COLUMN note text").Error)
	err = db.Exec("ALTER TABLE legacy ADD COLUMN note text").Error
	require.Error(t, err)
	assert.True(t, repository.IsAlreadyExists(err), "duplicate column: %v", err)
}

func TestIsAlreadyExists_PostgresCodes(t *testing.T) {
	cases := map[string]bool{
		"42P07": true,  // duplicate_table
		"42701": true,  // duplicate_column
		"42710": true,  // duplicate_object
		"42501": false, // insufficient_privilege
		"08006": false, // connection_failure
	}
	for code, want := range cases {
		err := fmt.Errorf("ddl: %w", &pgconn.PgError{Code: code, Message: "x"})
		assert.Equal(t, want, repository.IsAlreadyExists(err), code)
	}

	assert.False(t, repository.IsAlreadyExists(nil))
	assert.False(t, repository.IsAlreadyExists(errors.New("permission denied for schema public")))
}
