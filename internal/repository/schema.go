package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tubehub/internal/model"
	"tubehub/pkg/logger"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 按功能划分的表集合
const (
	FeatureChannels   = "channels"
	FeatureCommunity  = "community"
	FeatureEngagement = "engagement"
)

// ErrSchemaUnavailable DDL 失败且不是“已存在”类错误
var ErrSchemaUnavailable = errors.New("schema unavailable")

// PostgreSQL SQLSTATE：duplicate_database / duplicate_table / duplicate_object / duplicate_column / duplicate_schema
var alreadyExistsCodes = map[string]bool{
	"42P04": true,
	"42P07": true,
	"42710": true,
	"42701": true,
	"42P06": true,
}

// IsAlreadyExists 判断 DDL 错误是否表示对象已存在（并发建表时的正常结果）
func IsAlreadyExists(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return alreadyExistsCodes[pgErr.Code]
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate column")
}

type columnSpec struct {
	model interface{}
	field string
}

type featureSpec struct {
	tables  []interface{}
	columns []columnSpec
}

var features = map[string]featureSpec{
	FeatureChannels: {
		tables: []interface{}{&model.User{}, &model.Channel{}},
		// 后加的列，旧库里可能缺失
		columns: []columnSpec{
			{model: &model.Channel{}, field: "Banner"},
			{model: &model.Channel{}, field: "AccountType"},
			{model: &model.User{}, field: "AccountType"},
		},
	},
	FeatureCommunity: {
		tables: []interface{}{&model.CommunityMessage{}},
	},
	FeatureEngagement: {
		tables: []interface{}{&model.Playlist{}, &model.PlaylistItem{}, &model.WatchLaterEntry{}},
	},
}

// SchemaManager 在首次使用时惰性建表 / 补列，可在每个请求上调用。
// markers 非空时用 Redis 标记跳过重复的 DDL 往返，标记只影响效率
type SchemaManager struct {
	db        *gorm.DB
	markers   *redis.Client
	markerTTL time.Duration
}

func NewSchemaManager(db *gorm.DB, markers *redis.Client, markerTTL time.Duration) *SchemaManager {
	return &SchemaManager{db: db, markers: markers, markerTTL: markerTTL}
}

func markerKey(feature string) string {
	return "schema:ensured:" + feature
}

func (m *SchemaManager) marked(ctx context.Context, feature string) bool {
	if m.markers == nil {
		return false
	}
	n, err := m.markers.Exists(ctx, markerKey(feature)).Result()
	if err != nil {
		logger.Debug("Schema marker lookup failed", zap.String("feature", feature), zap.Error(err))
		return false
	}
	return n > 0
}

func (m *SchemaManager) mark(ctx context.Context, feature string) {
	if m.markers == nil || m.markerTTL <= 0 {
		return
	}
	if err := m.markers.Set(ctx, markerKey(feature), 1, m.markerTTL).Err(); err != nil {
		logger.Debug("Schema marker write failed", zap.String("feature", feature), zap.Error(err))
	}
}

// Ensure 确保某个功能所需的表和列存在
func (m *SchemaManager) Ensure(ctx context.Context, feature string) error {
	def, ok := features[feature]
	if !ok {
		return fmt.Errorf("%w: unknown feature %q", ErrSchemaUnavailable, feature)
	}
	if m.marked(ctx, feature) {
		return nil
	}

	db := m.db.WithContext(ctx)
	for _, table := range def.tables {
		if err := ensureTable(db, table); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSchemaUnavailable, feature, err)
		}
	}
	for _, col := range def.columns {
		if err := ensureColumn(db, col.model, col.field); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSchemaUnavailable, feature, err)
		}
	}

	m.mark(ctx, feature)
	return nil
}

// EnsureAll 确保所有功能的表存在（启动时调用）
func (m *SchemaManager) EnsureAll(ctx context.Context) error {
	for _, feature := range []string{FeatureChannels, FeatureCommunity, FeatureEngagement} {
		if err := m.Ensure(ctx, feature); err != nil {
			return err
		}
	}
	logger.Info("Database schema ensured")
	return nil
}

func ensureTable(db *gorm.DB, table interface{}) error {
	migrator := db.Migrator()
	if migrator.HasTable(table) {
		return nil
	}
	if err := migrator.CreateTable(table); err != nil && !IsAlreadyExists(err) {
		return err
	}
	return nil
}

func ensureColumn(db *gorm.DB, table interface{}, field string) error {
	migrator := db.Migrator()
	if migrator.HasColumn(table, field) {
		return nil
	}
	if err := migrator.AddColumn(table, field); err != nil && !IsAlreadyExists(err) {
		return err
	}
	return nil
}
