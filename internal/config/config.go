package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Identity      IdentityConfig      `mapstructure:"identity"`
	Session       SessionConfig       `mapstructure:"session"`
	Search        SearchConfig        `mapstructure:"search"`
	Log           LogConfig           `mapstructure:"log"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Mode    string `mapstructure:"mode"`
	Port    int    `mapstructure:"port"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
	EnsureOnStartup bool   `mapstructure:"ensure_on_startup"`
	SchemaMarkerTTL int    `mapstructure:"schema_marker_ttl"` // 秒
}

// DSN 返回PostgreSQL连接字符串
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// SchemaMarkerDuration 返回建表标记在 Redis 中的有效期
func (d *DatabaseConfig) SchemaMarkerDuration() time.Duration {
	return time.Duration(d.SchemaMarkerTTL) * time.Second
}

// RedisConfig Redis配置
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// Addr 返回Redis地址
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint     string   `mapstructure:"endpoint"`
	AccessKey    string   `mapstructure:"access_key"`
	SecretKey    string   `mapstructure:"secret_key"`
	UseSSL       bool     `mapstructure:"use_ssl"`
	Buckets      []string `mapstructure:"buckets"`
	PublicBucket string   `mapstructure:"public_bucket"`
}

// KafkaConfig Kafka配置
type KafkaConfig struct {
	Brokers []string          `mapstructure:"brokers"`
	Topics  map[string]string `mapstructure:"topics"`
	GroupID string            `mapstructure:"group_id"`
}

// Topic 返回逻辑名对应的 topic，未配置时回退为逻辑名本身
func (k *KafkaConfig) Topic(name string) string {
	if t, ok := k.Topics[name]; ok && t != "" {
		return t
	}
	return name
}

// ElasticsearchConfig Elasticsearch配置
type ElasticsearchConfig struct {
	Hosts []string          `mapstructure:"hosts"`
	Index map[string]string `mapstructure:"index"`
}

// VideosIndex 返回视频目录索引名
func (e *ElasticsearchConfig) VideosIndex() string {
	if name := e.Index["videos"]; name != "" {
		return name
	}
	return "videos"
}

// IdentityConfig 身份提供方配置
type IdentityConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// SessionConfig 活跃 profile cookie 配置
type SessionConfig struct {
	CookieName string `mapstructure:"cookie_name"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Domain     string `mapstructure:"domain"`
	Secure     bool   `mapstructure:"secure"`
}

// MaxAgeSeconds 返回 cookie 有效期（秒）
func (s *SessionConfig) MaxAgeSeconds() int {
	return int((time.Duration(s.MaxAgeDays) * 24 * time.Hour).Seconds())
}

// SearchConfig 搜索聚合配置
type SearchConfig struct {
	DefaultLimit       int      `mapstructure:"default_limit"`
	MaxLimit           int      `mapstructure:"max_limit"`
	DropdownMax        int      `mapstructure:"dropdown_max"`
	ExcludedChannelIDs []string `mapstructure:"excluded_channel_ids"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// 全局配置实例
var globalConfig *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "tubehub")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.mode", "release")
	v.SetDefault("app.port", 8000)

	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 300)
	v.SetDefault("database.ensure_on_startup", true)
	v.SetDefault("database.schema_marker_ttl", 600)

	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("minio.public_bucket", "channel-assets")

	v.SetDefault("kafka.group_id", "tubehub-channel-mirror")
	v.SetDefault("kafka.topics.channel_updated", "channel.updated")

	v.SetDefault("elasticsearch.index.videos", "videos")

	v.SetDefault("session.cookie_name", "activeProfileId")
	v.SetDefault("session.max_age_days", 30)

	v.SetDefault("search.default_limit", 5)
	v.SetDefault("search.max_limit", 50)
	v.SetDefault("search.dropdown_max", 8)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
}

// Load 加载配置文件
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// 环境变量覆盖，例如 TUBEHUB_DATABASE_HOST
	v.SetEnvPrefix("TUBEHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	globalConfig = &cfg

	return &cfg, nil
}

// Get 获取全局配置
func Get() *Config {
	if globalConfig == nil {
		panic("config not loaded, please call Load() first")
	}
	return globalConfig
}
