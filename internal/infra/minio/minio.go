package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"tubehub/internal/config"
	"tubehub/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

var client *minio.Client

// Init 初始化 MinIO 客户端，确保所有 Bucket 存在并把公开 Bucket 设为匿名可读
func Init(cfg *config.MinIOConfig) error {
	var err error
	client, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buckets := cfg.Buckets
	if cfg.PublicBucket != "" {
		buckets = append(buckets, cfg.PublicBucket)
	}
	for _, bucket := range buckets {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
			logger.Info("MinIO bucket created", zap.String("bucket", bucket))
		}
	}

	if cfg.PublicBucket != "" {
		policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, cfg.PublicBucket)
		if err := client.SetBucketPolicy(ctx, cfg.PublicBucket, policy); err != nil {
			return fmt.Errorf("failed to set public policy for %s: %w", cfg.PublicBucket, err)
		}
		logger.Info("MinIO bucket set to public-read", zap.String("bucket", cfg.PublicBucket))
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.Int("buckets", len(buckets)),
	)

	return nil
}

// Get 获取 MinIO 客户端实例
func Get() *minio.Client {
	return client
}

// GetPublicURL 生成公开访问 URL（需要 Bucket 设置为 public-read）
func GetPublicURL(endpoint string, useSSL bool, bucket, objectName string) string {
	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, endpoint, bucket, objectName)
}

// AssetStore 把频道素材（横幅等）写入公开 Bucket
type AssetStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

func NewAssetStore(c *minio.Client, cfg *config.MinIOConfig) *AssetStore {
	return &AssetStore{
		client:   c,
		bucket:   cfg.PublicBucket,
		endpoint: cfg.Endpoint,
		useSSL:   cfg.UseSSL,
	}
}

// PutPublic 上传对象并返回公开 URL
func (s *AssetStore) PutPublic(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("minio client not initialized")
	}
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}
	return GetPublicURL(s.endpoint, s.useSSL, s.bucket, objectName), nil
}
