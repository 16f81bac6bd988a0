package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tubehub/internal/config"
	infraES "tubehub/internal/infra/elasticsearch"
	infraKafka "tubehub/internal/infra/kafka"
	"tubehub/internal/repository"
	"tubehub/internal/service"
	"tubehub/pkg/logger"

	"go.uber.org/zap"
)

// worker 消费频道变更事件，把频道名称 / 头像同步到视频目录
func main() {
	configPath := "configs/config.yaml"
	if p := os.Getenv("TUBEHUB_CONFIG"); p != "" {
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	catalog := repository.NewCatalogRepository(infraES.Get(), cfg.Elasticsearch.VideosIndex())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic := cfg.Kafka.Topic("channel_updated")
	logger.Info("Channel mirror worker started",
		zap.String("topic", topic),
		zap.String("group", cfg.Kafka.GroupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	infraKafka.StartChannelEventConsumer(ctx, cfg.Kafka.Brokers, topic, cfg.Kafka.GroupID,
		func(ctx context.Context, ev *infraKafka.ChannelEvent) error {
			return service.MirrorEvent(ctx, catalog, ev)
		},
	)
}
