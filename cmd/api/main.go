package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tubehub/internal/api/handler"
	"tubehub/internal/api/middleware"
	"tubehub/internal/api/router"
	"tubehub/internal/config"
	"tubehub/internal/infra/database"
	infraES "tubehub/internal/infra/elasticsearch"
	infraKafka "tubehub/internal/infra/kafka"
	infraMinio "tubehub/internal/infra/minio"
	infraRedis "tubehub/internal/infra/redis"
	"tubehub/internal/repository"
	"tubehub/internal/service"
	"tubehub/pkg/logger"

	_ "tubehub/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title TubeHub API
// @version 1.0
// @description 视频站点 API：频道、社区反馈、稍后观看 / 播放列表、聚合搜索

// @host 127.0.0.1:8000
// @BasePath /api

func main() {
	configPath := "configs/config.yaml"
	if p := os.Getenv("TUBEHUB_CONFIG"); p != "" {
		configPath = p
	}

	// 加载配置文件
	cfg, err := config.Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database, cfg.App.Mode); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 初始化Redis（仅用于建表标记，可关闭）
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis init failed, schema markers disabled", zap.Error(err))
	}
	defer infraRedis.Close()

	// 初始化MinIO
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 初始化Kafka生产者
	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	// 初始化 Elasticsearch（失败时目录相关接口降级：搜索只返回频道）
	videosIndex := cfg.Elasticsearch.VideosIndex()
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, catalog lookups will fail", zap.Error(err))
	} else {
		defer infraES.Close()
		if err := infraES.InitIndexes(videosIndex); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	schema := repository.NewSchemaManager(db, infraRedis.Get(), cfg.Database.SchemaMarkerDuration())
	if cfg.Database.EnsureOnStartup {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := schema.EnsureAll(ctx); err != nil {
			logger.Fatal("Failed to ensure schema", zap.Error(err))
		}
		cancel()
	}

	userRepo := repository.NewUserRepository(db)
	channelRepo := repository.NewChannelRepository(db)
	communityRepo := repository.NewCommunityRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	watchLaterRepo := repository.NewWatchLaterRepository(db)
	catalogRepo := repository.NewCatalogRepository(infraES.Get(), videosIndex)

	events := infraKafka.NewChannelEventPublisher(cfg.Kafka.Topic("channel_updated"))
	assets := infraMinio.NewAssetStore(infraMinio.Get(), &cfg.MinIO)

	authService := service.NewAuthService(schema, userRepo, channelRepo, cfg.Identity)
	channelService := service.NewChannelService(schema, channelRepo, userRepo, catalogRepo, events, assets)
	communityService := service.NewCommunityService(schema, communityRepo)
	engagementService := service.NewEngagementService(schema, playlistRepo, watchLaterRepo)
	searchService := service.NewSearchService(catalogRepo, channelRepo, cfg.Search)
	feedService := service.NewFeedService(catalogRepo, cfg.Search)

	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authService, cfg.Session),
		Channel:    handler.NewChannelHandler(channelService),
		Community:  handler.NewCommunityHandler(communityService),
		Engagement: handler.NewEngagementHandler(engagementService),
		Search:     handler.NewSearchHandler(searchService, feedService),
		Favicon:    handler.NewFaviconHandler("T", "#e62117"),
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, cfg.Session.CookieName, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.Bool("redis", cfg.Redis.Enabled),
		zap.String("minio", cfg.MinIO.Endpoint),
		zap.Strings("elasticsearch", cfg.Elasticsearch.Hosts),
		zap.Strings("kafka", cfg.Kafka.Brokers),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"version": cfg.App.Version,
		"docs":    "/swagger/index.html",
	})
}
