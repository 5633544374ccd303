package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"beatstream-go/internal/api/handler"
	"beatstream-go/internal/api/middleware"
	"beatstream-go/internal/api/router"
	"beatstream-go/internal/config"
	"beatstream-go/internal/infra/database"
	infraES "beatstream-go/internal/infra/elasticsearch"
	infraKafka "beatstream-go/internal/infra/kafka"
	infraMinio "beatstream-go/internal/infra/minio"
	"beatstream-go/internal/infra/permission"
	infraRedis "beatstream-go/internal/infra/redis"
	"beatstream-go/internal/model"
	"beatstream-go/internal/repository"
	"beatstream-go/internal/service"
	"beatstream-go/pkg/logger"

	_ "beatstream-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title BeatStream API
// @version 1.0
// @description Backend API for the BeatStream electronic music media site.

// @contact.name API Support

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey PrincipalHeader
// @in header
// @name X-User
// @description Opaque principal id injected by the authenticating proxy

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&model.Video{},
		&model.Post{},
		&model.PostEditHistory{},
		&model.LiveStream{},
		&model.Comment{},
		&model.LikedVideo{},
		&model.UserToken{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	videoIndex := infraES.NewVideoIndex(cfg.Elasticsearch.IndexName())
	if err := videoIndex.Ensure(context.Background()); err != nil {
		logger.Fatal("Failed to ensure video index", zap.Error(err))
	}

	gin.SetMode(cfg.App.Mode)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Identity())

	// Repository -> Service -> Handler
	db := database.Get()
	videoRepo := repository.NewVideoRepository(db)
	postRepo := repository.NewPostRepository(db)
	streamRepo := repository.NewLiveStreamRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	relations := permission.NewClient(&cfg.Permission)
	events := infraKafka.NewVideoEventProducer(cfg.Kafka.Topic)
	counts := infraRedis.NewCountCache(cfg.App.Name+":counts:", 10*time.Minute)
	uploader := infraMinio.NewUploader(cfg.MinIO.Bucket)

	videoService := service.NewVideoService(videoRepo, videoIndex, relations, events, counts)
	postService := service.NewPostService(postRepo, relations)
	streamService := service.NewLiveStreamService(streamRepo)
	commentService := service.NewCommentService(commentRepo, videoRepo, counts)
	likeService := service.NewLikeService(likeRepo, videoRepo)
	tokenService := service.NewTokenService(tokenRepo)
	uploadService := service.NewUploadService(uploader)

	videoHandler := handler.NewVideoHandler(videoService)
	postHandler := handler.NewPostHandler(postService)
	streamHandler := handler.NewLiveStreamHandler(streamService)
	commentHandler := handler.NewCommentHandler(commentService)
	likeHandler := handler.NewLikeHandler(likeService)
	tokenHandler := handler.NewTokenHandler(tokenService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	if cfg.App.OpenAPI {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    cfg.App.Name,
			"version": cfg.App.Version,
		})
	})

	router.Setup(r,
		videoHandler,
		postHandler,
		streamHandler,
		commentHandler,
		likeHandler,
		tokenHandler,
		uploadHandler,
	)

	addr := cfg.App.Addr()
	logger.Info("Server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
