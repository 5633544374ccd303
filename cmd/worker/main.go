package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"beatstream-go/internal/config"
	"beatstream-go/internal/infra/database"
	infraES "beatstream-go/internal/infra/elasticsearch"
	infraKafka "beatstream-go/internal/infra/kafka"
	"beatstream-go/internal/repository"
	"beatstream-go/internal/service"
	"beatstream-go/pkg/logger"

	"go.uber.org/zap"
)

// The reconciler re-projects videos into the full-text index from
// domain events, converging the index after best-effort fan-out
// failures in the API process.
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	videoIndex := infraES.NewVideoIndex(cfg.Elasticsearch.IndexName())
	if err := videoIndex.Ensure(context.Background()); err != nil {
		logger.Fatal("Failed to ensure video index", zap.Error(err))
	}

	videoRepo := repository.NewVideoRepository(database.Get())
	videoService := service.NewVideoService(videoRepo, videoIndex, nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	logger.Info("Index reconciler started",
		zap.String("topic", cfg.Kafka.Topic),
		zap.String("group", cfg.Kafka.GroupID),
	)

	infraKafka.StartVideoEventConsumer(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID,
		func(event *infraKafka.VideoEvent) error {
			return videoService.SyncToIndex(ctx, event.VideoID)
		},
	)

	logger.Info("Index reconciler stopped")
}
