package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/chatrelay/media-gateway-go/internal/config"
	"github.com/chatrelay/media-gateway-go/internal/db"
	workerHandler "github.com/chatrelay/media-gateway-go/internal/handler/worker"
	"github.com/chatrelay/media-gateway-go/internal/logger"
	"github.com/chatrelay/media-gateway-go/internal/repository/mariadb"
	"github.com/chatrelay/media-gateway-go/internal/storage"
	"github.com/chatrelay/media-gateway-go/internal/task"
	mediaSvc "github.com/chatrelay/media-gateway-go/internal/usecase/media"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.MinioBucket,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	repo := mariadb.NewMediaRepository(database.DB)
	thumbnailSvc := mediaSvc.NewThumbnailGenerator(repo, strg)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeGenerateThumbnail, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseGenerateThumbnailPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.GenerateThumbnailHandler(ctx, p, thumbnailSvc)
	})

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword},
		asynq.Config{Concurrency: 5},
	)

	go func() {
		logger.Info(ctx, "🚀 Worker processing tasks...")
		if err := srv.Run(mux); err != nil {
			logger.Errorf(ctx, "❌  Worker error: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	srv.Shutdown()
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
