package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chatrelay/media-gateway-go/internal/cache"
	"github.com/chatrelay/media-gateway-go/internal/config"
	"github.com/chatrelay/media-gateway-go/internal/db"
	"github.com/chatrelay/media-gateway-go/internal/handler/api"
	"github.com/chatrelay/media-gateway-go/internal/logger"
	cMiddleware "github.com/chatrelay/media-gateway-go/internal/middleware"
	"github.com/chatrelay/media-gateway-go/internal/origin"
	"github.com/chatrelay/media-gateway-go/internal/port"
	"github.com/chatrelay/media-gateway-go/internal/renderer"
	"github.com/chatrelay/media-gateway-go/internal/repository/mariadb"
	"github.com/chatrelay/media-gateway-go/internal/storage"
	"github.com/chatrelay/media-gateway-go/internal/task"
	mediaSvc "github.com/chatrelay/media-gateway-go/internal/usecase/media"
	statsSvc "github.com/chatrelay/media-gateway-go/internal/usecase/stats"
	uploadSvc "github.com/chatrelay/media-gateway-go/internal/usecase/upload"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx, cfg.JWTSecret)

	strg := initStorage(ctx, cfg)

	mediaRepo := mariadb.NewMediaRepository(database.DB)
	fetcher := origin.NewFetcher()

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — stats caching and thumbnail tasks are disabled")
	}

	serveMediaSvc := mediaSvc.NewMediaServer(mediaRepo, strg, fetcher, dispatcher)
	r.With(cMiddleware.WithMediaRequest()).
		Get("/media/{kind}/{id}", api.ServeMediaHandler(serveMediaSvc))

	ingestSvc := uploadSvc.NewUploadIngestor(strg, nil)
	r.Post("/media/upload", api.UploadMediaHandler(ingestSvc))

	listerSvc := uploadSvc.NewUploadLister(strg)
	r.Get("/media/upload", api.QueryUploadsHandler(listerSvc))

	removerSvc := uploadSvc.NewUploadRemover(strg)
	r.Delete("/media/upload", api.DeleteUploadHandler(removerSvc))

	aggregatorSvc := statsSvc.NewStatsAggregator(mediaRepo)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.Get("/media/stats", api.StatsHandler(rendererSvc, aggregatorSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context, jwtSecret string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithJWTAuth(jwtSecret))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
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

	if err := strg.InitBucket(); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MinioBucket, err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
