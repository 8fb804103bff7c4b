package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avassart/reels-ms-go/internal/cache"
	"github.com/avassart/reels-ms-go/internal/config"
	"github.com/avassart/reels-ms-go/internal/db"
	workerHandler "github.com/avassart/reels-ms-go/internal/handler/worker"
	"github.com/avassart/reels-ms-go/internal/instagram"
	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/avassart/reels-ms-go/internal/renderengine"
	"github.com/avassart/reels-ms-go/internal/repository/mariadb"
	"github.com/avassart/reels-ms-go/internal/scheduler"
	"github.com/avassart/reels-ms-go/internal/storage"
	"github.com/avassart/reels-ms-go/internal/task"
	settingsSvc "github.com/avassart/reels-ms-go/internal/usecase/settings"
	videoSvc "github.com/avassart/reels-ms-go/internal/usecase/video"
	"github.com/hibiken/asynq"

	"github.com/avassart/reels-ms-go/internal/logger"
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

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	strg := initStorage(cfg)
	if err := strg.InitBucket(cfg.VideosBucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.VideosBucket, err)
		os.Exit(1)
	}

	engine, err := renderengine.NewCLIEngine(cfg.RenderCLI, cfg.RenderProjectDir, cfg.RenderOutputDir)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize render engine: %v", err)
		os.Exit(1)
	}

	videoRepo := mariadb.NewVideoRepository(database.DB)
	settingsRepo := mariadb.NewSettingsRepository(database.DB)
	ca := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)

	renderSvc := videoSvc.NewVideoRenderer(videoRepo, engine, strg, ca, cfg.VideosBucket)

	settingsGetterSvc := settingsSvc.NewSettingsGetter(settingsRepo)
	uploaderSvc := videoSvc.NewVideoUploader(videoRepo, settingsGetterSvc, strg, instagram.NewPublisher, ca, cfg.VideosBucket, time.Now)
	batchSvc := videoSvc.NewBatchScheduler(videoRepo, settingsGetterSvc, time.Now)
	dispatchSvc := videoSvc.NewDueDispatcher(videoRepo, uploaderSvc, time.Now)

	sched := scheduler.New(batchSvc, dispatchSvc)
	if err := sched.Start(ctx); err != nil {
		logger.Errorf(ctx, "❌  Failed to start upload scheduler: %v", err)
		os.Exit(1)
	}
	defer sched.Stop()

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeRenderVideo, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseRenderVideoPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.RenderVideoHandler(ctx, p, renderSvc)
	})

	runWorker(ctx, mux, cfg)
}

func initDb(cfg *config.Settings) *db.Database {
	ctx := context.Background()
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return database
}

func initStorage(cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{
		Concurrency:    cfg.RenderConcurrency,
		Queues:         map[string]int{task.QueueRender: 1},
		RetryDelayFunc: task.RenderRetryDelay,
	})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	logger.Info(ctx, "✅  Worker gracefully stopped")
}
