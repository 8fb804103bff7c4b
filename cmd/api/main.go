package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/avassart/reels-ms-go/internal/cache"
	"github.com/avassart/reels-ms-go/internal/config"
	"github.com/avassart/reels-ms-go/internal/db"
	"github.com/avassart/reels-ms-go/internal/handler"
	"github.com/avassart/reels-ms-go/internal/handler/api"
	"github.com/avassart/reels-ms-go/internal/instagram"
	"github.com/avassart/reels-ms-go/internal/logger"
	cMiddleware "github.com/avassart/reels-ms-go/internal/middleware"
	"github.com/avassart/reels-ms-go/internal/port"
	"github.com/avassart/reels-ms-go/internal/renderer"
	"github.com/avassart/reels-ms-go/internal/repository/mariadb"
	"github.com/avassart/reels-ms-go/internal/storage"
	"github.com/avassart/reels-ms-go/internal/task"
	marketingSvc "github.com/avassart/reels-ms-go/internal/usecase/marketing"
	settingsSvc "github.com/avassart/reels-ms-go/internal/usecase/settings"
	videoSvc "github.com/avassart/reels-ms-go/internal/usecase/video"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
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

	r := initRouter(ctx, cfg.JWTPublicKey)

	strg := initStorage(ctx, cfg)
	if err := strg.InitBucket(cfg.VideosBucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.VideosBucket, err)
		os.Exit(1)
	}

	videoRepo := mariadb.NewVideoRepository(database.DB)
	settingsRepo := mariadb.NewSettingsRepository(database.DB)

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured, caching and render jobs are disabled")
	}

	settingsGetterSvc := settingsSvc.NewSettingsGetter(settingsRepo)
	settingsUpdaterSvc := settingsSvc.NewSettingsUpdater(settingsGetterSvc, settingsRepo)

	createVideoSvc := videoSvc.NewVideoCreator(videoRepo, dispatcher, db.NewUUID)
	r.Post("/videos", api.CreateVideoHandler(createVideoSvc))

	listVideosSvc := videoSvc.NewVideoLister(videoRepo)
	r.Get("/videos", api.ListVideosHandler(listVideosSvc))

	getVideoSvc := videoSvc.NewVideoGetter(videoRepo)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(cMiddleware.WithVideoID()).
		Get("/videos/{id}", api.GetVideoHandler(rendererSvc, getVideoSvc))

	updateVideoSvc := videoSvc.NewVideoUpdater(videoRepo, ca)
	r.With(cMiddleware.WithVideoID()).
		Patch("/videos/{id}", api.UpdateVideoHandler(updateVideoSvc))

	r.With(cMiddleware.WithVideoID()).
		Get("/videos/{id}/insights", api.GetInsightsHandler(getVideoSvc, settingsGetterSvc, instagram.NewAPI))

	if cfg.RedisAddr != "" {
		statsSvc := task.NewStatsReader(cfg.RedisAddr, cfg.RedisPassword)
		r.Get("/queue/stats", api.QueueStatsHandler(statsSvc))
	}

	uploaderSvc := videoSvc.NewVideoUploader(videoRepo, settingsGetterSvc, strg, instagram.NewPublisher, ca, cfg.VideosBucket, time.Now)
	retrySvc := videoSvc.NewFailedRetrier(videoRepo, uploaderSvc, time.Now)
	r.Post("/uploads/retry", api.RetryUploadsHandler(retrySvc))

	r.Get("/settings", api.GetSettingsHandler(settingsGetterSvc))
	r.Put("/settings", api.UpdateSettingsHandler(settingsUpdaterSvc))
	r.Get("/settings/validate_token", api.ValidateTokenHandler(settingsGetterSvc, instagram.NewAPI))

	scriptsSvc := marketingSvc.NewScriptGenerator(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
	r.Post("/marketing/scripts", api.GenerateScriptHandler(scriptsSvc))
	r.Post("/marketing/scripts/variants", api.ScriptVariantsHandler(scriptsSvc))
	r.Get("/marketing/templates", api.ListTemplatesHandler(scriptsSvc))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

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

func initRouter(ctx context.Context, jwtKey string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithDashboardAuth(jwtKey))

	r.NotFound(handler.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
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
