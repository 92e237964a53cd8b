package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/notice-board/internal/api/http"
	"github.com/spec-kit/notice-board/internal/api/http/handlers"
	"github.com/spec-kit/notice-board/internal/config"
	"github.com/spec-kit/notice-board/internal/events"
	"github.com/spec-kit/notice-board/internal/observability"
	"github.com/spec-kit/notice-board/internal/persistence"
	"github.com/spec-kit/notice-board/internal/repository"
	"github.com/spec-kit/notice-board/internal/service"
	"github.com/spec-kit/notice-board/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.IsDevelopment())
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if !cfg.App.IsDevelopment() {
		for _, key := range cfg.InsecureDefaults() {
			logger.Warn("insecure default in use, set it before deploying", zap.String("setting", key))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := repository.OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer store.Close()

	if cfg.Database.RunMigrations {
		if err := store.Migrate(ctx, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	health := map[string]handlers.Pinger{"database": store}

	var limiter service.LoginLimiter = service.NoopLoginLimiter{}
	if cfg.Redis.Enabled {
		redis := persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		limiter = service.NewRedisLoginLimiter(redis.Client, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow())
		health["redis"] = redis
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		AdminRepo: store.Admins,
		Limiter:   limiter,
		Logger:    logger,
		Metrics:   metrics,
	})
	noticeService := service.NewNoticeService(service.NoticeDependencies{
		NoticeRepo:  store.Notices,
		Departments: cfg.Notices.Departments,
		Dispatcher:  dispatcher,
		Metrics:     metrics,
		Logger:      logger,
	})

	app := httptransport.NewApp(httptransport.ServerDeps{
		Name:           cfg.App.Name,
		Version:        cfg.App.Version,
		Logger:         logger,
		Metrics:        metrics,
		RequestTimeout: cfg.App.RequestTimeout(),
		AllowOrigins:   cfg.App.CORSAllowOrigins,
		AuthService:    authService,
		NoticeService:  noticeService,
		Health:         health,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("driver", store.Driver()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
