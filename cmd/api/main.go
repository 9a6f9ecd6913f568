package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/admin-panel/internal/api/http"
	"github.com/spec-kit/admin-panel/internal/api/http/handlers"
	"github.com/spec-kit/admin-panel/internal/auth"
	"github.com/spec-kit/admin-panel/internal/config"
	"github.com/spec-kit/admin-panel/internal/events"
	"github.com/spec-kit/admin-panel/internal/observability"
	"github.com/spec-kit/admin-panel/internal/persistence"
	"github.com/spec-kit/admin-panel/internal/repository"
	"github.com/spec-kit/admin-panel/internal/service"
	"github.com/spec-kit/admin-panel/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)
	logRepo := repository.NewLogRepository(pool)
	fileRepo := repository.NewFileRepository(pool)
	noticeRepo := repository.NewNoticeRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	adminService := service.NewAdminService(service.AdminDependencies{
		UserRepo:   userRepo,
		TeamRepo:   teamRepo,
		LogRepo:    logRepo,
		FileRepo:   fileRepo,
		Dispatcher: dispatcher,
	})
	noticeService := service.NewNoticeService(service.NoticeDependencies{
		NoticeRepo: noticeRepo,
		Cache:      redis.ClientHandle(),
		CacheTTL:   cfg.Cache.NoticeTTL(),
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	auditService := service.NewAuditService(dispatcher, logRepo, logger)
	worker.StartAuditWorker(auditService)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewAuthMiddleware(tokenManager, userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Account:        handlers.NewAccountHandler(userRepo, tokenManager),
		Admin:          handlers.NewAdminHandler(adminService),
		Notices:        handlers.NewNoticeHandler(noticeService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
