package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/hours-api/api/swagger"
	"github.com/noah-isme/hours-api/internal/handler"
	"github.com/noah-isme/hours-api/internal/identity"
	"github.com/noah-isme/hours-api/internal/middleware"
	"github.com/noah-isme/hours-api/internal/repository"
	"github.com/noah-isme/hours-api/internal/service"
	"github.com/noah-isme/hours-api/pkg/cache"
	"github.com/noah-isme/hours-api/pkg/config"
	"github.com/noah-isme/hours-api/pkg/database"
	"github.com/noah-isme/hours-api/pkg/events"
	"github.com/noah-isme/hours-api/pkg/jobs"
	"github.com/noah-isme/hours-api/pkg/logger"
	"github.com/noah-isme/hours-api/pkg/storage"
	"github.com/noah-isme/hours-api/pkg/telemetry"
)

const version = "1.0.0"

// @title Hours API
// @version 1.0.0
// @description Office hours scheduling and attendance for schools
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTEL, version)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logr.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logr.Info("migrations applied")
	}

	var bucket middleware.Bucket
	if cfg.RateLimit.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		bucket = middleware.NewRedisBucket(client, cfg.RateLimit)
	}

	var directory identity.Directory
	switch cfg.Identity.Mode {
	case config.IdentityModeHTTP:
		directory = identity.NewHTTPDirectory(cfg.Identity.BaseURL, cfg.Identity.Timeout, logr)
	default:
		directory = identity.NewJWTDirectory(cfg.Identity.JWTSecret, cfg.Identity.JWTIssuer, logr)
	}

	var dispatcher events.Dispatcher = events.Nop{}
	if cfg.Events.Enabled {
		publisher := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange, logr)
		defer publisher.Close() //nolint:errcheck
		queue := events.NewQueueDispatcher(publisher, jobs.QueueConfig{
			Workers:    cfg.Events.Workers,
			MaxRetries: cfg.Events.Retries,
			RetryDelay: 500 * time.Millisecond,
			Logger:     logr,
		})
		queue.Start(ctx)
		defer queue.Stop()
		dispatcher = queue
	}

	metrics := service.NewMetricsService()
	coordinator := service.NewCoordinator(db, logr,
		service.WithIsolation(cfg.Database.TxIsolation),
		service.WithDispatcher(dispatcher),
		service.WithMetrics(metrics),
	)

	deps := service.Deps{
		Coordinator: coordinator,
		Stores: service.Stores{
			Schools:       repository.NewSchoolRepository(db),
			Subscriptions: repository.NewSubscriptionRepository(db),
			Locations:     repository.NewLocationRepository(db),
			Courses:       repository.NewCourseRepository(db),
			Sessions:      repository.NewSessionRepository(db),
			Attendance:    repository.NewAttendanceRepository(db),
		},
		Users:     directory,
		Validator: validator.New(),
		Metrics:   metrics,
		Logger:    logr,
	}

	files, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		return fmt.Errorf("init export storage: %w", err)
	}
	signer := storage.NewSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
	go sweepExports(ctx, files, cfg.Exports.SignedURLTTL, logr)

	engine := handler.NewRouter(handler.RouterDeps{
		Config:     cfg,
		Logger:     logr,
		Metrics:    metrics,
		Directory:  directory,
		Bucket:     bucket,
		DB:         db,
		Schools:    service.NewSchoolService(deps, cfg.Schools.EnforceSubscriptions),
		Locations:  service.NewLocationService(deps),
		Courses:    service.NewCourseService(deps),
		Sessions:   service.NewSessionService(deps),
		Attendance: service.NewAttendanceService(deps),
		Exports:    service.NewExportService(deps, files, signer, service.ExportConfig{APIPrefix: cfg.APIPrefix}),
	})

	srv := handler.Server(fmt.Sprintf(":%d", cfg.Port), engine)
	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	drainCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(drainCtx)
}

// sweepExports deletes rendered sheets once their links can no longer be
// redeemed.
func sweepExports(ctx context.Context, files *storage.LocalStorage, ttl time.Duration, logr *zap.Logger) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := files.CleanupOlderThan(ttl)
			if err != nil {
				logr.Warn("export sweep failed", zap.Error(err))
				continue
			}
			if len(removed) > 0 {
				logr.Info("export sweep", zap.Int("removed", len(removed)))
			}
		}
	}
}
