package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asutherland/treeherder-service/config"
	"github.com/asutherland/treeherder-service/internal/adapters/refetch"
	"github.com/asutherland/treeherder-service/internal/data"
	"github.com/asutherland/treeherder-service/internal/etl/pushlog"
	"github.com/asutherland/treeherder-service/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Ingestion *service.IngestionService
	Pushes    *service.PushService
	Refdata   *service.RefdataService
	Worker    *refetch.Worker
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	DB             *sql.DB
	Redis          redis.UniversalClient
	RepositoryRepo *data.RepositoryRepo
	JobRepo        *data.JobRepo
	PushRepo       *data.PushRepo
	RefdataRepo    *data.RefdataRepo
	CacheRepo      *data.RedisCacheRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, redisClient redis.UniversalClient, logger *slog.Logger) *serviceRepositories {
	return &serviceRepositories{
		DB:             db,
		Redis:          redisClient,
		RepositoryRepo: data.NewRepositoryRepo(db),
		JobRepo:        data.NewJobRepo(db, logger),
		PushRepo:       data.NewPushRepo(db),
		RefdataRepo:    data.NewRefdataRepo(db),
		CacheRepo:      data.NewRedisCacheRepo(redisClient),
	}
}

// NewServices wires the ingestion pipeline, the push view, and the
// refetch worker over shared infrastructure.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := deps.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	repos := buildRepositories(deps.DB, deps.RedisClient, logger)

	pushlogClient := pushlog.NewClient(pushlog.ClientOptions{
		BaseURL:  appCfg.Pushlog.BaseURL,
		Timeout:  appCfg.Pushlog.Timeout,
		Logger:   logger,
		Cache:    repos.CacheRepo,
		CacheTTL: appCfg.Pushlog.LookupCacheTTL,
	})
	resolver := pushlog.NewResolver(logger)

	queue := refetch.NewRedisTaskQueue(deps.RedisClient, appCfg.Refetch.QueueKey)
	scheduler := refetch.NewScheduler(queue, logger)
	worker := refetch.NewWorker(refetch.WorkerOptions{
		Queue:       queue,
		Client:      pushlogClient,
		Repos:       repos.RepositoryRepo,
		Pushes:      repos.PushRepo,
		Logger:      logger,
		PollTimeout: appCfg.Refetch.PollTimeout,
	})

	ingestion := service.NewIngestionService(service.IngestionServiceOptions{
		Repos:     repos.RepositoryRepo,
		Jobs:      repos.JobRepo,
		Pushes:    repos.PushRepo,
		Lookup:    pushlogClient,
		Resolver:  resolver,
		Scheduler: scheduler,
		Logger:    logger,
	})
	pushes := service.NewPushService(service.PushServiceOptions{
		Repos: repos.RepositoryRepo,
		Jobs:  repos.JobRepo,
	})
	refdata := service.NewRefdataService(repos.RefdataRepo)

	return ServiceContainer{
		Ingestion: ingestion,
		Pushes:    pushes,
		Refdata:   refdata,
		Worker:    worker,
	}
}

// ServiceOrchestrationConfig contains configuration for service orchestration.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

const (
	// shutdownWaitTimeout is the maximum time to wait for services to stop gracefully.
	shutdownWaitTimeout = 15 * time.Second
)

// backgroundServiceHandle tracks a running background service.
type backgroundServiceHandle struct {
	name string
	done <-chan struct{}
}

// startRefetchWorkerIfEnabled launches the refetch worker goroutine.
func startRefetchWorkerIfEnabled(
	ctx context.Context,
	cfg *ServiceOrchestrationConfig,
	enabled map[config.ServiceMode]bool,
	logger *slog.Logger,
	errCh chan<- error,
) *backgroundServiceHandle {
	if !enabled[config.ServiceModeRefetchWorker] || cfg.Services.Worker == nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := cfg.Services.Worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			select {
			case errCh <- fmt.Errorf("refetch worker failed: %w", err):
			case <-ctx.Done():
			}
		}
	}()

	logger.InfoContext(ctx, "background service started", "service", "refetch worker")
	return &backgroundServiceHandle{name: "refetch worker", done: done}
}

// RunServicesWithShutdown starts all enabled services and manages their lifecycle.
// This function blocks until a shutdown signal is received or a service fails.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}

	serviceCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	enabled, err := cfg.Config.GetEnabledServices()
	if err != nil {
		return fmt.Errorf("determine enabled services: %w", err)
	}
	errCh := make(chan error, len(enabled)+1)

	var httpServer *http.Server
	if enabled[config.ServiceModeHTTP] {
		httpServer = StartHTTPServer(&HTTPServerConfig{
			Addr:     cfg.Config.HTTP.Addr,
			Services: cfg.Services,
			Logger:   logger,
		})
	}

	worker := startRefetchWorkerIfEnabled(serviceCtx, cfg, enabled, logger, errCh)

	return waitForShutdown(shutdownConfig{
		cancel:     cancel,
		errCh:      errCh,
		httpServer: httpServer,
		worker:     worker,
		logger:     logger,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	cancel     context.CancelFunc
	errCh      <-chan error
	httpServer *http.Server
	worker     *backgroundServiceHandle
	logger     *slog.Logger
}

// waitForShutdown waits for shutdown signal or service error.
func waitForShutdown(cfg shutdownConfig) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		cfg.logger.Info("shutting down services...")
		cfg.cancel()
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("service error", "error", err)
		cfg.cancel()
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop attempts to gracefully stop all services.
func gracefulStop(cfg shutdownConfig) error {
	if cfg.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWaitTimeout)
		defer cancel()

		if err := ShutdownHTTPServer(ShutdownConfig{
			Context: shutdownCtx,
			Server:  cfg.httpServer,
			Logger:  cfg.logger,
		}); err != nil {
			return err
		}
	}

	if cfg.worker != nil {
		select {
		case <-cfg.worker.done:
			cfg.logger.Info(cfg.worker.name + " stopped")
		case <-time.After(shutdownWaitTimeout):
			cfg.logger.Warn("timeout waiting for " + cfg.worker.name + " to stop")
		}
	}

	return nil
}
