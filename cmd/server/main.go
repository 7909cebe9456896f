package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/yourorg/starchart/internal/domain"
	"github.com/yourorg/starchart/internal/featureflags"
	"github.com/yourorg/starchart/internal/handler"
	"github.com/yourorg/starchart/internal/infrastructure/logger"
	"github.com/yourorg/starchart/internal/infrastructure/redis"
	"github.com/yourorg/starchart/internal/observability/tracing"
	"github.com/yourorg/starchart/internal/repository"
	"github.com/yourorg/starchart/internal/seed"
	"github.com/yourorg/starchart/internal/service"
	"github.com/yourorg/starchart/internal/worker"
	"github.com/yourorg/starchart/pkg/config"
	"github.com/yourorg/starchart/pkg/database"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize structured logger
	log := logger.NewLogger(cfg.LogLevel, cfg.Environment)
	log.Info("starting starchart server", slog.String("environment", cfg.Environment))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Initialize tracing (no-op without an endpoint)
	shutdownTracing, err := tracing.Init(ctx, log, cfg.OTLPEndpoint, "starchart", cfg.Environment)
	if err != nil {
		log.Error("failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 4. Load the seed dataset
	records, err := seed.Constellations()
	if err != nil {
		log.Error("failed to load seed data", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("seed data loaded", slog.Int("constellations", len(records)))

	// 5. Build the catalog store
	var store domain.Store
	var ready func(ctx context.Context) error

	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pool, err := database.NewConnectionPool(ctx, &database.Config{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPassword,
			Database: cfg.PostgresDatabase,
			SSLMode:  cfg.PostgresSSLMode,
		}, log)
		if err != nil {
			log.Error("failed to connect to postgres", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		pgStore := repository.NewPostgresStore(pool.GetDB(), log)
		if err := pgStore.Init(ctx, records); err != nil {
			log.Error("failed to initialize postgres store", slog.String("error", err.Error()))
			os.Exit(1)
		}
		ready = pool.Health

		// Catalog reads go through a cache: Redis when configured,
		// in-process otherwise.
		var byteCache repository.ByteCache
		if cfg.RedisURL != "" {
			redisClient, err := redis.NewClient(cfg.RedisURL)
			if err != nil {
				log.Error("failed to connect to redis", slog.String("error", err.Error()))
				os.Exit(1)
			}
			defer redisClient.Close()
			byteCache = repository.NewRedisCache(redisClient, log)
			log.Info("catalog cache: redis")
		} else {
			byteCache = repository.NewLocalCache()
			log.Info("catalog cache: in-process")
		}
		ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
		store = repository.NewCachedStore(pgStore, byteCache, ttl, log)

	default:
		store = repository.NewMemoryStore(records, log)
	}
	log.Info("catalog store ready", slog.String("backend", cfg.StoreBackend))

	// 6. Initialize the service layer
	strict := featureflags.Enabled(featureflags.StrictFavorites)
	if strict {
		log.Info("strict favorites enabled: unknown constellation IDs are rejected")
	}
	catalog := service.NewCatalogService(store, log, strict)

	// 7. Assemble routes
	router := handler.NewRouter(handler.RouterDeps{
		Catalog:        catalog,
		Logger:         log,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Ready:          ready,
	})
	rootHandler := otelhttp.NewHandler(router, "starchart")

	// 8. Start the stats worker in the background
	statsWorker := worker.NewStatsWorker(store, log, time.Duration(cfg.StatsIntervalSeconds)*time.Second)
	go statsWorker.Start(ctx)

	// 9. Start HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      rootHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("server starting",
		slog.Int("port", cfg.ServerPort),
		slog.String("store_backend", cfg.StoreBackend),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", slog.String("error", err.Error()))
		}
	}()

	<-sigChan
	log.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", slog.String("error", err.Error()))
	}

	cancel() // Stop the stats worker
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown error", slog.String("error", err.Error()))
	}
	log.Info("server stopped")
}
