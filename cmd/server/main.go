package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/withme-travel/withme/internal/config"
	"github.com/withme-travel/withme/internal/database"
	"github.com/withme-travel/withme/internal/handlers"
	"github.com/withme-travel/withme/internal/logging"
	"github.com/withme-travel/withme/internal/metrics"
	"github.com/withme-travel/withme/internal/middleware"
	"github.com/withme-travel/withme/internal/services"
)

func main() {
	if err := run(); err != nil {
		logging.Error("Application error", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	logger := logging.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := logging.ParseLevel(cfg.Log.Level)
	if cfg.Server.Debug {
		level = logging.LevelDebug
	}
	logger.SetLevel(level)
	logging.SetDefaultLevel(level)
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting withme activity ideas server...", map[string]interface{}{
		"env": cfg.Server.Environment,
	})

	logger.Info("Connecting to PostgreSQL", map[string]interface{}{
		"host": cfg.Database.Host,
		"port": cfg.Database.Port,
	})
	db, err := database.NewPostgresDBWithOptions(cfg.Database.DSN(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer db.Close()
	logger.Info("Connected to PostgreSQL")

	if err := migrate(cfg, logger); err != nil {
		return err
	}

	// Redis is optional: the keyword cache and rate limiter degrade to
	// no caching and per-instance limits.
	var (
		redisHealth  handlers.HealthChecker
		keywordStore services.KeywordStore
		counterStore middleware.CounterStore
	)
	logger.Info("Connecting to Redis", map[string]interface{}{"addr": cfg.Redis.Addr()})
	redisDB, err := database.NewRedisDB(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn("Redis unavailable; continuing without it", map[string]interface{}{"error": err})
	} else {
		defer func() { _ = redisDB.Close() }()
		redisHealth, keywordStore, counterStore = redisDB, redisDB.Client, redisDB.Client
		logger.Info("Connected to Redis")
	}

	dbAdapter := services.NewPoolAdapter(db.Pool)
	destinationService := services.NewDestinationService(dbAdapter)
	templateService := services.NewTemplateService(dbAdapter)
	keywordCache := services.NewKeywordCache(keywordStore, cfg.Ideas.KeywordCacheTTL(), logger)
	ideaService := services.NewIdeaService(dbAdapter, destinationService, templateService, keywordCache, services.IdeaConfig{
		DefaultCount: cfg.Ideas.DefaultCount,
		MaxCount:     cfg.Ideas.MaxCount,
		MaxKeywords:  cfg.Ideas.MaxKeywords,
	}, logger)

	handler := newRouter(routerDeps{
		health:       handlers.NewHealthHandler(db, redisHealth),
		destinations: handlers.NewDestinationHandler(destinationService, ideaService),
		ideas:        handlers.NewIdeaHandler(destinationService, ideaService),
		limiter:      middleware.NewAPIRateLimiter(counterStore, cfg.RateLimit.Requests, cfg.RateLimit.Window()).WithLogger(logger),
		logger:       logger,
		secure:       cfg.Server.Secure,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Could not gracefully shutdown the server", map[string]interface{}{
				"error": err.Error(),
			})
		}
		close(done)
	}()

	logger.Info("Server listening", map[string]interface{}{"addr": addr})
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	<-done
	logger.Info("Server stopped")
	return nil
}

func migrate(cfg *config.Config, logger *logging.Logger) error {
	logger.Info("Running database migrations...", map[string]interface{}{"path": cfg.Database.Migrations})
	migrator, err := database.NewMigrator(cfg.Database.DSN(), cfg.Database.Migrations)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer func() { _ = migrator.Close() }()

	if err := migrator.Up(); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	status, err := migrator.Status()
	if err != nil {
		return fmt.Errorf("reading migration status: %w", err)
	}
	if status.Dirty {
		return fmt.Errorf("database schema is dirty at version %d", status.Version)
	}
	logger.Info("Migrations completed", map[string]interface{}{"version": status.Version})
	return nil
}

type routerDeps struct {
	health       *handlers.HealthHandler
	destinations *handlers.DestinationHandler
	ideas        *handlers.IdeaHandler
	limiter      *middleware.RateLimiter
	logger       *logging.Logger
	secure       bool
}

func newRouter(d routerDeps) http.Handler {
	limited := func(h http.HandlerFunc) http.Handler {
		return d.limiter.Middleware(h)
	}

	mux := http.NewServeMux()

	// Health endpoints (no rate limit)
	mux.HandleFunc("GET /health", d.health.Health)
	mux.HandleFunc("GET /ready", d.health.Ready)
	mux.HandleFunc("GET /live", d.health.Live)
	mux.Handle("GET /metrics", metrics.Handler())

	// Destination endpoints
	mux.HandleFunc("GET /api/destinations", d.destinations.List)
	mux.HandleFunc("GET /api/destinations/{id}", d.destinations.Get)
	mux.HandleFunc("GET /api/destinations/{id}/keywords", d.destinations.Keywords)

	// Idea endpoints; generation is rate limited
	mux.Handle("POST /api/destinations/{id}/ideas", limited(d.ideas.Generate))
	mux.HandleFunc("GET /api/destinations/{id}/ideas", d.ideas.ListSaved)
	mux.HandleFunc("DELETE /api/ideas/{id}", d.ideas.Delete)
	mux.Handle("POST /api/ideas/preview", limited(d.ideas.Preview))
	mux.HandleFunc("GET /api/ideas/taxonomy", d.ideas.Taxonomy)

	// Build middleware chain (order matters: outermost last)
	var handler http.Handler = mux
	handler = middleware.NewSecurityHeaders(d.secure).Apply(handler)
	handler = middleware.Metrics(handler)
	handler = middleware.NewRequestLogger(d.logger).Apply(handler)
	return handler
}
