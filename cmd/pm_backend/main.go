package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/property_management_app/internal/adapters/database/memory"
	"github.com/SscSPs/property_management_app/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/core/services"
	"github.com/SscSPs/property_management_app/internal/handlers"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/SscSPs/property_management_app/internal/platform/config"
	"github.com/SscSPs/property_management_app/internal/platform/metrics"
	"github.com/SscSPs/property_management_app/internal/platform/seed"
	"github.com/SscSPs/property_management_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// @title Property Management Backend API
// @version 1.0
// @description Rent roll, delinquency and portfolio reporting over a workspace's property records.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	seedPath := flag.String("seed", "", "JSON file of records to load into the record store before serving")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// Amounts leave the API as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := newRepositoryProvider(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	if *seedPath != "" {
		n, err := seed.LoadFile(ctx, *seedPath, repos.RecordStore, logger)
		if err != nil {
			logger.Error("Failed to seed records", slog.String("path", *seedPath), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Seed file loaded", slog.String("path", *seedPath), slog.Int("records", n))
	}

	appMetrics, err := metrics.New(nil)
	if err != nil {
		logger.Error("Failed to register metrics", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, appMetrics)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics(appMetrics))
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	var redisClient *redis.Client
	if cfg.RateLimitStore == config.RateLimitStoreRedis {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("Invalid REDIS_URL", slog.String("error", err.Error()))
			os.Exit(1)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()
	}
	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(rateLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("record_store", cfg.RecordStore))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if !cfg.IsProduction {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// newRepositoryProvider selects the record store backend. The returned func releases it.
func newRepositoryProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.RecordStore == config.RecordStoreMemory {
		logger.Warn("Using in-memory record store; data is lost on restart")
		return portsrepo.RepositoryProvider{RecordStore: memory.NewRecordStore()}, func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, logger)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool, logger) }, nil
}
