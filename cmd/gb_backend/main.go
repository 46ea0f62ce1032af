package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/grace_blooms_backend/internal/adapters/localstore"
	"github.com/SscSPs/grace_blooms_backend/internal/adapters/ratesapi"
	"github.com/SscSPs/grace_blooms_backend/internal/core/ports"
	portsrepo "github.com/SscSPs/grace_blooms_backend/internal/core/ports/repositories"
	"github.com/SscSPs/grace_blooms_backend/internal/core/services"
	"github.com/SscSPs/grace_blooms_backend/internal/handlers"
	"github.com/SscSPs/grace_blooms_backend/internal/middleware"
	"github.com/SscSPs/grace_blooms_backend/internal/platform/config"
	"github.com/SscSPs/grace_blooms_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/grace_blooms_backend/internal/repositories/memory"
	"github.com/SscSPs/grace_blooms_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Grace Blooms Backend API
// @version 1.0
// @description Currency rates and conversion for the storefront, plus the assistant memory store.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, closeRepos, err := setupRepositories(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	localStore := setupLocalStore(cfg, logger)
	if localStore != nil {
		defer func() {
			if cerr := localStore.Close(); cerr != nil {
				logger.Error("Error closing local store", slog.String("error", cerr.Error()))
			}
		}()
	}

	provider := ratesapi.NewClient(cfg.RatesProviderURL, cfg.RatesProviderTimeout)
	container := services.NewServiceContainer(cfg, repos, provider, localStore)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	publicLimiter, err := middleware.NewIPRateLimiter(cfg.PublicRateLimit)
	if err != nil {
		logger.Error("Invalid PUBLIC_RATE_LIMIT", slog.String("value", cfg.PublicRateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, middleware.RateLimit(publicLimiter))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories returns the in-memory store when configured, otherwise a
// migrated Postgres-backed provider. The returned func releases resources.
func setupRepositories(cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.UseInMemoryStore {
		logger.Warn("Using in-memory repositories; data is lost on restart")
		return memory.NewRepositoryProvider(), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Open a temporary standard sql.DB connection for migrations
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// setupLocalStore opens the BadgerDB directory. An empty path, or a failure to
// open, leaves the currency core headless.
func setupLocalStore(cfg *config.Config, logger *slog.Logger) ports.LocalStore {
	if cfg.LocalStorePath == "" {
		logger.Info("LOCAL_STORE_PATH empty; exchange rates and currency preference run headless")
		return nil
	}

	store, err := localstore.Open(cfg.LocalStorePath)
	if err != nil {
		logger.Warn("Local store unavailable; running headless", slog.String("path", cfg.LocalStorePath), slog.String("error", err.Error()))
		return nil
	}
	return store
}
