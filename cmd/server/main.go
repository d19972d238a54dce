package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/joho/godotenv"

	"cmsadmin/application"
	"cmsadmin/database"
	"cmsadmin/domain/contracts"
	"cmsadmin/gen/db"
	"cmsadmin/infrastructure/config"
	"cmsadmin/infrastructure/repositories"
	"cmsadmin/interfaces/web/handlers"
	webmiddleware "cmsadmin/interfaces/web/middleware"
	"cmsadmin/interfaces/web/presenters"
	"cmsadmin/logging"
	"cmsadmin/platform/plugins"
)

const contentListRoute = "/api/pages/cms/contents/actions/list"

func main() {
	// Create app-wide context for graceful shutdown
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// Initialize configuration
	loadEnvironment()
	cfg := config.LoadAppConfigFromEnv()

	// Initialize logging
	logger := initializeLogging(cfg)

	// Initialize database
	db := initializeDatabase(cfg, logger)
	defer db.Close()

	// Build dependencies
	deps := buildDependencies(db, logger, cfg)
	purgeExpiredSessions(appCtx, deps)

	// Setup routes and start server
	router := setupRoutes(deps, cfg)
	startServer(router, cfg.HTTPAddr, logger, appCancel)
}

// ApplicationServices holds application services.
type ApplicationServices struct {
	ContentList *application.ContentListService
	Auth        *application.AuthService
}

// PresentationLayer groups all presentation components
type PresentationLayer struct {
	// Presenters
	ContentPresenter *presenters.ContentPresenter

	// Handlers
	ContentHandlers *handlers.ContentHandlers
}

// Dependencies holds all application dependencies organized by layer
type Dependencies struct {
	// Infrastructure
	DB      *database.Database
	Queries *db.Queries
	Logger  *logging.Logger
	Plugins *plugins.Registry

	// Repositories
	Repositories *RepositoryBundle

	// Application Layer
	Services *ApplicationServices

	// Presentation Layer
	Presentation *PresentationLayer
}

func loadEnvironment() {
	if err := godotenv.Load(); err != nil {
		println("No .env file found, using environment variables")
	} else {
		println("Loaded configuration from .env file")
	}
}

func initializeLogging(cfg *config.AppConfig) *logging.Logger {
	logger := logging.NewLogger(cfg.Logging)
	logging.SetDefault(logger)

	logger.Info("Application starting",
		"version", "1.0.0",
		"log_level", cfg.Logging.Level,
		"log_format", cfg.Logging.Format,
		"db_path", cfg.Database.Path,
	)

	return logger
}

func initializeDatabase(cfg *config.AppConfig, logger *logging.Logger) *database.Database {
	db, err := database.New(*cfg.Database, logger)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	return db
}

// RepositoryBundle holds all repository implementations
type RepositoryBundle struct {
	Sites       contracts.SiteRepository
	Channels    contracts.ChannelRepository
	Contents    contracts.ContentRepository
	Permissions contracts.PermissionRepository
	Sessions    contracts.SessionRepository
}

// buildRepositories creates all repository implementations with read/write database separation
func buildRepositories(database *database.Database, cfg *config.AppConfig) *RepositoryBundle {
	return &RepositoryBundle{
		Sites:       repositories.NewSqlcSiteRepository(database, cfg.Content.DefaultPageSize),
		Channels:    repositories.NewSqlcChannelRepository(database),
		Contents:    repositories.NewSqlcContentRepository(database),
		Permissions: repositories.NewSqlcPermissionRepository(database),
		Sessions:    repositories.NewSqlcSessionRepository(database),
	}
}

// buildApplicationServices creates application services with dependency injection.
func buildApplicationServices(repos *RepositoryBundle, registry *plugins.Registry, cfg *config.AppConfig) *ApplicationServices {
	return &ApplicationServices{
		ContentList: application.NewContentListService(
			repos.Sites,
			repos.Channels,
			repos.Contents,
			registry,
			cfg.Content.DecorationConcurrency,
		),
		Auth: application.NewAuthService(repos.Sessions, repos.Permissions, repos.Channels),
	}
}

// buildPresentationLayer creates all presenters and handlers
func buildPresentationLayer(services *ApplicationServices) *PresentationLayer {
	contentPresenter := presenters.NewContentPresenter()

	return &PresentationLayer{
		ContentPresenter: contentPresenter,
		ContentHandlers:  handlers.NewContentHandlers(services.ContentList, contentPresenter),
	}
}

// buildDependencies creates all application dependencies
func buildDependencies(db *database.Database, logger *logging.Logger, cfg *config.AppConfig) *Dependencies {
	registry := plugins.NewDefaultRegistry()

	repos := buildRepositories(db, cfg)
	services := buildApplicationServices(repos, registry, cfg)
	presentation := buildPresentationLayer(services)

	return &Dependencies{
		DB:           db,
		Queries:      db.Queries(),
		Logger:       logger,
		Plugins:      registry,
		Repositories: repos,
		Services:     services,
		Presentation: presentation,
	}
}

func purgeExpiredSessions(ctx context.Context, deps *Dependencies) {
	if _, err := deps.Services.Auth.PurgeExpiredSessions(ctx); err != nil {
		deps.Logger.Warn("Failed to purge expired sessions", "error", err)
	}
}

func setupRoutes(deps *Dependencies, cfg *config.AppConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	setupHTTPLogging(r, deps, cfg)
	r.Use(middleware.Recoverer)

	// System endpoints
	setupSystemRoutes(r, deps)

	// Admin API routes
	setupContentRoutes(r, deps, cfg)

	return r
}

func setupHTTPLogging(r *chi.Mux, deps *Dependencies, cfg *config.AppConfig) {
	if cfg.HTTPLogPath == "" {
		// No HTTP logging configured, skip
		return
	}

	logFile, err := os.OpenFile(cfg.HTTPLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		deps.Logger.Error("Failed to open HTTP log file", "error", err, "path", cfg.HTTPLogPath)
		return
	}
	// Note: logFile is not closed here as it needs to stay open for the server lifetime

	httpLogger := httplog.NewLogger("cmsadmin", httplog.Options{
		Writer: logFile,
		JSON:   true,
	})
	r.Use(httplog.RequestLogger(httpLogger))

	deps.Logger.Info("HTTP request logging enabled", "path", cfg.HTTPLogPath)
}

func setupSystemRoutes(r *chi.Mux, deps *Dependencies) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		stats, err := deps.DB.Health()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response := map[string]interface{}{
			"status":   "ok",
			"database": stats,
			"plugins":  len(deps.Plugins.ContentColumns([]string{plugins.StatisticsPluginID, plugins.PreviewPluginID})),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}

func setupContentRoutes(r *chi.Mux, deps *Dependencies, cfg *config.AppConfig) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(cfg.Content.RequestTimeout))
		r.Use(webmiddleware.Session(deps.Services.Auth, cfg.Session.CookieName))

		r.Post(contentListRoute, deps.Presentation.ContentHandlers.List)
	})
}

func startServer(router *chi.Mux, addr string, logger *logging.Logger, appCancel context.CancelFunc) {
	server := &http.Server{Addr: addr, Handler: router}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sig
		logger.Info("Shutdown signal received")

		// Cancel app-wide context first to signal all services to shutdown
		appCancel()

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				logger.Error("Graceful shutdown timed out, forcing exit")
				os.Exit(1)
			}
		}()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
			os.Exit(1)
		}
		serverStopCtx()
	}()

	logger.Info("Server starting", "address", addr)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-serverCtx.Done()
	logger.Info("Server stopped")
}
