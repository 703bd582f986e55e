package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/archdash/backend/internal/api/http"
	"github.com/archdash/backend/internal/api/middleware"
	"github.com/archdash/backend/internal/api/ws"
	"github.com/archdash/backend/internal/domain/catalog"
	"github.com/archdash/backend/internal/domain/sysinfo"
	"github.com/archdash/backend/internal/infrastructure/config"
	"github.com/archdash/backend/internal/infrastructure/logging"
	"github.com/archdash/backend/internal/infrastructure/monitoring"
	"github.com/archdash/backend/internal/storage"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	router  *gin.Engine
	store   *catalog.Store
	persist *storage.Store
	logger  *logging.Logger
	config  *config.Config
}

// New creates a new server instance from configuration.
func New(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing ArchDash backend",
		zap.String("port", cfg.Server.Port),
		zap.String("probe_command", cfg.Probe.Command),
	)

	metrics := monitoring.NewMetrics()

	// Catalog store, optionally backed by SQLite.
	store := catalog.NewStore().WithLogger(logger.Logger)
	var persist *storage.Store
	if cfg.Storage.Path != "" {
		var err error
		persist, err = storage.New(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog storage: %w", err)
		}

		entries, err := persist.LoadEntries()
		if err != nil {
			persist.Close()
			return nil, fmt.Errorf("failed to load persisted entries: %w", err)
		}
		users, err := persist.LoadUsers()
		if err != nil {
			persist.Close()
			return nil, fmt.Errorf("failed to load persisted users: %w", err)
		}

		store.Load(entries, users)
		store.WithPersister(persist)
		logger.Info("Catalog persistence enabled",
			zap.String("path", cfg.Storage.Path),
			zap.Int("entries", len(entries)),
			zap.Int("users", len(users)),
		)
	} else {
		logger.Info("Catalog persistence disabled, state is in-memory only")
	}

	stats := store.Stats()
	metrics.SetCatalogSize(stats.TotalEntries, stats.TotalUsers)

	probe := sysinfo.NewProbe(cfg.Probe.Command, logger.Logger)
	gateway := sysinfo.NewGateway(cfg.Probe.BaseURL, logger.Logger).
		WithFallbackHook(metrics.GatewayFallbacks.Inc)

	events := ws.NewHub(logger.Logger)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(store, probe, gateway, metrics, events)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Catalog
	router.GET("/api/entries", handlers.ListEntries)
	router.POST("/api/entries", handlers.CreateEntry)
	router.PATCH("/api/entries/:id", handlers.UpdateEntry)
	router.DELETE("/api/entries/:id", handlers.DeleteEntry)
	router.GET("/api/categories", handlers.ListCategories)
	router.GET("/api/stats", handlers.CatalogStats)

	// Users
	router.GET("/api/users", handlers.ListUsers)
	router.POST("/api/users", handlers.CreateUser)
	router.DELETE("/api/users/:username", handlers.DeleteUser)

	// Script generation
	router.POST("/api/script", handlers.GenerateScript)

	// System info relay and gateway view
	router.GET("/api/system-info", handlers.SystemInfo)
	router.GET("/api/system-info/cached", handlers.SystemInfoCached)

	// Events and metrics
	router.GET("/stream", events.HandleConnection)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:  router,
		store:   store,
		persist: persist,
		logger:  logger,
		config:  cfg,
	}, nil
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close releases server resources.
func (s *Server) Close() error {
	s.logger.Info("Shutting down")
	if s.persist != nil {
		if err := s.persist.Close(); err != nil {
			return fmt.Errorf("failed to close catalog storage: %w", err)
		}
	}
	_ = s.logger.Sync()
	return nil
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
