// Package http provides the Gin HTTP server, API router and middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	materialHTTP "github.com/contenthub/backend/internal/material/http"
	settingHTTP "github.com/contenthub/backend/internal/setting/http"
	statsHTTP "github.com/contenthub/backend/internal/stats/http"
	tagHTTP "github.com/contenthub/backend/internal/tag/http"
	topicHTTP "github.com/contenthub/backend/internal/topic/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	host   string
	port   int
	logger *slog.Logger
}

// NewServer creates a new HTTP server. The router is assembled separately
// with SetupRouter; Start falls back to a health-only router when none was
// configured.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		host:   host,
		port:   port,
		logger: logger,
	}
}

// RouterConfig carries the handlers and optional middleware mounted on the
// API router. Nil handlers and middleware are skipped.
type RouterConfig struct {
	Material  *materialHTTP.MaterialHandler
	Topic     *topicHTTP.TopicHandler
	Tag       *tagHTTP.TagHandler
	Setting   *settingHTTP.SettingHandler
	Stats     *statsHTTP.StatsHandler
	CORS      gin.HandlerFunc
	RateLimit gin.HandlerFunc
	Metrics   gin.HandlerFunc
}

// SetupRouter assembles the Gin router with middleware and versioned routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics)
	}
	if cfg.CORS != nil {
		router.Use(cfg.CORS)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimit != nil {
		v1.Use(cfg.RateLimit)
	}

	if cfg.Material != nil {
		v1.POST("/materials/text", cfg.Material.CreateTextHandler)
		v1.POST("/materials/url", cfg.Material.CreateURLHandler)
		v1.POST("/materials/image", cfg.Material.FetchImageHandler)
		v1.PUT("/materials/tags", cfg.Material.UpdateTagsHandler)
		v1.GET("/materials", cfg.Material.ListHandler)
		v1.GET("/materials/recycle-bin", cfg.Material.RecycleBinHandler)
		v1.GET("/materials/:id", cfg.Material.GetHandler)
		v1.DELETE("/materials/:id", cfg.Material.DeleteHandler)
		v1.POST("/materials/:id/restore", cfg.Material.RestoreHandler)
		v1.DELETE("/materials/:id/permanent", cfg.Material.PermanentDeleteHandler)
	}

	if cfg.Topic != nil {
		v1.POST("/topics", cfg.Topic.CreateHandler)
		v1.POST("/topics/refine", cfg.Topic.RefineHandler)
		v1.POST("/topics/discover", cfg.Topic.DiscoverHandler)
		v1.GET("/topics", cfg.Topic.ListHandler)
		v1.GET("/topics/:id", cfg.Topic.GetHandler)
		v1.PUT("/topics/:id", cfg.Topic.UpdateHandler)
		v1.DELETE("/topics/:id", cfg.Topic.DeleteHandler)
	}

	if cfg.Tag != nil {
		v1.POST("/tags", cfg.Tag.CreateHandler)
		v1.GET("/tags", cfg.Tag.ListHandler)
	}

	if cfg.Setting != nil {
		v1.GET("/settings", cfg.Setting.ListHandler)
		v1.GET("/settings/:key", cfg.Setting.GetHandler)
		v1.PUT("/settings/:key", cfg.Setting.UpsertHandler)
	}

	if cfg.Stats != nil {
		v1.GET("/usage-stats", cfg.Stats.ListHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		s.SetupRouter(RouterConfig{})
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.host, s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic, checking
// the database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(pingCtx); err != nil {
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}
