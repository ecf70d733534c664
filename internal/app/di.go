// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/contenthub/backend/internal/config"
	"github.com/contenthub/backend/internal/crypto"
	"github.com/contenthub/backend/internal/database"
	"github.com/contenthub/backend/internal/fetch"
	internalHTTP "github.com/contenthub/backend/internal/http"
	materialUsecase "github.com/contenthub/backend/internal/material/usecase"
	"github.com/contenthub/backend/internal/metrics"
	"github.com/contenthub/backend/internal/redact"
	"github.com/contenthub/backend/internal/refiner"
	"github.com/contenthub/backend/internal/security"
	settingUsecase "github.com/contenthub/backend/internal/setting/usecase"
	statsUsecase "github.com/contenthub/backend/internal/stats/usecase"
	tagUsecase "github.com/contenthub/backend/internal/tag/usecase"
	topicUsecase "github.com/contenthub/backend/internal/topic/usecase"
)

// Container holds all application dependencies and provides methods to
// access them. Components are created lazily on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	guard           *security.Guard
	cipher          *crypto.Manager
	pageFetcher     *fetch.PageFetcher
	imageFetcher    *fetch.ImageFetcher
	refinerClient   *refiner.Client

	// Repositories
	settingRepo  settingUsecase.SettingRepository
	materialRepo materialUsecase.MaterialRepository
	topicRepo    topicUsecase.TopicRepository
	tagRepo      tagUsecase.TagRepository
	statsRepo    statsUsecase.StatsRepository

	// Use Cases
	settingUseCase  settingUsecase.SettingUseCase
	materialUseCase materialUsecase.MaterialUseCase
	topicUseCase    topicUsecase.TopicUseCase
	tagUseCase      tagUsecase.TagUseCase
	statsUseCase    statsUsecase.StatsUseCase

	// Servers
	httpServer    *internalHTTP.Server
	metricsServer *internalHTTP.MetricsServer

	// Initialization flags
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	guardInit           sync.Once
	cipherInit          sync.Once
	pageFetcherInit     sync.Once
	imageFetcherInit    sync.Once
	refinerClientInit   sync.Once
	settingRepoInit     sync.Once
	materialRepoInit    sync.Once
	topicRepoInit       sync.Once
	tagRepoInit         sync.Once
	statsRepoInit       sync.Once
	settingUseCaseInit  sync.Once
	materialUseCaseInit sync.Once
	topicUseCaseInit    sync.Once
	tagUseCaseInit      sync.Once
	statsUseCaseInit    sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the
// provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance. Log output runs through the
// redaction handler, so secret material never reaches log sinks.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the Prometheus metrics provider, or nil when
// metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. When metrics are
// disabled a no-op recorder is returned.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Guard returns the outbound fetch security guard.
func (c *Container) Guard() *security.Guard {
	c.guardInit.Do(func() {
		allowList := security.NewAllowList(c.config.AllowedFetchDomains)
		c.guard = security.NewGuard(allowList, c.config.DevMode, nil, c.Logger())
	})
	return c.guard
}

// Cipher returns the settings cipher manager.
func (c *Container) Cipher() (*crypto.Manager, error) {
	var err error
	c.cipherInit.Do(func() {
		c.cipher, err = c.initCipher()
		if err != nil {
			c.initErrors["cipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cipher"]; exists {
		return nil, storedErr
	}
	return c.cipher, nil
}

// PageFetcher returns the gated page fetcher.
func (c *Container) PageFetcher() *fetch.PageFetcher {
	c.pageFetcherInit.Do(func() {
		c.pageFetcher = fetch.NewPageFetcher(
			c.Guard(),
			c.config.FetchTimeout,
			c.config.FetchRatePerSec,
			c.config.FetchBurst,
			c.Logger(),
		)
	})
	return c.pageFetcher
}

// ImageFetcher returns the gated image fetcher.
func (c *Container) ImageFetcher() *fetch.ImageFetcher {
	c.imageFetcherInit.Do(func() {
		c.imageFetcher = fetch.NewImageFetcher(
			c.Guard(),
			c.config.FetchTimeout,
			c.config.FetchRatePerSec,
			c.config.FetchBurst,
			c.Logger(),
		)
	})
	return c.imageFetcher
}

// RefinerClient returns the content refiner client.
func (c *Container) RefinerClient() *refiner.Client {
	c.refinerClientInit.Do(func() {
		c.refinerClient = refiner.NewClient(
			c.config.RefinerBaseURL,
			c.config.RefinerModel,
			c.config.RefinerTimeout,
			c.config.RefinerMaxRetries,
			c.Logger(),
		)
	})
	return c.refinerClient
}

// HTTPServer returns the API HTTP server with all routes assembled.
func (c *Container) HTTPServer() (*internalHTTP.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*internalHTTP.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		var provider *metrics.Provider
		provider, err = c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = internalHTTP.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown releases container resources: the metrics provider and the
// database connection.
func (c *Container) Shutdown(ctx context.Context) error {
	var shutdownErrors []error

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

// initLogger creates the structured logger based on the configured log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(redact.NewHandler(handler))
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}
	return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}

// initCipher loads the cipher key and builds the settings cipher.
func (c *Container) initCipher() (*crypto.Manager, error) {
	key, err := crypto.LoadKey(context.Background(), crypto.KeyConfig{
		EncodedKey: c.config.EncryptionKey,
		KMSKeyURI:  c.config.EncryptionKMSKeyURI,
		WrappedKey: c.config.EncryptionWrappedKey,
	}, c.Logger())
	if err != nil {
		return nil, fmt.Errorf("failed to load encryption key: %w", err)
	}
	return crypto.NewManager(key, c.config.EncryptionPlaintextFallback, c.Logger())
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*internalHTTP.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	materialHandler, err := c.MaterialHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get material handler: %w", err)
	}
	topicHandler, err := c.TopicHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get topic handler: %w", err)
	}
	tagHandler, err := c.TagHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get tag handler: %w", err)
	}
	settingHandler, err := c.SettingHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get setting handler: %w", err)
	}
	statsHandler, err := c.StatsHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats handler: %w", err)
	}

	routerConfig := internalHTTP.RouterConfig{
		Material: materialHandler,
		Topic:    topicHandler,
		Tag:      tagHandler,
		Setting:  settingHandler,
		Stats:    statsHandler,
		CORS:     internalHTTP.CORSMiddleware(c.config.CORSEnabled, c.config.CORSAllowOrigins, logger),
	}

	if c.config.RateLimitEnabled {
		routerConfig.RateLimit = internalHTTP.RateLimitMiddleware(
			c.config.RateLimitRequestsPerSec,
			c.config.RateLimitBurst,
			logger,
		)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}
	if provider != nil {
		routerConfig.Metrics = metrics.HTTPMetricsMiddleware(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
	}

	server := internalHTTP.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(routerConfig)

	return server, nil
}
