package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"go-url-cache/internal/cache"
	"go-url-cache/internal/config"
	"go-url-cache/internal/httpserver"
	"go-url-cache/internal/interfaces"
	"go-url-cache/internal/resolver/chain"
	"go-url-cache/internal/resolver/fileapi"
	"go-url-cache/internal/resolver/noop"
	"go-url-cache/internal/resolver/presign"
	"go-url-cache/internal/resolver/shared"
	"go-url-cache/internal/resolver/template"
	"go-url-cache/internal/scheduler"
	"go-url-cache/internal/service"
)

// CompositionRoot holds all application dependencies and is the single
// place where they are created, wired and released.
type CompositionRoot struct {
	// Configuration
	Config *config.Config
	Logger *zap.Logger
	Clock  clock.Clock

	// Cache components
	Cache    *cache.Cache
	Resolver interfaces.URLResolver
	Sweeper  *scheduler.Scheduler

	// KeyDB client behind the shared namespace, closed on cleanup
	keydbClient    interfaces.KeyDbClient
	newKeyDbClient func(cfg *config.SharedConfig, keydbURL string, logger *zap.Logger) (interfaces.KeyDbClient, error)

	// Services
	URLService *service.URLService
	HTTPServer *httpserver.Server
}

// NewCompositionRoot creates and initializes all application dependencies.
//
// Initialization order:
// 1. Logger (needed by all other components)
// 2. Configuration
// 3. Resolver (optionally behind the shared KeyDB namespace)
// 4. Cache and background sweeper
// 5. Services
// 6. HTTP Server
func NewCompositionRoot() (*CompositionRoot, error) {
	root := &CompositionRoot{
		Clock:          clock.New(),
		newKeyDbClient: shared.NewRedisKeyDbClient,
	}

	if err := root.initLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := root.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := root.initComponents(); err != nil {
		return nil, err
	}

	return root, nil
}

// initComponents wires everything that depends on the loaded configuration.
// On failure whatever was opened is released.
func (r *CompositionRoot) initComponents() error {
	if err := r.initResolver(); err != nil {
		if cleanupErr := r.Cleanup(); cleanupErr != nil {
			r.Logger.Warn("Cleanup after failed initialization", zap.Error(cleanupErr))
		}
		return fmt.Errorf("failed to initialize resolver: %w", err)
	}

	r.initCache()
	r.initServices()
	r.initHTTPServer()
	return nil
}

// initLogger initializes the application logger
func (r *CompositionRoot) initLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	r.Logger = logger
	redis.SetLogger(NewRedisLogger(logger))
	return nil
}

// loadConfig loads the application configuration
func (r *CompositionRoot) loadConfig() error {
	configPath := os.Getenv("URL_CACHE_CONFIG_FILE")
	if configPath == "" {
		configPath = "/app/url_cache_config.yaml"
	}

	cfg, err := config.LoadConfig(configPath, r.Logger)
	if err != nil {
		return err
	}

	r.Config = cfg
	return nil
}

// initCache creates the URL cache and starts its sweeper
func (r *CompositionRoot) initCache() {
	r.Cache = cache.New(cache.Options{
		DefaultTTL: r.Config.Cache.DefaultTTL,
		MaxSize:    r.Config.Cache.MaxSize,
		Clock:      r.Clock,
	}, r.Logger)
	r.Sweeper = r.Cache.StartSweeper(r.Config.Cache.SweepInterval)

	r.Logger.Info("URL cache initialized",
		zap.Int("max_size", r.Cache.MaxSize()),
		zap.Duration("default_ttl", r.Cache.DefaultTTL()),
		zap.Duration("sweep_interval", r.Config.Cache.SweepInterval))
}

// initResolver builds the configured resolver
func (r *CompositionRoot) initResolver() error {
	members := r.Config.Resolver.Members()
	if len(members) == 0 {
		r.Resolver = noop.NewNoOpResolver()
		r.Logger.Info("URL resolution disabled, cache misses serve file ids")
		return nil
	}

	if r.Config.Shared.Enabled {
		r.connectKeyDB()
	}

	resolvers := make([]interfaces.URLResolver, 0, len(members))
	for _, kind := range members {
		resolver, err := r.buildResolver(kind)
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		if async, ok := resolver.(interfaces.AsyncURLResolver); ok && r.keydbClient != nil {
			resolver = shared.NewResolver(async, r.keydbClient, &r.Config.Shared, r.Config.Cache.DefaultTTL, r.Logger)
		}
		resolvers = append(resolvers, resolver)
	}

	if r.Config.Resolver.Type == config.ResolverChain {
		r.Resolver = chain.NewChain(resolvers, r.Logger)
	} else {
		r.Resolver = resolvers[0]
	}

	r.Logger.Info("URL resolver initialized", zap.String("resolver", r.Resolver.Name()))
	return nil
}

// connectKeyDB opens the shared namespace client. Without it resolvers
// run unshared.
func (r *CompositionRoot) connectKeyDB() {
	newClient := r.newKeyDbClient
	if newClient == nil {
		newClient = shared.NewRedisKeyDbClient
	}

	keydbURL := GetKeyDBURL(&r.Config.Shared, r.Logger)
	client, err := newClient(&r.Config.Shared, keydbURL, r.Logger)
	if err != nil {
		r.Logger.Warn("Failed to connect to KeyDB, resolving without shared namespace",
			zap.String("keydb_url", keydbURL),
			zap.Error(err))
		return
	}

	r.keydbClient = client
	r.Logger.Info("Shared URL namespace initialized", zap.String("keydb_url", keydbURL))
}

// buildResolver creates a single resolver backend
func (r *CompositionRoot) buildResolver(kind string) (interfaces.URLResolver, error) {
	cfg := &r.Config.Resolver
	switch kind {
	case config.ResolverPresign:
		return presign.NewMinIOResolver(&cfg.Presign, r.Logger)
	case config.ResolverFileAPI:
		client := &http.Client{Timeout: cfg.FileAPI.Timeout}
		return fileapi.NewResolver(&cfg.FileAPI, client, r.Clock, r.Logger), nil
	case config.ResolverTemplate:
		return template.NewResolver(cfg.Template.Pattern, cfg.Template.DefaultVariant)
	default:
		return nil, fmt.Errorf("unknown resolver type %q", kind)
	}
}

// initServices initializes application services
func (r *CompositionRoot) initServices() {
	r.URLService = service.NewURLService(r.Cache, r.Resolver, r.Config, r.Clock, r.Logger)
}

// initHTTPServer initializes the HTTP server
func (r *CompositionRoot) initHTTPServer() {
	r.HTTPServer = httpserver.NewServer(r.URLService, r.Logger)
}

// Cleanup performs cleanup of all resources
func (r *CompositionRoot) Cleanup() error {
	var errs []error

	if r.Sweeper != nil {
		r.Sweeper.Stop()
	}

	if r.keydbClient != nil {
		if err := r.keydbClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close KeyDB client: %w", err))
		}
		r.keydbClient = nil
	}

	if r.Logger != nil {
		if err := r.Logger.Sync(); err != nil {
			errs = append(errs, fmt.Errorf("failed to sync logger: %w", err))
		}
	}

	return errors.Join(errs...)
}

// GetSocketPath returns the Unix socket path for the server
func (r *CompositionRoot) GetSocketPath() string {
	return r.Config.Server.SocketPath
}
