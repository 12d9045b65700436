package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Resolver types
const (
	ResolverNone     = "none"
	ResolverPresign  = "presign"
	ResolverFileAPI  = "fileapi"
	ResolverTemplate = "template"
	ResolverChain    = "chain"
)

// MaxPresignExpiry is the longest lifetime S3 accepts for a presigned URL
const MaxPresignExpiry = 7 * 24 * time.Hour

var validate = validator.New()

// Config represents the main configuration structure
type Config struct {
	Cache    CacheConfig    `yaml:"cache"`
	Resolver ResolverConfig `yaml:"resolver"`
	Shared   SharedConfig   `yaml:"shared"`
	Server   ServerConfig   `yaml:"server"`
}

// CacheConfig configures the in-process URL cache
type CacheConfig struct {
	DefaultTTL    time.Duration `yaml:"default_ttl" validate:"gte=0"`
	MaxSize       int           `yaml:"max_size" validate:"gte=0"`
	SweepInterval time.Duration `yaml:"sweep_interval" validate:"gte=0"`
}

// ResolverConfig selects and configures the URL resolver
type ResolverConfig struct {
	Type string `yaml:"type"`
	// Chain lists member resolver types in priority order for type "chain"
	Chain []string `yaml:"chain"`
	// VariantExpiry overrides the requested expiry per variant
	VariantExpiry map[string]time.Duration `yaml:"variant_expiry"`

	Presign  PresignConfig  `yaml:"presign"`
	FileAPI  FileAPIConfig  `yaml:"fileapi"`
	Template TemplateConfig `yaml:"template"`
}

// PresignConfig configures presigned URLs from S3-compatible storage
type PresignConfig struct {
	Endpoint      string        `yaml:"endpoint" validate:"required"`
	Bucket        string        `yaml:"bucket" validate:"required"`
	Prefix        string        `yaml:"prefix"`
	Region        string        `yaml:"region"`
	UseSSL        bool          `yaml:"use_ssl"`
	AccessKey     string        `yaml:"access_key"`
	SecretKey     string        `yaml:"secret_key"`
	DefaultExpiry time.Duration `yaml:"default_expiry" validate:"gt=0"`
}

// FileAPIConfig configures the file service resolver
type FileAPIConfig struct {
	BaseURL   string        `yaml:"base_url" validate:"required,url"`
	JWTSecret string        `yaml:"jwt_secret" validate:"required"`
	Issuer    string        `yaml:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" validate:"gt=0"`
	Timeout   time.Duration `yaml:"timeout" validate:"gt=0"`
}

// TemplateConfig configures public CDN URLs
type TemplateConfig struct {
	Pattern        string `yaml:"pattern" validate:"required"`
	DefaultVariant string `yaml:"default_variant"`
}

// SharedConfig configures the KeyDB namespace shared between replicas
type SharedConfig struct {
	Enabled        bool          `yaml:"enabled"`
	URL            string        `yaml:"url"`
	URLFile        string        `yaml:"url_file"`
	KeyPrefix      string        `yaml:"key_prefix"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	PoolSize       int           `yaml:"pool_size"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	SocketPath       string `yaml:"socket_path"`
	BatchConcurrency int    `yaml:"batch_concurrency" validate:"gte=0"`
	MaxBatchSize     int    `yaml:"max_batch_size" validate:"gte=0"`
}

// LoadConfig loads configuration from file path
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var config Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	config.applyEnvOverrides()
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// Validate checks the sections that the selected resolver needs
func (c *Config) Validate() error {
	if err := validate.Struct(c.Cache); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := validate.Struct(c.Server); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := validate.Var(c.Resolver.Type, "omitempty,oneof=none presign fileapi template chain"); err != nil {
		return fmt.Errorf("resolver.type: %w", err)
	}
	if c.Resolver.Type == ResolverChain {
		if err := validate.Var(c.Resolver.Chain, "required,min=1,dive,oneof=presign fileapi template"); err != nil {
			return fmt.Errorf("resolver.chain: %w", err)
		}
	}

	for _, kind := range c.Resolver.Members() {
		var err error
		switch kind {
		case ResolverPresign:
			err = c.validatePresign()
		case ResolverFileAPI:
			err = validate.Struct(c.Resolver.FileAPI)
		case ResolverTemplate:
			err = validate.Struct(c.Resolver.Template)
		}
		if err != nil {
			return fmt.Errorf("resolver.%s: %w", kind, err)
		}
	}

	for variant, expiry := range c.Resolver.VariantExpiry {
		if expiry <= 0 {
			return fmt.Errorf("resolver.variant_expiry.%s must be positive", variant)
		}
	}
	return nil
}

// validatePresign checks that presigned URLs live at least as long as the
// cache keeps them
func (c *Config) validatePresign() error {
	if err := validate.Struct(c.Resolver.Presign); err != nil {
		return err
	}

	expiry := c.Resolver.Presign.DefaultExpiry
	if expiry < c.Cache.DefaultTTL {
		return fmt.Errorf("default_expiry %s is shorter than cache.default_ttl %s", expiry, c.Cache.DefaultTTL)
	}
	if expiry > MaxPresignExpiry {
		return fmt.Errorf("default_expiry %s exceeds %s", expiry, MaxPresignExpiry)
	}
	for variant, v := range c.Resolver.VariantExpiry {
		if v > MaxPresignExpiry {
			return fmt.Errorf("variant_expiry.%s %s exceeds %s", variant, v, MaxPresignExpiry)
		}
	}
	return nil
}

// Members returns the resolver types in use, in priority order
func (r *ResolverConfig) Members() []string {
	switch r.Type {
	case "", ResolverNone:
		return nil
	case ResolverChain:
		return r.Chain
	default:
		return []string{r.Type}
	}
}

// ExpiryFor returns the configured expiry for a variant, or requested
// when the variant has no override or an explicit expiry was asked for
func (r *ResolverConfig) ExpiryFor(variant string, requested time.Duration) time.Duration {
	if requested > 0 {
		return requested
	}
	return r.VariantExpiry[variant]
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Cache.DefaultTTL == 0 {
		c.Cache.DefaultTTL = time.Hour
	}
	if c.Cache.MaxSize == 0 {
		c.Cache.MaxSize = 5000
	}
	if c.Cache.SweepInterval == 0 {
		c.Cache.SweepInterval = 5 * time.Minute
	}

	if c.Resolver.Type == "" {
		c.Resolver.Type = ResolverNone
	}
	if c.Resolver.Presign.DefaultExpiry == 0 {
		c.Resolver.Presign.DefaultExpiry = c.Cache.DefaultTTL
	}
	if c.Resolver.FileAPI.Issuer == "" {
		c.Resolver.FileAPI.Issuer = "url-cache"
	}
	if c.Resolver.FileAPI.TokenTTL == 0 {
		c.Resolver.FileAPI.TokenTTL = time.Minute
	}
	if c.Resolver.FileAPI.Timeout == 0 {
		c.Resolver.FileAPI.Timeout = 5 * time.Second
	}

	if c.Shared.KeyPrefix == "" {
		c.Shared.KeyPrefix = "urlcache:"
	}
	if c.Shared.ConnectTimeout == 0 {
		c.Shared.ConnectTimeout = 2 * time.Second
	}
	if c.Shared.ReadTimeout == 0 {
		c.Shared.ReadTimeout = 500 * time.Millisecond
	}
	if c.Shared.WriteTimeout == 0 {
		c.Shared.WriteTimeout = 500 * time.Millisecond
	}
	if c.Shared.PoolSize == 0 {
		c.Shared.PoolSize = 10
	}

	if c.Server.SocketPath == "" {
		c.Server.SocketPath = "/tmp/url-cache.sock"
	}
	if c.Server.BatchConcurrency == 0 {
		c.Server.BatchConcurrency = 8
	}
	if c.Server.MaxBatchSize == 0 {
		c.Server.MaxBatchSize = 200
	}
}

// applyEnvOverrides takes secrets from the environment so they can stay
// out of the config file
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("S3_ACCESS_KEY"); v != "" {
		c.Resolver.Presign.AccessKey = v
	}
	if v := os.Getenv("S3_SECRET_KEY"); v != "" {
		c.Resolver.Presign.SecretKey = v
	}
	if v := os.Getenv("FILE_API_JWT_SECRET"); v != "" {
		c.Resolver.FileAPI.JWTSecret = v
	}
	if v := os.Getenv("URL_CACHE_SOCKET_PATH"); v != "" {
		c.Server.SocketPath = v
	}
}
