package shared

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"go-url-cache/internal/cache"
	"go-url-cache/internal/config"
	"go-url-cache/internal/interfaces"
	"go-url-cache/internal/metrics"
	"go-url-cache/internal/utils"
)

// URLs are minted for this multiple of the requested expiry so that
// other replicas can still reuse them for a full expiry later on
const mintHeadroom = 2

// Ensure Resolver implements interfaces.AsyncURLResolver
var _ interfaces.AsyncURLResolver = (*Resolver)(nil)

// Resolver lets replicas share minted URLs through KeyDB. A URL found in
// the shared namespace is reused only if it outlives the caller's
// requested expiry. Otherwise the upstream resolver mints one valid for
// mintHeadroom times the requested expiry and it is published for the
// other replicas.
type Resolver struct {
	upstream   interfaces.AsyncURLResolver
	client     interfaces.KeyDbClient
	keyPrefix  string
	defaultTTL time.Duration
	readTO     time.Duration
	writeTO    time.Duration
	logger     *zap.Logger
}

// NewResolver wraps upstream with the shared namespace
func NewResolver(upstream interfaces.AsyncURLResolver, client interfaces.KeyDbClient, cfg *config.SharedConfig, defaultTTL time.Duration, logger *zap.Logger) *Resolver {
	return &Resolver{
		upstream:   upstream,
		client:     client,
		keyPrefix:  cfg.KeyPrefix,
		defaultTTL: defaultTTL,
		readTO:     cfg.ReadTimeout,
		writeTO:    cfg.WriteTimeout,
		logger:     logger,
	}
}

// Name identifies the resolver
func (r *Resolver) Name() string {
	return "shared:" + r.upstream.Name()
}

// ResolveURL returns a shared URL or mints and publishes a new one
func (r *Resolver) ResolveURL(ctx context.Context, fileID, variant string, expiresIn time.Duration) (string, error) {
	key := r.sharedKey(fileID, variant)
	want := expiresIn
	if want <= 0 {
		want = r.defaultTTL
	}

	if url, ok := r.lookup(ctx, key, want); ok {
		return url, nil
	}

	lifetime := r.mintLifetime(want)
	url, err := r.upstream.ResolveURL(ctx, fileID, variant, lifetime)
	if err != nil {
		return "", err
	}

	if utils.IsDownloadURL(url) {
		r.publish(ctx, key, url, lifetime)
	}
	return url, nil
}

// Close closes the KeyDB connection
func (r *Resolver) Close() error {
	return r.client.Close()
}

// mintLifetime adds headroom to want without going past what the upstream
// can sign. When want itself is beyond the limit it is passed through so
// the upstream refuses it.
func (r *Resolver) mintLifetime(want time.Duration) time.Duration {
	lifetime := want * mintHeadroom
	if limiter, ok := r.upstream.(interfaces.ExpiryLimiter); ok {
		lifetime = min(lifetime, max(limiter.MaxExpiry(), want))
	}
	return lifetime
}

func (r *Resolver) sharedKey(fileID, variant string) string {
	return r.keyPrefix + cache.Key(fileID, variant)
}

func (r *Resolver) lookup(ctx context.Context, key string, want time.Duration) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, r.readTO)
	defer cancel()

	url, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			metrics.RecordSharedStoreError("get")
			r.logger.Warn("Shared URL lookup failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	if !utils.IsDownloadURL(url) {
		r.logger.Warn("Dropping malformed shared URL", zap.String("key", key))
		r.client.Del(ctx, key)
		return "", false
	}

	remaining, err := r.client.PTTL(ctx, key).Result()
	if err != nil {
		metrics.RecordSharedStoreError("pttl")
		r.logger.Warn("Shared URL TTL lookup failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	// negative values mean the key vanished or never expires
	if remaining < want {
		return "", false
	}

	return url, true
}

func (r *Resolver) publish(ctx context.Context, key, url string, lifetime time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, r.writeTO)
	defer cancel()

	if err := r.client.Set(ctx, key, url, lifetime).Err(); err != nil {
		metrics.RecordSharedStoreError("set")
		r.logger.Warn("Failed to publish shared URL", zap.String("key", key), zap.Error(fmt.Errorf("set: %w", err)))
	}
}
