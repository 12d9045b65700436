package cache

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-url-cache/internal/interfaces"
	"go-url-cache/internal/metrics"
	"go-url-cache/internal/models"
	"go-url-cache/internal/utils"
)

const noResolverName = "none"

// ResolveAndCache returns the cached URL for a file variant, or asks the
// resolver for one on a miss. An async resolver is preferred; if it
// fails the sync resolver is tried. When no usable URL comes back the
// file id itself is returned and nothing is cached.
//
// The resolver is called without holding the cache lock, so concurrent
// misses on one key may each resolve. The last Set wins.
func (c *Cache) ResolveAndCache(ctx context.Context, resolver interfaces.URLResolver, fileID, variant string, expiresIn time.Duration) string {
	if url, found := c.Get(fileID, variant); found {
		metrics.RecordResolution(resolverName(resolver), string(models.ResolveCached))
		return url
	}
	if resolver == nil {
		return c.fallback(noResolverName, fileID, variant)
	}

	url, outcome := c.resolve(ctx, resolver, fileID, variant, expiresIn)
	return c.store(resolver.Name(), outcome, fileID, url, variant, expiresIn)
}

// ResolveAndCacheSync is ResolveAndCache restricted to the sync resolver
func (c *Cache) ResolveAndCacheSync(resolver interfaces.URLResolver, fileID, variant string, expiresIn time.Duration) string {
	if url, found := c.Get(fileID, variant); found {
		metrics.RecordResolution(resolverName(resolver), string(models.ResolveCached))
		return url
	}
	if resolver == nil {
		return c.fallback(noResolverName, fileID, variant)
	}

	url, outcome := c.lookup(resolver, fileID, variant, expiresIn)
	return c.store(resolver.Name(), outcome, fileID, url, variant, expiresIn)
}

func resolverName(resolver interfaces.URLResolver) string {
	if resolver == nil {
		return noResolverName
	}
	return resolver.Name()
}

func (c *Cache) resolve(ctx context.Context, resolver interfaces.URLResolver, fileID, variant string, expiresIn time.Duration) (string, models.ResolveOutcome) {
	async, ok := resolver.(interfaces.AsyncURLResolver)
	if !ok {
		return c.lookup(resolver, fileID, variant, expiresIn)
	}

	done := metrics.TimeResolve(resolver.Name())
	url, err := async.ResolveURL(ctx, fileID, variant, expiresIn)
	done()
	if err == nil {
		return url, models.ResolveAsync
	}

	metrics.RecordResolution(resolver.Name(), string(models.ResolveAsyncFailed))
	c.logger.Warn("Async URL resolution failed, trying sync resolver",
		zap.String("resolver", resolver.Name()),
		zap.String("file_id", fileID),
		zap.String("variant", variant),
		zap.Error(err))

	return c.lookup(resolver, fileID, variant, expiresIn)
}

func (c *Cache) lookup(resolver interfaces.URLResolver, fileID, variant string, expiresIn time.Duration) (string, models.ResolveOutcome) {
	syncResolver, ok := resolver.(interfaces.SyncURLResolver)
	if !ok {
		return "", models.ResolveFallback
	}

	url, ok := syncResolver.LookupURL(fileID, variant, expiresIn)
	if !ok {
		return "", models.ResolveFallback
	}
	return url, models.ResolveSync
}

func (c *Cache) store(resolverName string, outcome models.ResolveOutcome, fileID, url, variant string, expiresIn time.Duration) string {
	if !utils.IsDownloadURL(url) {
		return c.fallback(resolverName, fileID, variant)
	}

	c.Set(fileID, url, variant, expiresIn)
	metrics.RecordResolution(resolverName, string(outcome))
	return url
}

func (c *Cache) fallback(resolverName, fileID, variant string) string {
	metrics.RecordResolution(resolverName, string(models.ResolveFallback))
	c.logger.Debug("No usable URL resolved, returning file id",
		zap.String("resolver", resolverName),
		zap.String("file_id", fileID),
		zap.String("variant", variant))
	return fileID
}
