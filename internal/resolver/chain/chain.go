package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-url-cache/internal/interfaces"
)

// ErrNoAsyncResolver is returned by ResolveURL when the chain holds no
// async resolvers
var ErrNoAsyncResolver = errors.New("no async resolver configured")

var (
	_ interfaces.AsyncURLResolver = (*Chain)(nil)
	_ interfaces.SyncURLResolver  = (*Chain)(nil)
)

// Chain combines several resolvers. Async resolvers are tried in order
// until one succeeds; sync resolvers likewise. Members that implement
// both styles take part in both.
type Chain struct {
	async  []interfaces.AsyncURLResolver
	sync   []interfaces.SyncURLResolver
	name   string
	logger *zap.Logger
}

// NewChain creates a chain from resolvers in priority order
func NewChain(resolvers []interfaces.URLResolver, logger *zap.Logger) *Chain {
	c := &Chain{logger: logger}
	names := make([]string, 0, len(resolvers))

	for _, r := range resolvers {
		if r == nil {
			continue
		}
		names = append(names, r.Name())
		if async, ok := r.(interfaces.AsyncURLResolver); ok {
			c.async = append(c.async, async)
		}
		if sync, ok := r.(interfaces.SyncURLResolver); ok {
			c.sync = append(c.sync, sync)
		}
	}
	c.name = "chain(" + strings.Join(names, ",") + ")"

	return c
}

// Name identifies the resolver
func (c *Chain) Name() string {
	return c.name
}

// ResolveURL returns the first async result without error
func (c *Chain) ResolveURL(ctx context.Context, fileID, variant string, expiresIn time.Duration) (string, error) {
	if len(c.async) == 0 {
		return "", ErrNoAsyncResolver
	}

	var errs []error
	for _, r := range c.async {
		url, err := r.ResolveURL(ctx, fileID, variant, expiresIn)
		if err == nil {
			return url, nil
		}
		c.logger.Debug("Chained resolver failed",
			zap.String("resolver", r.Name()),
			zap.String("file_id", fileID),
			zap.Error(err))
		errs = append(errs, fmt.Errorf("%s: %w", r.Name(), err))

		if ctx.Err() != nil {
			break
		}
	}
	return "", errors.Join(errs...)
}

// LookupURL returns the first sync result
func (c *Chain) LookupURL(fileID, variant string, expiresIn time.Duration) (string, bool) {
	for _, r := range c.sync {
		if url, ok := r.LookupURL(fileID, variant, expiresIn); ok {
			return url, true
		}
	}
	return "", false
}

// Len returns the number of async and sync members
func (c *Chain) Len() (async, sync int) {
	return len(c.async), len(c.sync)
}
