package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go-url-cache/internal/config"
	"go-url-cache/internal/interfaces"
	"go-url-cache/internal/metrics"
	"go-url-cache/internal/utils"
)

var (
	ErrEmptyFileID   = errors.New("file id is required")
	ErrInvalidURL    = errors.New("url must be an http or https URL")
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")
)

// URLService exposes the URL cache and the configured resolver to the API
type URLService struct {
	cache    interfaces.URLCache
	resolver interfaces.URLResolver
	cfg      *config.Config
	clock    clock.Clock
	logger   *zap.Logger
}

// NewURLService creates a new URL service instance
func NewURLService(cache interfaces.URLCache, resolver interfaces.URLResolver, cfg *config.Config, clk clock.Clock, logger *zap.Logger) *URLService {
	if clk == nil {
		clk = clock.New()
	}
	return &URLService{
		cache:    cache,
		resolver: resolver,
		cfg:      cfg,
		clock:    clk,
		logger:   logger,
	}
}

// LookupResponse represents the result of a cache lookup
type LookupResponse struct {
	Found     bool   `json:"found"`
	URL       string `json:"url,omitempty"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
	TTL       int    `json:"ttl,omitempty"`
}

// ResolveItem is a single file variant to resolve
type ResolveItem struct {
	FileID    string
	Variant   string
	ExpiresIn time.Duration
}

// ResolveResponse represents the result of a resolution
type ResolveResponse struct {
	FileID   string `json:"file_id"`
	Variant  string `json:"variant,omitempty"`
	URL      string `json:"url"`
	Cached   bool   `json:"cached"`
	Resolved bool   `json:"resolved"`
}

// Stats describes the cache state
type Stats struct {
	Entries    int    `json:"entries"`
	MaxSize    int    `json:"max_size"`
	DefaultTTL int    `json:"default_ttl"`
	Resolver   string `json:"resolver"`
}

// Lookup returns the cached URL for a file variant without resolving
func (s *URLService) Lookup(fileID, variant string) (*LookupResponse, error) {
	metrics.RecordAPIRequest("get")
	if fileID == "" {
		return nil, ErrEmptyFileID
	}

	url, found := s.cache.Get(fileID, variant)
	if !found {
		return &LookupResponse{Found: false}, nil
	}

	response := &LookupResponse{Found: true, URL: url}
	if entry, ok := s.cache.Peek(fileID, variant); ok {
		response.ExpiresAt = entry.ExpiresAt
		response.TTL = int(entry.TTLRemaining(s.nowMs()).Seconds())
	}
	return response, nil
}

// Store caches a URL supplied by the caller
func (s *URLService) Store(fileID, url, variant string, ttl time.Duration) error {
	metrics.RecordAPIRequest("set")
	if fileID == "" {
		return ErrEmptyFileID
	}
	if !utils.IsDownloadURL(url) {
		return fmt.Errorf("%w: %q", ErrInvalidURL, url)
	}

	s.cache.Set(fileID, url, variant, ttl)
	s.logger.Debug("Stored URL",
		zap.String("file_id", fileID),
		zap.String("variant", variant),
		zap.Duration("ttl", ttl))
	return nil
}

// Resolve returns a URL for a file variant, asking the resolver on a miss.
// When nothing usable is resolved the file id is returned.
func (s *URLService) Resolve(ctx context.Context, fileID, variant string, expiresIn time.Duration) (*ResolveResponse, error) {
	metrics.RecordAPIRequest("resolve")
	if fileID == "" {
		return nil, ErrEmptyFileID
	}
	return s.resolve(ctx, ResolveItem{FileID: fileID, Variant: variant, ExpiresIn: expiresIn}), nil
}

// ResolveBatch resolves several file variants concurrently. Results keep
// the order of items.
func (s *URLService) ResolveBatch(ctx context.Context, items []ResolveItem) ([]*ResolveResponse, error) {
	metrics.RecordAPIRequest("resolve_batch")
	if maxSize := s.cfg.Server.MaxBatchSize; maxSize > 0 && len(items) > maxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(items), maxSize)
	}
	for _, item := range items {
		if item.FileID == "" {
			return nil, ErrEmptyFileID
		}
	}

	results := make([]*ResolveResponse, len(items))
	g, gctx := errgroup.WithContext(ctx)
	if limit := s.cfg.Server.BatchConcurrency; limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.resolve(gctx, item)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch resolution aborted: %w", err)
	}
	return results, nil
}

// Sweep removes expired entries and returns how many were removed
func (s *URLService) Sweep() int {
	metrics.RecordAPIRequest("sweep")
	removed := s.cache.ClearExpired()
	s.logger.Debug("Swept URL cache", zap.Int("removed", removed))
	return removed
}

// Purge drops every cached URL
func (s *URLService) Purge() {
	metrics.RecordAPIRequest("clear")
	s.cache.Clear()
	s.logger.Info("URL cache cleared")
}

// Stats returns the cache state
func (s *URLService) Stats() *Stats {
	resolverName := "none"
	if s.resolver != nil {
		resolverName = s.resolver.Name()
	}
	return &Stats{
		Entries:    s.cache.Len(),
		MaxSize:    s.cfg.Cache.MaxSize,
		DefaultTTL: int(s.cfg.Cache.DefaultTTL.Seconds()),
		Resolver:   resolverName,
	}
}

func (s *URLService) resolve(ctx context.Context, item ResolveItem) *ResolveResponse {
	entry, ok := s.cache.Peek(item.FileID, item.Variant)
	cached := ok && !entry.IsExpired(s.nowMs())

	expiresIn := s.cfg.Resolver.ExpiryFor(item.Variant, item.ExpiresIn)
	url := s.cache.ResolveAndCache(ctx, s.resolver, item.FileID, item.Variant, expiresIn)

	return &ResolveResponse{
		FileID:   item.FileID,
		Variant:  item.Variant,
		URL:      url,
		Cached:   cached,
		Resolved: utils.IsDownloadURL(url),
	}
}

func (s *URLService) nowMs() int64 {
	return s.clock.Now().UnixMilli()
}
