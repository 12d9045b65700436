package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"go-url-cache/internal/cache"
	"go-url-cache/internal/config"
	"go-url-cache/internal/interfaces"
	"go-url-cache/internal/interfaces/mock"
	"go-url-cache/internal/models"
	"go-url-cache/internal/resolver/template"
)

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			DefaultTTL: time.Hour,
			MaxSize:    100,
		},
		Resolver: config.ResolverConfig{
			Type:          config.ResolverTemplate,
			VariantExpiry: map[string]time.Duration{"thumbnail": 24 * time.Hour},
		},
		Server: config.ServerConfig{
			BatchConcurrency: 4,
			MaxBatchSize:     10,
		},
	}
}

func newTestService(t *testing.T, resolver interfaces.URLResolver) (*URLService, *cache.Cache, *clock.Mock) {
	t.Helper()
	mockClock := clock.NewMock()
	mockClock.Set(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	logger := zaptest.NewLogger(t)

	cfg := testConfig()
	c := cache.New(cache.Options{DefaultTTL: cfg.Cache.DefaultTTL, MaxSize: cfg.Cache.MaxSize, Clock: mockClock}, logger)
	return NewURLService(c, resolver, cfg, mockClock, logger), c, mockClock
}

func newTemplateResolver(t *testing.T) interfaces.URLResolver {
	t.Helper()
	r, err := template.NewResolver("https://cdn.example.com/{variant}/{file_id}", "original")
	require.NoError(t, err)
	return r
}

func TestURLService_Lookup(t *testing.T) {
	svc, c, mockClock := newTestService(t, nil)

	resp, err := svc.Lookup("file1", "")
	require.NoError(t, err)
	assert.False(t, resp.Found)

	c.Set("file1", "https://cdn.example.com/file1", "", 10*time.Minute)
	mockClock.Add(time.Minute)

	resp, err = svc.Lookup("file1", "")
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, "https://cdn.example.com/file1", resp.URL)
	assert.Equal(t, 540, resp.TTL)
	assert.NotZero(t, resp.ExpiresAt)

	_, err = svc.Lookup("", "")
	assert.ErrorIs(t, err, ErrEmptyFileID)
}

func TestURLService_Store(t *testing.T) {
	svc, c, _ := newTestService(t, nil)

	err := svc.Store("file1", "https://cdn.example.com/file1", "large", time.Minute)
	require.NoError(t, err)

	url, found := c.Get("file1", "large")
	assert.True(t, found)
	assert.Equal(t, "https://cdn.example.com/file1", url)

	err = svc.Store("file2", "ftp://cdn.example.com/file2", "", 0)
	assert.ErrorIs(t, err, ErrInvalidURL)
	assert.Equal(t, 1, c.Len())

	err = svc.Store("", "https://cdn.example.com/x", "", 0)
	assert.ErrorIs(t, err, ErrEmptyFileID)
}

func TestURLService_Resolve_CachedFlag(t *testing.T) {
	svc, _, _ := newTestService(t, newTemplateResolver(t))
	ctx := context.Background()

	resp, err := svc.Resolve(ctx, "file1", "large", 0)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/large/file1", resp.URL)
	assert.False(t, resp.Cached)
	assert.True(t, resp.Resolved)

	resp, err = svc.Resolve(ctx, "file1", "large", 0)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/large/file1", resp.URL)
	assert.True(t, resp.Cached)
}

func TestURLService_Resolve_ExpiredEntryNotReportedCached(t *testing.T) {
	svc, c, mockClock := newTestService(t, newTemplateResolver(t))

	c.Set("file1", "https://old.example.com/file1", "", time.Second)
	mockClock.Add(2 * time.Second)

	resp, err := svc.Resolve(context.Background(), "file1", "", 0)
	require.NoError(t, err)
	assert.False(t, resp.Cached)
	assert.Equal(t, "https://cdn.example.com/original/file1", resp.URL)
}

func TestURLService_Resolve_VariantExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mock.NewMockAsyncURLResolver(ctrl)
	resolver.EXPECT().Name().Return("async").AnyTimes()
	svc, c, mockClock := newTestService(t, resolver)
	ctx := context.Background()

	resolver.EXPECT().ResolveURL(gomock.Any(), "file1", "thumbnail", 24*time.Hour).
		Return("https://s3.example.com/thumbnail/file1", nil)
	resolver.EXPECT().ResolveURL(gomock.Any(), "file2", "thumbnail", time.Minute).
		Return("https://s3.example.com/thumbnail/file2", nil)

	_, err := svc.Resolve(ctx, "file1", "thumbnail", 0)
	require.NoError(t, err)
	entry, found := c.Peek("file1", "thumbnail")
	require.True(t, found)
	assert.Equal(t, mockClock.Now().Add(24*time.Hour).UnixMilli(), entry.ExpiresAt)

	// An explicit expiry wins over the variant override
	_, err = svc.Resolve(ctx, "file2", "thumbnail", time.Minute)
	require.NoError(t, err)
}

func TestURLService_Resolve_Fallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mock.NewMockAsyncURLResolver(ctrl)
	resolver.EXPECT().Name().Return("async").AnyTimes()
	resolver.EXPECT().ResolveURL(gomock.Any(), "file1", "", time.Duration(0)).
		Return("", errors.New("storage unavailable"))
	svc, c, _ := newTestService(t, resolver)

	resp, err := svc.Resolve(context.Background(), "file1", "", 0)
	require.NoError(t, err)
	assert.Equal(t, "file1", resp.URL)
	assert.False(t, resp.Resolved)
	assert.Equal(t, 0, c.Len())
}

func TestURLService_ResolveBatch(t *testing.T) {
	svc, c, _ := newTestService(t, newTemplateResolver(t))

	items := make([]ResolveItem, 0, 8)
	for i := range 8 {
		items = append(items, ResolveItem{FileID: fmt.Sprintf("file%d", i), Variant: "large"})
	}

	results, err := svc.ResolveBatch(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, results, len(items))
	for i, r := range results {
		assert.Equal(t, items[i].FileID, r.FileID)
		assert.Equal(t, fmt.Sprintf("https://cdn.example.com/large/file%d", i), r.URL)
	}
	assert.Equal(t, 8, c.Len())
}

func TestURLService_ResolveBatch_BoundedConcurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mock.NewMockAsyncURLResolver(ctrl)
	resolver.EXPECT().Name().Return("async").AnyTimes()
	svc, _, _ := newTestService(t, resolver)

	var inFlight, peak atomic.Int32
	resolver.EXPECT().ResolveURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fileID, _ string, _ time.Duration) (string, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return "https://s3.example.com/" + fileID, nil
		}).Times(10)

	items := make([]ResolveItem, 10)
	for i := range items {
		items[i] = ResolveItem{FileID: fmt.Sprintf("file%d", i)}
	}

	results, err := svc.ResolveBatch(context.Background(), items)
	require.NoError(t, err)
	assert.Len(t, results, 10)
	assert.LessOrEqual(t, peak.Load(), int32(4))
}

func TestURLService_ResolveBatch_Errors(t *testing.T) {
	svc, _, _ := newTestService(t, newTemplateResolver(t))

	tooMany := make([]ResolveItem, 11)
	for i := range tooMany {
		tooMany[i] = ResolveItem{FileID: fmt.Sprintf("file%d", i)}
	}
	_, err := svc.ResolveBatch(context.Background(), tooMany)
	assert.ErrorIs(t, err, ErrBatchTooLarge)

	_, err = svc.ResolveBatch(context.Background(), []ResolveItem{{FileID: "file1"}, {FileID: ""}})
	assert.ErrorIs(t, err, ErrEmptyFileID)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.ResolveBatch(ctx, []ResolveItem{{FileID: "file1"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestURLService_SweepPurgeStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	urlCache := mock.NewMockURLCache(ctrl)
	logger := zaptest.NewLogger(t)
	svc := NewURLService(urlCache, newTemplateResolver(t), testConfig(), nil, logger)

	urlCache.EXPECT().ClearExpired().Return(3)
	assert.Equal(t, 3, svc.Sweep())

	urlCache.EXPECT().Clear()
	svc.Purge()

	urlCache.EXPECT().Len().Return(42)
	stats := svc.Stats()
	assert.Equal(t, 42, stats.Entries)
	assert.Equal(t, 100, stats.MaxSize)
	assert.Equal(t, 3600, stats.DefaultTTL)
	assert.Equal(t, "template", stats.Resolver)
}

func TestURLService_Lookup_UsesPeekForExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	urlCache := mock.NewMockURLCache(ctrl)
	mockClock := clock.NewMock()
	svc := NewURLService(urlCache, nil, testConfig(), mockClock, zaptest.NewLogger(t))

	urlCache.EXPECT().Get("file1", "thumb").Return("https://cdn.example.com/file1", true)
	urlCache.EXPECT().Peek("file1", "thumb").Return(models.URLEntry{URL: "https://cdn.example.com/file1", ExpiresAt: 30000}, true)

	resp, err := svc.Lookup("file1", "thumb")
	require.NoError(t, err)
	assert.Equal(t, int64(30000), resp.ExpiresAt)
	assert.Equal(t, 30, resp.TTL)

	urlCache.EXPECT().Len().Return(0)
	assert.Equal(t, "none", NewURLService(urlCache, nil, testConfig(), mockClock, zaptest.NewLogger(t)).Stats().Resolver)
}
