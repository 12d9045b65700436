package presign

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"go-url-cache/internal/cache"
	"go-url-cache/internal/config"
	"go-url-cache/internal/interfaces/mock"
)

func testConfig() *config.PresignConfig {
	return &config.PresignConfig{
		Endpoint:      "localhost:9000",
		Bucket:        "media",
		Prefix:        "uploads",
		DefaultExpiry: 15 * time.Minute,
	}
}

func TestResolver_ResolveURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	presigner := mock.NewMockObjectPresigner(ctrl)
	r := NewResolver(presigner, testConfig(), zap.NewNop())

	signed, _ := url.Parse("https://localhost:9000/media/uploads/thumb/file1?X-Amz-Signature=abc")
	presigner.EXPECT().
		PresignedGetObject(gomock.Any(), "media", "uploads/thumb/file1", 10*time.Minute, gomock.Any()).
		Return(signed, nil)

	result, err := r.ResolveURL(context.Background(), "file1", "thumb", 10*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, signed.String(), result)
	assert.Equal(t, "presign", r.Name())
}

func TestResolver_ResolveURL_DefaultExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	presigner := mock.NewMockObjectPresigner(ctrl)
	r := NewResolver(presigner, testConfig(), zap.NewNop())

	signed, _ := url.Parse("https://localhost:9000/media/uploads/file1?sig=1")
	presigner.EXPECT().
		PresignedGetObject(gomock.Any(), "media", "uploads/file1", 15*time.Minute, gomock.Any()).
		Return(signed, nil)

	_, err := r.ResolveURL(context.Background(), "file1", "", 0)
	assert.NoError(t, err)
}

func TestResolver_ResolveURL_ExpiryLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	presigner := mock.NewMockObjectPresigner(ctrl)
	r := NewResolver(presigner, testConfig(), zap.NewNop())

	signed, _ := url.Parse("https://localhost:9000/media/uploads/file1?sig=1")
	presigner.EXPECT().
		PresignedGetObject(gomock.Any(), "media", "uploads/file1", MaxExpiry, gomock.Any()).
		Return(signed, nil)

	// Exactly seven days is accepted as is
	_, err := r.ResolveURL(context.Background(), "file1", "", MaxExpiry)
	assert.NoError(t, err)
	assert.Equal(t, MaxExpiry, r.MaxExpiry())

	// Longer expiries are refused rather than shortened
	result, err := r.ResolveURL(context.Background(), "file1", "", 10*24*time.Hour)
	assert.ErrorIs(t, err, ErrExpiryTooLong)
	assert.Empty(t, result)
}

func TestResolver_ResolveURL_DefaultExpiryTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	presigner := mock.NewMockObjectPresigner(ctrl)
	cfg := testConfig()
	cfg.DefaultExpiry = 8 * 24 * time.Hour
	r := NewResolver(presigner, cfg, zap.NewNop())

	_, err := r.ResolveURL(context.Background(), "file1", "", 0)
	assert.ErrorIs(t, err, ErrExpiryTooLong)
}

func TestResolver_CacheNeverOutlivesSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	presigner := mock.NewMockObjectPresigner(ctrl)
	r := NewResolver(presigner, testConfig(), zap.NewNop())

	mockClock := clock.NewMock()
	mockClock.Set(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	urlCache := cache.New(cache.Options{Clock: mockClock}, zap.NewNop())

	presigner.EXPECT().PresignedGetObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Ten days cannot be signed, so the raw file id comes back uncached
	result := urlCache.ResolveAndCache(context.Background(), r, "file1", "", 10*24*time.Hour)
	assert.Equal(t, "file1", result)
	assert.Equal(t, 0, urlCache.Len())
}

func TestResolver_ResolveURL_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	presigner := mock.NewMockObjectPresigner(ctrl)
	r := NewResolver(presigner, testConfig(), zap.NewNop())

	presigner.EXPECT().
		PresignedGetObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("access denied"))

	result, err := r.ResolveURL(context.Background(), "file1", "", 0)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.Empty(t, result)
}

func TestResolver_ResolveURL_EmptyFileID(t *testing.T) {
	ctrl := gomock.NewController(t)
	presigner := mock.NewMockObjectPresigner(ctrl)
	r := NewResolver(presigner, testConfig(), zap.NewNop())

	_, err := r.ResolveURL(context.Background(), "", "", 0)
	assert.Error(t, err)
}

func TestNewMinIOResolver_SignsLocally(t *testing.T) {
	cfg := testConfig()
	cfg.AccessKey = "minioadmin"
	cfg.SecretKey = "minioadmin"
	cfg.Region = "us-east-1" // known region, no bucket-location lookup

	r, err := NewMinIOResolver(cfg, zap.NewNop())
	require.NoError(t, err)

	result, err := r.ResolveURL(context.Background(), "file1", "large", time.Minute)
	require.NoError(t, err)

	parsed, err := url.Parse(result)
	require.NoError(t, err)
	assert.Equal(t, "http", parsed.Scheme)
	assert.Equal(t, "localhost:9000", parsed.Host)
	assert.Equal(t, "/media/uploads/large/file1", parsed.Path)
	assert.Equal(t, "60", parsed.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, parsed.Query().Get("X-Amz-Signature"))
}
