package interfaces

import (
	"context"
	"time"

	"go-url-cache/internal/models"
)

//go:generate mockgen -package=mock -source=cache.go -destination=mock/cache.go

// URLCache defines the contract for the download URL cache
type URLCache interface {
	Get(fileID, variant string) (string, bool)          // returns url and found flag
	Peek(fileID, variant string) (models.URLEntry, bool) // no expiry check, no side effects
	Set(fileID, url, variant string, ttl time.Duration)
	ClearExpired() int
	Clear()
	Len() int
	ResolveAndCache(ctx context.Context, resolver URLResolver, fileID, variant string, expiresIn time.Duration) string
	ResolveAndCacheSync(resolver URLResolver, fileID, variant string, expiresIn time.Duration) string
}
