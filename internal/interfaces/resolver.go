package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -package=mock -source=resolver.go -destination=mock/resolver.go

// URLResolver is the capability the cache falls back to on a miss.
// Implementations declare which resolution styles they support by also
// implementing AsyncURLResolver, SyncURLResolver, or both.
type URLResolver interface {
	// Name identifies the resolver in logs and metrics
	Name() string
}

// AsyncURLResolver mints a download URL, possibly over the network
type AsyncURLResolver interface {
	URLResolver
	ResolveURL(ctx context.Context, fileID, variant string, expiresIn time.Duration) (string, error)
}

// SyncURLResolver produces a download URL without blocking.
// The boolean is false when no URL could be produced.
type SyncURLResolver interface {
	URLResolver
	LookupURL(fileID, variant string, expiresIn time.Duration) (string, bool)
}

// ExpiryLimiter is implemented by resolvers that cannot sign URLs past a
// fixed lifetime. Requests beyond MaxExpiry fail instead of being shortened.
type ExpiryLimiter interface {
	MaxExpiry() time.Duration
}
