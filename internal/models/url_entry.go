package models

import (
	"time"
)

// URLEntry is a resolved download URL and the instant it stops being served.
type URLEntry struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"` // unix milliseconds
}

// IsExpired reports whether the entry has passed its expiry at nowMs.
// An entry is still valid at exactly ExpiresAt.
func (e *URLEntry) IsExpired(nowMs int64) bool {
	return nowMs > e.ExpiresAt
}

// TTLRemaining returns how long the entry stays valid after nowMs.
func (e *URLEntry) TTLRemaining(nowMs int64) time.Duration {
	if e.IsExpired(nowMs) {
		return 0
	}
	return time.Duration(e.ExpiresAt-nowMs) * time.Millisecond
}

// LookupResult labels the outcome of a cache lookup for metrics
type LookupResult string

const (
	LookupHit     LookupResult = "hit"
	LookupMiss    LookupResult = "miss"
	LookupExpired LookupResult = "expired"
)

// ResolveOutcome labels the outcome of a resolver invocation
type ResolveOutcome string

const (
	ResolveCached      ResolveOutcome = "cached"       // served from cache, resolver untouched
	ResolveAsync       ResolveOutcome = "async"        // async resolver produced a URL
	ResolveSync        ResolveOutcome = "sync"         // sync resolver produced a URL
	ResolveFallback    ResolveOutcome = "fallback"     // raw file id returned
	ResolveAsyncFailed ResolveOutcome = "async_failed" // async resolver returned an error
)
