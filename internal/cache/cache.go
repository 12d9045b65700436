package cache

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"go-url-cache/internal/interfaces"
	"go-url-cache/internal/metrics"
	"go-url-cache/internal/models"
)

const (
	DefaultTTL           = time.Hour
	DefaultMaxSize       = 5000
	DefaultSweepInterval = 5 * time.Minute
)

// Ensure Cache implements interfaces.URLCache
var _ interfaces.URLCache = (*Cache)(nil)

// Options configures a Cache. Zero values select the defaults.
type Options struct {
	DefaultTTL time.Duration
	MaxSize    int
	Clock      clock.Clock
}

type item struct {
	entry models.URLEntry
	seq   uint64 // first insertion order, kept across overwrites
}

// Cache memoizes resolved download URLs per file id and variant.
// It is bounded by entry count; when the bound is exceeded the entries
// closest to expiry are dropped first.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*item
	seq     uint64

	defaultTTL time.Duration
	maxSize    int
	clock      clock.Clock
	logger     *zap.Logger
}

// New creates an empty cache
func New(opts Options, logger *zap.Logger) *Cache {
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = DefaultTTL
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultMaxSize
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}

	return &Cache{
		entries:    make(map[string]*item),
		defaultTTL: opts.DefaultTTL,
		maxSize:    opts.MaxSize,
		clock:      opts.Clock,
		logger:     logger,
	}
}

// Get returns the cached URL for a file variant.
// An expired entry is removed and reported as a miss.
func (c *Cache) Get(fileID, variant string) (string, bool) {
	key := Key(fileID, variant)

	c.mu.Lock()
	defer c.mu.Unlock()

	it, found := c.entries[key]
	if !found {
		metrics.RecordLookup(string(models.LookupMiss))
		return "", false
	}

	if it.entry.IsExpired(c.nowMs()) {
		delete(c.entries, key)
		metrics.RecordLookup(string(models.LookupExpired))
		metrics.RecordRemovals("expired_on_get", 1)
		metrics.UpdateEntries(len(c.entries))
		return "", false
	}

	metrics.RecordLookup(string(models.LookupHit))
	return it.entry.URL, true
}

// Peek returns the stored entry without checking expiry or removing it
func (c *Cache) Peek(fileID, variant string) (models.URLEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, found := c.entries[Key(fileID, variant)]
	if !found {
		return models.URLEntry{}, false
	}
	return it.entry, true
}

// Set stores a URL for a file variant. A non-positive ttl selects the
// default TTL. Overwriting a key refreshes its expiry.
func (c *Cache) Set(fileID, url, variant string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	key := Key(fileID, variant)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry := models.URLEntry{
		URL:       url,
		ExpiresAt: c.nowMs() + ttl.Milliseconds(),
	}

	if it, found := c.entries[key]; found {
		it.entry = entry
	} else {
		c.seq++
		c.entries[key] = &item{entry: entry, seq: c.seq}
	}
	metrics.RecordSet()

	c.evictIfNeeded()
	metrics.UpdateEntries(len(c.entries))
}

// evictIfNeeded trims the cache back to maxSize, dropping entries in
// ascending expiry order. Equal expiries go in insertion order.
// Callers must hold c.mu.
func (c *Cache) evictIfNeeded() {
	overflow := len(c.entries) - c.maxSize
	if overflow <= 0 {
		return
	}

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b string) int {
		ia, ib := c.entries[a], c.entries[b]
		if n := cmp.Compare(ia.entry.ExpiresAt, ib.entry.ExpiresAt); n != 0 {
			return n
		}
		return cmp.Compare(ia.seq, ib.seq)
	})

	for _, key := range keys[:overflow] {
		delete(c.entries, key)
	}

	metrics.RecordRemovals("capacity", overflow)
	c.logger.Debug("Evicted URL cache entries nearest to expiry",
		zap.Int("evicted", overflow),
		zap.Int("max_size", c.maxSize))
}

// ClearExpired removes every entry that has expired and returns how many
// were removed. Expiry is judged against a single timestamp taken
// before the scan.
func (c *Cache) ClearExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.nowMs()
	removed := 0
	for key, it := range c.entries {
		if it.entry.IsExpired(now) {
			delete(c.entries, key)
			removed++
		}
	}

	metrics.RecordRemovals("sweep", removed)
	metrics.UpdateEntries(len(c.entries))
	return removed
}

// Clear removes all entries
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	metrics.UpdateEntries(0)
}

// Len returns the number of stored entries, expired ones included
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// MaxSize returns the entry bound
func (c *Cache) MaxSize() int {
	return c.maxSize
}

// DefaultTTL returns the TTL applied when none is given
func (c *Cache) DefaultTTL() time.Duration {
	return c.defaultTTL
}

func (c *Cache) nowMs() int64 {
	return c.clock.Now().UnixMilli()
}
