package interfaces

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

//go:generate mockgen -source=keydb_client.go -destination=mock/keydb_client.go -package=mock

// KeyDbClient is the subset of the KeyDB/Redis client used for the
// shared URL namespace
type KeyDbClient interface {
	// Get retrieves a published URL by key
	Get(ctx context.Context, key string) *redis.StringCmd

	// PTTL returns the remaining lifetime of a key
	PTTL(ctx context.Context, key string) *redis.DurationCmd

	// Set publishes a URL with expiration
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd

	// Del removes published URLs
	Del(ctx context.Context, keys ...string) *redis.IntCmd

	// Ping tests connectivity
	Ping(ctx context.Context) *redis.StatusCmd

	// Close closes the client connection
	Close() error
}
