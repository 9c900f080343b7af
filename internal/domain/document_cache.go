package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrCacheMiss is returned by DocumentCache.Get for absent or expired keys.
var ErrCacheMiss = errors.New("cache: document not cached")

// DocumentCache keeps raw DRH response documents (entries, the question
// relation listing) so repeated extractions skip the API. Values are stored
// as received; callers validate them on the way out.
type DocumentCache interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	// Set stores doc under key for ttl. A zero ttl keeps it until evicted.
	Set(ctx context.Context, key string, doc json.RawMessage, ttl time.Duration) error
	// Delete drops every key in one round trip. Absent keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}
