package cache

import (
	"context"
	"time"
)

// Store is a fail-open key/value cache. Get returns false on a miss or on
// any backend error; Set is best-effort and never reports failure. A cache
// outage therefore degrades to always-live computation, it cannot fail a
// request.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
