// Package tokencache stores short-lived token validity verdicts so the
// auth service is not consulted on every request.
package tokencache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache maps a token key to a validity verdict with a bounded lifetime.
// A stale or missing entry is reported as a miss; entries are only ever
// overwritten or evicted by time.
type Cache interface {
	// Get returns the cached verdict and whether a live entry exists.
	Get(ctx context.Context, key string) (valid bool, ok bool, err error)
	// Set stores a verdict for ttl. Writes are idempotent overwrites.
	Set(ctx context.Context, key string, valid bool, ttl time.Duration) error
}

// Key derives the cache key for a raw bearer token. Hashing keeps raw
// tokens out of shared cache backends while preserving exact-token
// identity.
func Key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "token_valid_" + hex.EncodeToString(sum[:])
}
