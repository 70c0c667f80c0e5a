// Package cache stores raw feed payloads between runs so repeated
// invocations within the TTL do not refetch every outlet.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface shared by the memory, disk, and layered
// implementations.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a feed URL.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "newslens:feed:" + hex.EncodeToString(sum[:])
}
