package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface shared by the memory, disk, and
// layered implementations. Values are opaque response bodies.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from an API request URL.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "policynav:v1:" + hex.EncodeToString(hash[:])
}
