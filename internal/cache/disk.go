package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var feedBucket = []byte("feeds")

// DiskCache persists feed payloads in a bbolt database so the cache
// survives across CLI invocations.
type DiskCache struct {
	db  *bolt.DB
	ttl time.Duration
}

type diskEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewDiskCache opens (creating if needed) the cache database at path.
func NewDiskCache(path string, defaultTTL time.Duration) (*DiskCache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(feedBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create cache bucket: %w", err)
	}

	return &DiskCache{db: db, ttl: defaultTTL}, nil
}

// Close releases the underlying database.
func (c *DiskCache) Close() error {
	return c.db.Close()
}

func (c *DiskCache) Get(key string) ([]byte, bool) {
	var entry diskEntry
	found := false

	_ = c.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(feedBucket).Get([]byte(key))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil
		}
		found = true
		return nil
	})

	if !found {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		_ = c.Delete(key)
		return nil, false
	}
	return entry.Data, true
}

func (c *DiskCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	raw, err := json.Marshal(diskEntry{Data: value, ExpiresAt: time.Now().Add(ttl)})
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(feedBucket).Put([]byte(key), raw)
	})
}

func (c *DiskCache) Delete(key string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(feedBucket).Delete([]byte(key))
	})
}

func (c *DiskCache) Clear() error {
	return c.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(feedBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(feedBucket)
		return err
	})
}
