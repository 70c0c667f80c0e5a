package cache

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"
)

func TestKey_Stable(t *testing.T) {
	a := Key("https://example.com/rss")
	b := Key("https://example.com/rss")
	c := Key("https://example.com/other")

	if a != b {
		t.Error("same URL must produce the same key")
	}
	if a == c {
		t.Error("different URLs must produce different keys")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok := c.Get("k")
	if !ok || !bytes.Equal(val, []byte("payload")) {
		t.Errorf("Get = %q, %v", val, ok)
	}

	_ = c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after delete")
	}
}

func TestDiskCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.db")
	c, err := NewDiskCache(path, time.Hour)
	if err != nil {
		t.Fatalf("NewDiskCache: %v", err)
	}
	defer c.Close()

	if err := c.Set("k", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok := c.Get("k")
	if !ok || !bytes.Equal(val, []byte("payload")) {
		t.Errorf("Get = %q, %v", val, ok)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.db")
	c, err := NewDiskCache(path, time.Hour)
	if err != nil {
		t.Fatalf("NewDiskCache: %v", err)
	}
	defer c.Close()

	if err := c.Set("k", []byte("payload"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("expired entry must miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.db")
	disk, err := NewDiskCache(path, time.Hour)
	if err != nil {
		t.Fatalf("NewDiskCache: %v", err)
	}
	defer disk.Close()

	memory := NewMemoryCache(time.Minute, time.Minute)
	layered := NewLayeredCache(memory, disk)

	// Seed only the disk layer, simulating a fresh process.
	if err := disk.Set("k", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, ok := layered.Get("k")
	if !ok || !bytes.Equal(val, []byte("payload")) {
		t.Fatalf("layered Get = %q, %v", val, ok)
	}

	// The hit must now be served from memory too.
	if _, ok := memory.Get("k"); !ok {
		t.Error("disk hit was not promoted to the memory layer")
	}
}
