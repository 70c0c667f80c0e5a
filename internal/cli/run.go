package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/newslens/newslens/internal/cache"
	"github.com/newslens/newslens/internal/fetch"
	"github.com/newslens/newslens/internal/model"
	"github.com/newslens/newslens/internal/registry"
)

// buildFeedCache assembles the layered feed cache per configuration.
// The returned closer releases the disk layer; it is a no-op when caching
// is disabled or the disk layer could not be opened.
func buildFeedCache(cfg *model.Config) (cache.Cache, func(), error) {
	noop := func() {}
	if !cfg.Cache.Enabled {
		return nil, noop, nil
	}

	memory := cache.NewMemoryCache(cfg.Cache.MemoryTTL, cfg.Cache.MemoryTTL)

	dir := cfg.Cache.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return memory, noop, nil
		}
		dir = filepath.Join(home, ".newslens", "cache")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		// Memory-only cache still works; don't fail the run.
		return memory, noop, nil
	}

	disk, err := cache.NewDiskCache(filepath.Join(dir, "feeds.db"), cfg.Cache.DiskTTL)
	if err != nil {
		return memory, noop, nil
	}
	layered := cache.NewLayeredCache(memory, disk)
	return layered, func() { _ = disk.Close() }, nil
}

// loadRegistry opens the source registry at its default location, seeding
// the built-in outlets on first use.
func loadRegistry() (*registry.Registry, error) {
	path, err := registry.DefaultPath()
	if err != nil {
		return nil, err
	}
	return registry.Load(path)
}

// collectArticles gathers the input batch for an analysis run: either the
// country's live feeds or the built-in mock batch for offline use.
func collectArticles(ctx context.Context, cfg *model.Config, reg *registry.Registry, useMock bool) (fetch.Batch, error) {
	if useMock {
		return fetch.Batch{Articles: fetch.MockBatch(time.Now().UTC())}, nil
	}

	sources := reg.ByCountry(cfg.Country)
	if len(sources) == 0 {
		return fetch.Batch{}, fmt.Errorf("no sources registered for country %q (see 'newslens sources list')", cfg.Country)
	}

	feedCache, closeCache, err := buildFeedCache(cfg)
	if err != nil {
		return fetch.Batch{}, err
	}
	defer closeCache()

	fetcher := fetch.New(cfg.Fetch, feedCache, newLogger())
	batch := fetcher.FetchCountry(ctx, sources)

	if len(batch.Articles) == 0 {
		return batch, fmt.Errorf("all %d sources failed to fetch", len(sources))
	}
	return batch, nil
}
