// Package fetch is the concurrent feed ingestion layer. It pulls every
// registered outlet's RSS feed in parallel with per-source timeouts,
// tolerating partial failure: a dead feed contributes zero articles, never
// an aborted batch. The analysis engine receives the merged result as an
// immutable slice and does no I/O of its own.
package fetch

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"github.com/newslens/newslens/internal/cache"
	"github.com/newslens/newslens/internal/model"
	"github.com/newslens/newslens/internal/worker"
)

// Fetcher downloads and parses outlet feeds.
type Fetcher struct {
	client  *resty.Client
	parser  *gofeed.Parser
	cache   cache.Cache    // nil disables caching
	robots  *RobotsChecker // nil disables robots.txt checks
	limiter *worker.Limiter
	cfg     model.FetchConfig
	log     *zap.Logger
}

// New creates a fetcher. feedCache may be nil to disable caching; log may
// be nil for silent operation.
func New(cfg model.FetchConfig, feedCache cache.Cache, log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetRetryCount(1)
	if cfg.Proxy != "" {
		client.SetProxy(cfg.Proxy)
	}

	f := &Fetcher{
		client:  client,
		parser:  gofeed.NewParser(),
		cache:   feedCache,
		limiter: worker.NewLimiter(cfg.RequestsPerSecond, cfg.Burst),
		cfg:     cfg,
		log:     log,
	}
	if cfg.CheckRobots {
		f.robots = NewRobotsChecker(cfg.UserAgent, cfg.Timeout)
	}
	return f
}

// SourceResult is the outcome of fetching one outlet's feed.
type SourceResult struct {
	Source   model.Source
	Articles []model.Article
	Cached   bool
	Error    error
}

// Err satisfies worker.Result.
func (r *SourceResult) Err() error { return r.Error }

// Batch is the merged outcome of one fetch run. Articles preserve registry
// source order and feed item order, keeping batches deterministic for
// identical payloads.
type Batch struct {
	Articles []model.Article
	Failures []*SourceResult
}

type feedJob struct {
	fetcher *Fetcher
	source  model.Source
}

func (j *feedJob) Execute(ctx context.Context) worker.Result {
	return j.fetcher.fetchSource(ctx, j.source)
}

// FetchCountry pulls every source's feed concurrently and merges the
// partial results. Failed sources are reported in Batch.Failures and
// logged; they never abort the run.
func (f *Fetcher) FetchCountry(ctx context.Context, sources []model.Source) Batch {
	pool := worker.NewPool(f.cfg.Concurrency)
	pool.Start()

	for _, src := range sources {
		pool.Submit(&feedJob{fetcher: f, source: src})
	}
	results := pool.Wait()

	byID := make(map[string]*SourceResult, len(results))
	for _, r := range results {
		sr := r.(*SourceResult)
		byID[sr.Source.ID] = sr
	}

	var batch Batch
	for _, src := range sources {
		sr, ok := byID[src.ID]
		if !ok {
			continue
		}
		if sr.Error != nil {
			f.log.Warn("feed fetch failed",
				zap.String("source", src.ID),
				zap.String("rss_url", src.RSSURL),
				zap.Error(sr.Error))
			batch.Failures = append(batch.Failures, sr)
			continue
		}
		batch.Articles = append(batch.Articles, sr.Articles...)
	}
	return batch
}

// fetchSource downloads and parses a single feed, consulting the cache and
// robots.txt first.
func (f *Fetcher) fetchSource(ctx context.Context, src model.Source) *SourceResult {
	result := &SourceResult{Source: src}

	if src.RSSURL == "" {
		f.log.Debug("source has no feed URL, skipping", zap.String("source", src.ID))
		return result
	}

	key := cache.Key(src.RSSURL)
	if f.cache != nil {
		if body, ok := f.cache.Get(key); ok {
			result.Articles, result.Error = f.parseFeed(src, body)
			result.Cached = true
			return result
		}
	}

	if f.robots != nil && !f.robots.Allowed(ctx, src.RSSURL) {
		result.Error = fmt.Errorf("blocked by robots.txt: %s", src.RSSURL)
		return result
	}

	if err := f.limiter.Wait(ctx, src.RSSURL); err != nil {
		result.Error = fmt.Errorf("rate limit wait: %w", err)
		return result
	}

	resp, err := f.client.R().SetContext(ctx).Get(src.RSSURL)
	if err != nil {
		result.Error = fmt.Errorf("fetch feed: %w", err)
		return result
	}
	if resp.StatusCode() != 200 {
		result.Error = fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode())
		return result
	}

	body := resp.Body()
	if f.cfg.MaxBodyBytes > 0 && int64(len(body)) > f.cfg.MaxBodyBytes {
		result.Error = fmt.Errorf("feed exceeds %d bytes", f.cfg.MaxBodyBytes)
		return result
	}

	result.Articles, result.Error = f.parseFeed(src, body)
	if result.Error == nil && f.cache != nil {
		if err := f.cache.Set(key, body, 0); err != nil {
			f.log.Debug("cache write failed", zap.String("source", src.ID), zap.Error(err))
		}
	}
	return result
}

// parseFeed converts raw feed XML into articles, capped per source.
func (f *Fetcher) parseFeed(src model.Source, body []byte) ([]model.Article, error) {
	feed, err := f.parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	limit := f.cfg.MaxItemsPerSource
	if limit <= 0 || limit > len(feed.Items) {
		limit = len(feed.Items)
	}

	articles := make([]model.Article, 0, limit)
	for _, item := range feed.Items[:limit] {
		art := model.Article{
			SourceID: src.ID,
			Title:    item.Title,
			URL:      item.Link,
			Summary:  StripHTML(item.Description),
		}
		if item.PublishedParsed != nil {
			art.PublishedAt = item.PublishedParsed.UTC()
		} else if item.UpdatedParsed != nil {
			art.PublishedAt = item.UpdatedParsed.UTC()
		}
		if art.Summary == "" {
			art.Summary = StripHTML(item.Content)
		}
		articles = append(articles, art)
	}
	return articles, nil
}
