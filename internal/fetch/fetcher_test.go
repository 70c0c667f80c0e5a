package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/newslens/newslens/internal/cache"
	"github.com/newslens/newslens/internal/model"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>Budget Approved</title>
      <link>https://example.com/a</link>
      <pubDate>Mon, 02 Mar 2026 10:00:00 GMT</pubDate>
      <description><![CDATA[<p>Council <b>approves</b> the budget.</p>]]></description>
    </item>
    <item>
      <title>Second Story Lands</title>
      <link>https://example.com/b</link>
    </item>
    <item>
      <title>Third Story Overflows</title>
      <link>https://example.com/c</link>
    </item>
  </channel>
</rss>`

func testFetchConfig() model.FetchConfig {
	cfg := model.DefaultConfig().Fetch
	cfg.CheckRobots = false
	cfg.RequestsPerSecond = 1000
	cfg.Burst = 1000
	cfg.Timeout = 5 * time.Second
	return cfg
}

func TestFetchCountry_ParsesFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testFeed))
	}))
	defer server.Close()

	f := New(testFetchConfig(), nil, nil)
	sources := []model.Source{{ID: "test", RSSURL: server.URL}}

	batch := f.FetchCountry(context.Background(), sources)

	if len(batch.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", batch.Failures[0].Error)
	}
	if len(batch.Articles) != 3 {
		t.Fatalf("got %d articles, want 3", len(batch.Articles))
	}

	first := batch.Articles[0]
	if first.SourceID != "test" || first.Title != "Budget Approved" {
		t.Errorf("first article = %+v", first)
	}
	if first.Summary != "Council approves the budget." {
		t.Errorf("summary = %q (HTML should be stripped)", first.Summary)
	}
	if !first.HasPublishedAt() {
		t.Error("pubDate should be parsed")
	}
	if batch.Articles[1].HasPublishedAt() {
		t.Error("dateless item should carry a zero publish time")
	}
}

func TestFetchCountry_MaxItemsPerSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testFeed))
	}))
	defer server.Close()

	cfg := testFetchConfig()
	cfg.MaxItemsPerSource = 2
	f := New(cfg, nil, nil)

	batch := f.FetchCountry(context.Background(), []model.Source{{ID: "test", RSSURL: server.URL}})
	if len(batch.Articles) != 2 {
		t.Errorf("got %d articles, want 2 (per-source cap)", len(batch.Articles))
	}
}

func TestFetchCountry_PartialFailure(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testFeed))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	f := New(testFetchConfig(), nil, nil)
	sources := []model.Source{
		{ID: "good", RSSURL: good.URL},
		{ID: "bad", RSSURL: bad.URL},
	}

	batch := f.FetchCountry(context.Background(), sources)

	if len(batch.Articles) != 3 {
		t.Errorf("good source should still contribute, got %d articles", len(batch.Articles))
	}
	if len(batch.Failures) != 1 || batch.Failures[0].Source.ID != "bad" {
		t.Errorf("expected exactly the bad source to fail, got %v", batch.Failures)
	}
}

func TestFetchCountry_SourceWithoutFeedIsSkipped(t *testing.T) {
	f := New(testFetchConfig(), nil, nil)

	batch := f.FetchCountry(context.Background(), []model.Source{{ID: "silent"}})
	if len(batch.Articles) != 0 || len(batch.Failures) != 0 {
		t.Errorf("feedless source should contribute nothing, got %+v", batch)
	}
}

func TestFetchCountry_ServesFromCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(testFeed))
	}))
	defer server.Close()

	feedCache := cache.NewMemoryCache(time.Hour, time.Hour)
	f := New(testFetchConfig(), feedCache, nil)
	sources := []model.Source{{ID: "test", RSSURL: server.URL}}

	first := f.FetchCountry(context.Background(), sources)
	second := f.FetchCountry(context.Background(), sources)

	if hits != 1 {
		t.Errorf("server hit %d times, want 1 (second run should hit the cache)", hits)
	}
	if len(first.Articles) != len(second.Articles) {
		t.Errorf("cached run returned %d articles, fresh run %d", len(second.Articles), len(first.Articles))
	}
}
