package model

import "time"

// Article is a single fetched news item. The fetch layer produces articles
// once per run and the engine never mutates them; bias and reliability are
// resolved by joining SourceID against the registry map.
type Article struct {
	SourceID    string    `json:"source_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"` // zero value means the feed carried no date
	Summary     string    `json:"summary,omitempty"`
	Body        string    `json:"body,omitempty"` // optional, filled by the extractor when requested
}

// HasPublishedAt reports whether the feed supplied a publication time.
// Articles without one are treated as arriving "now" for recency checks.
func (a Article) HasPublishedAt() bool {
	return !a.PublishedAt.IsZero()
}
