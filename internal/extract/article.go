// Package extract pulls readable article text out of outlet pages for
// drill-down display. It is best-effort: a page that defeats the
// paragraph heuristics simply yields an empty body.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/newslens/newslens/internal/model"
)

// minParagraphLen filters out bylines, timestamps, and social chrome that
// outlets wrap in <p> tags.
const minParagraphLen = 60

// Extractor fetches an article page and extracts its body text.
type Extractor struct {
	client *resty.Client
}

// New creates an extractor sharing the fetch layer's HTTP settings.
func New(cfg model.FetchConfig) *Extractor {
	return &Extractor{
		client: resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("User-Agent", cfg.UserAgent),
	}
}

// Body fetches the article's page and returns its extracted text.
func (e *Extractor) Body(ctx context.Context, art model.Article) (string, error) {
	resp, err := e.client.R().SetContext(ctx).Get(art.URL)
	if err != nil {
		return "", fmt.Errorf("fetch article: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("fetch article: unexpected status %d", resp.StatusCode())
	}
	return FromHTML(string(resp.Body()))
}

// FromHTML extracts article text from raw HTML. It prefers paragraphs
// inside an <article> element and falls back to all paragraphs when the
// page does not use one.
func FromHTML(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("parse article HTML: %w", err)
	}

	scope := doc.Selection
	if article := doc.Find("article"); article.Length() > 0 {
		scope = article.First()
	}

	var paragraphs []string
	scope.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) >= minParagraphLen {
			paragraphs = append(paragraphs, text)
		}
	})

	return strings.Join(paragraphs, "\n\n"), nil
}
