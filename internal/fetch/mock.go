package fetch

import (
	"time"

	"github.com/newslens/newslens/internal/model"
)

// MockBatch returns a fixed article batch for offline runs and demos.
// Source IDs line up with the default US registry entries.
func MockBatch(now time.Time) []model.Article {
	return []model.Article{
		{
			SourceID: "cnn", Title: "Government Announces New Budget Plan",
			URL:         "https://example.com/budget",
			PublishedAt: now.Add(-2 * time.Hour),
			Summary:     "The government has announced a new budget plan with significant changes to taxes and spending.",
		},
		{
			SourceID: "fox-news", Title: "Budget Plan Draws Criticism from Opposition",
			URL:         "https://example.com/budget-criticism",
			PublishedAt: now.Add(-1 * time.Hour),
			Summary:     "Opposition leaders have criticized the new budget plan, calling it irresponsible.",
		},
		{
			SourceID: "ap-news", Title: "Analysis: What the Budget Plan Means for Taxpayers",
			URL:         "https://example.com/budget-analysis",
			PublishedAt: now.Add(-3 * time.Hour),
			Summary:     "A detailed analysis of how the new budget will affect different income groups.",
		},
		{
			SourceID: "nyt", Title: "New Climate Policy Unveiled by Administration",
			URL:         "https://example.com/climate",
			PublishedAt: now.Add(-4 * time.Hour),
			Summary:     "The administration has announced ambitious new climate goals and policies.",
		},
		{
			SourceID: "cnn", Title: "Scientists Welcome Climate Policy Initiative",
			URL:         "https://example.com/climate-scientists",
			PublishedAt: now.Add(-3 * time.Hour),
			Summary:     "Climate scientists have welcomed the new policies.",
		},
		{
			SourceID: "wsj", Title: "Climate Policy Criticized for Economic Impact",
			URL:         "https://example.com/climate-economy",
			PublishedAt: now.Add(-2 * time.Hour),
			Summary:     "Industry analysts warn of potential economic consequences from the proposed climate regulations.",
		},
		{
			SourceID: "fox-news", Title: "Debate Over Immigration Policies Intensifies",
			URL:         "https://example.com/immigration-debate",
			PublishedAt: now.Add(-5 * time.Hour),
			Summary:     "Lawmakers are engaged in heated debate over proposed changes to immigration policies.",
		},
		{
			SourceID: "npr", Title: "New Study Shows Immigration Economic Benefits",
			URL:         "https://example.com/immigration-study",
			PublishedAt: now.Add(-6 * time.Hour),
			Summary:     "A new academic study finds significant economic benefits from immigration.",
		},
		{
			SourceID: "wapo", Title: "Immigration Reform Bill Introduced in Legislature",
			URL:         "https://example.com/immigration-bill",
			PublishedAt: now.Add(-7 * time.Hour),
			Summary:     "A bipartisan group of legislators has introduced a comprehensive immigration reform bill.",
		},
	}
}
