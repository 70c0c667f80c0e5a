// Package analysis implements the coverage analysis engine: story
// clustering, bias/reliability aggregation, and blindspot classification.
// The engine is a pure function of (sources, articles) — synchronous,
// in-memory, and idempotent. All I/O belongs to the fetch layer.
package analysis

import (
	"sort"

	"github.com/newslens/newslens/internal/model"
)

// Engine runs the full analysis: cluster, aggregate, classify, order.
type Engine struct {
	clusterer  *Clusterer
	aggregator *Aggregator
	detector   *Detector
}

// New creates an engine from analysis configuration.
func New(cfg model.AnalysisConfig) *Engine {
	return &Engine{
		clusterer:  NewClusterer(cfg),
		aggregator: NewAggregator(cfg),
		detector:   NewDetector(cfg),
	}
}

// Analyze groups the article batch into stories and scores each one.
// Re-running on identical input (including order) produces identical
// output: clustering ties break on earliest first-seen and the final
// ordering is article volume descending, then earliest first-seen.
func (e *Engine) Analyze(sources map[string]model.Source, articles []model.Article) model.Result {
	stories, warnings := e.clusterer.Cluster(articles)

	analyzed := make([]model.AnalyzedStory, 0, len(stories))
	for _, story := range stories {
		stats, aggWarnings := e.aggregator.Aggregate(story, sources)
		warnings = append(warnings, aggWarnings...)

		verdict, imbalance := e.detector.Classify(stats)

		contributions := make([]model.Contribution, 0, len(story.Articles))
		for _, art := range story.Articles {
			contributions = append(contributions, model.Contribution{
				SourceID: art.SourceID,
				URL:      art.URL,
			})
		}

		analyzed = append(analyzed, model.AnalyzedStory{
			Story:          story,
			Stats:          stats,
			Verdict:        verdict,
			ImbalanceScore: imbalance,
			Contributions:  contributions,
		})
	}

	sort.SliceStable(analyzed, func(i, j int) bool {
		ni, nj := len(analyzed[i].Story.Articles), len(analyzed[j].Story.Articles)
		if ni != nj {
			return ni > nj
		}
		return analyzed[i].Story.FirstSeen.Before(analyzed[j].Story.FirstSeen)
	})

	return model.Result{Stories: analyzed, Warnings: warnings}
}

// Clusterer exposes the engine's clusterer so callers can pin its reference
// clock for reproducible runs.
func (e *Engine) Clusterer() *Clusterer {
	return e.clusterer
}
