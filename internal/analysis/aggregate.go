package analysis

import (
	"github.com/newslens/newslens/internal/model"
)

// Aggregator computes source-weighted coverage statistics for a story.
type Aggregator struct {
	// ReliabilityFloor is the minimum weight any resolvable source
	// contributes to the weighted means. Without it a reliability-0 source
	// would vanish from the mean entirely, and a story covered only by such
	// sources would divide by zero.
	ReliabilityFloor float64
}

// NewAggregator creates an aggregator from analysis configuration.
func NewAggregator(cfg model.AnalysisConfig) *Aggregator {
	return &Aggregator{ReliabilityFloor: cfg.ReliabilityFloor}
}

// Aggregate buckets each of the story's articles by its source's bias band
// and computes reliability-weighted means. Articles whose source_id is
// unknown to the registry are excluded from the buckets but stay in the
// story's article list; each exclusion is reported as a warning. A story
// with zero resolvable sources yields zeroed stats.
func (a *Aggregator) Aggregate(story model.Story, sources map[string]model.Source) (model.CoverageStats, []model.Warning) {
	var stats model.CoverageStats
	var warnings []model.Warning

	seen := make(map[string]struct{})
	var weightSum, biasSum, reliabilitySum float64

	for _, art := range story.Articles {
		src, ok := sources[art.SourceID]
		if !ok {
			warnings = append(warnings, model.Warning{
				Reason:   model.WarnUnresolvedSource,
				SourceID: art.SourceID,
				URL:      art.URL,
				Detail:   "source_id not in registry, excluded from coverage buckets",
			})
			continue
		}

		switch {
		case src.Bias <= model.LeftEdge:
			stats.LeftCount++
		case src.Bias >= model.RightEdge:
			stats.RightCount++
		default:
			stats.CenterCount++
		}

		weight := src.Reliability
		if weight < a.ReliabilityFloor {
			weight = a.ReliabilityFloor
		}
		weightSum += weight
		biasSum += weight * src.Bias
		reliabilitySum += weight * src.Reliability

		if _, dup := seen[src.ID]; !dup {
			seen[src.ID] = struct{}{}
			stats.SourceIDs = append(stats.SourceIDs, src.ID)
		}
	}

	stats.SourceCount = len(stats.SourceIDs)
	if weightSum > 0 {
		stats.WeightedBiasMean = biasSum / weightSum
		stats.WeightedReliabilityMean = reliabilitySum / weightSum
	}

	return stats, warnings
}
