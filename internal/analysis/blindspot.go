package analysis

import (
	"github.com/newslens/newslens/internal/model"
)

// Detector applies threshold rules over a story's coverage stats to decide
// whether one side of the spectrum is blind to it.
type Detector struct {
	// MinSources is the distinct-outlet count below which no balance call
	// is made. Diversity gates coverage, not raw article volume.
	MinSources int
	// Imbalance is the |left-right| share beyond which a one-sided story
	// becomes a blindspot.
	Imbalance float64
}

// NewDetector creates a detector from analysis configuration.
func NewDetector(cfg model.AnalysisConfig) *Detector {
	return &Detector{
		MinSources: cfg.MinSources,
		Imbalance:  cfg.ImbalanceThreshold,
	}
}

// Classify returns the verdict and imbalance score for a story's stats.
//
// The verdict names the side with the GAP, not the side with the volume:
// heavy left coverage with zero right articles is a RightBlindspot — the
// right-leaning audience is missing a story the left is covering. Getting
// this backwards inverts the product's meaning, so the direction is pinned
// down by tests.
func (d *Detector) Classify(stats model.CoverageStats) (model.Verdict, float64) {
	if stats.SourceCount < d.MinSources {
		return model.VerdictInsufficientCoverage, 0
	}

	total := stats.BucketTotal()
	if total == 0 {
		return model.VerdictInsufficientCoverage, 0
	}

	imbalance := float64(stats.LeftCount-stats.RightCount) / float64(total)

	switch {
	case imbalance >= d.Imbalance && stats.RightCount == 0:
		return model.VerdictRightBlindspot, imbalance
	case imbalance <= -d.Imbalance && stats.LeftCount == 0:
		return model.VerdictLeftBlindspot, imbalance
	default:
		return model.VerdictBalanced, imbalance
	}
}
