package model

import "time"

// Story is a cluster of articles judged to report the same event.
// Articles appear in cluster-formation order; the list is appended to
// during clustering and frozen once aggregation runs.
type Story struct {
	ID             string    `json:"id"`
	CanonicalTitle string    `json:"canonical_title"`
	Articles       []Article `json:"articles"`
	FirstSeen      time.Time `json:"first_seen"`
}

// CoverageStats describes how a story's coverage is distributed across the
// political spectrum. Bucket counts track article volume; SourceCount tracks
// outlet diversity — an outlet publishing twice counts once for diversity
// but both articles count toward its bucket.
type CoverageStats struct {
	LeftCount               int      `json:"left_count"`
	CenterCount             int      `json:"center_count"`
	RightCount              int      `json:"right_count"`
	WeightedBiasMean        float64  `json:"weighted_bias_mean"`
	WeightedReliabilityMean float64  `json:"weighted_reliability_mean"`
	SourceCount             int      `json:"source_count"`
	SourceIDs               []string `json:"source_ids"`
}

// BucketTotal returns the total article volume across all three buckets.
func (s CoverageStats) BucketTotal() int {
	return s.LeftCount + s.CenterCount + s.RightCount
}

// Verdict classifies a story's coverage pattern.
type Verdict string

const (
	// VerdictBalanced means coverage spans the spectrum without a dominant gap.
	VerdictBalanced Verdict = "balanced"
	// VerdictLeftBlindspot means left-leaning outlets are not covering a story
	// the right is covering heavily. The verdict names the side with the gap,
	// not the side with the volume.
	VerdictLeftBlindspot Verdict = "left_blindspot"
	// VerdictRightBlindspot means right-leaning outlets are missing the story.
	VerdictRightBlindspot Verdict = "right_blindspot"
	// VerdictInsufficientCoverage means too few distinct outlets covered the
	// story to say anything about balance.
	VerdictInsufficientCoverage Verdict = "insufficient_coverage"
)

// Contribution links a story back to one article for drill-down lookup.
type Contribution struct {
	SourceID string `json:"source_id"`
	URL      string `json:"url"`
}

// AnalyzedStory is the terminal, read-only artifact handed to presentation.
type AnalyzedStory struct {
	Story          Story          `json:"story"`
	Stats          CoverageStats  `json:"stats"`
	Verdict        Verdict        `json:"verdict"`
	ImbalanceScore float64        `json:"imbalance_score"`
	Contributions  []Contribution `json:"contributions"`
}

// WarningReason identifies a recoverable data-quality condition.
type WarningReason string

const (
	// WarnUnresolvedSource marks an article whose source_id is absent from
	// the registry; it stays in its story's article list but is excluded
	// from bucket counts.
	WarnUnresolvedSource WarningReason = "unresolved_source"
	// WarnEmptyTitle marks an article whose title normalized to the empty
	// string and was excluded from clustering.
	WarnEmptyTitle WarningReason = "empty_title"
)

// Warning records one excluded or partially handled article with a reason,
// keeping the partition accounting explicit: every input article either
// lands in exactly one story or shows up here.
type Warning struct {
	Reason   WarningReason `json:"reason"`
	SourceID string        `json:"source_id,omitempty"`
	URL      string        `json:"url,omitempty"`
	Detail   string        `json:"detail,omitempty"`
}

// Result is the complete output of one analysis run.
type Result struct {
	Stories  []AnalyzedStory `json:"stories"`
	Warnings []Warning       `json:"warnings,omitempty"`
}
