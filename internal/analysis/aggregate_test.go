package analysis

import (
	"math"
	"testing"

	"github.com/newslens/newslens/internal/model"
)

func testSources() map[string]model.Source {
	return map[string]model.Source{
		"left-a":   {ID: "left-a", Bias: -6, Reliability: 8},
		"left-b":   {ID: "left-b", Bias: -4, Reliability: 4},
		"center-a": {ID: "center-a", Bias: 0, Reliability: 9},
		"right-a":  {ID: "right-a", Bias: 6, Reliability: 8},
		"shaky":    {ID: "shaky", Bias: 5, Reliability: 0},
	}
}

func TestAggregate_Buckets(t *testing.T) {
	agg := &Aggregator{ReliabilityFloor: 0.5}

	story := model.Story{
		Articles: []model.Article{
			{SourceID: "left-a", URL: "u1"},
			{SourceID: "left-b", URL: "u2"},
			{SourceID: "center-a", URL: "u3"},
			{SourceID: "right-a", URL: "u4"},
		},
	}

	stats, warnings := agg.Aggregate(story, testSources())

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if stats.LeftCount != 2 || stats.CenterCount != 1 || stats.RightCount != 1 {
		t.Errorf("buckets = L%d C%d R%d, want L2 C1 R1", stats.LeftCount, stats.CenterCount, stats.RightCount)
	}
	if stats.SourceCount != 4 {
		t.Errorf("SourceCount = %d, want 4", stats.SourceCount)
	}
}

func TestAggregate_BandEdges(t *testing.T) {
	agg := &Aggregator{ReliabilityFloor: 0.5}
	sources := map[string]model.Source{
		"edge-left":   {ID: "edge-left", Bias: -3.3, Reliability: 5},
		"edge-right":  {ID: "edge-right", Bias: 3.3, Reliability: 5},
		"just-inside": {ID: "just-inside", Bias: 3.2, Reliability: 5},
	}

	story := model.Story{Articles: []model.Article{
		{SourceID: "edge-left"},
		{SourceID: "edge-right"},
		{SourceID: "just-inside"},
	}}

	stats, _ := agg.Aggregate(story, sources)
	if stats.LeftCount != 1 || stats.RightCount != 1 || stats.CenterCount != 1 {
		t.Errorf("band edges misclassified: L%d C%d R%d", stats.LeftCount, stats.CenterCount, stats.RightCount)
	}
}

func TestAggregate_DiversityVsVolume(t *testing.T) {
	agg := &Aggregator{ReliabilityFloor: 0.5}

	// Same outlet twice: volume 2, diversity 1.
	story := model.Story{Articles: []model.Article{
		{SourceID: "left-a", URL: "u1"},
		{SourceID: "left-a", URL: "u2"},
	}}

	stats, _ := agg.Aggregate(story, testSources())
	if stats.LeftCount != 2 {
		t.Errorf("LeftCount = %d, want 2 (each article counts for volume)", stats.LeftCount)
	}
	if stats.SourceCount != 1 {
		t.Errorf("SourceCount = %d, want 1 (outlet counts once for diversity)", stats.SourceCount)
	}
}

func TestAggregate_WeightedBiasMean(t *testing.T) {
	agg := &Aggregator{ReliabilityFloor: 0.5}

	// left-a (bias -6, rel 8) and left-b (bias -4, rel 4): the more
	// reliable outlet pulls the mean toward itself.
	story := model.Story{Articles: []model.Article{
		{SourceID: "left-a"},
		{SourceID: "left-b"},
	}}

	stats, _ := agg.Aggregate(story, testSources())
	want := (8.0*-6 + 4.0*-4) / 12.0
	if math.Abs(stats.WeightedBiasMean-want) > 1e-9 {
		t.Errorf("WeightedBiasMean = %f, want %f", stats.WeightedBiasMean, want)
	}
}

func TestAggregate_ReliabilityFloor(t *testing.T) {
	agg := &Aggregator{ReliabilityFloor: 0.5}

	// A single reliability-0 source must not collapse the denominator.
	story := model.Story{Articles: []model.Article{{SourceID: "shaky"}}}

	stats, _ := agg.Aggregate(story, testSources())
	if math.Abs(stats.WeightedBiasMean-5.0) > 1e-9 {
		t.Errorf("WeightedBiasMean = %f, want 5.0 (floor weight keeps the source in)", stats.WeightedBiasMean)
	}
}

func TestAggregate_UnresolvedSources(t *testing.T) {
	agg := &Aggregator{ReliabilityFloor: 0.5}

	story := model.Story{Articles: []model.Article{
		{SourceID: "left-a", URL: "u1"},
		{SourceID: "ghost", URL: "u2"},
	}}

	stats, warnings := agg.Aggregate(story, testSources())

	if stats.BucketTotal() != 1 {
		t.Errorf("bucket total = %d, want 1 (unknown source excluded)", stats.BucketTotal())
	}
	if len(warnings) != 1 || warnings[0].Reason != model.WarnUnresolvedSource {
		t.Fatalf("expected one unresolved_source warning, got %v", warnings)
	}
	if warnings[0].SourceID != "ghost" {
		t.Errorf("warning source = %q, want ghost", warnings[0].SourceID)
	}
}

func TestAggregate_AllUnknownYieldsZeroedStats(t *testing.T) {
	agg := &Aggregator{ReliabilityFloor: 0.5}

	story := model.Story{Articles: []model.Article{{SourceID: "ghost"}}}
	stats, _ := agg.Aggregate(story, testSources())

	if stats.BucketTotal() != 0 || stats.SourceCount != 0 || stats.WeightedBiasMean != 0 {
		t.Errorf("expected zeroed stats for all-unknown story, got %+v", stats)
	}
}
