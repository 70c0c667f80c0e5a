package analysis

import (
	"testing"

	"github.com/newslens/newslens/internal/model"
)

func TestClassify(t *testing.T) {
	d := &Detector{MinSources: 2, Imbalance: 0.6}

	cases := []struct {
		name    string
		stats   model.CoverageStats
		want    model.Verdict
		wantImb float64
	}{
		{
			name:  "single source is insufficient",
			stats: model.CoverageStats{LeftCount: 1, SourceCount: 1},
			want:  model.VerdictInsufficientCoverage,
		},
		{
			name:  "volume without diversity is still insufficient",
			stats: model.CoverageStats{LeftCount: 5, SourceCount: 1},
			want:  model.VerdictInsufficientCoverage,
		},
		{
			name:  "zero resolvable sources",
			stats: model.CoverageStats{},
			want:  model.VerdictInsufficientCoverage,
		},
		{
			name:    "mixed coverage is balanced",
			stats:   model.CoverageStats{LeftCount: 2, RightCount: 1, SourceCount: 3},
			want:    model.VerdictBalanced,
			wantImb: 1.0 / 3.0,
		},
		{
			name:    "left-only coverage means the right is blind",
			stats:   model.CoverageStats{LeftCount: 10, SourceCount: 10},
			want:    model.VerdictRightBlindspot,
			wantImb: 1.0,
		},
		{
			name:    "right-only coverage means the left is blind",
			stats:   model.CoverageStats{RightCount: 10, SourceCount: 10},
			want:    model.VerdictLeftBlindspot,
			wantImb: -1.0,
		},
		{
			name: "dominant but not exclusive stays balanced",
			// imbalance 6/8 = 0.75 >= tau, but the right did cover it
			stats:   model.CoverageStats{LeftCount: 7, RightCount: 1, SourceCount: 8},
			want:    model.VerdictBalanced,
			wantImb: 0.75,
		},
		{
			name:    "center-heavy coverage is balanced",
			stats:   model.CoverageStats{CenterCount: 4, SourceCount: 4},
			want:    model.VerdictBalanced,
			wantImb: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verdict, imbalance := d.Classify(tc.stats)
			if verdict != tc.want {
				t.Errorf("verdict = %q, want %q", verdict, tc.want)
			}
			if diff := imbalance - tc.wantImb; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("imbalance = %f, want %f", imbalance, tc.wantImb)
			}
		})
	}
}

func TestClassify_ThresholdBoundary(t *testing.T) {
	d := &Detector{MinSources: 2, Imbalance: 0.6}

	// Exactly at tau with the opposite side silent: blindspot fires.
	stats := model.CoverageStats{LeftCount: 3, CenterCount: 2, SourceCount: 5}
	verdict, imbalance := d.Classify(stats)
	if imbalance != 0.6 {
		t.Fatalf("imbalance = %f, want 0.6", imbalance)
	}
	if verdict != model.VerdictRightBlindspot {
		t.Errorf("verdict at threshold = %q, want %q", verdict, model.VerdictRightBlindspot)
	}
}
