package registry

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/newslens/newslens/internal/model"
)

func TestLoad_SeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	us := r.ByCountry("US")
	if len(us) == 0 {
		t.Fatal("expected seeded US sources")
	}

	// Seeding must persist: a second load reads the file, not the defaults.
	r2, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(r2.ByCountry("US")) != len(us) {
		t.Errorf("reload returned %d US sources, want %d", len(r2.ByCountry("US")), len(us))
	}
}

func TestRegistry_AddRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	src := model.Source{
		ID: "test-outlet", Name: "Test Outlet", Country: "us",
		RSSURL: "https://example.com/rss", Bias: -2, Reliability: 6,
	}
	if err := r.Add(src); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, ok := r.Map("US")["test-outlet"]; !ok {
		t.Error("added source missing from map (country code should be normalized)")
	}

	if err := r.Add(src); !errors.Is(err, ErrSourceExists) {
		t.Errorf("duplicate Add error = %v, want ErrSourceExists", err)
	}

	removed, err := r.Remove("US", "test-outlet")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !removed {
		t.Error("Remove reported the source missing")
	}

	removed, err = r.Remove("US", "test-outlet")
	if err != nil {
		t.Fatalf("second Remove: %v", err)
	}
	if removed {
		t.Error("second Remove should report nothing deleted")
	}
}

func TestRegistry_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	src := model.Source{ID: "zz-wire", Name: "ZZ Wire", Country: "FR", Bias: 1.5, Reliability: 7}
	if err := r.Add(src); err != nil {
		t.Fatalf("Add: %v", err)
	}

	r2, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, ok := r2.Map("FR")["zz-wire"]
	if !ok {
		t.Fatal("round-tripped source missing")
	}
	if got.Bias != 1.5 || got.Reliability != 7 || got.Name != "ZZ Wire" {
		t.Errorf("round-tripped source = %+v", got)
	}
}

func TestSource_Categories(t *testing.T) {
	cases := []struct {
		bias     float64
		wantBias string
	}{
		{-9, "Far Left"},
		{-5, "Left"},
		{-3.3, "Left"},
		{0, "Center"},
		{3.2, "Center"},
		{3.3, "Right"},
		{5, "Right"},
		{8, "Far Right"},
	}
	for _, tc := range cases {
		src := model.Source{Bias: tc.bias}
		if got := src.BiasCategory(); got != tc.wantBias {
			t.Errorf("BiasCategory(%v) = %q, want %q", tc.bias, got, tc.wantBias)
		}
	}

	rel := []struct {
		score float64
		want  string
	}{{1, "Low"}, {5, "Medium"}, {9, "High"}}
	for _, tc := range rel {
		src := model.Source{Reliability: tc.score}
		if got := src.ReliabilityCategory(); got != tc.want {
			t.Errorf("ReliabilityCategory(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
