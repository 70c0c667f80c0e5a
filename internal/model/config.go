package model

import "time"

// Config holds the complete newslens configuration.
// Threshold tuning is an expected ongoing activity, so every analysis
// knob is exposed here and overridable via config file, env, or flags.
type Config struct {
	Country  string         `yaml:"country" mapstructure:"country"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Fetch    FetchConfig    `yaml:"fetch" mapstructure:"fetch"`
	Cache    CacheConfig    `yaml:"cache" mapstructure:"cache"`
	LLM      LLMConfig      `yaml:"llm" mapstructure:"llm"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// AnalysisConfig tunes the coverage analysis engine.
type AnalysisConfig struct {
	// SimilarityThreshold is the minimum title-overlap score for an article
	// to join an existing story.
	SimilarityThreshold float64 `yaml:"similarity_threshold" mapstructure:"similarity_threshold"`
	// RecencyWindow bounds how far apart in time two articles can be and
	// still cluster into the same story.
	RecencyWindow time.Duration `yaml:"recency_window" mapstructure:"recency_window"`
	// MinSources is the distinct-outlet count below which a story is
	// classified as insufficient coverage.
	MinSources int `yaml:"min_sources" mapstructure:"min_sources"`
	// ImbalanceThreshold is the left/right imbalance magnitude beyond which
	// a one-sided story becomes a blindspot.
	ImbalanceThreshold float64 `yaml:"imbalance_threshold" mapstructure:"imbalance_threshold"`
	// ReliabilityFloor is the weight given to a reliability-0 source in the
	// weighted bias mean, so a single untrusted outlet cannot collapse the
	// denominator.
	ReliabilityFloor float64 `yaml:"reliability_floor" mapstructure:"reliability_floor"`
}

// FetchConfig tunes the concurrent feed fetch layer.
type FetchConfig struct {
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent         string        `yaml:"user_agent" mapstructure:"user_agent"`
	Concurrency       int           `yaml:"concurrency" mapstructure:"concurrency"`
	MaxItemsPerSource int           `yaml:"max_items_per_source" mapstructure:"max_items_per_source"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	CheckRobots       bool          `yaml:"check_robots" mapstructure:"check_robots"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
	// Proxy routes all feed traffic through an HTTP proxy when set.
	Proxy string `yaml:"proxy,omitempty" mapstructure:"proxy"`
}

// CacheConfig tunes the layered feed cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// LLMConfig configures the optional framing summary. It is disabled unless
// a provider is set and never affects verdicts.
type LLMConfig struct {
	Provider  string        `yaml:"provider" mapstructure:"provider"`
	Model     string        `yaml:"model" mapstructure:"model"`
	APIKey    string        `yaml:"-" mapstructure:"-"`
	BaseURL   string        `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxTokens int           `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// OutputConfig tunes presentation.
type OutputConfig struct {
	Verbose     bool `yaml:"verbose" mapstructure:"verbose"`
	ShowSummary bool `yaml:"show_summary" mapstructure:"show_summary"`
}

// DefaultConfig returns the built-in defaults, the lowest layer of the
// configuration hierarchy.
func DefaultConfig() *Config {
	return &Config{
		Country: "US",
		Analysis: AnalysisConfig{
			SimilarityThreshold: 0.5,
			RecencyWindow:       48 * time.Hour,
			MinSources:          2,
			ImbalanceThreshold:  0.6,
			ReliabilityFloor:    0.5,
		},
		Fetch: FetchConfig{
			Timeout:           10 * time.Second,
			UserAgent:         "NewsLens/0.2 (+https://github.com/newslens/newslens)",
			Concurrency:       8,
			MaxItemsPerSource: 10,
			MaxBodyBytes:      2_000_000,
			CheckRobots:       true,
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 10 * time.Minute,
			DiskTTL:   time.Hour,
		},
		LLM: LLMConfig{
			Timeout:   30 * time.Second,
			MaxTokens: 1000,
		},
		Output: OutputConfig{
			ShowSummary: true,
		},
	}
}
