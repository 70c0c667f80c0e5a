package model

// Classification band edges for bias scores.
// Bias runs from -10 (far left) to +10 (far right); a source at or below
// LeftEdge counts as left coverage, at or above RightEdge as right coverage,
// and everything strictly between as center.
const (
	LeftEdge  = -3.3
	RightEdge = 3.3
)

// Source is a news outlet with its political bias and reliability
// classification. Records are immutable for the duration of a run; the
// engine only ever sees them through a read-only map keyed by ID.
type Source struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Country     string  `yaml:"country" json:"country"`
	HomepageURL string  `yaml:"homepage_url,omitempty" json:"homepage_url,omitempty"`
	RSSURL      string  `yaml:"rss_url,omitempty" json:"rss_url,omitempty"`
	Bias        float64 `yaml:"bias" json:"bias"`        // -10 (far left) .. +10 (far right)
	Reliability float64 `yaml:"reliability" json:"reliability"` // 0 (unreliable) .. 10 (highly reliable)
}

// BiasCategory returns the named band for the source's bias score.
func (s Source) BiasCategory() string {
	switch {
	case s.Bias < -6.7:
		return "Far Left"
	case s.Bias <= LeftEdge:
		return "Left"
	case s.Bias < RightEdge:
		return "Center"
	case s.Bias < 6.7:
		return "Right"
	default:
		return "Far Right"
	}
}

// ReliabilityCategory returns the named band for the source's reliability score.
func (s Source) ReliabilityCategory() string {
	switch {
	case s.Reliability < 3.3:
		return "Low"
	case s.Reliability < 6.7:
		return "Medium"
	default:
		return "High"
	}
}
