package analysis

import (
	"fmt"
	"time"

	"github.com/newslens/newslens/internal/model"
)

// entityBonus is added to the Jaccard score when two titles share a
// capitalized token and already overlap. It nudges borderline matches like
// "Smith Resigns" / "Senator Smith Steps Down" without letting a lone name
// merge unrelated stories.
const entityBonus = 0.1

// Clusterer groups an article batch into stories using greedy single-pass
// title matching. It is a heuristic approximation of true event matching:
// false merges (two events sharing a headline vocabulary) and false splits
// (the same event headlined with disjoint words) are known failure modes,
// tunable via the similarity threshold rather than fixable outright.
type Clusterer struct {
	// Similarity is the minimum score for an article to join a story.
	Similarity float64
	// Recency bounds how far an article's publish time may drift from a
	// story's first sighting and still cluster.
	Recency time.Duration
	// Now anchors recency checks for articles without a publish time.
	Now time.Time
}

// NewClusterer creates a clusterer from analysis configuration.
func NewClusterer(cfg model.AnalysisConfig) *Clusterer {
	return &Clusterer{
		Similarity: cfg.SimilarityThreshold,
		Recency:    cfg.RecencyWindow,
		Now:        time.Now().UTC(),
	}
}

// openStory pairs a story under construction with its precomputed
// canonical-title token sets.
type openStory struct {
	story    model.Story
	tokens   map[string]struct{}
	entities map[string]struct{}
}

// Cluster groups articles in arrival order, deterministically for a fixed
// input order. Articles whose titles normalize to nothing are excluded and
// reported as warnings rather than silently merged into one bucket.
func (c *Clusterer) Cluster(articles []model.Article) ([]model.Story, []model.Warning) {
	var open []*openStory
	var warnings []model.Warning

	for _, art := range articles {
		tokens := titleTokens(art.Title)
		if len(tokens) == 0 {
			warnings = append(warnings, model.Warning{
				Reason:   model.WarnEmptyTitle,
				SourceID: art.SourceID,
				URL:      art.URL,
				Detail:   "title normalized to empty string, excluded from clustering",
			})
			continue
		}

		artTokens := tokenSet(tokens)
		artEntities := entitySet(art.Title)
		published := c.effectiveTime(art)

		var best *openStory
		bestScore := 0.0
		for _, st := range open {
			if !c.withinWindow(st.story.FirstSeen, published) {
				continue
			}

			score := jaccard(artTokens, st.tokens)
			if score > 0 && sharedEntity(artEntities, st.entities) {
				score += entityBonus
				if score > 1 {
					score = 1
				}
			}
			if score < c.Similarity {
				continue
			}

			// Ties go to the earliest-opened story for stable output.
			if best == nil || score > bestScore ||
				(score == bestScore && st.story.FirstSeen.Before(best.story.FirstSeen)) {
				best = st
				bestScore = score
			}
		}

		if best != nil {
			best.story.Articles = append(best.story.Articles, art)
			continue
		}

		open = append(open, &openStory{
			story: model.Story{
				ID:             fmt.Sprintf("story-%03d", len(open)+1),
				CanonicalTitle: art.Title,
				Articles:       []model.Article{art},
				FirstSeen:      published,
			},
			tokens:   artTokens,
			entities: artEntities,
		})
	}

	stories := make([]model.Story, 0, len(open))
	for _, st := range open {
		stories = append(stories, st.story)
	}
	return stories, warnings
}

// effectiveTime returns the article's publish time, or the run's reference
// time when the feed carried no date.
func (c *Clusterer) effectiveTime(art model.Article) time.Time {
	if art.HasPublishedAt() {
		return art.PublishedAt
	}
	return c.Now
}

func (c *Clusterer) withinWindow(firstSeen, published time.Time) bool {
	if c.Recency <= 0 {
		return true
	}
	delta := published.Sub(firstSeen)
	if delta < 0 {
		delta = -delta
	}
	return delta <= c.Recency
}
