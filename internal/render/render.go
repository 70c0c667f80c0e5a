// Package render writes analysis results as a terminal summary and as a
// JSON report for downstream tooling.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/newslens/newslens/internal/model"
)

// Renderer formats analysis results.
type Renderer struct {
	// ShowArticles lists every contributing article under each story.
	ShowArticles bool
}

// New creates a renderer.
func New(showArticles bool) *Renderer {
	return &Renderer{ShowArticles: showArticles}
}

// WriteJSON writes the full result to path as indented JSON.
func (r *Renderer) WriteJSON(result model.Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteSummary renders a human-readable coverage breakdown.
func (r *Renderer) WriteSummary(w io.Writer, result model.Result, sources map[string]model.Source) {
	if len(result.Stories) == 0 {
		fmt.Fprintln(w, "No stories to report.")
		return
	}

	for i, story := range result.Stories {
		fmt.Fprintf(w, "%2d. %s\n", i+1, story.Story.CanonicalTitle)
		fmt.Fprintf(w, "    %s  L:%d C:%d R:%d  outlets:%d  bias mean:%+.1f\n",
			verdictLabel(story.Verdict),
			story.Stats.LeftCount, story.Stats.CenterCount, story.Stats.RightCount,
			story.Stats.SourceCount, story.Stats.WeightedBiasMean)

		if r.ShowArticles {
			for _, art := range story.Story.Articles {
				name := art.SourceID
				if src, ok := sources[art.SourceID]; ok {
					name = src.Name
				}
				fmt.Fprintf(w, "      - %s: %s\n        %s\n", name, art.Title, art.URL)
			}
		}
	}

	if n := len(result.Warnings); n > 0 {
		fmt.Fprintf(w, "\n%d article(s) excluded or partially handled:\n", n)
		counts := make(map[model.WarningReason]int)
		for _, warn := range result.Warnings {
			counts[warn.Reason]++
		}
		for reason, count := range counts {
			fmt.Fprintf(w, "  %s: %d\n", reason, count)
		}
	}
}

// WriteFramingSummary renders the optional LLM framing comparison, clearly
// separated from the engine's own output.
func (r *Renderer) WriteFramingSummary(w io.Writer, summary string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintln(w, "Framing summary (LLM-generated, does not affect verdicts):")
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintln(w, summary)
}

func verdictLabel(v model.Verdict) string {
	switch v {
	case model.VerdictLeftBlindspot:
		return "⚠ LEFT BLINDSPOT "
	case model.VerdictRightBlindspot:
		return "⚠ RIGHT BLINDSPOT"
	case model.VerdictInsufficientCoverage:
		return "· low coverage   "
	default:
		return "  balanced       "
	}
}
