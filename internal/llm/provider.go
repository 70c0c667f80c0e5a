// Package llm generates an optional narrative comparison of how outlets
// across the spectrum headline the same stories. It runs after analysis
// and never affects clustering, statistics, or verdicts.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/newslens/newslens/internal/model"
)

// Provider is a chat-completion backend.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Complete sends a prompt and returns the generated text.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

// CompletionRequest is the input for one generation call.
type CompletionRequest struct {
	Prompt    string
	Model     string
	MaxTokens int
}

// CompletionResponse is the generated output.
type CompletionResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// BuildFramingPrompt renders the analyzed stories into the framing-summary
// prompt. Only headlines the engine actually saw are included, so the
// model has nothing to work with beyond real coverage.
func BuildFramingPrompt(stories []model.AnalyzedStory, sources map[string]model.Source) string {
	var b strings.Builder

	b.WriteString(`You are comparing how news outlets across the political spectrum headline the same stories.

RULES:
- Describe differences in emphasis, word choice, and what each side omits.
- Do NOT judge which framing is true or correct.
- Mention only the outlets and headlines listed below.
- Keep the summary under 300 words.

STORIES:
`)

	for i, story := range stories {
		fmt.Fprintf(&b, "\n%d. %s (verdict: %s)\n", i+1, story.Story.CanonicalTitle, story.Verdict)
		for _, art := range story.Story.Articles {
			label := "unknown outlet"
			if src, ok := sources[art.SourceID]; ok {
				label = fmt.Sprintf("%s, %s", src.Name, src.BiasCategory())
			}
			fmt.Fprintf(&b, "   - [%s] %q\n", label, art.Title)
		}
	}

	return b.String()
}
