package llm

import (
	"context"
	"fmt"

	"github.com/newslens/newslens/internal/model"
)

// Summarizer wraps a provider behind the enabled/disabled decision.
type Summarizer struct {
	provider Provider
	cfg      model.LLMConfig
}

// NewSummarizer builds a summarizer from configuration. An empty provider
// name yields a disabled summarizer, not an error.
func NewSummarizer(cfg model.LLMConfig) (*Summarizer, error) {
	s := &Summarizer{cfg: cfg}

	switch cfg.Provider {
	case "":
		// Disabled.
	case "openai", "ollama":
		p, err := NewOpenAIProvider(cfg)
		if err != nil {
			return nil, err
		}
		s.provider = p
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}

	return s, nil
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// FramingSummary generates the headline-framing comparison for the given
// stories. Callers treat failures as warnings: analysis output stands on
// its own.
func (s *Summarizer) FramingSummary(ctx context.Context, stories []model.AnalyzedStory, sources map[string]model.Source) (string, error) {
	if !s.IsEnabled() {
		return "", fmt.Errorf("LLM summarizer is not enabled")
	}
	if len(stories) == 0 {
		return "", fmt.Errorf("no stories to summarize")
	}

	resp, err := s.provider.Complete(ctx, CompletionRequest{
		Prompt:    BuildFramingPrompt(stories, sources),
		Model:     s.cfg.Model,
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("framing summary: %w", err)
	}
	return resp.Text, nil
}
