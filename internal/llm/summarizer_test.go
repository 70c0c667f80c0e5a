package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/newslens/newslens/internal/model"
)

type fakeProvider struct {
	lastPrompt string
	reply      string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, req CompletionRequest) (*CompletionResponse, error) {
	f.lastPrompt = req.Prompt
	return &CompletionResponse{Text: f.reply, Model: "fake-model"}, nil
}

func testStories() ([]model.AnalyzedStory, map[string]model.Source) {
	sources := map[string]model.Source{
		"cnn":      {ID: "cnn", Name: "CNN", Bias: -4.5},
		"fox-news": {ID: "fox-news", Name: "Fox News", Bias: 6.5},
	}
	stories := []model.AnalyzedStory{
		{
			Story: model.Story{
				CanonicalTitle: "Budget Plan Announced",
				Articles: []model.Article{
					{SourceID: "cnn", Title: "Government Announces New Budget Plan"},
					{SourceID: "fox-news", Title: "Budget Plan Draws Criticism"},
					{SourceID: "ghost", Title: "Mystery Coverage"},
				},
			},
			Verdict: model.VerdictBalanced,
		},
	}
	return stories, sources
}

func TestBuildFramingPrompt(t *testing.T) {
	stories, sources := testStories()
	prompt := BuildFramingPrompt(stories, sources)

	for _, want := range []string{
		"Budget Plan Announced",
		"CNN, Left",
		"Fox News, Right",
		"Budget Plan Draws Criticism",
		"unknown outlet",
		string(model.VerdictBalanced),
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestSummarizer_DisabledByDefault(t *testing.T) {
	s, err := NewSummarizer(model.DefaultConfig().LLM)
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}
	if s.IsEnabled() {
		t.Error("summarizer should be disabled without a provider")
	}
	if _, err := s.FramingSummary(context.Background(), nil, nil); err == nil {
		t.Error("disabled summarizer should refuse to summarize")
	}
}

func TestSummarizer_UnknownProvider(t *testing.T) {
	cfg := model.DefaultConfig().LLM
	cfg.Provider = "carrier-pigeon"
	if _, err := NewSummarizer(cfg); err == nil {
		t.Error("unknown provider should error")
	}
}

func TestSummarizer_FramingSummary(t *testing.T) {
	fake := &fakeProvider{reply: "The outlets differ in emphasis."}
	s := &Summarizer{provider: fake, cfg: model.DefaultConfig().LLM}

	stories, sources := testStories()
	got, err := s.FramingSummary(context.Background(), stories, sources)
	if err != nil {
		t.Fatalf("FramingSummary: %v", err)
	}
	if got != "The outlets differ in emphasis." {
		t.Errorf("summary = %q", got)
	}
	if !strings.Contains(fake.lastPrompt, "Budget Plan Announced") {
		t.Error("provider did not receive the built prompt")
	}
}
