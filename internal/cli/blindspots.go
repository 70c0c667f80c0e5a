package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/newslens/newslens/internal/analysis"
	"github.com/newslens/newslens/internal/extract"
	"github.com/newslens/newslens/internal/llm"
	"github.com/newslens/newslens/internal/model"
	"github.com/newslens/newslens/internal/render"
	"github.com/spf13/cobra"
)

var (
	outJSON       string
	runTimeout    time.Duration
	useMock       bool
	noCache       bool
	showArticles  bool
	withBodies    bool
	similarity    float64
	recencyWindow time.Duration
	minSources    int
	imbalance     float64
	llmProvider   string
	llmModel      string
)

// blindspotsCmd represents the blindspots command
var blindspotsCmd = &cobra.Command{
	Use:   "blindspots",
	Short: "Analyze today's coverage and flag one-sided stories",
	Long: `Blindspots fetches the current headlines from every registered outlet,
groups them into stories, and classifies each story's coverage:
- balanced: both sides of the spectrum are reporting it
- left/right blindspot: one side is covering it heavily, the other not at all
- insufficient coverage: too few distinct outlets to judge

Example:
  newslens blindspots
  newslens blindspots --country GB --json report.json
  newslens blindspots --mock --show-articles
  newslens blindspots --llm openai`,
	Args: cobra.NoArgs,
	RunE: runBlindspots,
}

func init() {
	rootCmd.AddCommand(blindspotsCmd)

	// Output flags
	blindspotsCmd.Flags().StringVar(&outJSON, "json", "", "write full report JSON to path")
	blindspotsCmd.Flags().BoolVar(&showArticles, "show-articles", false, "list every article under each story")
	blindspotsCmd.Flags().BoolVar(&withBodies, "with-bodies", false, "fetch article pages and include extracted text in the JSON report")

	// Run flags
	blindspotsCmd.Flags().DurationVar(&runTimeout, "timeout", 2*time.Minute, "overall run timeout")
	blindspotsCmd.Flags().BoolVar(&useMock, "mock", false, "use the built-in offline batch instead of live feeds")
	blindspotsCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable feed cache (force fresh fetch)")

	// Threshold flags
	blindspotsCmd.Flags().Float64Var(&similarity, "similarity", 0, "title similarity threshold override (0..1)")
	blindspotsCmd.Flags().DurationVar(&recencyWindow, "recency", 0, "recency window override (e.g. 24h)")
	blindspotsCmd.Flags().IntVar(&minSources, "min-sources", 0, "distinct-outlet minimum override")
	blindspotsCmd.Flags().Float64Var(&imbalance, "imbalance", 0, "imbalance threshold override (0..1)")

	// LLM flags
	blindspotsCmd.Flags().StringVar(&llmProvider, "llm", "", "enable the framing summary with this provider (openai, ollama)")
	blindspotsCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runBlindspots(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if similarity > 0 {
		cfg.Analysis.SimilarityThreshold = similarity
	}
	if recencyWindow > 0 {
		cfg.Analysis.RecencyWindow = recencyWindow
	}
	if minSources > 0 {
		cfg.Analysis.MinSources = minSources
	}
	if imbalance > 0 {
		cfg.Analysis.ImbalanceThreshold = imbalance
	}

	// Configure LLM if enabled
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
		if llmModel != "" {
			cfg.LLM.Model = llmModel
		}
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	reg, err := loadRegistry()
	if err != nil {
		return fmt.Errorf("load sources: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Country: %s\n", cfg.Country)
		fmt.Fprintf(os.Stderr, "Sources: %d\n", len(reg.ByCountry(cfg.Country)))
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	batch, err := collectArticles(ctx, cfg, reg, useMock)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Collected %d articles (%d sources failed)\n", len(batch.Articles), len(batch.Failures))
	}

	sources := reg.Map(cfg.Country)
	engine := analysis.New(cfg.Analysis)
	result := engine.Analyze(sources, batch.Articles)

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Grouped into %d stories (%d warnings)\n\n", len(result.Stories), len(result.Warnings))
	}

	r := render.New(showArticles)
	r.WriteSummary(os.Stdout, result, sources)

	if outJSON != "" {
		if withBodies && !useMock {
			extractBodies(ctx, cfg, &result)
		}
		if err := r.WriteJSON(result, outJSON); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "\n✓ Wrote report: %s\n", outJSON)
		}
	}

	if cfg.LLM.Provider != "" {
		summarizer, err := llm.NewSummarizer(cfg.LLM)
		if err != nil {
			return fmt.Errorf("llm setup failed: %w", err)
		}
		summary, err := summarizer.FramingSummary(ctx, result.Stories, sources)
		if err != nil {
			// The engine output above is already complete; an LLM failure
			// only costs the extra prose.
			fmt.Fprintf(os.Stderr, "framing summary failed: %v\n", err)
			return nil
		}
		render.New(false).WriteFramingSummary(os.Stdout, summary)
	}

	return nil
}

// extractBodies enriches the report's articles with extracted page text.
// Best-effort: a page that cannot be fetched or parsed keeps an empty body.
func extractBodies(ctx context.Context, cfg *model.Config, result *model.Result) {
	ex := extract.New(cfg.Fetch)
	for si := range result.Stories {
		articles := result.Stories[si].Story.Articles
		for ai := range articles {
			body, err := ex.Body(ctx, articles[ai])
			if err != nil {
				if verbose {
					fmt.Fprintf(os.Stderr, "body extraction failed for %s: %v\n", articles[ai].URL, err)
				}
				continue
			}
			articles[ai].Body = body
		}
	}
}
