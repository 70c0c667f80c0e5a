package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/newslens/newslens/internal/analysis"
	"github.com/newslens/newslens/internal/render"
	"github.com/spf13/cobra"
)

var (
	headlinesLimit   int
	headlinesMock    bool
	headlinesTimeout time.Duration
)

// headlinesCmd represents the headlines command
var headlinesCmd = &cobra.Command{
	Use:   "headlines",
	Short: "Show today's top stories across the spectrum",
	Long: `Headlines fetches the current feeds for the selected country and prints
the biggest stories with every outlet's take listed side by side,
ordered by coverage volume.

Example:
  newslens headlines
  newslens headlines --country GB --limit 5
  newslens headlines --mock`,
	Args: cobra.NoArgs,
	RunE: runHeadlines,
}

func init() {
	rootCmd.AddCommand(headlinesCmd)

	headlinesCmd.Flags().IntVar(&headlinesLimit, "limit", 10, "maximum stories to show")
	headlinesCmd.Flags().BoolVar(&headlinesMock, "mock", false, "use the built-in offline batch instead of live feeds")
	headlinesCmd.Flags().DurationVar(&headlinesTimeout, "timeout", 2*time.Minute, "overall run timeout")
}

func runHeadlines(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), headlinesTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reg, err := loadRegistry()
	if err != nil {
		return fmt.Errorf("load sources: %w", err)
	}

	batch, err := collectArticles(ctx, cfg, reg, headlinesMock)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	sources := reg.Map(cfg.Country)
	engine := analysis.New(cfg.Analysis)
	result := engine.Analyze(sources, batch.Articles)

	if headlinesLimit > 0 && len(result.Stories) > headlinesLimit {
		result.Stories = result.Stories[:headlinesLimit]
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Collected %d articles, %d stories\n\n", len(batch.Articles), len(result.Stories))
	}

	render.New(true).WriteSummary(os.Stdout, result, sources)
	return nil
}
