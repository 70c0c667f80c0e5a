package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/newslens/newslens/internal/model"
	"github.com/newslens/newslens/internal/registry"
	"github.com/spf13/cobra"
)

var (
	addName        string
	addHomepage    string
	addRSS         string
	addBias        float64
	addReliability float64
)

// editionOrDefault resolves the --country flag for registry edits, which
// need a concrete edition rather than the config fallback chain.
func editionOrDefault() string {
	if country != "" {
		return country
	}
	return "US"
}

// sourcesCmd represents the sources command
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage the outlet registry",
	Long: `Manage the registry of news outlets NewsLens fetches and rates.

Each outlet carries a political bias rating (-10 far left .. +10 far
right) and a reliability rating (0 .. 10). Ratings drive the coverage
breakdowns; edit them to match the rating source you trust.

The registry lives at ~/.newslens/sources.yaml and is seeded with
built-in US and GB outlets on first use.`,
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered outlets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return fmt.Errorf("load sources: %w", err)
		}

		countries := reg.Countries()
		if country != "" {
			countries = []string{country}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCOUNTRY\tBIAS\tRELIABILITY")
		for _, c := range countries {
			for _, src := range reg.ByCountry(c) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%+.1f (%s)\t%.1f (%s)\n",
					src.ID, src.Name, src.Country,
					src.Bias, src.BiasCategory(),
					src.Reliability, src.ReliabilityCategory())
			}
		}
		return w.Flush()
	},
}

var sourcesAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add an outlet to the registry",
	Long: `Add an outlet. The id is the stable key articles are attributed to,
so pick a short slug and keep it.

Example:
  newslens sources add propublica --name "ProPublica" --rss https://www.propublica.org/feeds/propublica/main --bias -2.5 --reliability 8.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if addName == "" {
			return fmt.Errorf("--name is required")
		}
		if addRSS == "" {
			return fmt.Errorf("--rss is required")
		}
		if addBias < -10 || addBias > 10 {
			return fmt.Errorf("bias must be in [-10, 10], got %v", addBias)
		}
		if addReliability < 0 || addReliability > 10 {
			return fmt.Errorf("reliability must be in [0, 10], got %v", addReliability)
		}

		reg, err := loadRegistry()
		if err != nil {
			return fmt.Errorf("load sources: %w", err)
		}

		src := model.Source{
			ID:          args[0],
			Name:        addName,
			Country:     editionOrDefault(),
			HomepageURL: addHomepage,
			RSSURL:      addRSS,
			Bias:        addBias,
			Reliability: addReliability,
		}
		if err := reg.Add(src); err != nil {
			if errors.Is(err, registry.ErrSourceExists) {
				return fmt.Errorf("source %q already exists in %s (remove it first to replace)", src.ID, src.Country)
			}
			return err
		}
		if err := reg.Save(); err != nil {
			return fmt.Errorf("save sources: %w", err)
		}

		fmt.Printf("✓ Added %s (%s, bias %+.1f, reliability %.1f)\n", src.ID, src.Name, src.Bias, src.Reliability)
		return nil
	},
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an outlet from the registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return fmt.Errorf("load sources: %w", err)
		}

		c := editionOrDefault()
		removed, err := reg.Remove(c, args[0])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("no source %q registered for %s", args[0], c)
		}
		if err := reg.Save(); err != nil {
			return fmt.Errorf("save sources: %w", err)
		}

		fmt.Printf("✓ Removed %s from %s\n", args[0], c)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
	sourcesCmd.AddCommand(sourcesListCmd)
	sourcesCmd.AddCommand(sourcesAddCmd)
	sourcesCmd.AddCommand(sourcesRemoveCmd)

	sourcesAddCmd.Flags().StringVar(&addName, "name", "", "display name (required)")
	sourcesAddCmd.Flags().StringVar(&addHomepage, "homepage", "", "homepage URL")
	sourcesAddCmd.Flags().StringVar(&addRSS, "rss", "", "RSS/Atom feed URL (required)")
	sourcesAddCmd.Flags().Float64Var(&addBias, "bias", 0, "political bias rating, -10 far left .. +10 far right")
	sourcesAddCmd.Flags().Float64Var(&addReliability, "reliability", 5, "reliability rating, 0 .. 10")
}
