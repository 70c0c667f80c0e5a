package cli

import (
	"fmt"
	"os"

	"github.com/newslens/newslens/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
	country string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "newslens",
	Short: "NewsLens - See every side of the story",
	Long: `NewsLens analyzes how news outlets across the political spectrum
cover the same stories.

It groups headlines from many outlets into stories, breaks each story's
coverage down by the outlets' political lean, and flags blindspots:
stories one side of the spectrum is covering heavily while the other
side stays silent.

NewsLens measures coverage, not truth. It never judges whether a story
is accurate, only who is and is not reporting it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for NewsLens.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("newslens v0.2.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.newslens/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&country, "country", "c", "", "country edition, ISO code (default from config: US)")

	// Bind flags to viper. The country flag is applied in loadConfig so an
	// unset flag cannot mask the config file's value.
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.newslens")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match NEWSLENS_*
	viper.SetEnvPrefix("NEWSLENS")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults overlaid with
// whatever the config file and NEWSLENS_* environment variables set.
// CLI flags are applied on top by the individual commands.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	if country != "" {
		cfg.Country = country
	}
	cfg.Output.Verbose = verbose
	return cfg, nil
}

// newLogger returns a logger for the fetch layer. Quiet by default so the
// report output stays clean; verbose mode surfaces per-source warnings.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
