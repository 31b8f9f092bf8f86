// Command docgraph is the CLI for the docgraph dependency index.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/docgraphhq/docgraph/client"
)

// Build-time variables set via ldflags.
var (
	version   = "0.3.0"
	commit    = ""
	buildDate = ""
)

const defaultServerURL = "http://localhost:3131"

var (
	apiClient *client.Client
	flagURL   string
	flagFmt   string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("docgraph version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("docgraph version %s-dev", version)
}

type configFile struct {
	URL string `yaml:"url"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "docgraph",
		Short:   "docgraph CLI — dependency-graph queries over a document corpus",
		Version: versionString(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			resolveConfig()
			apiClient = client.New(flagURL)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", defaultServerURL, "docgraph server URL (env: DOCGRAPH_URL)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "json", "Output format: json|table")

	doctorCmd := newDoctorCmd()
	doctorCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {} // skip client setup

	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(newDepsCmd())
	rootCmd.AddCommand(newDependentsCmd())
	rootCmd.AddCommand(newRelatedCmd())
	rootCmd.AddCommand(newAdjacencyCmd())
	rootCmd.AddCommand(newEntryPointsCmd())
	rootCmd.AddCommand(newLeavesCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newIngestCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfig() {
	// Flag takes precedence, then env, then config file.
	if flagURL == defaultServerURL {
		if v := os.Getenv("DOCGRAPH_URL"); v != "" {
			flagURL = v
		}
	}

	if flagURL != defaultServerURL {
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	cfgPath := filepath.Join(home, ".docgraph", "config.yaml")
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return
	}
	if cfg.URL != "" {
		flagURL = cfg.URL
	}
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}
