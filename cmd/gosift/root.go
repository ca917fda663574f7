package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyperifyio/gosift/internal/app"
)

var (
	flagConfig  string
	flagVerbose bool

	flagBase     string
	flagManifest string
	flagOutput   string
	flagDocs     string
	flagWorkers  int
)

var rootCmd = &cobra.Command{
	Use:   "gosift",
	Short: "Persona-driven document relevance analysis",
	Long: `gosift extracts sections from document collections, ranks them by
relevance to a stated persona and task, and writes a short report of the
most relevant sections with actionable summaries.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.TimeFieldFormat = time.RFC3339
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		if flagVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", os.Getenv("GOSIFT_CONFIG"), "Path to YAML or JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagBase, "base", envDefault("GOSIFT_BASE", "."), "Base directory containing collections")
	rootCmd.PersistentFlags().StringVar(&flagManifest, "manifest", envDefault("GOSIFT_MANIFEST", app.DefaultManifestName), "Input manifest filename inside each collection")
	rootCmd.PersistentFlags().StringVar(&flagOutput, "output", envDefault("GOSIFT_OUTPUT", app.DefaultOutputName), "Output record filename written per collection")
	rootCmd.PersistentFlags().StringVar(&flagDocs, "docs", envDefault("GOSIFT_DOCS", app.DefaultDocsDir), "Documents subdirectory inside each collection")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", envIntDefault("GOSIFT_WORKERS", app.DefaultWorkers), "Concurrent document parsers per collection")
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// buildConfig merges flags with the optional config file; explicit flags win.
func buildConfig(extra func(*app.Config)) (app.Config, error) {
	cfg := app.Config{
		BaseDir:      flagBase,
		ManifestName: flagManifest,
		OutputName:   flagOutput,
		DocsDir:      flagDocs,
		Workers:      flagWorkers,
		Verbose:      flagVerbose,
	}
	if extra != nil {
		extra(&cfg)
	}
	if flagConfig != "" {
		fc, err := app.LoadConfigFile(flagConfig)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", flagConfig, err)
		}
		app.ApplyFileConfig(&cfg, fc)
		if cfg.Verbose && !flagVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
