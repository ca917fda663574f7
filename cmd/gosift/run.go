package main

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyperifyio/gosift/internal/app"
	"github.com/hyperifyio/gosift/internal/record"
	"github.com/hyperifyio/gosift/internal/report"
)

var (
	flagPDFReport string
	flagCheck     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyze every collection under the base directory",
	Long: `Discover collections (subdirectories carrying an input manifest),
analyze each against its persona and task, and write one output record per
collection. A failing collection is logged and skipped; siblings still run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(func(c *app.Config) {
			c.PDFReport = flagPDFReport
			c.CheckOutput = flagCheck
		})
		if err != nil {
			return err
		}

		a := app.New(cfg, log.Logger)
		return a.Run(context.Background(), func(dir string, out *record.Output, stats app.Stats) {
			report.Summary(cmd.OutOrStdout(), filepath.Base(dir), out, report.SummaryStats{
				Persona:   stats.Category.String(),
				Documents: stats.Documents,
				Pages:     stats.Pages,
				Sections:  stats.Sections,
			})
		})
	},
}

func init() {
	runCmd.Flags().StringVar(&flagPDFReport, "pdf-report", "", "Also write a PDF report under this filename per collection")
	runCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate each output record after building it")
	rootCmd.AddCommand(runCmd)
}
