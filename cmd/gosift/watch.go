package main

import (
	"context"
	"errors"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyperifyio/gosift/internal/app"
	"github.com/hyperifyio/gosift/internal/report"
	"github.com/hyperifyio/gosift/internal/watch"
)

var flagDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-analyze collections when their inputs change",
	Long: `Run an initial analysis pass, then watch the base directory and
re-run the owning collection whenever its manifest or documents change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(nil)
		if err != nil {
			return err
		}

		a := app.New(cfg, log.Logger)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// Initial pass; an empty base is fine in watch mode, collections
		// may appear later.
		if err := a.Run(ctx, nil); err != nil && !errors.Is(err, app.ErrNoCollections) {
			log.Warn().Err(err).Msg("initial pass incomplete")
		}

		w, err := watch.New(cfg.BaseDir, flagDebounce, log.Logger)
		if err != nil {
			return err
		}
		defer w.Close()
		// Our own artifacts must not re-trigger analysis.
		w.Ignore(cfg.OutputName, cfg.PDFReport)

		log.Info().Str("base", cfg.BaseDir).Msg("watching for changes")
		err = w.Run(ctx, func(dir string) {
			out, stats, err := a.RunCollection(ctx, dir)
			if err != nil {
				log.Error().Str("collection", dir).Err(err).Msg("re-analysis failed")
				return
			}
			report.Summary(cmd.OutOrStdout(), filepath.Base(dir), out, report.SummaryStats{
				Persona:   stats.Category.String(),
				Documents: stats.Documents,
				Pages:     stats.Pages,
				Sections:  stats.Sections,
			})
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	watchCmd.Flags().DurationVar(&flagDebounce, "debounce", 500*time.Millisecond, "Quiet period before re-running a changed collection")
	rootCmd.AddCommand(watchCmd)
}
