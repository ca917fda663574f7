package main

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyperifyio/gosift/internal/api"
	"github.com/hyperifyio/gosift/internal/app"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis pipeline over HTTP",
	Long: `Start an HTTP server exposing POST /api/analyze. Documents arrive
inline in the request body as per-page text, so the server reads no files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(nil)
		if err != nil {
			return err
		}

		a := app.New(cfg, log.Logger)
		srv := api.NewServer(a, log.Logger)

		log.Info().Str("addr", flagAddr).Msg("listening")
		return http.ListenAndServe(flagAddr, srv)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8090", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
