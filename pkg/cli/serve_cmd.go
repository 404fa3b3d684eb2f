package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"facility-pipeline/internal/api"
	"facility-pipeline/internal/app"
	"facility-pipeline/internal/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Listen for event notifications and run the aggregation job per event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.LoadFromEnv()
			logger := newLogger(cfg)

			a, err := app.New(cmd.Context(), app.Deps{Cfg: cfg, Logger: logger})
			if err != nil {
				return err
			}

			handler := api.NewHandler(a.Aggregate, logger.With("component", "api"))
			logger.Info("event listener starting", "addr", cfg.ListenAddr)
			return http.ListenAndServe(cfg.ListenAddr, handler.Router())
		},
	}
}
