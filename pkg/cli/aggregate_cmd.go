package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"facility-pipeline/internal/app"
	"facility-pipeline/internal/config"
)

func newAggregateCmd() *cobra.Command {
	var eventFile string

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Run the state-counts query and archive the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.LoadFromEnv()
			logger := newLogger(cfg)

			a, err := app.New(cmd.Context(), app.Deps{Cfg: cfg, Logger: logger})
			if err != nil {
				return err
			}

			event := []byte(`{"source":"manual"}`)
			if eventFile != "" {
				event, err = os.ReadFile(eventFile)
				if err != nil {
					return fmt.Errorf("read event file: %w", err)
				}
			}

			result, err := a.Aggregate.Run(cmd.Context(), event)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&eventFile, "event-file", "", "path to a JSON trigger payload (logged, not inspected)")
	return cmd
}
