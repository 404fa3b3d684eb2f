package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"facility-pipeline/internal/app"
	"facility-pipeline/internal/config"
	"facility-pipeline/internal/service/transform"
)

func newTransformCmd() *cobra.Command {
	var schedule string

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Filter facilities with accreditations expiring within six months",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.LoadFromEnv()
			logger := newLogger(cfg)

			a, err := app.New(cmd.Context(), app.Deps{Cfg: cfg, Logger: logger})
			if err != nil {
				return err
			}

			if schedule == "" {
				a.Transform.Run(cmd.Context())
				return nil
			}

			sched := transform.NewScheduler(a.Transform, logger.With("component", "scheduler"))
			if err := sched.Start(schedule); err != nil {
				return err
			}
			defer sched.Stop()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			return nil
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "", "cron spec for repeated runs (default: run once)")
	return cmd
}
