// Package cli implements the facilityctl command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"facility-pipeline/internal/config"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "facilityctl",
		Short:         "Healthcare facility accreditation pipeline",
		Long:          "Batch jobs for filtering expiring facility accreditations and archiving state-level counts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newTransformCmd())
	rootCmd.AddCommand(newAggregateCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// newLogger builds the process-wide JSON logger from config.
func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}
