package main

import (
	"github.com/spf13/cobra"
	"tripplanner/internal/common/logger"
)

type rootOptions struct {
	logLevel string
	log      logger.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Manage the student trip planner place catalog",
		Long: `catalogctl turns attraction datasets into places_data.json,
plans trips against a catalog file, and seeds the catalog database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.log = logger.NewStructured(opts.logLevel, "console")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.log.Sync()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newBuildCmd(opts),
		newPlanCmd(opts),
		newSeedCmd(opts),
		newHashPasswordCmd(),
	)
	return cmd
}
