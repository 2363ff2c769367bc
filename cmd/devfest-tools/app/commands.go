package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdgmilano/devfest-tools/pkg/logging"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.NewSyncCommand())
	rootCmd.AddCommand(a.NewDigestCommand())
	rootCmd.AddCommand(a.NewFetchCommand())
	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewSyncCommand creates the sync command.
func (a *App) NewSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile provider data into the snapshots",
		Long: `Sync downloads the Sessionize payload (or reuses its local cache),
merges it into the schedule, sessions and speakers snapshots, and writes
back each snapshot that changed. Digest files are not touched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			syncer, err := a.Syncer(mustGetBool(cmd, "force-refresh"))
			if err != nil {
				return err
			}
			ctx := logging.WithLogger(cmd.Context(), a.logger)
			_, err = syncer.Sync(ctx)
			return err
		},
	}
}

// NewDigestCommand creates the digest command.
func (a *App) NewDigestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "digest",
		Short: "Render social post and agenda files from the snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			syncer, err := a.Syncer(false)
			if err != nil {
				return err
			}
			ctx := logging.WithLogger(cmd.Context(), a.logger)
			return syncer.Digest(ctx)
		},
	}
}

// NewFetchCommand creates the fetch command.
func (a *App) NewFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Refresh the local provider payload cache",
		RunE: func(cmd *cobra.Command, _ []string) error {
			syncer, err := a.Syncer(true)
			if err != nil {
				return err
			}
			ctx := logging.WithLogger(cmd.Context(), a.logger)
			return syncer.Fetch(ctx)
		},
	}
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "devfest-tools %s (commit %s, built %s)\n",
				a.version, a.commit, a.date)
		},
	}
}
