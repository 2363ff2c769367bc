package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gdgmilano/devfest-tools/pkg/logging"
)

// Execute runs the devfest-tools CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
// Running the root command with no subcommand performs the full pipeline:
// sync, then all digests — the original single entry point.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "devfest-tools",
		Short:   "Sessionize → Hoverboard schedule sync",
		Version: a.version,
		Long: `devfest-tools synchronizes the conference schedule from the Sessionize
API into the Hoverboard JSON data model and renders digest files
(social post text and agendas) from the snapshots.

Curated fields (presentation links, icons, video ids, extended durations
and hand-edited speaker records) survive every sync.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			syncer, err := a.Syncer(mustGetBool(cmd, "force-refresh"))
			if err != nil {
				return err
			}
			ctx := logging.WithLogger(cmd.Context(), a.logger)
			return syncer.Run(ctx)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is .devfest-tools.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&a.config.DataDir, "data-dir", a.config.DataDir, "directory holding snapshots and digests")
	rootCmd.PersistentFlags().StringVar(&a.config.ProviderURL, "provider-url", a.config.ProviderURL, "Sessionize view/all endpoint")
	rootCmd.PersistentFlags().BoolVar(&a.config.Backups, "backups", a.config.Backups, "copy snapshots to timestamped backups before overwriting")
	rootCmd.PersistentFlags().BoolVar(&a.config.SpeakerOverwrite, "allow-speaker-overwrite", a.config.SpeakerOverwrite, "let provider data refresh existing speaker records")
	rootCmd.PersistentFlags().Bool("force-refresh", a.config.ForceRefresh, "re-download the provider payload even when cached")

	rootCmd.SetVersionTemplate("devfest-tools {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	a.config.UpdateFromFlags(
		mustGetBool(cmd, "verbose"),
		mustGetBool(cmd, "quiet"),
		mustGetBool(cmd, "no-color"),
	)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't
// exist. This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
