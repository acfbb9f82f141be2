package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/phrazzld/quickcache/internal/cli"
	"github.com/phrazzld/quickcache/internal/config"
	"github.com/phrazzld/quickcache/internal/platform/sqlstore"
	"github.com/phrazzld/quickcache/internal/redact"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	configFile string
	envFile    string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "quickcache",
		Short: "Create, organise and quiz yourself on flashcards",
		Long: "QuickCache manages open-ended and multiple-choice flashcards.\n" +
			"Without a subcommand it starts an interactive shell; type \"help\" there for the command list.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"config file (default: quickcache.yaml in the working directory)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env",
		"file of environment variables to load before reading the configuration")

	root.AddCommand(newRunCommand(opts), newMigrateCommand(opts))
	return root
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run COMMAND...",
		Short: "Run a single QuickCache command and exit",
		Example: "  quickcache run list\n" +
			"  quickcache run add q/What is 2 + 2? a/4 t/math",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			app, err := bootstrap(ctx, opts)
			if err != nil {
				return reportError(cmd, err)
			}
			defer app.cleanup(ctx)

			shell := cli.NewShell(app.logic, strings.NewReader(""), cmd.OutOrStdout(), app.logger)
			if _, err := shell.Execute(ctx, strings.Join(args, " ")); err != nil {
				// Already shown by the shell.
				return err
			}
			return nil
		},
	}
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	commands := []string{
		sqlstore.MigrateUp, sqlstore.MigrateDown, sqlstore.MigrateReset,
		sqlstore.MigrateStatus, sqlstore.MigrateVersion,
	}
	return &cobra.Command{
		Use:           "migrate " + strings.Join(commands, "|"),
		Short:         "Manage the database schema of the sqlite and postgres storage drivers",
		Args:          cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:     commands,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			cfg, log, err := loadConfig(opts)
			if err != nil {
				return reportError(cmd, err)
			}
			if cfg.Storage.Driver == config.DriverJSON {
				return reportError(cmd, errors.New("the json storage driver has no schema to migrate"))
			}

			db, dialect, err := openDatabase(ctx, cfg.Storage, log)
			if err != nil {
				return reportError(cmd, err)
			}
			defer db.Close()

			if err := sqlstore.Migrate(ctx, db.DB, dialect, args[0], log); err != nil {
				return reportError(cmd, err)
			}
			return nil
		},
	}
}

func runShell(cmd *cobra.Command, opts *rootOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	app, err := bootstrap(ctx, opts)
	if err != nil {
		return reportError(cmd, err)
	}
	defer app.cleanup(ctx)

	shell := cli.NewShell(app.logic, cmd.InOrStdin(), cmd.OutOrStdout(), app.logger)
	if err := shell.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return reportError(cmd, err)
	}
	return nil
}

func reportError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "quickcache: %s\n", redact.Error(err))
	return err
}
