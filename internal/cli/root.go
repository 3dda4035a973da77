// Package cli contains the ledgerctl operator commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/db"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
)

// ConfigLoader returns the configuration commands run against.
type ConfigLoader func() *config.Config

// app is the state shared by the subcommands of one invocation.
type app struct {
	loadConfig ConfigLoader
	logLevel   string
	cfg        *config.Config
}

// NewRootCommand builds the ledgerctl command tree.
func NewRootCommand(loadConfig ConfigLoader) *cobra.Command {
	a := &app{loadConfig: loadConfig}

	cmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Operator tool for the ledger service.",
		Long: `ledgerctl runs maintenance tasks against the ledger database:
schema migration, recurring notification sweeps, reports and
development bearer tokens.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("invalid log level %q", a.logLevel)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			a.cfg = a.loadConfig()
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newMigrateCommand(a),
		newNotifyCommand(a),
		newReportCommand(a),
		newTokenCommand(a),
	)
	return cmd
}

// openDatabase connects and migrates the configured database.
func (a *app) openDatabase() (*db.Database, error) {
	database, err := db.NewConnection(&a.cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(); err != nil {
		_ = database.Close()
		return nil, err
	}
	return database, nil
}

// withInjector runs fn with a fully wired injector and releases every
// connection afterwards.
func (a *app) withInjector(fn func(inj *dependency.Injector) error) error {
	database, err := a.openDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	ext, closeExternals, err := dependency.Connect(a.cfg)
	if err != nil {
		return err
	}
	defer closeExternals()

	return fn(dependency.NewInjector(a.cfg, database.DB(), ext))
}
