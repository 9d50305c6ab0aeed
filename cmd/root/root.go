// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/vx-finance/internal/config"
	"fjacquet/vx-finance/internal/container"
	"fjacquet/vx-finance/internal/ledger"
	"fjacquet/vx-finance/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the wired dependencies once PersistentPreRunE ran
	AppContainer *container.Container

	// ConfigFile is an explicit configuration file path (--config)
	ConfigFile string

	// AssumeYes answers every confirmation prompt with yes (--yes)
	AssumeYes bool

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "vx-finance",
		Short: "Financial control for VX Virtual: ledger, DRE and backups.",
		Long: `vx-finance keeps the income and expense ledger of a small company.
It records transactions per client and project, summarizes them per month,
builds the DRE income statement and exports full JSON backups.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to vx-finance!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			Teardown()
		},
	}
)

// Init initializes the root command flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&ConfigFile, "config", "c", "", "Configuration file (default: config.yaml in ~/.vx-finance, ./.vx-finance or .)")
	Cmd.PersistentFlags().BoolVarP(&AssumeYes, "yes", "y", false, "Answer yes to every confirmation prompt")
}

// Setup loads the configuration and wires the application container.
func Setup(cmd *cobra.Command) error {
	if AppContainer != nil {
		return nil
	}

	cfg, err := config.Load(ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	c, err := container.NewContainer(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// Teardown closes the application container.
func Teardown() {
	if AppContainer == nil {
		return
	}
	if err := AppContainer.Close(); err != nil {
		Log.WithError(err).Warn("Failed to close application resources")
	}
	AppContainer = nil
}

// Ledger returns the loaded ledger.
func Ledger() *ledger.Ledger {
	return AppContainer.GetLedger()
}

// Confirmer returns the confirmation source for destructive commands.
func Confirmer(cmd *cobra.Command) ledger.Confirmer {
	if AssumeYes {
		return ledger.AlwaysConfirm
	}
	return NewPromptConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
}
