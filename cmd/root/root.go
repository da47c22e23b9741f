// Package root contains the root command for the application.
package root

import (
	"github.com/moktak128bit/gagyebu/internal/config"
	"github.com/moktak128bit/gagyebu/internal/impexp"
	"github.com/moktak128bit/gagyebu/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.GetLogger()

	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "gagyebu",
		Short: "A household-ledger engine: category repair, suggestions, and recurring expenses.",
		Long: `gagyebu maintains a personal household ledger. It repairs corrupted
category names on import, suggests categories and accounts for new entries
based on ledger history, and carries fixed monthly expenses forward into the
current month without duplicating them.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to gagyebu!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg

			if dir, err := cmd.Flags().GetString("data-dir"); err == nil && dir != "" {
				Cfg.Data.Directory = dir
			}

			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetDefaultLogger(Log)

			impexp.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}
)

// Init wires the root command's persistent flags. Called once from main.
func Init() {
	Cmd.PersistentFlags().StringP("data-dir", "d", "", "override the data directory")
}
