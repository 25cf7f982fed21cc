package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Washedglad/electricians-spellbook/internal/config"
	"github.com/Washedglad/electricians-spellbook/internal/logger"
	"github.com/Washedglad/electricians-spellbook/internal/storage"
	"github.com/Washedglad/electricians-spellbook/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "spellbook",
	Short: "A field companion for electricians",
	Long: `spellbook tracks quests (jobs), material stock, billable time, code
references, and job sites, and bundles the common sizing calculators.
All state lives in a single local snapshot database.`,
}

var (
	appLog   *slog.Logger
	appStore *store.Store
)

// openStore wires config, logger, storage, and store. Commands call it
// at the top of their Run funcs; a failure here is fatal.
func openStore() *store.Store {
	if appStore != nil {
		return appStore
	}
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	appLog = logger.New(cfg.LogLevel)
	backend, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		fatal(err)
	}
	appStore = store.Open(backend, appLog)
	return appStore
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("spellbook %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(questCmd)
	rootCmd.AddCommand(vaultCmd)
	rootCmd.AddCommand(timerStartCmd)
	rootCmd.AddCommand(timerStopCmd)
	rootCmd.AddCommand(timerStatusCmd)
	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(codexCmd)
	rootCmd.AddCommand(sitesCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
