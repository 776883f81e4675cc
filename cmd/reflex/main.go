// reflex is a reaction-time grid game for the terminal.
//
// Usage:
//
//	reflex play                - Play on the stored grid
//	reflex play -r 4 -c 4 -a 3 - Play on a 4×4 grid with 3 lit cells
//	reflex history             - Show recorded runs for the current grid
//	reflex history clear       - Clear recorded runs
//	reflex serve               - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible cell sequences
//	--db <path>     - Set database path (default: ~/.reflex/reflex.db)
//	--config <path> - Load a custom YAML config
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/storage"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string

	// cfg is loaded before any subcommand runs.
	cfg = config.DefaultReflexConfig()

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "reflex",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reflex",
	Short: "Reflex - a reaction-time grid game for your terminal",
	Long: `Reflex lights up a few cells of a grid. Press lit cells as fast as you
can; pressing a dark cell ends the run. Runs of two or more hits are kept
in a local history, one list per grid size.

Available commands:
  play     - Play in this terminal
  history  - View or clear recorded runs
  serve    - Start SSH server for remote play

Examples:
  reflex play
  reflex play -r 5 -c 5 -a 4
  reflex history --all
  reflex serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.reflex/reflex.db", "Path to settings and history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the YAML/env configuration. An explicit --db wins over
// the configured database path.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("db") {
		loaded.Storage.DBPath = flagDBPath
	}
	cfg = loaded
	return nil
}

// openStore opens the configured database. When it cannot be opened the game
// still runs on an in-memory store that is lost on exit.
func openStore() (storage.KV, func()) {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open database, nothing will be saved", "path", cfg.Storage.DBPath, "error", err)
		return storage.NewMemory(), func() {}
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("could not close database", "error", err)
		}
	}
}

// gridFlags are the -r/-c/-a grid overrides.
type gridFlags struct {
	rows, columns, active int
}

func (f *gridFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.rows, "rows", "r", 0, "Grid rows (at least 2)")
	cmd.Flags().IntVarP(&f.columns, "columns", "c", 0, "Grid columns (at least 2)")
	cmd.Flags().IntVarP(&f.active, "active", "a", 0, "Lit cells at a time (clamped to rows*columns-1)")
}

func (f gridFlags) overrides() config.Overrides {
	return config.Overrides{Rows: f.rows, Columns: f.columns, Active: f.active}
}
