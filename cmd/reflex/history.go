package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/history"
	"github.com/vovakirdan/tui-reflex/internal/storage"
)

var (
	historyGrid    gridFlags
	clearGrid      gridFlags
	flagHistoryAll bool
	flagClearAll   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display the recorded runs for the current grid, newest first, and the
best run. The current grid is the stored one unless -r/-c/-a are given;
these flags do not change the stored settings here.

Examples:
  reflex history
  reflex history -r 4 -c 4 -a 2
  reflex history --all`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear recorded runs",
	Long: `Remove the recorded runs of the current grid, or of every grid with --all.

Examples:
  reflex history clear
  reflex history clear -r 5 -c 5 -a 4
  reflex history clear --all`,
	Args: cobra.NoArgs,
	RunE: runHistoryClear,
}

func init() {
	historyGrid.bind(historyCmd)
	historyCmd.Flags().BoolVar(&flagHistoryAll, "all", false, "Show every grid")

	clearGrid.bind(historyClearCmd)
	historyClearCmd.Flags().BoolVar(&flagClearAll, "all", false, "Clear every grid")
	historyCmd.AddCommand(historyClearCmd)
}

// currentGrid is the stored grid with any -r/-c/-a flags applied on top.
func currentGrid(kv storage.KV, f gridFlags) core.GridConfig {
	return f.overrides().Apply(config.LoadGrid(kv, cfg.DefaultGrid()))
}

func runHistory(cmd *cobra.Command, _ []string) error {
	kv, closeStore := openStore()
	defer closeStore()

	hist := history.New(kv, logger)
	grids := []core.GridConfig{currentGrid(kv, historyGrid)}
	if flagHistoryAll {
		grids = hist.Grids()
	}
	printHistory(cmd.OutOrStdout(), hist, grids)
	if flagHistoryAll {
		printTotals(cmd.OutOrStdout(), hist)
	}
	return nil
}

// printTotals writes the run count and overall hit rate across every grid.
func printTotals(w io.Writer, hist *history.Store) {
	records := hist.All()
	if len(records) == 0 {
		return
	}
	var hits int
	var millis int64
	for _, r := range records {
		hits += r.Score
		millis += r.Millis
	}
	total := core.Record{Score: hits, Millis: millis}
	fmt.Fprintf(w, "\nTotal: %d runs on %d grids, %d hits in %.2fs (%.2f/s)\n",
		len(records), len(hist.Grids()), hits, total.Seconds(), total.Rate())
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	kv, closeStore := openStore()
	defer closeStore()

	hist := history.New(kv, logger)
	if flagClearAll {
		if err := hist.ClearAll(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cleared all history.")
		return nil
	}

	grid := currentGrid(kv, clearGrid)
	if err := hist.Clear(grid); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cleared history for %s.\n", grid)
	return nil
}

// printHistory writes one table per grid.
func printHistory(w io.Writer, hist *history.Store, grids []core.GridConfig) {
	if len(grids) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return
	}

	for i, grid := range grids {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "History - %d×%d, %d active\n\n", grid.Rows, grid.Columns, grid.Active)

		bucket := hist.Bucket(grid)
		if len(bucket) == 0 {
			fmt.Fprintln(w, "No runs recorded yet.")
			fmt.Fprintln(w, "Play 'reflex play' and score at least 2 hits to record one.")
			continue
		}

		fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-8s  %-6s  %s\n", "Pos", "Score", "Score/s", "Seconds", "Size", "Active")
		fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-8s  %-6s  %s\n", "---", "-----", "-------", "-------", "----", "------")
		for _, r := range bucket {
			fmt.Fprintf(w, "  %-4d  %-6d  %-8.2f  %-8.2f  %-6s  %d\n",
				r.Position, r.Score, r.Rate(), r.Seconds(), fmt.Sprintf("%dx%d", r.Rows, r.Columns), r.Active)
		}

		if best, ok := hist.Best(grid); ok {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Best: %d hits in %.2fs (%.2f/s)\n", best.Score, best.Seconds(), best.Rate())
		}
	}
}
