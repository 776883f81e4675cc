package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/games/reflex"
	"github.com/vovakirdan/tui-reflex/internal/platform/tui"
)

var playGrid gridFlags

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in this terminal.

Controls:
  Mouse         - Hover and click cells
  Arrows/WASD   - Move the cell cursor
  Space/Enter   - Press the cell under the cursor
  O             - Grid settings
  H             - History
  c / C         - Clear history of this grid / all grids
  Q/Ctrl+C      - Quit

Grid flags override the stored settings and are saved for next time.

Examples:
  reflex play
  reflex play -r 4 -c 6
  reflex play --active 5
  reflex play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playGrid.bind(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	kv, closeStore := openStore()
	defer closeStore()

	// Warnings would be drawn over the alternate screen.
	playLogger := logger.With()
	playLogger.SetLevel(log.ErrorLevel)

	game, err := reflex.New(kv, reflex.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Overrides: playGrid.overrides(),
		Logger:    playLogger,
	})
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	if err := tui.Run(game, width, height, playLogger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
