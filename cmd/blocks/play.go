package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

const defaultGame = "blocks"

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: blocks).

Controls (defaults, see 'blocks controls'):
  Space          - Pause/unpause, start, play again
  Left/Right     - Move block
  Down           - Move block down
  Z / C          - Rotate counterclockwise / clockwise
  X              - Reflect around the vertical axis
  ?              - More help
  Q/Ctrl+C       - Quit

Examples:
  blocks play
  blocks play blocks_classic
  blocks play --seed 42
  blocks play --config ./my-blocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'blocks list' to see available games", gameID)
	}

	settings, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal")
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Keys:   settings.Keys,
		Logger: logger,
	}
	if err := tui.Run(game, cfg, opts); err != nil {
		logger.Error("session failed", "error", err)
		return err
	}
	return nil
}
