package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show the key bindings",
	Long:  `Prints the controls as shown on the pause screen, using the effective configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runControls,
}

func runControls(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, line := range blocks.ControlsText(settings.Keys) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, "Quit: 'q' or <ctrl+c>")
	return nil
}
