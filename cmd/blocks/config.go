package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the configuration the game would use, where it was loaded from,
and the grid it produces.

Search order: --config, ~/.blocks/blocks.yaml, ./configs/blocks.yaml,
then the built-in defaults.

Examples:
  blocks config
  blocks config --config ./my-blocks.yaml
  blocks config --defaults > ~/.blocks/blocks.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default YAML and exit")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML())
		return err
	}

	settings, source, err := config.LoadBlocksWithSource(flagConfig)
	if err != nil {
		return err
	}

	data, err := settings.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# source: %s\n", source)
	if _, err := out.Write(data); err != nil {
		return err
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	rows, cols, err := blocks.GridSize(settings.Display)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# grid: %d rows x %d cols, down tick %v\n", rows, cols, settings.Gameplay.DownTick())
	return nil
}
