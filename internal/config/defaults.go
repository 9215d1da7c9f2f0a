package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default Blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Display: Display{
			Width:           200,
			Height:          420,
			SquareDim:       20,
			StatusBarHeight: 20,
			BorderLineWidth: 4,
			GridLineWidth:   1,
		},
		Gameplay: Gameplay{
			DownTickMS: 500,
			Catalog:    CatalogStandard,
		},
		Keys: Keys{
			Pause:            []string{"space"},
			Left:             []string{"left", "h"},
			Right:            []string{"right", "l"},
			Down:             []string{"down", "j"},
			Clockwise:        []string{"c"},
			CounterClockwise: []string{"z"},
			Reflect:          []string{"x"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBlocksYAML
}
