// Package config provides YAML-based configuration loading for the blocks
// game: display geometry, gameplay timing and key bindings.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Catalog names accepted by Gameplay.Catalog.
const (
	CatalogStandard = "standard" // I, L, O, T and Z pieces
	CatalogClassic  = "classic"  // squares only
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// BlocksConfig contains all configuration for the Blocks game.
type BlocksConfig struct {
	Display  Display  `yaml:"display"`
	Gameplay Gameplay `yaml:"gameplay"`
	Keys     Keys     `yaml:"keys"`
}

// Display describes the drawing surface. The grid size is derived from it:
// rows = (height - status_bar_height) / square_dim, cols = width / square_dim.
type Display struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	SquareDim       int `yaml:"square_dim"`
	StatusBarHeight int `yaml:"status_bar_height"`
	BorderLineWidth int `yaml:"border_line_width"`
	GridLineWidth   int `yaml:"grid_line_width"`
}

// Gameplay defines timing and piece selection.
type Gameplay struct {
	DownTickMS int    `yaml:"down_tick_ms"` // Interval between automatic descents
	Catalog    string `yaml:"catalog"`      // "standard" or "classic"
}

// DownTick returns the automatic descent interval.
func (g Gameplay) DownTick() time.Duration {
	return time.Duration(g.DownTickMS) * time.Millisecond
}

// Keys maps each control to the terminal key names that trigger it.
// Names follow Bubble Tea key strings ("left", "z", "space", ...).
type Keys struct {
	Pause            []string `yaml:"pause"`
	Left             []string `yaml:"left"`
	Right            []string `yaml:"right"`
	Down             []string `yaml:"down"`
	Clockwise        []string `yaml:"clockwise"`
	CounterClockwise []string `yaml:"counterclockwise"`
	Reflect          []string `yaml:"reflect"`
}

// Validate checks that the configuration can drive a game.
// Grid evenness is checked by the game itself when the grid is built.
func (c BlocksConfig) Validate() error {
	d := c.Display
	switch {
	case d.Width <= 0 || d.Height <= 0:
		return fmt.Errorf("%w: display size %dx%d", ErrInvalidConfig, d.Width, d.Height)
	case d.SquareDim <= 0:
		return fmt.Errorf("%w: square_dim %d", ErrInvalidConfig, d.SquareDim)
	case d.StatusBarHeight < 0 || d.StatusBarHeight >= d.Height:
		return fmt.Errorf("%w: status_bar_height %d", ErrInvalidConfig, d.StatusBarHeight)
	}

	if c.Gameplay.DownTickMS <= 0 {
		return fmt.Errorf("%w: down_tick_ms %d", ErrInvalidConfig, c.Gameplay.DownTickMS)
	}
	switch c.Gameplay.Catalog {
	case CatalogStandard, CatalogClassic:
	default:
		return fmt.Errorf("%w: unknown catalog %q", ErrInvalidConfig, c.Gameplay.Catalog)
	}

	for _, b := range c.Keys.bindings() {
		if len(b.keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalidConfig, b.name)
		}
	}
	return nil
}

type namedKeys struct {
	name string
	keys []string
}

// bindings returns the key lists with their YAML names in file order.
func (k Keys) bindings() []namedKeys {
	return []namedKeys{
		{"pause", k.Pause},
		{"left", k.Left},
		{"right", k.Right},
		{"down", k.Down},
		{"clockwise", k.Clockwise},
		{"counterclockwise", k.CounterClockwise},
		{"reflect", k.Reflect},
	}
}
