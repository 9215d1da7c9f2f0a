package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

// KeyMap defines the terminal bindings for playing a game.
// Game controls come from configuration; Quit, Screenshot and Help are fixed.
type KeyMap struct {
	Pause            key.Binding
	Left             key.Binding
	Right            key.Binding
	Down             key.Binding
	Clockwise        key.Binding
	CounterClockwise key.Binding
	Reflect          key.Binding
	Screenshot       key.Binding
	Help             key.Binding
	Quit             key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(keys config.Keys) KeyMap {
	return KeyMap{
		Pause:            binding(keys.Pause, "pause"),
		Left:             binding(keys.Left, "left"),
		Right:            binding(keys.Right, "right"),
		Down:             binding(keys.Down, "down"),
		Clockwise:        binding(keys.Clockwise, "rotate cw"),
		CounterClockwise: binding(keys.CounterClockwise, "rotate ccw"),
		Reflect:          binding(keys.Reflect, "reflect"),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// binding creates a key binding. "space" also matches the literal " " that
// Bubble Tea reports for the space bar.
func binding(names []string, desc string) key.Binding {
	keys := make([]string, 0, len(names)+1)
	labels := make([]string, 0, len(names))
	for _, n := range names {
		switch n {
		case "space", " ":
			keys = append(keys, " ", "space")
			labels = append(labels, "space")
		default:
			keys = append(keys, n)
			labels = append(labels, n)
		}
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// KeyCode returns the game key code bound to msg, or core.KeyNone.
// Quit, Screenshot and Help take precedence over game controls.
func (k KeyMap) KeyCode(msg tea.KeyMsg) core.KeyCode {
	switch {
	case key.Matches(msg, k.Quit, k.Screenshot, k.Help):
		return core.KeyNone
	case key.Matches(msg, k.Pause):
		return core.KeySpace
	case key.Matches(msg, k.Left):
		return core.KeyLeftArrow
	case key.Matches(msg, k.Right):
		return core.KeyRightArrow
	case key.Matches(msg, k.Down):
		return core.KeyDownArrow
	case key.Matches(msg, k.Clockwise):
		return core.KeyC
	case key.Matches(msg, k.CounterClockwise):
		return core.KeyZ
	case key.Matches(msg, k.Reflect):
		return core.KeyX
	default:
		return core.KeyNone
	}
}

// ShortHelp returns bindings for the compact help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Left, k.Right, k.Down, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped in columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Left, k.Right, k.Down},
		{k.Clockwise, k.CounterClockwise, k.Reflect},
		{k.Screenshot, k.Help, k.Quit},
	}
}
