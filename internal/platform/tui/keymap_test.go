package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDefaults(t *testing.T) {
	km := NewKeyMap(config.DefaultBlocksConfig().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.KeyCode
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeySpace},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeftArrow},
		{"h", runeKey('h'), core.KeyLeftArrow},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRightArrow},
		{"l", runeKey('l'), core.KeyRightArrow},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDownArrow},
		{"c", runeKey('c'), core.KeyC},
		{"z", runeKey('z'), core.KeyZ},
		{"x", runeKey('x'), core.KeyX},
		{"quit", runeKey('q'), core.KeyNone},
		{"unbound", runeKey('m'), core.KeyNone},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.KeyCode(tt.msg); got != tt.want {
				t.Errorf("KeyCode(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapCustom(t *testing.T) {
	keys := config.DefaultBlocksConfig().Keys
	keys.Pause = []string{"p"}
	keys.Reflect = []string{"r", "up"}
	km := NewKeyMap(keys)

	if got := km.KeyCode(runeKey('p')); got != core.KeySpace {
		t.Errorf("KeyCode(p) = %v, expected Space", got)
	}
	if got := km.KeyCode(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}); got != core.KeyNone {
		t.Errorf("KeyCode(space) = %v, expected None after rebinding pause", got)
	}
	if got := km.KeyCode(tea.KeyMsg{Type: tea.KeyUp}); got != core.KeyX {
		t.Errorf("KeyCode(up) = %v, expected X", got)
	}
}

func TestKeyMapQuitWins(t *testing.T) {
	keys := config.DefaultBlocksConfig().Keys
	keys.Left = []string{"q"}
	km := NewKeyMap(keys)
	if got := km.KeyCode(runeKey('q')); got != core.KeyNone {
		t.Errorf("KeyCode(q) = %v, expected None", got)
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(config.DefaultBlocksConfig().Keys)
	if got := km.Pause.Help().Key; got != "space" {
		t.Errorf("Pause help key = %q, expected space", got)
	}
	if got := km.Left.Help().Key; got != "left/h" {
		t.Errorf("Left help key = %q, expected left/h", got)
	}
	if n := len(km.FullHelp()); n != 3 {
		t.Errorf("len(FullHelp()) = %d, expected 3", n)
	}
}
