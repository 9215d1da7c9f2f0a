package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func sendMenu(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	view := m.View()
	for _, want := range []string{"Blocks", "Blocks (Classic)", "Select a game"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown}) // clamped at the last item
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("Selected() = nil after enter")
	}
	if sel.GameID != "blocks_classic" {
		t.Errorf("Selected().GameID = %q, expected blocks_classic", sel.GameID)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m = sendMenu(m, runeKey('q'))
	if !m.IsQuitting() || m.Selected() != nil {
		t.Errorf("quitting=%v selected=%v, expected quit without selection", m.IsQuitting(), m.Selected())
	}
	if m.View() != "" {
		t.Error("View() after quit is not empty")
	}
}
