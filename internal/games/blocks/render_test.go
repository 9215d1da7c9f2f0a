package blocks

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

func renderGame(g *Game) *core.Screen {
	w, h := g.ScreenSize()
	screen := core.NewScreen(w, h)
	g.Render(screen)
	return screen
}

func TestScreenSize(t *testing.T) {
	g := newTestGame(t, 1)
	w, h := g.ScreenSize()
	// 10 columns two characters wide plus the frame; the welcome box is wider.
	if w != 39 || h != 24 {
		t.Errorf("ScreenSize() = %dx%d, expected 39x24", w, h)
	}
}

func TestRenderWelcome(t *testing.T) {
	g := newTestGame(t, 1)
	out := renderGame(g).String()

	for _, want := range []string{"Welcome to Blocks!", "Press <space> to unpause and begin.", "-Controls-", "Lines completed: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
	if g.NeedsRedraw() {
		t.Error("NeedsRedraw() = true after drawing the pause box")
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, 1)
	tap(g, core.KeySpace, frame)
	screen := renderGame(g)
	out := screen.String()

	if strings.Contains(out, "Welcome") || strings.Contains(out, "-Controls-") {
		t.Errorf("Render() shows the pause box while playing:\n%s", out)
	}
	if got := strings.Count(out, "█"); got != 8 {
		t.Errorf("Render() drew %d block characters, expected 8", got)
	}
	if !g.NeedsRedraw() {
		t.Error("NeedsRedraw() = false while playing")
	}

	// The falling piece is drawn in its kind's color.
	kind := g.Snapshot().ActiveKind
	found := false
	for y := range screen.Height() {
		for x := range screen.Width() {
			if c := screen.GetCell(x, y); c.Rune == '█' {
				found = true
				if c.Color != kind.Color() {
					t.Fatalf("cell (%d,%d) color = %v, expected %v", x, y, c.Color, kind.Color())
				}
			}
		}
	}
	if !found {
		t.Error("no block cells rendered")
	}
}

func TestRenderFrame(t *testing.T) {
	g := newTestGame(t, 1)
	tap(g, core.KeySpace, frame)
	screen := core.NewScreen(22, 24)
	g.Render(screen)

	if got := screen.Get(0, 0); got != '┏' {
		t.Errorf("top-left = %q, expected heavy corner", got)
	}
	if got := screen.Get(0, 21); got != '┣' {
		t.Errorf("separator = %q, expected heavy tee", got)
	}
	if got := screen.Row(22); !strings.Contains(got, "Lines completed: 0") {
		t.Errorf("status row = %q", got)
	}
	if got := screen.GetCell(1, 20); got.Rune != '·' || got.Color != core.ColorDim {
		t.Errorf("empty cell = %+v, expected dim dot", got)
	}
}

func TestPauseText(t *testing.T) {
	keys := config.DefaultBlocksConfig().Keys
	controls := []string{
		"-Controls-",
		"Pause/unpause: <space>",
		"Move block: left/right/down arrow",
		"Rotate counterclockwise: 'z'",
		"Reflect around y-axis: 'x'",
		"Rotate clockwise: 'c'",
	}
	if got := ControlsText(keys); !reflect.DeepEqual(got, controls) {
		t.Errorf("ControlsText() = %q, expected %q", got, controls)
	}

	tests := []struct {
		name   string
		status Status
		header []string
	}{
		{"welcome", NewStatus(), []string{"Welcome to Blocks!", "Press <space> to unpause and begin.", ""}},
		{"game over", Status{IsGameOver: true, IsPaused: true}, []string{"Game over!", "Press <space> to play again.", ""}},
		{"paused", Status{IsPaused: true}, []string{"Paused!", ""}},
	}
	for _, tt := range tests {
		want := append(append([]string(nil), tt.header...), controls...)
		if got := PauseText(tt.status, keys); !reflect.DeepEqual(got, want) {
			t.Errorf("PauseText(%s) = %q, expected %q", tt.name, got, want)
		}
	}
}

func TestControlsTextCustomKeys(t *testing.T) {
	keys := config.DefaultBlocksConfig().Keys
	keys.Left = []string{"h"}
	keys.Right = []string{"l"}
	keys.Down = []string{"j"}
	keys.Pause = []string{"p"}

	got := ControlsText(keys)
	if got[1] != "Pause/unpause: 'p'" {
		t.Errorf("pause line = %q", got[1])
	}
	if got[2] != "Move block: 'h'/'l'/'j'" {
		t.Errorf("move line = %q", got[2])
	}
}

func TestStatusText(t *testing.T) {
	if got := StatusText(Status{FinishedRowCount: 12}); got != "Lines completed: 12" {
		t.Errorf("StatusText() = %q", got)
	}
}
