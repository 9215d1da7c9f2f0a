package blocks

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Each grid cell is drawn two characters wide so squares look square.
const cellW = 2

// frameRunes is a set of box-drawing characters for the board frame.
type frameRunes struct {
	h, v           rune
	tl, tr, bl, br rune
	lt, rt         rune // separator ends
}

var (
	lightFrame = frameRunes{'─', '│', '┌', '┐', '└', '┘', '├', '┤'}
	heavyFrame = frameRunes{'━', '┃', '┏', '┓', '┗', '┛', '┣', '┫'}
)

// boardSize returns the character size of the framed board: the grid, the
// status line and three frame rows.
func boardSize(rows, cols int) (w, h int) {
	return cols*cellW + 2, rows + 4
}

// ScreenSize returns the smallest screen that fits the board and the pause
// box.
func (g *Game) ScreenSize() (w, h int) {
	w, h = boardSize(g.grid.Rows(), g.grid.Cols())
	ow, oh := overlaySize(g.PauseText())
	return max(w, ow), max(h, oh)
}

// Render draws the board, the status line and, while paused, the pause box.
// Drawing the pause box satisfies the pending redraw.
func (g *Game) Render(dst *core.Screen) {
	w, h := boardSize(g.grid.Rows(), g.grid.Cols())
	board := dst.Bounds().Centered(w, h)

	g.renderFrame(dst, board)
	g.renderGrid(dst, board)
	g.renderStatusBar(dst, board)

	if g.status.IsPaused {
		renderOverlay(dst, board, g.PauseText())
		g.status.ShouldRedraw = false
	}
}

func (g *Game) frame() frameRunes {
	if g.cfg.Display.BorderLineWidth > 2 {
		return heavyFrame
	}
	return lightFrame
}

// renderFrame draws the outer border and the line above the status bar.
func (g *Game) renderFrame(dst *core.Screen, r core.Rect) {
	f := g.frame()
	right, bottom := r.Right()-1, r.Bottom()-1
	sep := bottom - 2

	for x := r.X + 1; x < right; x++ {
		dst.Set(x, r.Y, f.h)
		dst.Set(x, sep, f.h)
		dst.Set(x, bottom, f.h)
	}
	for y := r.Y + 1; y < bottom; y++ {
		dst.Set(r.X, y, f.v)
		dst.Set(right, y, f.v)
	}
	dst.Set(r.X, r.Y, f.tl)
	dst.Set(right, r.Y, f.tr)
	dst.Set(r.X, bottom, f.bl)
	dst.Set(right, bottom, f.br)
	dst.Set(r.X, sep, f.lt)
	dst.Set(right, sep, f.rt)
}

func (g *Game) renderGrid(dst *core.Screen, r core.Rect) {
	dots := g.cfg.Display.GridLineWidth > 0
	for row, cells := range g.grid {
		y := r.Y + 1 + row
		for col, cell := range cells {
			x := r.X + 1 + col*cellW
			switch {
			case !cell.Empty():
				dst.SetColor(x, y, '█', cell.Kind.Color())
				dst.SetColor(x+1, y, '█', cell.Kind.Color())
			case dots:
				dst.SetColor(x, y, '·', core.ColorDim)
			}
		}
	}
}

func (g *Game) renderStatusBar(dst *core.Screen, r core.Rect) {
	dst.DrawTextCenteredIn(r, r.Bottom()-2, StatusText(g.status))
}

// overlaySize returns the pause box size for the given lines.
func overlaySize(lines []string) (w, h int) {
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	return w + 4, len(lines) + 2
}

// renderOverlay draws a bordered box of left-aligned lines centered on the
// playing area of the board.
func renderOverlay(dst *core.Screen, board core.Rect, lines []string) {
	w, h := overlaySize(lines)
	play := core.NewRect(board.X, board.Y, board.W, board.H-2)
	box := play.Centered(w, h)
	box.X = core.Clamp(box.X, 0, max(0, dst.Width()-w))
	box.Y = max(box.Y, 0)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawText(box.X+2, box.Y+1+i, l)
	}
}

// StatusText returns the status bar line.
func StatusText(st Status) string {
	return fmt.Sprintf("Lines completed: %d", st.FinishedRowCount)
}

// PauseText returns the lines of the pause box for the current phase,
// followed by the controls.
func (g *Game) PauseText() []string {
	return PauseText(g.status, g.cfg.Keys)
}

// PauseText returns the pause box lines for st.
func PauseText(st Status, keys config.Keys) []string {
	var header []string
	switch {
	case st.IsFirstRun:
		header = []string{"Welcome to Blocks!", "Press " + keyLabel(first(keys.Pause)) + " to unpause and begin.", ""}
	case st.IsGameOver:
		header = []string{"Game over!", "Press " + keyLabel(first(keys.Pause)) + " to play again.", ""}
	default:
		header = []string{"Paused!", ""}
	}
	return append(header, ControlsText(keys)...)
}

// ControlsText describes the key bindings, naming the first key of each.
func ControlsText(keys config.Keys) []string {
	left, right, down := first(keys.Left), first(keys.Right), first(keys.Down)
	move := keyLabel(left) + "/" + keyLabel(right) + "/" + keyLabel(down)
	if left == "left" && right == "right" && down == "down" {
		move = "left/right/down arrow"
	}
	return []string{
		"-Controls-",
		"Pause/unpause: " + keyLabel(first(keys.Pause)),
		"Move block: " + move,
		"Rotate counterclockwise: " + keyLabel(first(keys.CounterClockwise)),
		"Reflect around y-axis: " + keyLabel(first(keys.Reflect)),
		"Rotate clockwise: " + keyLabel(first(keys.Clockwise)),
	}
}

func first(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// keyLabel formats a key name for display: "<space>", "'z'", "<left>".
func keyLabel(k string) string {
	switch {
	case k == "space" || k == " ":
		return "<space>"
	case len([]rune(k)) == 1:
		return "'" + k + "'"
	case k == "":
		return "<none>"
	default:
		return "<" + strings.ToLower(k) + ">"
	}
}
