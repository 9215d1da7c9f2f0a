package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// palette holds the ANSI 256 codes for every non-default core.Color.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:         "1",
	core.ColorMagenta:     "5",
	core.ColorCyan:        "6",
	core.ColorBrightGreen: "10",
	core.ColorGray:        "245",
	core.ColorDim:         "238",
}

var plain = lipgloss.NewStyle()

func styleFor(c core.Color) lipgloss.Style {
	code, ok := palette[c]
	if !ok {
		return plain
	}
	return lipgloss.NewStyle().Foreground(code)
}

// RenderScreen converts a Screen to a styled string, one line per row.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		lines[y] = renderRow(s, y)
	}
	return strings.Join(lines, "\n")
}

// renderRow styles one row, emitting a single styled segment per run of
// equally colored cells.
func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	var run []rune
	color := core.ColorDefault

	flush := func() {
		if len(run) == 0 {
			return
		}
		sb.WriteString(styleFor(color).Render(string(run)))
		run = run[:0]
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			flush()
			color = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
	return sb.String()
}
