package blocks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

// ErrInvalidDimensions is returned when a grid cannot be built from the
// requested size. Both dimensions must be positive and even.
var ErrInvalidDimensions = errors.New("blocks: invalid grid dimensions")

// Cell is a single grid position. An empty cell has KindEmpty; Active marks
// cells belonging to the falling piece.
type Cell struct {
	Kind   ShapeKind
	Active bool
}

// Empty reports whether no shape occupies the cell.
func (c Cell) Empty() bool {
	return c.Kind == KindEmpty
}

// Coord addresses a cell by row (top = 0) and column (left = 0).
type Coord struct {
	Row int
	Col int
}

// Grid is the playfield, indexed [row][col]. Grids are treated as values:
// every transformation returns a new Grid and leaves its input untouched.
type Grid [][]Cell

// EmptyGrid builds a rows x cols grid of empty, inactive cells.
func EmptyGrid(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 || rows%2 != 0 || cols%2 != 0 {
		return nil, fmt.Errorf("%w: %dx%d (rows and cols must be positive and even)", ErrInvalidDimensions, rows, cols)
	}
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]Cell, cols)
	}
	return g, nil
}

// GridSize derives the grid dimensions from display geometry.
func GridSize(d config.Display) (rows, cols int, err error) {
	if d.SquareDim <= 0 {
		return 0, 0, fmt.Errorf("%w: square_dim %d", ErrInvalidDimensions, d.SquareDim)
	}
	playH := d.Height - d.StatusBarHeight
	if playH%d.SquareDim != 0 || d.Width%d.SquareDim != 0 {
		return 0, 0, fmt.Errorf("%w: display %dx%d (status bar %d) is not a multiple of square_dim %d",
			ErrInvalidDimensions, d.Width, d.Height, d.StatusBarHeight, d.SquareDim)
	}
	rows, cols = playH/d.SquareDim, d.Width/d.SquareDim
	if rows <= 0 || cols <= 0 || rows%2 != 0 || cols%2 != 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d (rows and cols must be positive and even)", ErrInvalidDimensions, rows, cols)
	}
	return rows, cols, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether c addresses a cell of the grid.
func (g Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows() && c.Col >= 0 && c.Col < g.Cols()
}

// At returns the cell at c. The coordinate must be in bounds.
func (g Grid) At(c Coord) Cell {
	return g[c.Row][c.Col]
}

// Copy returns a deep copy of the grid.
func (g Grid) Copy() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]Cell(nil), row...)
	}
	return out
}

// DeactivateAll returns a copy with every cell marked inactive, settling the
// falling piece in place.
func DeactivateAll(g Grid) Grid {
	out := g.Copy()
	for r := range out {
		for c := range out[r] {
			out[r][c].Active = false
		}
	}
	return out
}

// String renders the grid one row per line: '.' for empty cells, the kind
// letter for settled cells and its lower case for active ones.
func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			ch := cell.Kind.Rune()
			if cell.Active {
				ch = toLower(ch)
			}
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
