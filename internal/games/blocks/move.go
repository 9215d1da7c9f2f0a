package blocks

// Action is a player or gravity move applied to the falling piece.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionDown
	ActionClockwise
	ActionCounterClockwise
	ActionReflect
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionDown:
		return "down"
	case ActionClockwise:
		return "clockwise"
	case ActionCounterClockwise:
		return "counterclockwise"
	case ActionReflect:
		return "reflect"
	default:
		return "unknown"
	}
}

// Spawn places p at the top of the grid, horizontally centered, as the new
// active piece. Only filled template entries are written. If any of them
// would land out of bounds or on an occupied cell, Spawn reports false and
// returns g unchanged.
func Spawn(g Grid, p Piece) (Grid, bool) {
	out := g.Copy()
	startCol := g.Cols()/2 - p.Cols()/2
	for r, row := range p {
		for c, kind := range row {
			if kind == KindEmpty {
				continue
			}
			at := Coord{Row: r, Col: startCol + c}
			if !out.InBounds(at) || !out.At(at).Empty() {
				return g, false
			}
			out[at.Row][at.Col] = Cell{Kind: kind, Active: true}
		}
	}
	return out, true
}

// ActiveCoords lists the cells of the falling piece in row-major order.
func ActiveCoords(g Grid) []Coord {
	var coords []Coord
	for r, row := range g {
		for c, cell := range row {
			if cell.Active {
				coords = append(coords, Coord{Row: r, Col: c})
			}
		}
	}
	return coords
}

// TargetCoords computes where the cells would go under action a. The result
// is index-aligned with old and is not bounds checked.
func TargetCoords(old []Coord, a Action) []Coord {
	switch a {
	case ActionLeft:
		return translate(old, 0, -1)
	case ActionRight:
		return translate(old, 0, 1)
	case ActionDown:
		return translate(old, 1, 0)
	case ActionCounterClockwise:
		return rotateCounterClockwise(old)
	case ActionClockwise:
		out := old
		for range 3 {
			out = rotateCounterClockwise(out)
		}
		return out
	case ActionReflect:
		return mirror(old)
	default:
		return append([]Coord(nil), old...)
	}
}

func translate(old []Coord, dRow, dCol int) []Coord {
	out := make([]Coord, len(old))
	for i, c := range old {
		out[i] = Coord{Row: c.Row + dRow, Col: c.Col + dCol}
	}
	return out
}

// rotateCounterClockwise turns the cells a quarter turn inside their bounding
// box, anchored at its top-left corner. One-row and one-column shapes are
// nudged a column so that a straight piece pivots instead of sliding.
func rotateCounterClockwise(old []Coord) []Coord {
	if len(old) == 0 {
		return nil
	}
	minRow, maxRow, minCol, maxCol := bounds(old)
	out := make([]Coord, len(old))
	for i, c := range old {
		next := Coord{
			Row: minRow + (maxCol - minCol) - (c.Col - minCol),
			Col: minCol + (c.Row - minRow),
		}
		if minRow == maxRow {
			next.Col++
		} else if minCol == maxCol {
			next.Col--
		}
		out[i] = next
	}
	return out
}

// mirror reflects the cells around the vertical axis of their bounding box.
func mirror(old []Coord) []Coord {
	if len(old) == 0 {
		return nil
	}
	_, _, minCol, maxCol := bounds(old)
	out := make([]Coord, len(old))
	for i, c := range old {
		out[i] = Coord{Row: c.Row, Col: maxCol - c.Col + minCol}
	}
	return out
}

func bounds(coords []Coord) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = coords[0].Row, coords[0].Row
	minCol, maxCol = coords[0].Col, coords[0].Col
	for _, c := range coords[1:] {
		minRow = min(minRow, c.Row)
		maxRow = max(maxRow, c.Row)
		minCol = min(minCol, c.Col)
		maxCol = max(maxCol, c.Col)
	}
	return minRow, maxRow, minCol, maxCol
}

// ApplyMove moves the active cells at old to next. The move is allowed when
// every target is in bounds and either empty or part of the falling piece.
// On success the old cells are cleared and the targets take the piece's
// kind; otherwise g is returned unchanged with false.
func ApplyMove(g Grid, old, next []Coord) (Grid, bool) {
	for _, c := range next {
		if !g.InBounds(c) {
			return g, false
		}
		if cell := g.At(c); !cell.Active && !cell.Empty() {
			return g, false
		}
	}
	if len(old) == 0 {
		return g.Copy(), true
	}

	kind := g.At(old[0]).Kind
	out := g.Copy()
	for _, c := range old {
		out[c.Row][c.Col] = Cell{}
	}
	for _, c := range next {
		out[c.Row][c.Col] = Cell{Kind: kind, Active: true}
	}
	return out, true
}

// MoveActivePiece applies action a to the falling piece.
func MoveActivePiece(g Grid, a Action) (Grid, bool) {
	old := ActiveCoords(g)
	return ApplyMove(g, old, TargetCoords(old, a))
}
