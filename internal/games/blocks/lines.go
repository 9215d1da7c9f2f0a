package blocks

// FullRows returns the indices, top to bottom, of rows with no empty cell.
func FullRows(g Grid) []int {
	var full []int
	for r, row := range g {
		if isFull(row) {
			full = append(full, r)
		}
	}
	return full
}

func isFull(row []Cell) bool {
	for _, cell := range row {
		if cell.Empty() {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above each one down
// by one and leaving empty rows at the top. It returns the new grid and the
// number of rows removed.
func ClearFullRows(g Grid) (Grid, int) {
	full := FullRows(g)
	if len(full) == 0 {
		return g.Copy(), 0
	}

	out := g.Copy()
	for _, fr := range full {
		for r := fr; r > 0; r-- {
			copy(out[r], out[r-1])
		}
		clear(out[0])
	}
	return out, len(full)
}
