package blocks

import "time"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Frames       uint64
	Rows         int
	Cols         int
	Lines        int
	Phase        Phase
	ActiveKind   ShapeKind
	Active       []Coord
	Settled      int // Number of occupied cells not in the falling piece
	LastDownTick time.Duration
	Board        string // Grid.String of the current grid
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	active := ActiveCoords(g.grid)
	kind := KindEmpty
	if len(active) > 0 {
		kind = g.grid.At(active[0]).Kind
	}

	settled := 0
	for _, row := range g.grid {
		for _, cell := range row {
			if !cell.Empty() && !cell.Active {
				settled++
			}
		}
	}

	return Snapshot{
		Frames:       g.frames,
		Rows:         g.grid.Rows(),
		Cols:         g.grid.Cols(),
		Lines:        g.status.FinishedRowCount,
		Phase:        g.status.Phase(),
		ActiveKind:   kind,
		Active:       active,
		Settled:      settled,
		LastDownTick: g.status.LastDownTick,
		Board:        g.grid.String(),
	}
}
