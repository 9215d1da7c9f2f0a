package blocks

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// DefaultTickDuration is the automatic descent interval.
const DefaultTickDuration = 500 * time.Millisecond

// KeyBinding maps a key to the action it triggers.
type KeyBinding struct {
	Key    core.KeyCode
	Action Action
}

// DefaultActionKeys returns the action bindings in priority order: when
// several keys are newly pressed in one frame, only the first is applied.
func DefaultActionKeys() []KeyBinding {
	return []KeyBinding{
		{Key: core.KeyLeftArrow, Action: ActionLeft},
		{Key: core.KeyRightArrow, Action: ActionRight},
		{Key: core.KeyDownArrow, Action: ActionDown},
		{Key: core.KeyC, Action: ActionClockwise},
		{Key: core.KeyZ, Action: ActionCounterClockwise},
		{Key: core.KeyX, Action: ActionReflect},
	}
}

// Rules fixes everything about a game that does not change while playing.
type Rules struct {
	Rows         int
	Cols         int
	TickDuration time.Duration
	Catalog      Catalog
	PauseKey     core.KeyCode
	ActionKeys   []KeyBinding
}

// DefaultRules returns rules for a rows x cols board with the standard
// catalog and key bindings.
func DefaultRules(rows, cols int) Rules {
	return Rules{
		Rows:         rows,
		Cols:         cols,
		TickDuration: DefaultTickDuration,
		Catalog:      StandardCatalog(),
		PauseKey:     core.KeySpace,
		ActionKeys:   DefaultActionKeys(),
	}
}

// KeyCodes returns every key the rules react to.
func (r Rules) KeyCodes() []core.KeyCode {
	codes := []core.KeyCode{r.PauseKey}
	for _, b := range r.ActionKeys {
		codes = append(codes, b.Key)
	}
	return codes
}

// Machine runs the frame-by-frame game logic. The only state it holds is the
// piece RNG; everything else travels through Status and Grid.
type Machine struct {
	rules Rules
	rng   *rand.Rand
}

// NewMachine validates the rules and returns a machine drawing pieces from
// rng.
func NewMachine(rules Rules, rng *rand.Rand) (*Machine, error) {
	if _, err := EmptyGrid(rules.Rows, rules.Cols); err != nil {
		return nil, err
	}
	if len(rules.Catalog) == 0 {
		return nil, errors.New("blocks: empty catalog")
	}
	if pr, pc := rules.Catalog.MaxSize(); pr > rules.Rows || pc > rules.Cols {
		return nil, fmt.Errorf("%w: %dx%d grid cannot fit a %dx%d piece", ErrInvalidDimensions, rules.Rows, rules.Cols, pr, pc)
	}
	if rules.TickDuration <= 0 {
		rules.TickDuration = DefaultTickDuration
	}
	return &Machine{rules: rules, rng: rng}, nil
}

// Rules returns the rules the machine was built with.
func (m *Machine) Rules() Rules {
	return m.rules
}

// NewGame returns an empty grid holding a freshly spawned piece.
func (m *Machine) NewGame() Grid {
	g, _ := EmptyGrid(m.rules.Rows, m.rules.Cols)
	g, _ = Spawn(g, Pick(m.rng, m.rules.Catalog))
	return g
}

// Update runs one frame at timeFrame. Keys are only read; advancing them is
// up to the caller once the frame is done.
//
// Frame order: pause toggle; restart if a finished game was just unpaused;
// otherwise the first newly pressed action key in priority order, then the
// automatic descent when more than TickDuration has passed since the last
// one. A game that ends during the frame is left paused.
func (m *Machine) Update(st Status, g Grid, keys *core.KeyPressed, timeFrame time.Duration) (Status, Grid) {
	st.TimeFrame = timeFrame
	st = m.togglePause(st, keys)
	if st.IsPaused {
		return st, g
	}

	if st.IsGameOver {
		st.IsGameOver = false
		st.FinishedRowCount = 0
		return st, m.NewGame()
	}

	g = m.applyActionKeys(g, keys)

	if st.TimeFrame > st.LastDownTick+m.rules.TickDuration {
		st.LastDownTick = st.TimeFrame
		st, g = m.downTick(st, g)
	}

	if st.IsGameOver {
		st.IsPaused = true
		st.ShouldResetLastDownTick = true
		st.ShouldRedraw = true
	}
	return st, g
}

func (m *Machine) togglePause(st Status, keys *core.KeyPressed) Status {
	if !keys.IsNewlyPressed(m.rules.PauseKey) {
		return st
	}
	if !st.IsPaused {
		st.IsPaused = true
		return st
	}

	st.IsPaused = false
	st.IsFirstRun = false
	st.ShouldRedraw = true
	if st.ShouldResetLastDownTick {
		st.LastDownTick = st.TimeFrame
		st.ShouldResetLastDownTick = false
	}
	return st
}

func (m *Machine) applyActionKeys(g Grid, keys *core.KeyPressed) Grid {
	for _, b := range m.rules.ActionKeys {
		if keys.IsNewlyPressed(b.Key) {
			next, _ := MoveActivePiece(g, b.Action)
			return next
		}
	}
	return g
}

// downTick drops the piece one row. A piece that cannot drop settles, full
// rows are cleared and the next piece spawns; if it has no room the game is
// over.
func (m *Machine) downTick(st Status, g Grid) (Status, Grid) {
	if next, ok := MoveActivePiece(g, ActionDown); ok {
		return st, next
	}

	cleared, n := ClearFullRows(DeactivateAll(g))
	st.FinishedRowCount += n

	next, ok := Spawn(cleared, Pick(m.rng, m.rules.Catalog))
	if !ok {
		st.IsGameOver = true
	}
	return st, next
}
