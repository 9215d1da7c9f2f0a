// Package blocks implements a falling-block puzzle: pieces drop down a grid,
// can be shifted, rotated and mirrored, and full rows are removed.
//
// The rules live in pure functions over Grid and Status (see Machine.Update);
// Game adapts them to the registry interface, owning the key state and the
// current frame's values.
package blocks

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Variant selects the piece catalog a registered game uses.
type Variant string

const (
	VariantStandard Variant = "blocks"
	VariantClassic  Variant = "blocks_classic"
)

var _ registry.Game = (*Game)(nil)

// Game implements registry.Game for Blocks.
type Game struct {
	variant Variant
	cfg     config.BlocksConfig
	machine *Machine
	keys    *core.KeyPressed
	logger  *log.Logger

	status Status
	grid   Grid
	frames uint64
}

// New creates a Blocks game using the configured catalog.
func New() *Game {
	return &Game{
		variant: VariantStandard,
		logger:  log.New(io.Discard),
	}
}

// NewClassic creates a Blocks game that only drops squares.
func NewClassic() *Game {
	return &Game{
		variant: VariantClassic,
		logger:  log.New(io.Discard),
	}
}

func init() {
	registry.Register(string(VariantStandard), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantClassic), func() registry.Game {
		return NewClassic()
	})
}

// SetLogger routes game events to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Blocks (Classic)"
	}
	return "Blocks"
}

// Reset loads configuration from cfg.ConfigPath and starts a new session on
// the welcome screen.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	settings, err := config.LoadBlocks(cfg.ConfigPath)
	if err != nil {
		return err
	}
	return g.ResetWith(settings, cfg.Seed)
}

// ResetWith starts a new session from explicit settings.
func (g *Game) ResetWith(settings config.BlocksConfig, seed int64) error {
	if g.variant == VariantClassic {
		settings.Gameplay.Catalog = config.CatalogClassic
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	rows, cols, err := GridSize(settings.Display)
	if err != nil {
		return err
	}
	catalog, err := CatalogByName(settings.Gameplay.Catalog)
	if err != nil {
		return err
	}

	rules := DefaultRules(rows, cols)
	rules.TickDuration = settings.Gameplay.DownTick()
	rules.Catalog = catalog

	machine, err := NewMachine(rules, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	g.cfg = settings
	g.machine = machine
	g.keys = core.NewKeyPressed(rules.KeyCodes()...)
	g.status = NewStatus()
	g.grid = machine.NewGame()
	g.frames = 0

	g.logger.Debug("game reset", "game", g.ID(), "rows", rows, "cols", cols, "tick", rules.TickDuration, "seed", seed)
	return nil
}

// started reports whether Reset has built the machine and key table.
func (g *Game) started() bool {
	return g.machine != nil && g.keys != nil
}

// KeyDown records that a key is held. Ignored before Reset.
func (g *Game) KeyDown(code core.KeyCode) {
	if !g.started() {
		return
	}
	g.keys.SetCurrent(code, true)
}

// KeyUp records that a key was released. Ignored before Reset.
func (g *Game) KeyUp(code core.KeyCode) {
	if !g.started() {
		return
	}
	g.keys.SetCurrent(code, false)
}

// Step runs one frame. timeFrame is the time elapsed since the session
// started and must not decrease between calls. Before Reset it does
// nothing.
func (g *Game) Step(timeFrame time.Duration) core.StepResult {
	if !g.started() {
		return core.StepResult{State: g.State()}
	}
	g.frames++
	prev := g.status
	g.status, g.grid = g.machine.Update(g.status, g.grid, g.keys, timeFrame)
	g.logTransition(prev)

	if g.status.IsGameOver && !prev.IsGameOver {
		g.keys.Reset()
	}
	return core.StepResult{
		State:  g.State(),
		Redraw: g.status.ShouldRedraw,
	}
}

// EndFrame makes this frame's key state the previous state for the next.
func (g *Game) EndFrame() {
	if !g.started() {
		return
	}
	g.keys.Advance()
}

func (g *Game) logTransition(prev Status) {
	st := g.status
	if n := st.FinishedRowCount - prev.FinishedRowCount; n > 0 {
		g.logger.Debug("rows cleared", "rows", n, "total", st.FinishedRowCount)
	}
	switch {
	case st.IsGameOver && !prev.IsGameOver:
		g.logger.Info("game over", "lines", st.FinishedRowCount, "frames", g.frames)
	case prev.IsGameOver && !st.IsGameOver:
		g.logger.Info("new game")
	case prev.IsPaused && !st.IsPaused:
		g.logger.Debug("resumed", "at", st.TimeFrame)
	case !prev.IsPaused && st.IsPaused:
		g.logger.Debug("paused", "at", st.TimeFrame)
	}
}

// NeedsRedraw reports whether the next Render would change the picture.
func (g *Game) NeedsRedraw() bool {
	return g.status.ShouldRedraw
}

// State returns the current game state. The score is the number of
// completed lines.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.status.FinishedRowCount,
		GameOver: g.status.IsGameOver,
		Paused:   g.status.IsPaused,
	}
}

// Status returns the current frame state.
func (g *Game) Status() Status {
	return g.status
}

// Grid returns a copy of the current grid.
func (g *Game) Grid() Grid {
	return g.grid.Copy()
}

// Config returns the settings the session was started with.
func (g *Game) Config() config.BlocksConfig {
	return g.cfg
}
