package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Options configures a play session.
type Options struct {
	Keys          config.Keys // Terminal key names per control
	Logger        *log.Logger // Defaults to discarding output
	ScreenshotDir string      // Defaults to ~/.blocks/screenshots
}

// loggerSetter is implemented by games that report events.
type loggerSetter interface {
	SetLogger(l *log.Logger)
}

// Model is the Bubble Tea model for running a game.
//
// Terminals only report key presses, so every key pressed during a frame is
// released again right after the game has stepped. The game still sees each
// press exactly once.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	screenshotDir string

	start     time.Time      // Time of the first frame
	pending   []core.KeyCode // Keys pressed since the last frame
	gameState core.GameState
	termW     int
	termH     int
	showHelp  bool
	dirty     bool   // Screen must be repainted regardless of the game
	view      string // Last rendered frame
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The game must already be Reset.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		keys:          NewKeyMap(opts.Keys),
		help:          help.New(),
		logger:        logger,
		screenshotDir: opts.ScreenshotDir,
		gameState:     game.State(),
	}
	m.layout(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout(m.termW, m.termH)
		return m, nil
	}

	if code := m.keys.KeyCode(msg); code != core.KeyNone {
		m.game.KeyDown(code)
		m.pending = append(m.pending, code)
	}
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.start.IsZero() {
		m.start = now
	}

	result := m.game.Step(now.Sub(m.start))
	for _, code := range m.pending {
		m.game.KeyUp(code)
	}
	m.pending = m.pending[:0]
	m.game.EndFrame()
	m.gameState = result.State

	if result.Redraw || m.dirty || m.view == "" {
		m.draw()
	}

	return m, tickCmd(m.config.TickRate)
}

// layout sizes the screen buffer for a w×h terminal, keeping room for the
// help footer when the game still fits.
func (m *Model) layout(w, h int) {
	m.termW, m.termH = w, h
	m.help.Width = w

	_, gameH := m.game.ScreenSize()
	helpH := lipgloss.Height(m.help.View(m.keys))
	m.showHelp = h-helpH >= gameH
	if m.showHelp {
		h -= helpH
	}

	m.screen.Resize(max(w, 0), max(h, 0))
	m.dirty = true
}

// draw repaints the screen buffer and caches the styled frame.
func (m *Model) draw() {
	m.screen.Clear()

	gameW, gameH := m.game.ScreenSize()
	if m.screen.Width() < gameW || m.screen.Height() < gameH {
		b := m.screen.Bounds()
		m.screen.DrawTextCenteredIn(b, b.H/2-1, "Window too small")
		m.screen.DrawTextCenteredIn(b, b.H/2, fmt.Sprintf("need %dx%d", gameW, gameH))
	} else {
		m.game.Render(m.screen)
	}

	m.view = RenderScreen(m.screen)
	m.dirty = false
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	dir := m.screenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".blocks", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("cannot create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.showHelp {
		return m.view
	}
	return m.view + "\n" + m.help.View(m.keys)
}

// Run resets the game and drives it until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if opts.Logger != nil {
		if ls, ok := game.(loggerSetter); ok {
			ls.SetLogger(opts.Logger.With("game", game.ID()))
		}
	}
	if err := game.Reset(cfg); err != nil {
		return fmt.Errorf("tui: cannot start %s: %w", game.ID(), err)
	}

	model := NewModel(game, cfg, opts)
	model.logger.Info("session started", "game", game.ID(), "seed", cfg.Seed, "fps", cfg.TickRate)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	if fm, ok := final.(Model); ok {
		model.logger.Info("session ended", "game", game.ID(), "score", fm.gameState.Score, "game_over", fm.gameState.GameOver)
	}
	return nil
}
