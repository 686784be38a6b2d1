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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/golden-fly/internal/core"
)

// Game is the contract between the terminal host and a game.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	// PauseButton returns the clickable pause area for a w x h screen.
	PauseButton(w, h int) core.Rect
}

// RunStore records finished runs.
type RunStore interface {
	SaveRun(gameID string, score int) (int64, error)
}

// Options configures the terminal host.
type Options struct {
	Runs          RunStore    // Optional run history
	Logger        *log.Logger // Optional; discards when nil
	ScreenshotDir string      // Defaults to ~/.goldenfly/screenshots
}

// helpRows is the space reserved under the game for the key help line.
const helpRows = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	runs       RunStore
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	theme      Theme
	inputFrame core.InputFrame
	gameState  core.GameState
	shotDir    string
	ticking    bool // Whether a tick command is in flight
	altScreen  bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset immediately so the first frame can be drawn.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			shotDir = filepath.Join(home, ".goldenfly", "screenshots")
		}
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpRows, 1)),
		runs:       opts.Runs,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		theme:      DarkTheme(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		shotDir:    shotDir,
		ticking:    true, // Init arms the first tick
		altScreen:  true,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleAction(MapMouse(msg, m.game.PauseButton(m.screen.Width(), m.screen.Height())))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m.handleAction(action)
}

// handleAction applies host-level actions directly and queues game actions
// for the next tick, re-arming the tick loop when a suspended game needs it.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionTheme:
		m.theme = m.theme.Toggle()
		return m, nil

	case core.ActionFullscreen:
		m.altScreen = !m.altScreen
		if m.altScreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen
	}

	if m.ticking {
		m.inputFrame.Set(action)
		return m, nil
	}

	// Only start and pause can wake a suspended game.
	if action == core.ActionStart || action == core.ActionPause {
		m.inputFrame.Set(action)
		m.ticking = true
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// handleResize processes window resize events. The world is drawn through
// a viewport, so the run continues at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		m.logEvent(e)
	}
	if result.Has(core.EventCrashed) {
		m.recordRun(result.State.Score)
	}

	// Paused and finished runs don't need frames; input re-arms the loop.
	if result.State.Suspended() {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) logEvent(e core.Event) {
	switch e.Kind {
	case core.EventStarted:
		m.logger.Debug("run started", "game", m.game.ID())
	case core.EventMilestone:
		m.logger.Debug("milestone", "score", e.Score, "message", e.Text)
	case core.EventCrashed:
		m.logger.Info("run ended", "score", e.Score, "high_score", m.gameState.HighScore)
	}
}

// recordRun saves a finished run to history. Empty runs are not recorded.
func (m *Model) recordRun(score int) {
	if m.runs == nil || score <= 0 {
		return
	}
	if _, err := m.runs.SaveRun(m.game.ID(), score); err != nil {
		m.logger.Debug("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if m.shotDir == "" {
		return
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Debug("could not create screenshot dir", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Debug("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// Ticking reports whether the frame loop is currently armed.
func (m Model) Ticking() bool {
	return m.ticking
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen, m.theme) + "\n" + m.theme.Help.Render(m.help.View(m.keys.Keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks jump; the HUD button pauses
	)

	_, err := p.Run()
	return err
}
