// Package gui runs Golden Fly in a window (or browser canvas) with Ebitengine.
package gui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/golden-fly/internal/core"
	"github.com/vovakirdan/golden-fly/internal/games/runner"
	"github.com/vovakirdan/golden-fly/internal/platform/gui/scene"
)

// RunStore records finished runs.
type RunStore interface {
	SaveRun(gameID string, score int) (int64, error)
}

// Options configures the window host.
type Options struct {
	Runs     RunStore    // Optional run history
	Logger   *log.Logger // Optional; discards when nil
	Scale    int         // Initial window scale, defaults to 2
	TickRate int         // Updates per second, defaults to 60
}

// App adapts a runner.Game to ebiten.Game.
type App struct {
	game    *runner.Game
	runs    RunStore
	logger  *log.Logger
	palette scene.Palette
	display core.Display
	width   int
	height  int
}

// NewApp wraps game. The game should already be Reset.
func NewApp(game *runner.Game, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	world := game.Config().World
	return &App{
		game:    game,
		runs:    opts.Runs,
		logger:  logger,
		palette: scene.LightPalette(),
		display: WindowDisplay{},
		width:   int(world.Width),
		height:  int(world.Height),
	}
}

// Update reads input and advances the game by one tick.
func (a *App) Update() error {
	in := core.NewInputFrame()
	a.collectInput(&in)

	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if in.Has(core.ActionTheme) {
		a.palette = a.palette.Toggle()
	}
	if in.Has(core.ActionFullscreen) {
		if err := a.display.ToggleFullscreen(); err != nil {
			a.logger.Debug("fullscreen unavailable", "error", err)
		}
	}

	result := a.game.Step(in)
	for _, e := range result.Events {
		switch e.Kind {
		case core.EventCrashed:
			a.logger.Info("run ended", "score", e.Score, "high_score", result.State.HighScore,
				"ticks", a.game.Snapshot().Tick)
			a.recordRun(e.Score)
		case core.EventMilestone:
			a.logger.Debug("milestone", "score", e.Score, "message", e.Text)
		}
	}
	return nil
}

// collectInput maps this frame's key presses, clicks and taps to actions.
func (a *App) collectInput(in *core.InputFrame) {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if action := KeyAction(k); action != core.ActionNone {
			in.Set(action)
		}
	}

	worldW := float64(a.width)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Set(pointerAction(a.game.State(), scene.PointerAction(float64(x), float64(y), worldW)))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		in.Set(pointerAction(a.game.State(), scene.PointerAction(float64(x), float64(y), worldW)))
	}
}

// pointerAction lets a tap also start a run, since touch devices have no Enter key.
func pointerAction(state core.GameState, action core.Action) core.Action {
	if action == core.ActionJump && (state.Run == core.StateNotStarted || state.Run == core.StateOver) {
		return core.ActionStart
	}
	return action
}

// KeyAction maps a key to an action.
func KeyAction(k ebiten.Key) core.Action {
	switch k {
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return core.ActionStart
	case ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW:
		return core.ActionJump
	case ebiten.KeyP:
		return core.ActionPause
	case ebiten.KeyT:
		return core.ActionTheme
	case ebiten.KeyF:
		return core.ActionFullscreen
	case ebiten.KeyQ:
		return core.ActionQuit
	}
	return core.ActionNone
}

func (a *App) recordRun(score int) {
	if a.runs == nil || score <= 0 {
		return
	}
	if _, err := a.runs.SaveRun(a.game.ID(), score); err != nil {
		a.logger.Debug("could not save run", "error", err)
	}
}

// Draw paints the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	frame := scene.Compose(a.game.Snapshot(), a.palette)

	screen.Fill(frame.Background)
	for _, f := range frame.Fills {
		vector.DrawFilledRect(screen,
			float32(f.Box.X), float32(f.Box.Y), float32(f.Box.W), float32(f.Box.H),
			f.Color, false)
	}
	for _, l := range frame.Labels {
		ebitenutil.DebugPrintAt(screen, l.Text, l.X, l.Y)
	}
}

// Layout keeps the logical surface fixed; Ebitengine scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Run opens the window and blocks until it is closed.
func Run(game *runner.Game, opts Options) error {
	app := NewApp(game, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 2
	}
	tps := opts.TickRate
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetWindowSize(app.width*scale, app.height*scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	if err := (WindowDisplay{}).LockOrientation(); err != nil {
		app.logger.Debug("orientation lock unavailable", "error", err)
	}

	return ebiten.RunGame(app)
}

// WindowDisplay controls the Ebitengine window.
type WindowDisplay struct{}

// ToggleFullscreen flips between windowed and fullscreen.
func (WindowDisplay) ToggleFullscreen() error {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
	return nil
}

// LockOrientation is not available to Ebitengine on desktop or web.
func (WindowDisplay) LockOrientation() error {
	return core.ErrUnsupported
}

// Vibrator drives the gamepad or device vibration motor.
type Vibrator struct {
	Magnitude float64
}

// Vibrate starts a vibration of length d. Devices without a motor ignore it.
func (v Vibrator) Vibrate(d time.Duration) error {
	magnitude := v.Magnitude
	if magnitude <= 0 {
		magnitude = 1
	}
	ebiten.Vibrate(&ebiten.VibrateOptions{Duration: d, Magnitude: magnitude})
	return nil
}

var (
	_ core.Display = WindowDisplay{}
	_ core.Haptics = Vibrator{}
	_ ebiten.Game  = (*App)(nil)
)
