package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/golden-fly/internal/core"
	"github.com/vovakirdan/golden-fly/internal/games/runner"
)

// fakeGame records the actions it receives and follows a minimal
// start/pause state machine.
type fakeGame struct {
	state  core.GameState
	steps  [][]core.Action
	next   []core.Event
	resets int
}

func (g *fakeGame) ID() string                     { return "fake" }
func (g *fakeGame) Title() string                  { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig)       { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen)        { dst.Clear(); dst.DrawText(0, 0, "fake", core.ColorHUD) }
func (g *fakeGame) State() core.GameState          { return g.state }
func (g *fakeGame) PauseButton(w, h int) core.Rect { return core.NewRect(w-8, 0, 8, 1) }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	var actions []core.Action
	for a, on := range in.Actions {
		if on {
			actions = append(actions, a)
		}
	}
	g.steps = append(g.steps, actions)

	switch {
	case in.Has(core.ActionPause) && g.state.Run == core.StateRunning:
		g.state.Run = core.StatePaused
	case in.Has(core.ActionPause) && g.state.Run == core.StatePaused:
		g.state.Run = core.StateRunning
	case in.Has(core.ActionStart) && g.state.Run != core.StateRunning:
		g.state.Run = core.StateRunning
	}

	events := g.next
	g.next = nil
	return core.StepResult{State: g.state, Events: events}
}

func (g *fakeGame) lastStep() []core.Action {
	if len(g.steps) == 0 {
		return nil
	}
	return g.steps[len(g.steps)-1]
}

type fakeRuns struct {
	saved []int
}

func (r *fakeRuns) SaveRun(_ string, score int) (int64, error) {
	r.saved = append(r.saved, score)
	return int64(len(r.saved)), nil
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 90, ScreenH: 41, TickRate: 60, Seed: 1}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// send delivers msg and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestNewModelResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), Options{})

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if m.screen.Width() != 90 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 90x40 (one row for help)", m.screen.Width(), m.screen.Height())
	}
	if !m.Ticking() || m.Init() == nil {
		t.Error("model should start with the tick loop armed")
	}
}

func TestModelSuspendsWhilePaused(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := send(t, m, TickMsg{})
	if g.state.Run != core.StateRunning || cmd == nil {
		t.Fatal("running game should schedule the next tick")
	}

	m, _ = send(t, m, runeKey('p'))
	m, cmd = send(t, m, TickMsg{})
	if g.state.Run != core.StatePaused {
		t.Fatal("pause key should pause the game")
	}
	if cmd != nil || m.Ticking() {
		t.Error("paused game should stop the tick loop")
	}
}

func TestModelWakesOnlyForStartOrPause(t *testing.T) {
	g := &fakeGame{state: core.GameState{Run: core.StatePaused}}
	m := NewModel(g, testConfig(), Options{})
	m.ticking = false

	m, cmd := send(t, m, runeKey(' '))
	if cmd != nil || m.Ticking() {
		t.Error("jump should not wake a suspended game")
	}

	m, cmd = send(t, m, runeKey('p'))
	if cmd == nil || !m.Ticking() {
		t.Fatal("pause should re-arm the tick loop")
	}

	m, _ = send(t, m, TickMsg{})
	step := g.lastStep()
	if len(step) != 1 || step[0] != core.ActionPause {
		t.Errorf("step actions = %v, expected only Pause", step)
	}
	if g.state.Run != core.StateRunning {
		t.Error("game should have resumed")
	}
}

func TestModelRecordsFinishedRuns(t *testing.T) {
	g := &fakeGame{state: core.GameState{Run: core.StateRunning}}
	runs := &fakeRuns{}
	m := NewModel(g, testConfig(), Options{Runs: runs})

	g.state = core.GameState{Run: core.StateOver, Score: 5}
	g.next = []core.Event{{Kind: core.EventCrashed, Score: 5}}
	m, cmd := send(t, m, TickMsg{})

	if cmd != nil {
		t.Error("finished run should stop the tick loop")
	}
	if len(runs.saved) != 1 || runs.saved[0] != 5 {
		t.Errorf("saved runs = %v, expected [5]", runs.saved)
	}

	// Empty runs are not recorded.
	g.state = core.GameState{Run: core.StateOver}
	g.next = []core.Event{{Kind: core.EventCrashed}}
	send(t, m, TickMsg{})
	if len(runs.saved) != 1 {
		t.Errorf("zero-score run should not be saved, got %v", runs.saved)
	}
}

func TestModelMouse(t *testing.T) {
	g := &fakeGame{state: core.GameState{Run: core.StateRunning}}
	m := NewModel(g, testConfig(), Options{})

	m, _ = send(t, m, tea.MouseMsg{X: 10, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.inputFrame.Has(core.ActionJump) {
		t.Error("click on the world should jump")
	}
	m.inputFrame.Clear()

	m, _ = send(t, m, tea.MouseMsg{X: 85, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.inputFrame.Has(core.ActionPause) {
		t.Error("click on the pause button should pause")
	}
}

func TestModelThemeAndFullscreen(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig(), Options{})

	m, _ = send(t, m, runeKey('t'))
	if m.theme.Name != "light" {
		t.Errorf("theme = %q, expected light", m.theme.Name)
	}
	m, _ = send(t, m, runeKey('t'))
	if m.theme.Name != "dark" {
		t.Errorf("theme = %q, expected dark", m.theme.Name)
	}

	m, cmd := send(t, m, runeKey('f'))
	if cmd == nil || m.altScreen {
		t.Error("fullscreen key should leave the alternate screen")
	}
	if len(m.inputFrame.Actions) != 0 {
		t.Error("host actions should not reach the game")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig(), Options{})
	m, cmd := send(t, m, runeKey('q'))

	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{state: core.GameState{Run: core.StateRunning}}
	m := NewModel(g, testConfig(), Options{})

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	if m.screen.Width() != 120 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 120x29", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Error("resize should not reset the run")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&fakeGame{}, testConfig(), Options{ScreenshotDir: dir})

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "fake_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot content = %q", string(data)[:10])
	}
}

func TestModelViewWithRunner(t *testing.T) {
	game := runner.New(runner.WithClock(core.NewManualClock(time.Unix(0, 0))))
	m := NewModel(game, testConfig(), Options{})

	view := m.View()
	for _, want := range []string{"Press ENTER to start", "Score: 0", "jump"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBellHaptics(t *testing.T) {
	var buf bytes.Buffer
	h := NewBellHaptics(&buf)

	if err := h.Vibrate(0); err != nil || buf.Len() != 0 {
		t.Error("zero duration should not ring")
	}
	if err := h.Vibrate(500 * time.Millisecond); err != nil {
		t.Fatalf("Vibrate() failed: %v", err)
	}
	if buf.String() != "\a" {
		t.Errorf("wrote %q, expected bell", buf.String())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(20, 2)
	screen.DrawText(0, 0, "Score: 3", core.ColorHUD)
	screen.DrawText(0, 1, "██", core.ColorPlayer)

	for _, theme := range []Theme{DarkTheme(), LightTheme()} {
		out := RenderScreen(screen, theme)
		if !strings.Contains(out, "Score: 3") || !strings.Contains(out, "██") {
			t.Errorf("%s theme lost text: %q", theme.Name, out)
		}
		if strings.Count(out, "\n") != 1 {
			t.Errorf("%s theme: expected 2 rows", theme.Name)
		}
	}
}
