package scene

import (
	"strings"
	"testing"

	"github.com/vovakirdan/golden-fly/internal/core"
	"github.com/vovakirdan/golden-fly/internal/games/runner"
)

func hasLabel(f Frame, substr string) bool {
	for _, l := range f.Labels {
		if strings.Contains(l.Text, substr) {
			return true
		}
	}
	return false
}

func TestComposeStartScreen(t *testing.T) {
	snap := runner.New().Snapshot()
	p := DarkPalette()
	f := Compose(snap, p)

	if f.Background != p.Sky {
		t.Error("background should be the sky color")
	}
	for _, want := range []string{"Score: 0", "High Score: 0", "Press ENTER", runner.PauseButton} {
		if !hasLabel(f, want) {
			t.Errorf("frame missing label %q", want)
		}
	}

	playerFound := false
	for _, fill := range f.Fills {
		if fill.Box == snap.Player && fill.Color == p.Player {
			playerFound = true
		}
	}
	if !playerFound {
		t.Error("player box should be filled with the player color")
	}
}

func TestComposeDrawsObstaclesAndBanner(t *testing.T) {
	snap := runner.Snapshot{
		WorldW:    480,
		WorldH:    320,
		GroundY:   270,
		Player:    core.NewBox(50, 240, 30, 30),
		Obstacles: []core.Box{core.NewBox(300, 220, 25, 50), core.NewBox(600, 230, 25, 40)},
		Run:       core.StateRunning,
		Milestone: "Nice!",
	}
	p := LightPalette()
	f := Compose(snap, p)

	obstacles := 0
	for _, fill := range f.Fills {
		if fill.Color == p.Obstacle {
			obstacles++
		}
	}
	if obstacles != 2 {
		t.Errorf("obstacle fills = %d, expected 2", obstacles)
	}
	if !hasLabel(f, "Nice!") {
		t.Error("milestone banner missing")
	}
	if hasLabel(f, "Press ENTER") {
		t.Error("running game should not show an overlay")
	}
}

func TestComposePausedShowsResume(t *testing.T) {
	snap := runner.Snapshot{WorldW: 480, WorldH: 320, GroundY: 270, Run: core.StatePaused}
	f := Compose(snap, DarkPalette())

	if !hasLabel(f, runner.ResumeButton) || !hasLabel(f, "PAUSED") {
		t.Error("paused frame should show resume button and overlay")
	}
}

func TestPointerAction(t *testing.T) {
	b := PauseButton(480)
	if b.Right() > 480 || b.X < 0 {
		t.Fatalf("button %+v outside world", b)
	}

	if got := PointerAction(b.X+1, b.Y+1, 480); got != core.ActionPause {
		t.Errorf("press on button = %v, expected Pause", got)
	}
	if got := PointerAction(100, 200, 480); got != core.ActionJump {
		t.Errorf("press on world = %v, expected Jump", got)
	}
}

func TestPaletteToggle(t *testing.T) {
	if DarkPalette().Toggle().Name != "light" || LightPalette().Toggle().Name != "dark" {
		t.Error("Toggle should switch between dark and light")
	}
}

func TestComposeDifficultyMeter(t *testing.T) {
	tests := []struct {
		level    float64
		expected float64
	}{
		{0, 0},
		{0.5, MeterWidth / 2},
		{1, MeterWidth},
		{3, MeterWidth},
	}

	p := DarkPalette()
	for _, tt := range tests {
		snap := runner.Snapshot{WorldW: 480, WorldH: 320, GroundY: 270, Run: core.StateRunning, Level: tt.level}
		f := Compose(snap, p)

		found := false
		for _, fill := range f.Fills {
			if fill.Box.X == MeterX && fill.Color == p.Edge {
				found = true
				if fill.Box.W != tt.expected {
					t.Errorf("level %.1f: meter width = %f, expected %f", tt.level, fill.Box.W, tt.expected)
				}
			}
		}
		if !found {
			t.Errorf("level %.1f: meter fill missing", tt.level)
		}
	}
	if !hasLabel(Compose(runner.Snapshot{WorldW: 480, WorldH: 320}, p), "Lv") {
		t.Error("meter label missing")
	}
}
