// Package scene turns a runner snapshot into a flat list of filled boxes
// and text labels in world units. Raster hosts only have to paint it.
package scene

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/golden-fly/internal/core"
	"github.com/vovakirdan/golden-fly/internal/games/runner"
)

// Debug font metrics used to lay out labels.
const (
	CharWidth  = 6
	LineHeight = 16
)

// HUD difficulty meter placement in world units.
const (
	MeterX     = 294
	MeterWidth = 100
)

// Palette holds the colors for one theme.
type Palette struct {
	Name     string
	Sky      color.RGBA
	Ground   color.RGBA
	Edge     color.RGBA
	Obstacle color.RGBA
	Player   color.RGBA
	Eye      color.RGBA
	Panel    color.RGBA // Behind HUD and overlay text
}

// DarkPalette is a night sky.
func DarkPalette() Palette {
	return Palette{
		Name:     "dark",
		Sky:      color.RGBA{0x14, 0x18, 0x2b, 0xff},
		Ground:   color.RGBA{0x5b, 0x3a, 0x1e, 0xff},
		Edge:     color.RGBA{0x8a, 0x5a, 0x2b, 0xff},
		Obstacle: color.RGBA{0xd0, 0x3a, 0x3a, 0xff},
		Player:   color.RGBA{0xff, 0xd7, 0x00, 0xff},
		Eye:      color.RGBA{0x00, 0x00, 0x00, 0xff},
		Panel:    color.RGBA{0x00, 0x00, 0x00, 0xa0},
	}
}

// LightPalette matches the classic daytime look: sky blue, brown ground.
func LightPalette() Palette {
	return Palette{
		Name:     "light",
		Sky:      color.RGBA{0x87, 0xce, 0xeb, 0xff},
		Ground:   color.RGBA{0x8b, 0x45, 0x13, 0xff},
		Edge:     color.RGBA{0x65, 0x32, 0x0e, 0xff},
		Obstacle: color.RGBA{0x22, 0x8b, 0x22, 0xff},
		Player:   color.RGBA{0xff, 0xd7, 0x00, 0xff},
		Eye:      color.RGBA{0x00, 0x00, 0x00, 0xff},
		Panel:    color.RGBA{0x00, 0x00, 0x00, 0x80},
	}
}

// Toggle returns the other palette.
func (p Palette) Toggle() Palette {
	if p.Name == "light" {
		return DarkPalette()
	}
	return LightPalette()
}

// Fill is a solid box.
type Fill struct {
	Box   core.Box
	Color color.RGBA
}

// Label is a line of text anchored at its top-left corner.
type Label struct {
	X, Y int
	Text string
}

// Frame is everything to paint for one frame, back to front.
type Frame struct {
	Background color.RGBA
	Fills      []Fill
	Labels     []Label
}

// PauseButton returns the HUD pause/resume hit area for a world width.
func PauseButton(worldW float64) core.Box {
	w := float64(len(runner.ResumeButton)*CharWidth + 8)
	return core.NewBox(worldW-w-4, 2, w, LineHeight)
}

// PointerAction maps a press at world coordinates (x, y) to an action:
// the HUD button toggles pause and anywhere else jumps.
func PointerAction(x, y, worldW float64) core.Action {
	b := PauseButton(worldW)
	if x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom() {
		return core.ActionPause
	}
	return core.ActionJump
}

// Compose builds the frame for a snapshot.
func Compose(snap runner.Snapshot, p Palette) Frame {
	f := Frame{Background: p.Sky}

	// Ground band and its top edge.
	f.fill(core.NewBox(0, snap.GroundY, snap.WorldW, snap.WorldH-snap.GroundY), p.Ground)
	f.fill(core.NewBox(0, snap.GroundY, snap.WorldW, 2), p.Edge)

	for _, o := range snap.Obstacles {
		f.fill(o, p.Obstacle)
	}

	f.fill(snap.Player, p.Player)
	left, right := runner.Eyes(snap.Player)
	f.fill(left, p.Eye)
	f.fill(right, p.Eye)

	// HUD
	f.fill(core.NewBox(0, 0, snap.WorldW, LineHeight+4), p.Panel)
	f.label(6, 2, fmt.Sprintf("Score: %d", snap.Score))
	f.label(96, 2, fmt.Sprintf("High Score: %d", snap.HighScore))
	f.label(216, 2, fmt.Sprintf("Spd: %.1f", snap.Speed))
	f.meter(snap.Level, p)

	button := PauseButton(snap.WorldW)
	label := runner.PauseButton
	if snap.Run == core.StatePaused {
		label = runner.ResumeButton
	}
	f.label(int(button.X)+4, int(button.Y), label)

	if snap.Milestone != "" {
		f.centered(snap, snap.WorldH/4, snap.Milestone)
	}

	switch snap.Run {
	case core.StateNotStarted:
		f.panel(snap, p, runner.GameTitle, "Press ENTER or tap to start")
	case core.StatePaused:
		f.panel(snap, p, "PAUSED", "Press P to resume")
	case core.StateOver:
		f.panel(snap, p, "Game Over!", fmt.Sprintf("Score: %d - Press ENTER to restart", snap.Score))
	}

	return f
}

func (f *Frame) fill(b core.Box, c color.RGBA) {
	f.Fills = append(f.Fills, Fill{Box: b, Color: c})
}

// meter draws the difficulty bar between the speed readout and the pause button.
func (f *Frame) meter(level float64, p Palette) {
	f.label(MeterX-3*CharWidth, 2, "Lv")
	f.fill(core.NewBox(MeterX, 6, MeterWidth, 8), p.Ground)
	f.fill(core.NewBox(MeterX, 6, MeterWidth*core.ClampF(level, 0, 1), 8), p.Edge)
}

func (f *Frame) label(x, y int, text string) {
	f.Labels = append(f.Labels, Label{X: x, Y: y, Text: text})
}

func (f *Frame) centered(snap runner.Snapshot, y float64, text string) {
	x := (int(snap.WorldW) - len(text)*CharWidth) / 2
	f.label(x, int(y), text)
}

// panel draws a dimmed box with a title and a hint line in the middle of the world.
func (f *Frame) panel(snap runner.Snapshot, p Palette, title, hint string) {
	w := float64(max(len(title), len(hint))*CharWidth + 24)
	h := float64(LineHeight*3 + 8)
	box := core.NewBox((snap.WorldW-w)/2, (snap.WorldH-h)/2, w, h)

	f.fill(box, p.Panel)
	f.centered(snap, box.Y+6, title)
	f.centered(snap, box.Y+6+LineHeight*2, hint)
}
