package runner

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/golden-fly/internal/core"
)

// Visual characters for rendering
const (
	FlyBody      = '█'
	FlyEye       = '●'
	ObstacleChar = '▓'
	GroundChar   = '░'
	GroundEdge   = '═'
)

// PauseButton is the HUD label that toggles pause when clicked.
const PauseButton = "[Pause]"

// ResumeButton replaces PauseButton while paused.
const ResumeButton = "[Resume]"

// Layout describes where the world and HUD land on a cell screen.
type Layout struct {
	Viewport core.Viewport
	HUDRow   int
	Button   core.Rect // Clickable pause/resume label
}

// LayoutFor computes the layout for a w x h cell screen. The top row is
// reserved for the HUD and the world fills the rest, aspect-correct.
func LayoutFor(w, h int, worldW, worldH float64) Layout {
	vp := core.FitViewport(w, core.Max(h-1, 0), worldW, worldH)
	vp.Area.Y++

	// Sized for the longer label so the hit area never moves.
	bw := utf8.RuneCountInString(ResumeButton)
	bx := core.Max(vp.Area.Right()-bw, 0)
	return Layout{
		Viewport: vp,
		HUDRow:   0,
		Button:   core.NewRect(bx, 0, bw, 1),
	}
}

// Layout returns the cell layout for dst.
func (g *Game) Layout(w, h int) Layout {
	return LayoutFor(w, h, g.cfg.World.Width, g.cfg.World.Height)
}

// PauseButton returns the clickable pause/resume label on a w x h screen.
func (g *Game) PauseButton(w, h int) core.Rect {
	return g.Layout(w, h).Button
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	layout := g.Layout(dst.Width(), dst.Height())
	vp := layout.Viewport
	if vp.Area.W == 0 || vp.Area.H == 0 {
		return
	}

	// Ground
	ground := vp.ToRect(core.NewBox(0, snap.GroundY, snap.WorldW, snap.WorldH-snap.GroundY))
	dst.DrawRect(ground, GroundChar, core.ColorGround)
	dst.DrawHLine(ground.X, ground.Y, ground.W, GroundEdge, core.ColorGround)

	// Obstacles
	for _, o := range snap.Obstacles {
		r := vp.ToRect(o)
		if r.W > 0 && r.H > 0 {
			dst.DrawRect(r, ObstacleChar, core.ColorObstacle)
		}
	}

	g.drawFly(dst, vp, snap.Player)
	g.drawHUD(dst, layout, snap)

	if snap.Milestone != "" {
		g.drawBanner(dst, vp, snap.Milestone)
	}

	switch snap.Run {
	case core.StateNotStarted:
		g.drawCenteredMessage(dst, vp, GameTitle, "Press ENTER to start")
	case core.StatePaused:
		g.drawCenteredMessage(dst, vp, "PAUSED", "Press P to resume")
	case core.StateOver:
		g.drawCenteredMessage(dst, vp, "Game Over!",
			fmt.Sprintf("Score: %d  |  Press ENTER to restart", snap.Score))
	}
}

// drawFly renders the player as a golden block with two eyes.
func (g *Game) drawFly(dst *core.Screen, vp core.Viewport, body core.Box) {
	br := vp.ToRect(body)
	dst.DrawRect(br, FlyBody, core.ColorPlayer)

	// Eyes only read as eyes when the body is wider than them.
	if br.W < 3 {
		return
	}
	left, right := Eyes(body)
	for _, eye := range []core.Box{left, right} {
		er := vp.ToRect(eye)
		dst.SetColored(er.X, er.Y, FlyEye, core.ColorPlayerEye)
	}
}

// drawHUD draws score, high score, speed, the current gap and the pause button.
func (g *Game) drawHUD(dst *core.Screen, layout Layout, snap Snapshot) {
	x := layout.Viewport.Area.X
	dst.DrawText(x, layout.HUDRow, fmt.Sprintf("Score: %d", snap.Score), core.ColorHUD)

	high := fmt.Sprintf("High Score: %d", snap.HighScore)
	dst.DrawText(x+12, layout.HUDRow, high, core.ColorHUD)

	spd := fmt.Sprintf("Spd: %.1f  Gap: %.0f", snap.Speed, snap.Gap)
	dst.DrawText(x+14+utf8.RuneCountInString(high), layout.HUDRow, spd, core.ColorMuted)

	label := PauseButton
	if snap.Run == core.StatePaused {
		label = ResumeButton
	}
	dst.DrawText(layout.Button.X, layout.Button.Y, label, core.ColorHUD)
}

// drawBanner shows the milestone message in the upper part of the world.
func (g *Game) drawBanner(dst *core.Screen, vp core.Viewport, text string) {
	// The viewport is centered horizontally, so screen center is world center.
	dst.DrawTextCentered(vp.Area.Y+vp.Area.H/4, text, core.ColorBanner)
}

// drawCenteredMessage draws a message box in the center of the world.
func (g *Game) drawCenteredMessage(dst *core.Screen, vp core.Viewport, title, subtitle string) {
	boxW := core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := vp.Area.X + (vp.Area.W-boxW)/2
	boxY := vp.Area.Y + (vp.Area.H-boxH)/2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorMuted)

	titleX := boxX + (boxW-utf8.RuneCountInString(title))/2
	dst.DrawText(titleX, boxY+1, title, core.ColorBanner)

	subtitleX := boxX + (boxW-utf8.RuneCountInString(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle, core.ColorDefault)
}
