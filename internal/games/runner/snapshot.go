package runner

import "github.com/vovakirdan/golden-fly/internal/core"

// Snapshot is a read-only copy of everything a frontend needs to draw a
// frame in world units. Raster hosts draw from it directly.
type Snapshot struct {
	WorldW    float64
	WorldH    float64
	GroundY   float64
	Player    core.Box
	Grounded  bool
	Obstacles []core.Box
	Score     int
	HighScore int
	Speed     float64
	Gap       float64 // Gap the next spawn will use
	Level     float64 // Difficulty from 0 (widest gap) to 1 (narrowest)
	Run       core.RunState
	Milestone string // Empty when no banner is visible
	Tick      int    // Ticks since the run started
}

// Snapshot returns the current frame state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]core.Box, 0, g.obstacles.Len())
	for _, o := range g.obstacles.Items() {
		obstacles = append(obstacles, o.Box())
	}

	snap := Snapshot{
		WorldW:    g.cfg.World.Width,
		WorldH:    g.cfg.World.Height,
		GroundY:   g.cfg.World.GroundY(),
		Player:    g.player.Box(),
		Grounded:  g.player.Grounded,
		Obstacles: obstacles,
		Score:     g.score,
		HighScore: g.highScore,
		Speed:     g.speed,
		Gap:       g.difficulty.TargetGap(g.score),
		Level:     g.difficulty.Level(g.score),
		Run:       g.run,
		Tick:      g.tickCount,
	}
	// Suspended runs are not redrawn, so the banner only shows while running.
	if g.run == core.StateRunning && g.milestone.Visible(g.clock.Now()) {
		snap.Milestone = g.milestone.Text
	}
	return snap
}

// Eyes returns the two eye boxes for a player box, scaled from the
// 30x30 reference sprite.
func Eyes(player core.Box) (left, right core.Box) {
	sx := player.W / 30
	sy := player.H / 30
	left = core.NewBox(player.X+6*sx, player.Y+8*sy, 5*sx, 5*sy)
	right = core.NewBox(player.X+18*sx, player.Y+8*sy, 5*sx, 5*sy)
	return left, right
}
