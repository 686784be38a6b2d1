// Package runner implements Golden Fly, a one-button endless runner.
// A fly stands on the ground at a fixed x position; obstacles scroll in from
// the right at a slowly increasing speed and the player jumps over them.
// Each obstacle that leaves the screen is worth one point.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/golden-fly/internal/config"
	"github.com/vovakirdan/golden-fly/internal/core"
)

const (
	// GameID identifies the runner in run history.
	GameID = "goldenfly"
	// GameTitle is the display name.
	GameTitle = "Golden Fly"
)

// Game implements the Golden Fly runner loop.
type Game struct {
	cfg        config.RunnerConfig
	difficulty *config.Difficulty
	clock      core.Clock
	scores     HighScoreStore
	haptics    core.Haptics
	rng        *rand.Rand
	runtime    core.RuntimeConfig

	player    Player
	obstacles ObstacleQueue
	score     int
	highScore int
	speed     float64
	run       core.RunState
	milestone Milestone
	tickCount int

	events []core.Event // Collected during the current Step
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithConfig replaces the built-in runner configuration.
func WithConfig(cfg config.RunnerConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithClock sets the time source used for milestone banners.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithHighScores sets where the high score is loaded from and saved to.
func WithHighScores(s HighScoreStore) Option {
	return func(g *Game) { g.scores = s }
}

// WithHaptics sets the vibration provider used on crash.
func WithHaptics(h core.Haptics) Option {
	return func(g *Game) { g.haptics = h }
}

// New creates a runner. The game is ready to use immediately and waits in
// the not-started state; Reset re-seeds it for a new session.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:     config.DefaultRunnerConfig(),
		clock:   core.SystemClock{},
		scores:  NewMemoryHighScores(),
		haptics: core.NoCapabilities{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.difficulty = config.NewDifficulty(g.cfg)
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Reset starts a new session: the RNG is re-seeded, the persisted high
// score is reloaded and the game waits for Start.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	// A failing store must never stop play; keep what we already know.
	if stored, err := g.scores.LoadHighScore(g.cfg.Storage.HighScoreKey); err == nil && stored > g.highScore {
		g.highScore = stored
	}

	g.resetRun()
	g.run = core.StateNotStarted
}

// resetRun clears per-run state. The high score is kept.
func (g *Game) resetRun() {
	g.player = Player{
		X: g.cfg.Player.X,
		W: g.cfg.Player.Width,
		H: g.cfg.Player.Height,
	}
	g.player.Land(g.cfg.World.GroundY())
	g.obstacles.Clear()
	g.score = 0
	g.speed = g.difficulty.InitialSpeed()
	g.milestone = Milestone{}
	g.tickCount = 0
}

// Start begins a run from the not-started or over state.
// It reports whether a run was started.
func (g *Game) Start() bool {
	if g.run != core.StateNotStarted && g.run != core.StateOver {
		return false
	}
	g.resetRun()
	g.run = core.StateRunning
	g.emit(core.Event{Kind: core.EventStarted})
	return true
}

// Jump launches the player if a run is in progress and the player is on
// the ground. It reports whether the jump took effect.
func (g *Game) Jump() bool {
	if g.run != core.StateRunning || !g.player.Grounded {
		return false
	}
	g.player.VY = g.cfg.Physics.JumpImpulse
	g.player.Grounded = false
	return true
}

// TogglePause pauses a running game or resumes a paused one.
// Other states are left alone.
func (g *Game) TogglePause() bool {
	switch g.run {
	case core.StateRunning:
		g.run = core.StatePaused
	case core.StatePaused:
		g.run = core.StateRunning
	default:
		return false
	}
	return true
}

// Tick advances the simulation by one frame. Only a running game moves.
func (g *Game) Tick() {
	if g.run != core.StateRunning {
		return
	}
	g.tickCount++

	g.player.Fall(g.cfg.Physics.Gravity, g.cfg.World.GroundY())

	g.obstacles.Advance(g.speed)
	if head, ok := g.obstacles.Head(); ok && head.Right() < 0 {
		g.obstacles.PopHead()
		g.scorePoint()
	}

	g.spawnObstacle()

	if g.collides() {
		g.crash()
		return
	}

	if g.speed < g.difficulty.MaxSpeed() {
		g.speed = g.difficulty.NextSpeed(g.speed)
	}
}

// Step applies one frame of input and then ticks.
// Input order is pause, start, jump.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if in.Has(core.ActionStart) {
		g.Start()
	}
	if in.Has(core.ActionJump) {
		g.Jump()
	}

	g.Tick()

	return core.StepResult{State: g.State(), Events: g.events}
}

// scorePoint credits one passed obstacle.
func (g *Game) scorePoint() {
	g.score++
	g.emit(core.Event{Kind: core.EventScored, Score: g.score})

	if g.score > g.highScore {
		g.highScore = g.score
		// Best effort: the in-memory high score stays correct either way.
		_ = g.scores.SaveHighScore(g.cfg.Storage.HighScoreKey, g.highScore)
		g.emit(core.Event{Kind: core.EventHighScore, Score: g.score})
	}

	if every := g.cfg.Milestone.Every; every > 0 && g.score%every == 0 {
		text := milestoneText(g.cfg.Milestone.Messages, g.score, every)
		if text != "" {
			g.milestone = Milestone{
				Text:  text,
				Until: g.clock.Now().Add(g.cfg.Milestone.Duration()),
			}
			g.emit(core.Event{Kind: core.EventMilestone, Score: g.score, Text: text})
		}
	}
}

// spawnObstacle adds a new obstacle once the newest one has scrolled past
// the current gap, placing it a full gap beyond the right edge.
func (g *Game) spawnObstacle() {
	gap := g.difficulty.TargetGap(g.score)
	width := g.cfg.World.Width

	if tail, ok := g.obstacles.Tail(); ok && tail.X >= width-gap {
		return
	}

	oc := g.cfg.Obstacles
	h := oc.MinHeight + g.rng.Float64()*(oc.MaxHeight-oc.MinHeight)
	g.obstacles.Push(Obstacle{
		X: width + gap,
		Y: g.cfg.World.GroundY() - h,
		W: oc.Width,
		H: h,
	})
}

// collides reports whether the player overlaps any obstacle.
func (g *Game) collides() bool {
	pb := g.player.Box()
	for _, o := range g.obstacles.Items() {
		if pb.Intersects(o.Box()) {
			return true
		}
	}
	return false
}

// crash ends the run.
func (g *Game) crash() {
	g.run = core.StateOver
	_ = g.haptics.Vibrate(g.cfg.Haptics.CrashPulse())
	g.emit(core.Event{Kind: core.EventCrashed, Score: g.score})
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Run:       g.run,
	}
}
