package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Platforms fill in screen size; the simulation itself always runs in
// logical world units and only uses Seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for raster hosts)
	ScreenH  int   // Screen height in characters (or pixels for raster hosts)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic obstacle heights
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// RunState is the lifecycle of a single run.
//
//	NotStarted -> Running <-> Paused
//	Running -> Over -> (start) -> Running
type RunState int

const (
	StateNotStarted RunState = iota
	StateRunning
	StatePaused
	StateOver
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int      // Current run score
	HighScore int      // Best score across runs
	Run       RunState // Lifecycle state
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Run == StateOver
}

// Paused reports whether the run is paused.
func (s GameState) Paused() bool {
	return s.Run == StatePaused
}

// Suspended reports whether the host may stop scheduling frames.
// Only paused and finished runs suspend; a run waiting to start keeps
// drawing its start prompt.
func (s GameState) Suspended() bool {
	return s.Run == StatePaused || s.Run == StateOver
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventStarted   EventKind = iota // A run began (or restarted)
	EventScored                     // An obstacle left the screen
	EventHighScore                  // The high score was raised
	EventMilestone                  // Score reached a milestone
	EventCrashed                    // The player hit an obstacle
)

// Event is emitted by Step for platforms to log or react to.
type Event struct {
	Kind  EventKind
	Score int
	Text  string // Milestone message, empty otherwise
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
