package runner

import "sync"

// HighScoreStore persists the best score under a single named key.
// Implementations may fail; the game treats every call as best effort.
type HighScoreStore interface {
	LoadHighScore(key string) (int, error)
	SaveHighScore(key string, score int) error
}

// MemoryHighScores keeps high scores for the lifetime of the process.
type MemoryHighScores struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemoryHighScores creates an empty in-memory store.
func NewMemoryHighScores() *MemoryHighScores {
	return &MemoryHighScores{values: make(map[string]int)}
}

// LoadHighScore returns the stored score, or 0.
func (m *MemoryHighScores) LoadHighScore(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// SaveHighScore raises the stored score to score.
func (m *MemoryHighScores) SaveHighScore(key string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.values[key] {
		m.values[key] = score
	}
	return nil
}
