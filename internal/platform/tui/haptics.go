package tui

import (
	"io"
	"sync"
	"time"

	"github.com/vovakirdan/golden-fly/internal/core"
)

// BellHaptics stands in for vibration on terminals by ringing the bell.
// The duration only decides whether to ring.
type BellHaptics struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellHaptics rings the bell on w, usually the controlling terminal.
func NewBellHaptics(w io.Writer) *BellHaptics {
	return &BellHaptics{w: w}
}

// Vibrate rings the bell once for any positive duration.
func (b *BellHaptics) Vibrate(d time.Duration) error {
	if d <= 0 || b.w == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.w, "\a")
	return err
}

var _ core.Haptics = (*BellHaptics)(nil)
