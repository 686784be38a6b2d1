package core

import (
	"errors"
	"time"
)

// ErrUnsupported is returned by capability providers on platforms that
// lack the feature. Callers treat it like any other capability error: ignore it.
var ErrUnsupported = errors.New("capability not supported")

// Haptics produces tactile feedback.
type Haptics interface {
	Vibrate(d time.Duration) error
}

// Display controls presentation features of the host window.
type Display interface {
	ToggleFullscreen() error
	LockOrientation() error
}

// NoCapabilities implements every capability as a silent no-op.
type NoCapabilities struct{}

// Vibrate does nothing.
func (NoCapabilities) Vibrate(time.Duration) error { return nil }

// ToggleFullscreen does nothing.
func (NoCapabilities) ToggleFullscreen() error { return nil }

// LockOrientation reports that orientation cannot be locked.
func (NoCapabilities) LockOrientation() error { return ErrUnsupported }

var (
	_ Haptics = NoCapabilities{}
	_ Display = NoCapabilities{}
)
