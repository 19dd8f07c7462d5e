package systems

import (
	"time"

	"github.com/pthm-cable/pounce/components"
)

// MoodParams holds the speed/distance thresholds for derived moods.
type MoodParams struct {
	IdleSpeed     float32
	RunSpeed      float32
	ExcitedSpeed  float32
	ExcitedRadius float32
}

// SetMode switches the cat's mode. Setting the current mode again is a no-op
// so animation timers are not restarted; ForceMode restarts explicitly.
func SetMode(cat *components.Cat, m components.Mode, now time.Time) bool {
	if cat.Mode == m {
		return false
	}
	cat.Mode = m
	cat.ModeSince = now
	return true
}

// ForceMode restarts the mode even when it is already active. Used by the
// demo showcase to replay a pounce.
func ForceMode(cat *components.Cat, m components.Mode, now time.Time) {
	cat.Mode = m
	cat.ModeSince = now
}

// ResolveMood evaluates the ordinary (non-timed) mood for one tick. Callers
// handle resting, eating and pouncing first; this covers the prepare latch
// and the speed/distance derivation below it.
func ResolveMood(cat *components.Cat, prox Proximity, speed float32, now time.Time, p MoodParams) {
	if prox.Zone == ZonePrepare {
		SetMode(cat, components.ModePreparing, now)
		return
	}

	switch {
	case speed < p.IdleSpeed:
		SetMode(cat, components.ModeIdle, now)
	case speed > p.ExcitedSpeed || prox.CenterDistance < p.ExcitedRadius:
		SetMode(cat, components.ModeExcited, now)
	case speed > p.RunSpeed:
		SetMode(cat, components.ModeRunning, now)
	default:
		SetMode(cat, components.ModeCurious, now)
	}
}
