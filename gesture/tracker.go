// Package gesture defines the hand-tracking input boundary. A Tracker is
// polled once per frame; the session treats a miss as "hold the last known
// position", so trackers never need to interpolate dropouts themselves.
package gesture

import (
	"math"
	"time"
)

// Sample is one hand observation in screen coordinates.
type Sample struct {
	X, Y     float32
	OpenHand bool
	At       time.Time
}

// Tracker produces hand samples. Poll returns ok=false when no hand was
// detected this frame; the sample is then meaningless.
type Tracker interface {
	Poll(now time.Time) (Sample, bool)
}

// ScriptedTracker replays a deterministic hand path, used by the headless
// mode and tests. The hand follows a slow figure-eight, opening and closing
// on a fixed cadence, with periodic detection dropouts.
type ScriptedTracker struct {
	Width, Height float32

	// HoldEvery and HoldFor inject detection misses: every HoldEvery the
	// tracker reports no hand for HoldFor. Zero disables dropouts.
	HoldEvery time.Duration
	HoldFor   time.Duration

	// GripPeriod is the open/close cadence. Zero keeps the hand open.
	GripPeriod time.Duration

	start time.Time
}

// Poll implements Tracker.
func (t *ScriptedTracker) Poll(now time.Time) (Sample, bool) {
	if t.start.IsZero() {
		t.start = now
	}
	elapsed := now.Sub(t.start)

	if t.HoldEvery > 0 && t.HoldFor > 0 {
		if elapsed%t.HoldEvery < t.HoldFor {
			return Sample{}, false
		}
	}

	sec := elapsed.Seconds()
	cx := float64(t.Width) * 0.5
	cy := float64(t.Height) * 0.5

	// Lissajous figure-eight sized to the screen.
	x := cx + float64(t.Width)*0.35*math.Sin(sec*0.9)
	y := cy + float64(t.Height)*0.3*math.Sin(sec*1.8)

	open := true
	if t.GripPeriod > 0 {
		open = elapsed%t.GripPeriod < t.GripPeriod/2
	}

	return Sample{X: float32(x), Y: float32(y), OpenHand: open, At: now}, true
}
