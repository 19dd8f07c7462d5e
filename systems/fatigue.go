package systems

import (
	"math/rand"
	"time"

	"github.com/pthm-cable/pounce/components"
)

// FatigueParams holds the rest cycle constants.
type FatigueParams struct {
	RestMin      int
	RestMax      int
	RestDuration time.Duration
}

// RollRestThreshold draws a new rest threshold uniformly from [min, max].
func RollRestThreshold(rng *rand.Rand, min, max int) int {
	if max < min {
		max = min
	}
	return min + rng.Intn(max-min+1)
}

// OnPounceComplete advances the fatigue counter after a landed pounce.
// Reaching the rest threshold forces the resting mode within the same tick.
// Returns true when the cat went to rest.
func OnPounceComplete(cat *components.Cat, now time.Time, p FatigueParams) bool {
	cat.ConsecutiveCaptures++
	if cat.ConsecutiveCaptures < cat.RestThreshold {
		return false
	}
	cat.RestStartedAt = now
	SetMode(cat, components.ModeResting, now)
	return true
}

// UpdateRest checks the rest timer. After the rest duration the counter
// resets, a fresh threshold is drawn and the cat wakes up curious.
// Returns true when the rest ended this tick.
func UpdateRest(cat *components.Cat, now time.Time, rng *rand.Rand, p FatigueParams) bool {
	if cat.Mode != components.ModeResting {
		return false
	}
	elapsed := now.Sub(cat.RestStartedAt)
	if elapsed < 0 {
		// Clock anomaly; treat as rest just started.
		cat.RestStartedAt = now
		return false
	}
	if elapsed < p.RestDuration {
		return false
	}
	cat.ConsecutiveCaptures = 0
	cat.RestThreshold = RollRestThreshold(rng, p.RestMin, p.RestMax)
	SetMode(cat, components.ModeCurious, now)
	return true
}
