package systems

import (
	"time"

	"github.com/pthm-cable/pounce/components"
)

// SteerParams holds the steering and speed model constants.
// Speeds are px per 60Hz frame; PointerSpeed inputs are px/sec.
type SteerParams struct {
	Smoothing  float32
	Friction   float32
	BaseSpeed  float32
	MaxSpeed   float32

	ActivityThreshold float32
	BonusGain         float32
	BonusCap          float32

	NearRadius float32
	NearBoost  float32
	FarRadius  float32
	FarPenalty float32
}

// DesiredSpeed computes the speed budget for this tick. A smooth saturating
// function: base speed, plus a capped bonus proportional to pointer speed
// over the activity threshold, boosted when close and mildly penalized when
// far, clamped to [0, MaxSpeed].
func DesiredSpeed(pointerSpeed, centerDistance float32, p SteerParams) float32 {
	speed := p.BaseSpeed

	if pointerSpeed > p.ActivityThreshold {
		bonus := (pointerSpeed - p.ActivityThreshold) * p.BonusGain
		if bonus > p.BonusCap {
			bonus = p.BonusCap
		}
		speed += bonus
	}

	if centerDistance < p.NearRadius {
		speed *= p.NearBoost
	} else if centerDistance > p.FarRadius {
		speed *= p.FarPenalty
	}

	return clampFloat(speed, 0, p.MaxSpeed)
}

// Steer applies one tick of first-order pursuit toward the target and
// integrates the position. dt is in 60Hz frames. Returns the distance moved.
// A degenerate direction (already on top of the target) applies no impulse.
func Steer(pos *components.Position, vel *components.Velocity, targetX, targetY, pointerSpeed, centerDistance, dt float32, p SteerParams) float32 {
	dirX, dirY, ok := normalize(targetX-pos.X, targetY-pos.Y)
	if ok {
		speed := DesiredSpeed(pointerSpeed, centerDistance, p)
		vel.X += (dirX*speed - vel.X) * p.Smoothing
		vel.Y += (dirY*speed - vel.Y) * p.Smoothing
	}

	dx := vel.X * dt
	dy := vel.Y * dt
	pos.X += dx
	pos.Y += dy
	return velocityMagnitude(dx, dy)
}

// Coast decays velocity by the friction factor while still integrating the
// remaining motion, so the cat slides to a stop instead of freezing. Used
// when settled and whenever another phase owns steering.
func Coast(pos *components.Position, vel *components.Velocity, dt float32, p SteerParams) {
	vel.X *= p.Friction
	vel.Y *= p.Friction
	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
}

// StepMark reports whether a paw print should be emitted for this tick's
// movement: the cat moved far enough and the minimum interval since the last
// print has passed. Updates the cat's step timestamp when it fires.
func StepMark(cat *components.Cat, movedDist float32, now time.Time, minMove float32, minInterval time.Duration) bool {
	if movedDist < minMove {
		return false
	}
	if !cat.LastStepAt.IsZero() && now.Sub(cat.LastStepAt) < minInterval {
		return false
	}
	cat.LastStepAt = now
	return true
}
