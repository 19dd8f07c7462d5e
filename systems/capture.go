package systems

import (
	"time"

	"github.com/pthm-cable/pounce/components"
)

// PounceParams holds the capture sequence constants.
type PounceParams struct {
	Cooldown   time.Duration
	Duration   time.Duration
	PeakHeight float32
	LeapCap    float32
}

// CanPounce reports whether a capture may trigger this tick: the nose is in
// the capture zone and the cooldown since the last registered capture has
// elapsed.
func CanPounce(cat *components.Cat, zone Zone, now time.Time, cooldown time.Duration) bool {
	if cat.Pounce.Active || zone != ZoneCapture {
		return false
	}
	return cat.LastCaptureAt.IsZero() || now.Sub(cat.LastCaptureAt) >= cooldown
}

// ArmPounce arms the leap arc without registering a capture. The landing
// point is clamped to LeapCap along the direction to the target so the cat
// never overshoots past it. Used directly by the demo replay.
func ArmPounce(cat *components.Cat, pos components.Position, targetX, targetY float32, now time.Time, p PounceParams) {
	dist := distance(pos.X, pos.Y, targetX, targetY)
	endX, endY := targetX, targetY
	if dirX, dirY, ok := normalize(targetX-pos.X, targetY-pos.Y); ok && dist > p.LeapCap {
		endX = pos.X + dirX*p.LeapCap
		endY = pos.Y + dirY*p.LeapCap
	}

	cat.Pounce = components.Pounce{
		Active:    true,
		StartX:    pos.X,
		StartY:    pos.Y,
		EndX:      endX,
		EndY:      endY,
		StartedAt: now,
	}
	ForceMode(cat, components.ModePouncing, now)
}

// StartPounce registers a capture and arms the leap arc.
func StartPounce(cat *components.Cat, pos components.Position, targetX, targetY float32, now time.Time, p PounceParams) {
	ArmPounce(cat, pos, targetX, targetY, now, p)
	cat.LastCaptureAt = now
	cat.TotalCaptures++
}

// PounceProgress returns the arc progress in [0, 1] for the given instant.
// Negative elapsed (clock anomaly) clamps to zero so progress never runs
// backwards past the start.
func PounceProgress(startedAt, now time.Time, duration time.Duration) float32 {
	elapsed := now.Sub(startedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	if duration <= 0 {
		return 1
	}
	return clamp01(float32(elapsed.Seconds() / duration.Seconds()))
}

// PouncePosition evaluates the arc at progress t: linear travel in both axes
// with a parabolic lift of 4*peak*t*(1-t) subtracted from y (screen up), so
// the displayed height peaks at exactly peak when t = 0.5. Pure in t, safe to
// evaluate the same instant twice.
func PouncePosition(p components.Pounce, t, peak float32) (float32, float32) {
	x := lerp(p.StartX, p.EndX, t)
	y := lerp(p.StartY, p.EndY, t) - 4*peak*t*(1-t)
	return x, y
}

// AdvancePounce writes the arc position for this tick and reports completion.
// On completion the cat lands exactly on the arc end and the pounce disarms;
// the caller advances fatigue and resumes normal evaluation.
func AdvancePounce(cat *components.Cat, pos *components.Position, now time.Time, p PounceParams) (t float32, done bool) {
	t = PounceProgress(cat.Pounce.StartedAt, now, p.Duration)
	pos.X, pos.Y = PouncePosition(cat.Pounce, t, p.PeakHeight)

	if t >= 1 {
		pos.X, pos.Y = cat.Pounce.EndX, cat.Pounce.EndY
		cat.Pounce.Active = false
		return t, true
	}
	return t, false
}

// CancelPounce disarms an in-flight arc, e.g. when the control source changes
// or a demo override takes the tick branch over.
func CancelPounce(cat *components.Cat) {
	cat.Pounce.Active = false
}
