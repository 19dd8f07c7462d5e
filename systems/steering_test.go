package systems

import (
	"testing"
	"time"

	"github.com/pthm-cable/pounce/components"
)

func testSteerParams() SteerParams {
	return SteerParams{
		Smoothing:         0.18,
		Friction:          0.90,
		BaseSpeed:         3.0,
		MaxSpeed:          9.0,
		ActivityThreshold: 250,
		BonusGain:         0.004,
		BonusCap:          3.0,
		NearRadius:        120,
		NearBoost:         1.35,
		FarRadius:         600,
		FarPenalty:        0.85,
	}
}

func TestDesiredSpeed(t *testing.T) {
	p := testSteerParams()

	tests := []struct {
		name         string
		pointerSpeed float32
		centerDist   float32
		want         float32
	}{
		{"base speed at rest", 0, 300, 3.0},
		{"below activity threshold no bonus", 249, 300, 3.0},
		{"bonus proportional over threshold", 750, 300, 5.0},
		{"bonus capped", 5000, 300, 6.0},
		{"near boost", 0, 100, 3.0 * 1.35},
		{"far penalty", 0, 700, 3.0 * 0.85},
		{"capped bonus with near boost", 5000, 100, 8.1}, // (3+3)*1.35
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DesiredSpeed(tt.pointerSpeed, tt.centerDist, p)
			if diff := got - tt.want; diff > 0.001 || diff < -0.001 {
				t.Errorf("DesiredSpeed(%v, %v) = %v, want %v", tt.pointerSpeed, tt.centerDist, got, tt.want)
			}
		})
	}
}

func TestDesiredSpeedNeverExceedsMax(t *testing.T) {
	p := testSteerParams()
	p.NearBoost = 10

	got := DesiredSpeed(100000, 10, p)
	if got != p.MaxSpeed {
		t.Errorf("speed = %v, want clamp to %v", got, p.MaxSpeed)
	}
}

func TestSteerApproachesStationaryTarget(t *testing.T) {
	// A stationary target 200px away: center distance must strictly
	// decrease until inside the stop radius, then velocity decays to ~0.
	p := testSteerParams()
	stopRadius := float32(30)

	pos := components.Position{X: 100, Y: 100}
	vel := components.Velocity{}
	targetX, targetY := float32(300), float32(100)

	prev := distance(pos.X, pos.Y, targetX, targetY)
	settledAt := -1
	for i := 0; i < 600; i++ {
		d := distance(pos.X, pos.Y, targetX, targetY)
		if d <= stopRadius {
			settledAt = i
			break
		}
		Steer(&pos, &vel, targetX, targetY, 0, d, 1, p)
		next := distance(pos.X, pos.Y, targetX, targetY)
		if next >= prev {
			t.Fatalf("tick %d: distance did not decrease (%f -> %f)", i, prev, next)
		}
		prev = next
	}
	if settledAt < 0 {
		t.Fatal("never reached the stop radius")
	}

	// Coast: velocity decays toward zero.
	before := velocityMagnitude(vel.X, vel.Y)
	for i := 0; i < 120; i++ {
		Coast(&pos, &vel, 1, p)
	}
	after := velocityMagnitude(vel.X, vel.Y)
	if after >= before || after > 0.01 {
		t.Errorf("coast velocity = %f (was %f), want decay toward 0", after, before)
	}
}

func TestSteerDegenerateDirection(t *testing.T) {
	p := testSteerParams()
	pos := components.Position{X: 100, Y: 100}
	vel := components.Velocity{}

	// Already exactly on the target: no impulse.
	Steer(&pos, &vel, 100, 100, 0, 0, 1, p)
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("velocity = (%f, %f), want no impulse on zero direction", vel.X, vel.Y)
	}
}

func TestSteerScalesWithFrameDelta(t *testing.T) {
	p := testSteerParams()

	posA := components.Position{}
	velA := components.Velocity{X: 2, Y: 0}
	Steer(&posA, &velA, 1000, 0, 0, 1000, 2, p)

	posB := components.Position{}
	velB := components.Velocity{X: 2, Y: 0}
	Steer(&posB, &velB, 1000, 0, 0, 1000, 1, p)

	if posA.X <= posB.X {
		t.Errorf("double frame delta moved %f, single moved %f; want more travel", posA.X, posB.X)
	}
}

func TestStepMark(t *testing.T) {
	now := time.Unix(100, 0)
	minInterval := 180 * time.Millisecond

	cat := &components.Cat{}

	// Too little movement: no print.
	if StepMark(cat, 1.0, now, 2.5, minInterval) {
		t.Error("step below min move should not mark")
	}

	// Enough movement: first print fires.
	if !StepMark(cat, 3.0, now, 2.5, minInterval) {
		t.Error("first qualifying step should mark")
	}

	// Within the interval: suppressed.
	if StepMark(cat, 3.0, now.Add(50*time.Millisecond), 2.5, minInterval) {
		t.Error("step within min interval should not mark")
	}

	// After the interval: fires again.
	if !StepMark(cat, 3.0, now.Add(200*time.Millisecond), 2.5, minInterval) {
		t.Error("step after min interval should mark")
	}
}
