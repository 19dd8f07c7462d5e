package systems

import (
	"math"
	"testing"
	"time"

	"github.com/pthm-cable/pounce/components"
)

func testPounceParams() PounceParams {
	return PounceParams{
		Cooldown:   1200 * time.Millisecond,
		Duration:   450 * time.Millisecond,
		PeakHeight: 60,
		LeapCap:    140,
	}
}

func TestCanPounceCooldown(t *testing.T) {
	p := testPounceParams()
	now := time.Unix(1000, 0)

	tests := []struct {
		name string
		last time.Time
		zone Zone
		want bool
	}{
		{"never captured", time.Time{}, ZoneCapture, true},
		{"cooldown elapsed", now.Add(-2 * time.Second), ZoneCapture, true},
		{"cooldown exactly elapsed", now.Add(-p.Cooldown), ZoneCapture, true},
		{"within cooldown", now.Add(-500 * time.Millisecond), ZoneCapture, false},
		{"wrong zone", time.Time{}, ZonePrepare, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &components.Cat{LastCaptureAt: tt.last}
			if got := CanPounce(cat, tt.zone, now, p.Cooldown); got != tt.want {
				t.Errorf("CanPounce = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanPounceBlockedWhileActive(t *testing.T) {
	p := testPounceParams()
	cat := &components.Cat{}
	cat.Pounce.Active = true

	if CanPounce(cat, ZoneCapture, time.Unix(1000, 0), p.Cooldown) {
		t.Error("in-flight pounce must block a new trigger")
	}
}

func TestStartPounceRegistersCapture(t *testing.T) {
	p := testPounceParams()
	now := time.Unix(1000, 0)
	cat := &components.Cat{}
	pos := components.Position{X: 100, Y: 100}

	StartPounce(cat, pos, 150, 100, now, p)

	if cat.TotalCaptures != 1 {
		t.Errorf("total captures = %d, want 1", cat.TotalCaptures)
	}
	if !cat.LastCaptureAt.Equal(now) {
		t.Error("capture time not recorded")
	}
	if cat.Mode != components.ModePouncing {
		t.Errorf("mode = %v, want pouncing", cat.Mode)
	}
	if !cat.Pounce.Active {
		t.Error("pounce not armed")
	}
	// Within the leap cap: lands exactly on the target.
	if cat.Pounce.EndX != 150 || cat.Pounce.EndY != 100 {
		t.Errorf("arc end = (%f, %f), want (150, 100)", cat.Pounce.EndX, cat.Pounce.EndY)
	}
}

func TestStartPounceLeapCapped(t *testing.T) {
	p := testPounceParams()
	cat := &components.Cat{}
	pos := components.Position{X: 0, Y: 0}

	StartPounce(cat, pos, 1000, 0, time.Unix(1000, 0), p)

	if cat.Pounce.EndX != p.LeapCap || cat.Pounce.EndY != 0 {
		t.Errorf("arc end = (%f, %f), want capped at (%f, 0)", cat.Pounce.EndX, cat.Pounce.EndY, p.LeapCap)
	}
}

func TestPounceProgressClamps(t *testing.T) {
	start := time.Unix(1000, 0)
	dur := 450 * time.Millisecond

	tests := []struct {
		name string
		now  time.Time
		want float32
	}{
		{"negative elapsed clamps to 0", start.Add(-time.Second), 0},
		{"at start", start, 0},
		{"midpoint", start.Add(225 * time.Millisecond), 0.5},
		{"at end", start.Add(dur), 1},
		{"past end clamps to 1", start.Add(time.Minute), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PounceProgress(start, tt.now, dur)
			if math.Abs(float64(got-tt.want)) > 0.001 {
				t.Errorf("progress = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPouncePositionArcPeak(t *testing.T) {
	// At t=0.5 the lift term is 4*peak*0.5*0.5 = peak exactly.
	arc := components.Pounce{StartX: 0, StartY: 100, EndX: 140, EndY: 60}
	peak := float32(60)

	x, y := PouncePosition(arc, 0.5, peak)
	wantX := float32(70)
	wantY := float32(80) - peak // midpoint lerp minus full peak
	if math.Abs(float64(x-wantX)) > 0.001 || math.Abs(float64(y-wantY)) > 0.001 {
		t.Errorf("arc midpoint = (%f, %f), want (%f, %f)", x, y, wantX, wantY)
	}

	// Endpoints have zero lift.
	if _, y := PouncePosition(arc, 0, peak); y != arc.StartY {
		t.Errorf("start y = %f, want %f", y, arc.StartY)
	}
	if _, y := PouncePosition(arc, 1, peak); y != arc.EndY {
		t.Errorf("end y = %f, want %f", y, arc.EndY)
	}
}

func TestAdvancePounceIdempotentAndCompletes(t *testing.T) {
	p := testPounceParams()
	now := time.Unix(1000, 0)
	cat := &components.Cat{}
	pos := components.Position{X: 0, Y: 0}

	StartPounce(cat, pos, 100, 0, now, p)

	// Evaluating the same instant twice writes the same position.
	mid := now.Add(p.Duration / 2)
	posA := pos
	AdvancePounce(cat, &posA, mid, p)
	posB := pos
	AdvancePounce(cat, &posB, mid, p)
	if posA != posB {
		t.Errorf("same instant produced different positions: %v vs %v", posA, posB)
	}

	// Completion lands exactly on the arc end and disarms.
	tProg, done := AdvancePounce(cat, &pos, now.Add(p.Duration), p)
	if !done || tProg < 1 {
		t.Fatalf("done = %v, t = %f; want completion at duration", done, tProg)
	}
	if pos.X != cat.Pounce.EndX || pos.Y != cat.Pounce.EndY {
		t.Errorf("landing = (%f, %f), want arc end (%f, %f)", pos.X, pos.Y, cat.Pounce.EndX, cat.Pounce.EndY)
	}
	if cat.Pounce.Active {
		t.Error("pounce should disarm on completion")
	}
}

func TestCooldownSpacingProperty(t *testing.T) {
	// Simulate the target glued to the nose: registered captures must never
	// be closer together than the cooldown.
	p := testPounceParams()
	chase := testChaseParams()
	cat := &components.Cat{RestThreshold: 1 << 30}
	pos := components.Position{X: 100, Y: 100}

	var captureTimes []time.Time
	now := time.Unix(1000, 0)
	for i := 0; i < 600; i++ {
		now = now.Add(16 * time.Millisecond)

		if cat.Pounce.Active {
			AdvancePounce(cat, &pos, now, p)
			continue
		}

		// Target sits right on the nose point.
		targetX, targetY := NosePoint(pos, pos.X+1, chase)
		prox := Classify(pos, cat, targetX, targetY, chase)
		if CanPounce(cat, prox.Zone, now, p.Cooldown) {
			StartPounce(cat, pos, targetX, targetY, now, p)
			captureTimes = append(captureTimes, now)
		}
	}

	if len(captureTimes) < 2 {
		t.Fatalf("expected repeated captures, got %d", len(captureTimes))
	}
	for i := 1; i < len(captureTimes); i++ {
		gap := captureTimes[i].Sub(captureTimes[i-1])
		if gap < p.Cooldown {
			t.Errorf("captures %d and %d only %v apart, cooldown %v", i-1, i, gap, p.Cooldown)
		}
	}
}
