package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/pounce/components"
)

func testChaseParams() ChaseParams {
	return ChaseParams{
		NoseOffset:    35,
		NoseOffsetY:   -15,
		CaptureRadius: 25,
		TriggerRadius: 45,
		PrepareRadius: 70,
		StopRadius:    30,
	}
}

func TestNosePointFollowsTargetSide(t *testing.T) {
	p := testChaseParams()
	pos := components.Position{X: 100, Y: 100}

	// Target to the right: nose offset to the right.
	nx, ny := NosePoint(pos, 500, p)
	if nx != 135 || ny != 85 {
		t.Errorf("right-side nose = (%f, %f), want (135, 85)", nx, ny)
	}

	// Target to the left: offset flips.
	nx, _ = NosePoint(pos, 0, p)
	if nx != 65 {
		t.Errorf("left-side nose x = %f, want 65", nx)
	}
}

func TestClassifyZones(t *testing.T) {
	p := testChaseParams()

	tests := []struct {
		name string
		// Target directly right of the nose at this distance.
		noseDist float32
		want     Zone
	}{
		{"capture inside radius", 10, ZoneCapture},
		{"capture just inside", 24.9, ZoneCapture},
		{"between capture and trigger", 35, ZoneChase},
		{"prepare at trigger", 45, ZonePrepare},
		{"prepare mid band", 60, ZonePrepare},
		{"chase beyond prepare", 200, ZoneChase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &components.Cat{}
			pos := components.Position{X: 100, Y: 100}
			// Place the target on the nose's horizontal line so the nose
			// distance equals the requested value exactly.
			targetX := pos.X + p.NoseOffset + tt.noseDist
			targetY := pos.Y + p.NoseOffsetY

			prox := Classify(pos, cat, targetX, targetY, p)
			if math.Abs(float64(prox.NoseDistance-tt.noseDist)) > 0.001 {
				t.Fatalf("nose distance = %f, want %f", prox.NoseDistance, tt.noseDist)
			}
			if prox.Zone != tt.want {
				t.Errorf("zone = %v, want %v", prox.Zone, tt.want)
			}
		})
	}
}

func TestClassifySettled(t *testing.T) {
	p := testChaseParams()
	cat := &components.Cat{}
	pos := components.Position{X: 100, Y: 100}

	// Target slightly left-below center: center distance under the stop
	// radius but nose distance outside the capture radius.
	prox := Classify(pos, cat, 80, 120, p)
	if prox.CenterDistance > p.StopRadius {
		t.Fatalf("center distance = %f, want <= %f", prox.CenterDistance, p.StopRadius)
	}
	if prox.Zone != ZoneSettled {
		t.Errorf("zone = %v, want settled", prox.Zone)
	}
}

func TestPrepareLatchHoldsAtBoundary(t *testing.T) {
	p := testChaseParams()
	cat := &components.Cat{}
	pos := components.Position{X: 100, Y: 100}

	place := func(noseDist float32) Proximity {
		return Classify(pos, cat, pos.X+p.NoseOffset+noseDist, pos.Y+p.NoseOffsetY, p)
	}

	// Enter the prepare band: latch sets.
	if prox := place(p.PrepareRadius - 1); prox.Zone != ZonePrepare {
		t.Fatalf("entering band: zone = %v, want prepare", prox.Zone)
	}
	if !cat.PrepareLatch {
		t.Fatal("latch should be set after prepare entry")
	}

	// Oscillate between exactly the boundary and one unit inside: the
	// latched classification must hold with no flicker.
	for i := 0; i < 10; i++ {
		if prox := place(p.PrepareRadius); prox.Zone != ZonePrepare {
			t.Fatalf("at boundary (iter %d): zone = %v, want prepare", i, prox.Zone)
		}
		if prox := place(p.PrepareRadius - 1); prox.Zone != ZonePrepare {
			t.Fatalf("inside boundary (iter %d): zone = %v, want prepare", i, prox.Zone)
		}
	}

	// Rising strictly above the radius clears the latch.
	if prox := place(p.PrepareRadius + 1); prox.Zone != ZoneChase {
		t.Errorf("above boundary: zone = %v, want chase", prox.Zone)
	}
	if cat.PrepareLatch {
		t.Error("latch should clear above the prepare radius")
	}
}

func TestPrepareLatchOneTransitionPerCrossing(t *testing.T) {
	p := testChaseParams()
	cat := &components.Cat{}
	pos := components.Position{X: 100, Y: 100}

	place := func(noseDist float32) Zone {
		return Classify(pos, cat, pos.X+p.NoseOffset+noseDist, pos.Y+p.NoseOffsetY, p).Zone
	}

	transitions := 0
	crossings := 0
	last := place(p.PrepareRadius + 1)
	for i := 0; i < 20; i++ {
		var d float32
		if i%2 == 0 {
			d = p.PrepareRadius - 1
		} else {
			d = p.PrepareRadius + 1
		}
		crossings++
		z := place(d)
		if z != last {
			transitions++
		}
		last = z
	}

	if transitions > crossings {
		t.Errorf("zone thrashed: %d transitions for %d boundary crossings", transitions, crossings)
	}
}
