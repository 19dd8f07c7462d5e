package gesture

import (
	"testing"
	"time"
)

func TestScriptedTrackerStaysOnScreen(t *testing.T) {
	tr := &ScriptedTracker{Width: 1280, Height: 720}
	now := time.Unix(1000, 0)

	for i := 0; i < 600; i++ {
		now = now.Add(16 * time.Millisecond)
		sample, ok := tr.Poll(now)
		if !ok {
			t.Fatalf("tick %d: unexpected miss with dropouts disabled", i)
		}
		if sample.X < 0 || sample.X > 1280 || sample.Y < 0 || sample.Y > 720 {
			t.Fatalf("tick %d: sample (%v,%v) off screen", i, sample.X, sample.Y)
		}
		if !sample.OpenHand {
			t.Fatalf("tick %d: hand closed with no grip period", i)
		}
	}
}

func TestScriptedTrackerDropouts(t *testing.T) {
	tr := &ScriptedTracker{
		Width: 1280, Height: 720,
		HoldEvery: time.Second,
		HoldFor:   100 * time.Millisecond,
	}
	start := time.Unix(1000, 0)
	tr.Poll(start)

	var misses int
	now := start
	for i := 0; i < 600; i++ {
		now = now.Add(16 * time.Millisecond)
		if _, ok := tr.Poll(now); !ok {
			misses++
		}
	}
	if misses == 0 {
		t.Fatal("expected periodic detection misses")
	}
	// Roughly 10% dropout over ~9.6s
	if misses > 120 {
		t.Fatalf("misses = %d, want well under 120", misses)
	}
}

func TestScriptedTrackerGripCadence(t *testing.T) {
	tr := &ScriptedTracker{
		Width: 1280, Height: 720,
		GripPeriod: 2 * time.Second,
	}
	start := time.Unix(1000, 0)
	tr.Poll(start)

	open, _ := tr.Poll(start.Add(500 * time.Millisecond))
	closed, _ := tr.Poll(start.Add(1500 * time.Millisecond))
	if !open.OpenHand {
		t.Error("expected open hand in the first half of the grip period")
	}
	if closed.OpenHand {
		t.Error("expected closed hand in the second half of the grip period")
	}
}
