package systems

import (
	"testing"

	"github.com/pthm-cable/pounce/components"
)

func TestTrailBoundAndOrder(t *testing.T) {
	trail := NewTrail(4, 0)

	for i := 0; i < 10; i++ {
		trail.Push(float32(i), 0)
		if trail.Len() > 4 {
			t.Fatalf("trail length %d exceeds capacity 4", trail.Len())
		}
	}

	got := trail.Positions()
	want := []components.Position{{X: 6}, {X: 7}, {X: 8}, {X: 9}}
	if len(got) != len(want) {
		t.Fatalf("trail length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("trail[%d] = %v, want %v (oldest first)", i, got[i], want[i])
		}
	}
}

func TestTrailMinSampleDistance(t *testing.T) {
	trail := NewTrail(8, 6)

	trail.Push(0, 0)
	trail.Push(2, 0) // too close to the newest entry
	trail.Push(10, 0)

	if trail.Len() != 2 {
		t.Errorf("trail length = %d, want 2 (close sample dropped)", trail.Len())
	}
}

func TestTrailPartialFill(t *testing.T) {
	trail := NewTrail(8, 0)
	trail.Push(1, 1)
	trail.Push(2, 2)

	got := trail.Positions()
	if len(got) != 2 || got[0].X != 1 || got[1].X != 2 {
		t.Errorf("partial trail = %v, want [(1,1) (2,2)]", got)
	}
}

func TestTrailClear(t *testing.T) {
	trail := NewTrail(4, 0)
	trail.Push(1, 1)
	trail.Clear()
	if trail.Len() != 0 {
		t.Errorf("length after clear = %d, want 0", trail.Len())
	}
}
