package systems

import "github.com/pthm-cable/pounce/components"

// Trail is a bounded FIFO of recent yarn positions, consumed only by the
// render layer. Oldest entries are evicted once capacity is reached.
type Trail struct {
	buf        []components.Position
	writeIndex int
	count      int
	minDistSq  float32
}

// NewTrail creates a trail with the given capacity and minimum sample
// spacing; samples closer than minDist to the newest entry are dropped.
func NewTrail(capacity int, minDist float32) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{
		buf:       make([]components.Position, capacity),
		minDistSq: minDist * minDist,
	}
}

// Push appends a position, evicting the oldest entry when full.
func (t *Trail) Push(x, y float32) {
	if t.count > 0 {
		newest := t.buf[(t.writeIndex+len(t.buf)-1)%len(t.buf)]
		if distanceSq(newest.X, newest.Y, x, y) < t.minDistSq {
			return
		}
	}
	t.buf[t.writeIndex] = components.Position{X: x, Y: y}
	t.writeIndex = (t.writeIndex + 1) % len(t.buf)
	if t.count < len(t.buf) {
		t.count++
	}
}

// Len returns the number of stored positions.
func (t *Trail) Len() int {
	return t.count
}

// Positions returns the stored positions oldest first.
func (t *Trail) Positions() []components.Position {
	out := make([]components.Position, 0, t.count)
	start := t.writeIndex - t.count
	for i := 0; i < t.count; i++ {
		out = append(out, t.buf[(start+i+len(t.buf))%len(t.buf)])
	}
	return out
}

// Clear drops all stored positions.
func (t *Trail) Clear() {
	t.count = 0
	t.writeIndex = 0
}
