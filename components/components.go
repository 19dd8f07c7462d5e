// Package components defines the ECS component payloads for the chase.
package components

import "time"

// Position is a 2D position in screen space.
type Position struct {
	X, Y float32
}

// Velocity is a 2D velocity in px per 60Hz frame.
type Velocity struct {
	X, Y float32
}

// Body holds the collision/render radius.
type Body struct {
	Radius float32
}

// Mode is the cat's behavioral state. Exactly one mode is active at a time;
// the transient modes (preparing, pouncing, resting, eating) own the cat's
// position and suppress normal chase evaluation.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeCurious
	ModeRunning
	ModeExcited
	ModePreparing
	ModePouncing
	ModeResting
	ModeEating
)

var modeNames = [...]string{
	ModeIdle:      "idle",
	ModeCurious:   "curious",
	ModeRunning:   "running",
	ModeExcited:   "excited",
	ModePreparing: "preparing",
	ModePouncing:  "pouncing",
	ModeResting:   "resting",
	ModeEating:    "eating",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Pounce holds the in-flight capture arc. Valid only while Active; the arc
// is recomputed from elapsed time each tick, so writing the same instant
// twice produces the same position.
type Pounce struct {
	Active         bool
	StartX, StartY float32
	EndX, EndY     float32
	StartedAt      time.Time
}

// Cat is the pursuer's behavioral state.
type Cat struct {
	Mode      Mode
	ModeSince time.Time

	// FacingLeft is derived from the sign of the horizontal offset to the target.
	FacingLeft bool

	// PrepareLatch is the sticky prepare-zone flag: set on prepare entry,
	// cleared only when the nose distance rises back above the prepare radius.
	PrepareLatch bool

	ConsecutiveCaptures int
	RestThreshold       int
	TotalCaptures       int

	LastCaptureAt time.Time
	RestStartedAt time.Time
	EatStartedAt  time.Time
	LastStepAt    time.Time

	Pounce Pounce
}

// Yarn is the target's state. Position lives in the Position component;
// Yarn tracks the previous sample for the derived pointer speed.
type Yarn struct {
	PrevX, PrevY float32
	LastSampleAt time.Time
	HasSample    bool

	// PointerSpeed is the derived input speed in px/sec.
	PointerSpeed float32
}
