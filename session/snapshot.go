package session

import (
	"time"

	"github.com/pthm-cable/pounce/components"
	"github.com/pthm-cable/pounce/systems"
)

// Snapshot is the read-only view the presentation layer renders from. It is
// value-copied out of the world so the renderer never aliases live state.
type Snapshot struct {
	Tick int32

	CatX, CatY float32
	VelX, VelY float32
	FacingLeft bool
	Mode       components.Mode
	MoodLabel  string
	ModeSince  time.Time

	Zone           systems.Zone
	CenterDistance float32
	NoseDistance   float32
	NoseX, NoseY   float32

	TargetX, TargetY float32
	PointerSpeed     float32
	Source           ControlSource
	OpenHand         bool

	PounceActive   bool
	PounceProgress float32

	TotalCaptures       int
	ConsecutiveCaptures int
	RestThreshold       int

	FoodActive   bool
	FoodX, FoodY float32

	DemoActive bool

	Trail []components.Position

	// Events accumulated since the previous snapshot. Taking a snapshot
	// drains the queue.
	Events []Event
}

// Snapshot captures the current state and drains pending events.
func (s *Session) Snapshot(now time.Time) Snapshot {
	pos := s.posMap.Get(s.catEntity)
	vel := s.velMap.Get(s.catEntity)
	cat := s.catMap.Get(s.catEntity)
	yarnPos := s.posMap.Get(s.yarnEntity)
	yarn := s.yarnMap.Get(s.yarnEntity)

	snap := Snapshot{
		Tick: s.tick,

		CatX:       pos.X,
		CatY:       pos.Y,
		VelX:       vel.X,
		VelY:       vel.Y,
		FacingLeft: cat.FacingLeft,
		Mode:       cat.Mode,
		MoodLabel:  cat.Mode.String(),
		ModeSince:  cat.ModeSince,

		Zone:           s.lastProx.Zone,
		CenterDistance: s.lastProx.CenterDistance,
		NoseDistance:   s.lastProx.NoseDistance,
		NoseX:          s.lastProx.NoseX,
		NoseY:          s.lastProx.NoseY,

		TargetX:      yarnPos.X,
		TargetY:      yarnPos.Y,
		PointerSpeed: yarn.PointerSpeed,
		Source:       s.source,
		OpenHand:     s.openHand,

		PounceActive: cat.Pounce.Active,

		TotalCaptures:       cat.TotalCaptures,
		ConsecutiveCaptures: cat.ConsecutiveCaptures,
		RestThreshold:       cat.RestThreshold,

		FoodActive: s.foodActive,
		FoodX:      s.foodX,
		FoodY:      s.foodY,

		DemoActive: s.demo != nil,

		Trail: s.trail.Positions(),
	}
	if cat.Pounce.Active {
		snap.PounceProgress = systems.PounceProgress(cat.Pounce.StartedAt, now, s.pounce.Duration)
	}

	snap.Events = s.events
	s.events = nil
	return snap
}
