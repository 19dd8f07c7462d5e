package systems

import (
	"github.com/pthm-cable/pounce/components"
)

// Zone is the discrete proximity classification for one tick.
type Zone uint8

const (
	// ZoneChase: the cat is outside all special radii and should steer in.
	ZoneChase Zone = iota
	// ZoneSettled: center distance within the stop radius; coast to a stop.
	ZoneSettled
	// ZonePrepare: nose distance between trigger and prepare radii.
	ZonePrepare
	// ZoneCapture: nose distance within the capture radius.
	ZoneCapture
)

var zoneNames = [...]string{
	ZoneChase:   "chase",
	ZoneSettled: "settled",
	ZonePrepare: "prepare",
	ZoneCapture: "capture",
}

func (z Zone) String() string {
	if int(z) < len(zoneNames) {
		return zoneNames[z]
	}
	return "unknown"
}

// ChaseParams holds the classification radii and nose offsets.
type ChaseParams struct {
	NoseOffset    float32
	NoseOffsetY   float32
	CaptureRadius float32
	TriggerRadius float32
	PrepareRadius float32
	StopRadius    float32
}

// Proximity is the classifier output for one tick.
type Proximity struct {
	CenterDistance float32
	NoseDistance   float32
	NoseX, NoseY   float32
	Zone           Zone
}

// NosePoint returns the cat's contact probe: center plus a lateral offset
// toward the target plus a fixed vertical offset.
func NosePoint(pos components.Position, targetX float32, p ChaseParams) (float32, float32) {
	offset := p.NoseOffset
	if targetX < pos.X {
		offset = -offset
	}
	return pos.X + offset, pos.Y + p.NoseOffsetY
}

// Classify computes center and nose distances to the target and derives the
// zone. The prepare latch on the cat is sticky: once set it holds the prepare
// classification until the nose distance rises back above the prepare radius,
// which keeps the mood from flickering right at the boundary.
func Classify(pos components.Position, cat *components.Cat, targetX, targetY float32, p ChaseParams) Proximity {
	noseX, noseY := NosePoint(pos, targetX, p)

	prox := Proximity{
		CenterDistance: distance(pos.X, pos.Y, targetX, targetY),
		NoseDistance:   distance(noseX, noseY, targetX, targetY),
		NoseX:          noseX,
		NoseY:          noseY,
	}

	switch {
	case prox.NoseDistance < p.CaptureRadius:
		prox.Zone = ZoneCapture
	case prox.NoseDistance >= p.TriggerRadius && prox.NoseDistance < p.PrepareRadius:
		prox.Zone = ZonePrepare
	case prox.CenterDistance <= p.StopRadius:
		prox.Zone = ZoneSettled
	default:
		prox.Zone = ZoneChase
	}

	// Latch update. Entry into prepare sets it; only rising strictly above
	// the outer radius clears it, so sitting exactly on the prepare boundary
	// keeps the latched classification.
	if prox.Zone == ZonePrepare {
		cat.PrepareLatch = true
	} else if prox.NoseDistance > p.PrepareRadius {
		cat.PrepareLatch = false
	}
	if cat.PrepareLatch && prox.Zone == ZoneChase {
		prox.Zone = ZonePrepare
	}

	return prox
}
