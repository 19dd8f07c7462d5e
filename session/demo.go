package session

import (
	"math"
	"time"

	"github.com/pthm-cable/pounce/components"
	"github.com/pthm-cable/pounce/systems"
)

// demoOverride holds the state saved when the attract-mode demo takes over,
// so exiting restores the interactive session exactly.
type demoOverride struct {
	catPos  components.Position
	catVel  components.Velocity
	cat     components.Cat
	yarnPos components.Position
	yarn    components.Yarn

	foodActive bool
	foodX      float32
	foodY      float32

	startedAt  time.Time
	lastReplay time.Time
}

// replayIdleWindow is how long the demo waits without a natural capture
// before forcing a pounce arc so the showcase never stalls.
const replayIdleWindow = 6 * time.Second

// EnterDemo starts the scripted attract mode, opening with a showcase of the
// requested mode. Live state is copied aside and the demo drives the yarn
// along a sweeping flutter path; everything the cat does in demo mode is
// discarded on exit.
func (s *Session) EnterDemo(now time.Time, target components.Mode) {
	if s.demo != nil {
		return
	}
	s.demo = &demoOverride{
		catPos:     *s.posMap.Get(s.catEntity),
		catVel:     *s.velMap.Get(s.catEntity),
		cat:        *s.catMap.Get(s.catEntity),
		yarnPos:    *s.posMap.Get(s.yarnEntity),
		yarn:       *s.yarnMap.Get(s.yarnEntity),
		foodActive: s.foodActive,
		foodX:      s.foodX,
		foodY:      s.foodY,
		startedAt:  now,
		lastReplay: now,
	}
	s.cancelTransient(now)
	s.trail.Clear()
	s.forceShowcase(now, target)
}

// forceShowcase puts the cat into the requested demo mode directly, skipping
// the guards the normal tick would apply. Pouncing is restarted even when it
// is already the current mode, so repeated pounce showcases replay the arc.
func (s *Session) forceShowcase(now time.Time, target components.Mode) {
	cat := s.catMap.Get(s.catEntity)
	pos := s.posMap.Get(s.catEntity)

	switch target {
	case components.ModePouncing:
		x, y := s.demoTarget(now)
		systems.ArmPounce(cat, *pos, x, y, now, s.pounce)
		s.particles.EmitSparkles(x, y)
		s.demo.lastReplay = now
	case components.ModeResting:
		systems.ForceMode(cat, components.ModeResting, now)
		cat.RestStartedAt = now
	case components.ModeEating:
		s.foodActive = true
		s.foodX, s.foodY = pos.X, pos.Y
		s.startEating(cat, now, pos)
	default:
		systems.ForceMode(cat, target, now)
	}
}

// ExitDemo restores the pre-demo session state. Any pounce that was in
// flight when the demo started is cancelled rather than resumed, since its
// arc timestamps are stale by now.
func (s *Session) ExitDemo(now time.Time) {
	d := s.demo
	if d == nil {
		return
	}
	s.demo = nil

	*s.posMap.Get(s.catEntity) = d.catPos
	*s.velMap.Get(s.catEntity) = d.catVel
	*s.catMap.Get(s.catEntity) = d.cat
	*s.posMap.Get(s.yarnEntity) = d.yarnPos
	*s.yarnMap.Get(s.yarnEntity) = d.yarn
	s.foodActive = d.foodActive
	s.foodX, s.foodY = d.foodX, d.foodY

	s.cancelTransient(now)
	s.trail.Clear()
}

// DemoActive reports whether the attract mode is running.
func (s *Session) DemoActive() bool {
	return s.demo != nil
}

// updateDemo advances one demo tick: move the yarn along the scripted path,
// then run the ordinary chase against it.
func (s *Session) updateDemo(now time.Time, dt float32) {
	x, y := s.demoTarget(now)
	s.applySample(x, y, now)
	s.stepChase(now, dt, x, y, false)

	cat := s.catMap.Get(s.catEntity)
	if cat.Pounce.Active || cat.Mode == components.ModeResting {
		s.demo.lastReplay = now
		return
	}
	if now.Sub(s.demo.lastReplay) >= replayIdleWindow {
		// Force a showcase arc without registering a capture.
		pos := s.posMap.Get(s.catEntity)
		systems.ArmPounce(cat, *pos, x, y, now, s.pounce)
		s.particles.EmitSparkles(x, y)
		s.demo.lastReplay = now
	}
}

// demoTarget is the scripted yarn path: a horizontal sweep across the screen
// with a vertical flutter, sized from config so it scales with the window.
func (s *Session) demoTarget(now time.Time) (float32, float32) {
	elapsed := now.Sub(s.demo.startedAt).Seconds()
	w := float64(s.cfg.Derived.ScreenW32)
	h := float64(s.cfg.Derived.ScreenH32)

	sweepPhase := elapsed * s.cfg.Demo.SweepSpeed / w * 2 * math.Pi
	x := w*0.5 + w*0.35*math.Sin(sweepPhase)
	y := h*0.5 + s.cfg.Demo.FlutterAmplitude*math.Sin(x*s.cfg.Demo.FlutterFrequency*2*math.Pi+elapsed)
	return float32(x), float32(y)
}
