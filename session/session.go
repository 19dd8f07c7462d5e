// Package session implements the chase simulation core: one cat pursuing one
// yarn target, advanced a tick at a time by an external driver. The package
// is free of rendering concerns; the presentation layer consumes immutable
// snapshots and the pooled particle effects.
package session

import (
	"math"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pounce/components"
	"github.com/pthm-cable/pounce/config"
	"github.com/pthm-cable/pounce/systems"
)

// ControlSource selects which input feed drives the yarn.
type ControlSource uint8

const (
	SourcePointer ControlSource = iota
	SourceGesture
)

func (c ControlSource) String() string {
	if c == SourceGesture {
		return "gesture"
	}
	return "pointer"
}

// InputSample is one target-position sample from an input feed.
type InputSample struct {
	X, Y     float32
	At       time.Time
	OpenHand bool
}

// referenceFrame is the frame time the steering constants are tuned for.
const referenceFrame = time.Second / 60

// maxFrameDelta caps catch-up after a stall so a backgrounded window does
// not slingshot the cat.
const maxFrameDelta = 4.0

// Session owns the simulation state for one chase. All methods must be
// called from the tick driver's goroutine; timing comes exclusively from the
// time passed to Update, so tests can drive a fake clock.
type Session struct {
	cfg *config.Config
	rng *rand.Rand

	world      *ecs.World
	catMapper  *ecs.Map4[components.Position, components.Velocity, components.Body, components.Cat]
	yarnMapper *ecs.Map3[components.Position, components.Body, components.Yarn]
	posMap     *ecs.Map1[components.Position]
	velMap     *ecs.Map1[components.Velocity]
	catMap     *ecs.Map1[components.Cat]
	yarnMap    *ecs.Map1[components.Yarn]

	catEntity  ecs.Entity
	yarnEntity ecs.Entity

	trail     *systems.Trail
	particles *systems.ParticleSystem

	chase   systems.ChaseParams
	steer   systems.SteerParams
	pounce  systems.PounceParams
	fatigue systems.FatigueParams
	mood    systems.MoodParams

	source   ControlSource
	soundOn  bool
	openHand bool

	foodActive bool
	foodX      float32
	foodY      float32

	demo *demoOverride

	events     []Event
	lastProx   systems.Proximity
	lastUpdate time.Time
	tick       int32
}

// New creates a session with the cat at its default spot and the yarn at
// screen center. The rng seeds fatigue-threshold randomization, so runs with
// the same seed and clock are reproducible.
func New(cfg *config.Config, seed int64) *Session {
	world := ecs.NewWorld()

	s := &Session{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		world: world,
		catMapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Body,
			components.Cat,
		](world),
		yarnMapper: ecs.NewMap3[
			components.Position,
			components.Body,
			components.Yarn,
		](world),
		posMap:  ecs.NewMap1[components.Position](world),
		velMap:  ecs.NewMap1[components.Velocity](world),
		catMap:  ecs.NewMap1[components.Cat](world),
		yarnMap: ecs.NewMap1[components.Yarn](world),

		trail:     systems.NewTrail(cfg.Trail.MaxLength, float32(cfg.Trail.MinSampleDist)),
		particles: systems.NewParticleSystem(),

		chase: systems.ChaseParams{
			NoseOffset:    float32(cfg.Chase.NoseOffset),
			NoseOffsetY:   float32(cfg.Chase.NoseOffsetY),
			CaptureRadius: float32(cfg.Chase.CaptureRadius),
			TriggerRadius: float32(cfg.Chase.TriggerRadius),
			PrepareRadius: float32(cfg.Chase.PrepareRadius),
			StopRadius:    float32(cfg.Chase.StopRadius),
		},
		steer: systems.SteerParams{
			Smoothing:         float32(cfg.Steering.Smoothing),
			Friction:          float32(cfg.Steering.Friction),
			BaseSpeed:         float32(cfg.Steering.BaseSpeed),
			MaxSpeed:          float32(cfg.Steering.MaxSpeed),
			ActivityThreshold: float32(cfg.Steering.ActivityThreshold),
			BonusGain:         float32(cfg.Steering.BonusGain),
			BonusCap:          float32(cfg.Steering.BonusCap),
			NearRadius:        float32(cfg.Steering.NearRadius),
			NearBoost:         float32(cfg.Steering.NearBoost),
			FarRadius:         float32(cfg.Steering.FarRadius),
			FarPenalty:        float32(cfg.Steering.FarPenalty),
		},
		pounce: systems.PounceParams{
			Cooldown:   cfg.Derived.PounceCooldown,
			Duration:   cfg.Derived.PounceDuration,
			PeakHeight: float32(cfg.Pounce.PeakHeight),
			LeapCap:    float32(cfg.Pounce.LeapCap),
		},
		fatigue: systems.FatigueParams{
			RestMin:      cfg.Fatigue.RestMin,
			RestMax:      cfg.Fatigue.RestMax,
			RestDuration: cfg.Derived.RestDuration,
		},
		mood: systems.MoodParams{
			IdleSpeed:     float32(cfg.Mood.IdleSpeed),
			RunSpeed:      float32(cfg.Mood.RunSpeed),
			ExcitedSpeed:  float32(cfg.Mood.ExcitedSpeed),
			ExcitedRadius: float32(cfg.Mood.ExcitedRadius),
		},

		source:  SourcePointer,
		soundOn: true,
	}

	w := cfg.Derived.ScreenW32
	h := cfg.Derived.ScreenH32

	catPos := components.Position{X: w * 0.3, Y: h * 0.6}
	catVel := components.Velocity{}
	catBody := components.Body{Radius: 24}
	cat := components.Cat{
		Mode:          components.ModeIdle,
		RestThreshold: systems.RollRestThreshold(s.rng, cfg.Fatigue.RestMin, cfg.Fatigue.RestMax),
	}
	s.catEntity = s.catMapper.NewEntity(&catPos, &catVel, &catBody, &cat)

	yarnPos := components.Position{X: w * 0.5, Y: h * 0.5}
	yarnBody := components.Body{Radius: 12}
	yarn := components.Yarn{}
	s.yarnEntity = s.yarnMapper.NewEntity(&yarnPos, &yarnBody, &yarn)

	return s
}

// Pointer feeds a pointer/touch position sample. Ignored while the gesture
// source is selected.
func (s *Session) Pointer(x, y float32, at time.Time) {
	if s.source != SourcePointer {
		return
	}
	s.applySample(x, y, at)
}

// GestureSample feeds a hand-tracking sample. detected=false means the
// tracker lost the hand this frame; the yarn holds its last known position
// and the cat keeps steering toward it. A closed hand pins the yarn in place
// while still reporting the hand state.
func (s *Session) GestureSample(sample InputSample, detected bool) {
	if s.source != SourceGesture {
		return
	}
	if !detected {
		return
	}
	s.openHand = sample.OpenHand
	if !sample.OpenHand {
		return
	}
	s.applySample(sample.X, sample.Y, sample.At)
}

func (s *Session) applySample(x, y float32, at time.Time) {
	x = clamp(x, 0, s.cfg.Derived.ScreenW32)
	y = clamp(y, 0, s.cfg.Derived.ScreenH32)

	pos := s.posMap.Get(s.yarnEntity)
	yarn := s.yarnMap.Get(s.yarnEntity)

	if yarn.HasSample {
		dt := at.Sub(yarn.LastSampleAt).Seconds()
		if dt > 0 {
			dist := math.Hypot(float64(x-pos.X), float64(y-pos.Y))
			inst := float32(dist / dt)
			// Exponential smoothing keeps one jittery sample from spiking
			// the speed bonus.
			yarn.PointerSpeed += (inst - yarn.PointerSpeed) * 0.5
		}
	}

	yarn.PrevX, yarn.PrevY = pos.X, pos.Y
	yarn.LastSampleAt = at
	yarn.HasSample = true
	pos.X, pos.Y = x, y

	s.trail.Push(x, y)
}

// SetControlSource switches the input feed. Switching cancels any in-flight
// pounce and pending rest/eat timers so nothing scripted resumes under the
// new source.
func (s *Session) SetControlSource(src ControlSource, now time.Time) {
	if s.source == src {
		return
	}
	s.source = src
	s.openHand = false
	s.cancelTransient(now)
}

// ControlSource returns the active input source.
func (s *Session) ControlSource() ControlSource {
	return s.source
}

// SetSoundEnabled toggles sound trigger events.
func (s *Session) SetSoundEnabled(on bool) {
	s.soundOn = on
}

// SoundEnabled reports whether sound triggers are emitted.
func (s *Session) SoundEnabled() bool {
	return s.soundOn
}

// Feed drops food at the given position. The cat steers to it and eats for
// the configured duration, then returns to the yarn.
func (s *Session) Feed(x, y float32) {
	s.foodX = clamp(x, 0, s.cfg.Derived.ScreenW32)
	s.foodY = clamp(y, 0, s.cfg.Derived.ScreenH32)
	s.foodActive = true
}

// cancelTransient drops every timed override: an in-flight pounce arc, rest
// and eat timers, and pending food. All timed behavior is mode-gated
// timestamp comparison, so clearing the mode is sufficient to guarantee no
// stale timer fires later.
func (s *Session) cancelTransient(now time.Time) {
	cat := s.catMap.Get(s.catEntity)
	systems.CancelPounce(cat)
	switch cat.Mode {
	case components.ModePouncing, components.ModeResting, components.ModeEating:
		systems.SetMode(cat, components.ModeCurious, now)
	}
	s.foodActive = false
}

// Update advances the simulation one tick at the given instant. The tick
// driver supplies no delta; frame time is derived from successive calls and
// normalized to 60Hz frames for integration fairness across refresh rates.
func (s *Session) Update(now time.Time) {
	dt := s.frameDelta(now)
	s.tick++

	s.decayPointerSpeed(now)

	if s.demo != nil {
		s.updateDemo(now, dt)
		s.particles.Update()
		return
	}

	targetX, targetY, isFood := s.currentTarget()
	s.stepChase(now, dt, targetX, targetY, isFood)
	s.particles.Update()
}

func (s *Session) frameDelta(now time.Time) float32 {
	if s.lastUpdate.IsZero() {
		s.lastUpdate = now
		return 1
	}
	sec := now.Sub(s.lastUpdate).Seconds()
	s.lastUpdate = now
	if sec < 0 {
		sec = 0
	}
	frames := sec / referenceFrame.Seconds()
	if frames > maxFrameDelta {
		frames = maxFrameDelta
	}
	return float32(frames)
}

// decayPointerSpeed bleeds off the derived input speed when samples stop
// arriving, so a released pointer does not leave a permanent speed bonus.
func (s *Session) decayPointerSpeed(now time.Time) {
	yarn := s.yarnMap.Get(s.yarnEntity)
	if !yarn.HasSample || now.Sub(yarn.LastSampleAt) > 250*time.Millisecond {
		yarn.PointerSpeed *= 0.8
		if yarn.PointerSpeed < 1 {
			yarn.PointerSpeed = 0
		}
	}
}

func (s *Session) currentTarget() (float32, float32, bool) {
	if s.foodActive {
		cat := s.catMap.Get(s.catEntity)
		if cat.Mode != components.ModeEating {
			return s.foodX, s.foodY, true
		}
	}
	pos := s.posMap.Get(s.yarnEntity)
	return pos.X, pos.Y, s.foodActive
}

// stepChase runs one tick of the ordinary chase branch against the given
// target. Exactly one phase owns the cat's position: the pounce arc, the
// rest/eat timers, or steering.
func (s *Session) stepChase(now time.Time, dt float32, targetX, targetY float32, isFood bool) {
	pos := s.posMap.Get(s.catEntity)
	vel := s.velMap.Get(s.catEntity)
	cat := s.catMap.Get(s.catEntity)
	yarn := s.yarnMap.Get(s.yarnEntity)

	prox := systems.Classify(*pos, cat, targetX, targetY, s.chase)
	s.lastProx = prox

	switch {
	case cat.Pounce.Active:
		s.advancePounce(cat, pos, vel, now, prox)

	case cat.Mode == components.ModeResting:
		systems.Coast(pos, vel, dt, s.steer)
		if systems.UpdateRest(cat, now, s.rng, s.fatigue) {
			s.emit(Event{Type: EventRestEnd, At: now, X: pos.X, Y: pos.Y})
		}

	case cat.Mode == components.ModeEating:
		systems.Coast(pos, vel, dt, s.steer)
		s.updateEating(cat, pos, now)

	default:
		if isFood && prox.CenterDistance <= s.chase.StopRadius {
			s.startEating(cat, now, pos)
			return
		}
		if !isFood && systems.CanPounce(cat, prox.Zone, now, s.pounce.Cooldown) {
			systems.StartPounce(cat, *pos, targetX, targetY, now, s.pounce)
			s.emit(NewCaptureEvent(now, targetX, targetY))
			s.emit(NewFloatingTextEvent(now, targetX, targetY-20, "+1"))
			s.emitSound(now, "meow")
			s.particles.EmitSparkles(targetX, targetY)
			s.particles.EmitText(targetX, targetY-20, "+1")
			return
		}

		if prox.Zone == systems.ZoneSettled {
			systems.Coast(pos, vel, dt, s.steer)
		} else {
			moved := systems.Steer(pos, vel, targetX, targetY, yarn.PointerSpeed, prox.CenterDistance, dt, s.steer)
			s.clampToScreen(pos)
			if systems.StepMark(cat, moved, now, float32(s.cfg.Steps.MinMove), s.cfg.Derived.StepInterval) {
				rot := float32(math.Atan2(float64(vel.Y), float64(vel.X)))
				s.emit(NewPawPrintEvent(now, pos.X, pos.Y+12, rot))
				s.particles.EmitPawPrint(pos.X, pos.Y+12, rot)
			}
		}
		systems.ResolveMood(cat, prox, velocityMagnitude(vel), now, s.mood)
	}

	// Facing follows the sign of the horizontal offset to the target;
	// unchanged when directly above or below.
	if targetX < pos.X {
		cat.FacingLeft = true
	} else if targetX > pos.X {
		cat.FacingLeft = false
	}
}

func (s *Session) advancePounce(cat *components.Cat, pos *components.Position, vel *components.Velocity, now time.Time, prox systems.Proximity) {
	t, done := systems.AdvancePounce(cat, pos, now, s.pounce)
	if t > 0.3 && t < 0.7 {
		s.particles.EmitJump(pos.X, pos.Y+10)
	}
	if !done {
		return
	}

	vel.X, vel.Y = 0, 0
	s.particles.EmitDust(pos.X, pos.Y)
	s.emit(Event{Type: EventPounceLand, At: now, X: pos.X, Y: pos.Y})

	if systems.OnPounceComplete(cat, now, s.fatigue) {
		s.emit(Event{Type: EventRestStart, At: now, X: pos.X, Y: pos.Y})
		return
	}
	systems.ResolveMood(cat, prox, 0, now, s.mood)
}

func (s *Session) startEating(cat *components.Cat, now time.Time, pos *components.Position) {
	cat.EatStartedAt = now
	systems.SetMode(cat, components.ModeEating, now)
	s.emit(Event{Type: EventEatStart, At: now, X: pos.X, Y: pos.Y})
	s.emitSound(now, "purr")
}

func (s *Session) updateEating(cat *components.Cat, pos *components.Position, now time.Time) {
	elapsed := now.Sub(cat.EatStartedAt)
	if elapsed < 0 {
		// Clock anomaly; re-anchor instead of eating forever.
		cat.EatStartedAt = now
		return
	}
	if elapsed < s.cfg.Derived.EatDuration {
		return
	}
	s.foodActive = false
	systems.SetMode(cat, components.ModeIdle, now)
	s.emit(Event{Type: EventEatEnd, At: now, X: pos.X, Y: pos.Y})
}

func (s *Session) clampToScreen(pos *components.Position) {
	pos.X = clamp(pos.X, 0, s.cfg.Derived.ScreenW32)
	pos.Y = clamp(pos.Y, 0, s.cfg.Derived.ScreenH32)
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) emitSound(now time.Time, name string) {
	if !s.soundOn {
		return
	}
	s.emit(NewSoundEvent(now, name))
}

// Particles exposes the pooled transient effects for the render layer.
func (s *Session) Particles() *systems.ParticleSystem {
	return s.particles
}

// Tick returns the number of completed updates.
func (s *Session) Tick() int32 {
	return s.tick
}

func velocityMagnitude(vel *components.Velocity) float32 {
	return float32(math.Hypot(float64(vel.X), float64(vel.Y)))
}

func clamp(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
