package systems

import (
	"math"
	"math/rand"
)

// ParticleType identifies the type of effect particle.
type ParticleType uint8

const (
	ParticleSparkle ParticleType = iota
	ParticleDust
	ParticlePawPrint
)

// EffectParticle represents a visual feedback particle.
type EffectParticle struct {
	X, Y       float32
	VelX, VelY float32
	Life       int32
	MaxLife    int32
	Type       ParticleType
	Size       float32
	Rotation   float32
}

// FloatingText is a short-lived rising text effect ("+1" on capture).
type FloatingText struct {
	X, Y    float32
	Text    string
	Life    int32
	MaxLife int32
}

// ParticleSystem manages effect particles for visual feedback.
type ParticleSystem struct {
	Particles    []EffectParticle
	Texts        []FloatingText
	maxParticles int
}

// NewParticleSystem creates a new particle system.
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{
		Particles:    make([]EffectParticle, 0, 300),
		maxParticles: 300,
	}
}

// Update processes all particles and floating texts.
func (s *ParticleSystem) Update() {
	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Life--
		if p.Life <= 0 {
			continue
		}

		switch p.Type {
		case ParticleSparkle:
			// Float upward
			p.VelY -= 0.015
		case ParticleDust:
			// Settle downward
			p.VelY += 0.02
		case ParticlePawPrint:
			// Stationary, fades in place
		}

		p.VelX *= 0.94
		p.VelY *= 0.94

		p.X += p.VelX
		p.Y += p.VelY

		s.Particles[alive] = s.Particles[i]
		alive++
	}
	s.Particles = s.Particles[:alive]

	aliveTexts := 0
	for i := range s.Texts {
		t := &s.Texts[i]
		t.Life--
		if t.Life <= 0 {
			continue
		}
		t.Y -= 0.6
		s.Texts[aliveTexts] = s.Texts[i]
		aliveTexts++
	}
	s.Texts = s.Texts[:aliveTexts]
}

// EmitSparkles emits a radial burst of capture sparkles (6-11 particles).
func (s *ParticleSystem) EmitSparkles(x, y float32) {
	count := 6 + rand.Intn(6)
	for i := 0; i < count; i++ {
		s.emitRadial(x, y, ParticleSparkle, 0.6, 1.0)
	}
}

// EmitDust emits a landing dust burst (4-8 particles).
func (s *ParticleSystem) EmitDust(x, y float32) {
	count := 4 + rand.Intn(5)
	for i := 0; i < count; i++ {
		s.emitRadial(x, y, ParticleDust, 0.3, 0.6)
	}
}

// EmitJump emits a mid-flight jump particle (35% chance per call).
func (s *ParticleSystem) EmitJump(x, y float32) {
	if rand.Float32() > 0.35 {
		return
	}
	s.emitRadial(x, y, ParticleDust, 0.2, 0.4)
}

// EmitPawPrint places a stationary fading paw print.
func (s *ParticleSystem) EmitPawPrint(x, y, rotation float32) {
	if len(s.Particles) >= s.maxParticles {
		return
	}
	life := int32(150 + rand.Int31n(60))
	s.Particles = append(s.Particles, EffectParticle{
		X:        x,
		Y:        y,
		Life:     life,
		MaxLife:  life,
		Type:     ParticlePawPrint,
		Size:     4 + rand.Float32()*1.5,
		Rotation: rotation,
	})
}

// EmitText adds a floating text effect.
func (s *ParticleSystem) EmitText(x, y float32, text string) {
	s.Texts = append(s.Texts, FloatingText{
		X:       x,
		Y:       y,
		Text:    text,
		Life:    70,
		MaxLife: 70,
	})
}

func (s *ParticleSystem) emitRadial(x, y float32, ptype ParticleType, minSpeed, spread float32) {
	if len(s.Particles) >= s.maxParticles {
		return
	}

	angle := rand.Float32() * 2 * math.Pi
	speed := minSpeed + rand.Float32()*spread
	velX := float32(math.Cos(float64(angle))) * speed
	velY := float32(math.Sin(float64(angle))) * speed

	life := int32(35 + rand.Int31n(30))

	s.Particles = append(s.Particles, EffectParticle{
		X:       x + (rand.Float32()-0.5)*5,
		Y:       y + (rand.Float32()-0.5)*5,
		VelX:    velX,
		VelY:    velY,
		Life:    life,
		MaxLife: life,
		Type:    ptype,
		Size:    2 + rand.Float32()*1.5,
	})
}

// Count returns the current number of active particles.
func (s *ParticleSystem) Count() int {
	return len(s.Particles)
}
