package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pounce/components"
	"github.com/pthm-cable/pounce/systems"
	"github.com/pthm-cable/pounce/telemetry"
	"github.com/pthm-cable/pounce/ui"
)

var (
	backgroundColor = rl.Color{R: 24, G: 26, B: 33, A: 255}
	trailColor      = rl.Color{R: 120, G: 90, B: 200, A: 255}
	yarnColor       = rl.Color{R: 205, G: 120, B: 220, A: 255}
	yarnLineColor   = rl.Color{R: 160, G: 80, B: 180, A: 255}
	catBodyColor    = rl.Color{R: 235, G: 170, B: 80, A: 255}
	catDarkColor    = rl.Color{R: 180, G: 120, B: 50, A: 255}
	foodColor       = rl.Color{R: 140, G: 200, B: 110, A: 255}
	pawColor        = rl.Color{R: 90, G: 80, B: 70, A: 255}
	sparkleColor    = rl.Color{R: 255, G: 230, B: 120, A: 255}
	dustColor       = rl.Color{R: 150, G: 140, B: 130, A: 255}
)

// Draw renders one frame from the last snapshot.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	snap := g.lastSnap

	g.drawTrail(snap.Trail)
	if snap.FoodActive {
		rl.DrawCircle(int32(snap.FoodX), int32(snap.FoodY), 8, foodColor)
		rl.DrawCircleLines(int32(snap.FoodX), int32(snap.FoodY), 8, rl.DarkGreen)
	}
	g.drawYarn(snap.TargetX, snap.TargetY)
	g.drawParticles()
	g.drawCat()
	g.drawTexts()

	g.hud.Draw(ui.HUDData{
		MoodLabel:     snap.MoodLabel,
		TotalCaptures: snap.TotalCaptures,
		Source:        snap.Source.String(),
		SoundOn:       g.sess.SoundEnabled(),
		DemoActive:    snap.DemoActive,
		Paused:        g.paused,
		Tick:          snap.Tick,
		FPS:           rl.GetFPS(),
		ScreenWidth:   int32(g.screenWidth),
		ScreenHeight:  int32(g.screenHeight),
	})
	g.hud.DrawControls(int32(g.screenWidth), int32(g.screenHeight),
		"space pause | d debug | s sound | m demo | g input | f feed | f11 fullscreen")

	if g.debugMode {
		g.drawDebug(snap.TargetX, snap.TargetY)
	}

	rl.EndDrawing()
	g.perfCollector.RecordFrame()
}

// drawTrail renders the recent yarn path as fading dots, oldest first.
func (g *Game) drawTrail(trail []components.Position) {
	n := len(trail)
	for i, p := range trail {
		c := trailColor
		c.A = uint8(30 + 170*(i+1)/n)
		rl.DrawCircle(int32(p.X), int32(p.Y), 3, c)
	}
}

// drawYarn renders the target as a ball of yarn with a few winding lines.
func (g *Game) drawYarn(x, y float32) {
	rl.DrawCircle(int32(x), int32(y), 12, yarnColor)
	rl.DrawCircleLines(int32(x), int32(y), 12, yarnLineColor)
	rl.DrawLine(int32(x-8), int32(y-4), int32(x+8), int32(y+4), yarnLineColor)
	rl.DrawLine(int32(x-7), int32(y+5), int32(x+7), int32(y-5), yarnLineColor)
}

// drawCat renders the pursuer: body, head with ears, and a tail whose curl
// follows the mood.
func (g *Game) drawCat() {
	snap := g.lastSnap
	x, y := snap.CatX, snap.CatY

	dir := float32(1)
	if snap.FacingLeft {
		dir = -1
	}

	// Squash the body during the pounce arc
	bodyR := float32(20)
	if snap.PounceActive {
		stretch := float32(math.Sin(float64(snap.PounceProgress) * math.Pi))
		bodyR = 20 - 5*stretch
	}

	// Body and head
	rl.DrawCircle(int32(x), int32(y), bodyR, catBodyColor)
	headX := x + dir*16
	headY := y - 12
	rl.DrawCircle(int32(headX), int32(headY), 12, catBodyColor)

	// Ears
	earL := rl.Vector2{X: headX - 8, Y: headY - 8}
	earR := rl.Vector2{X: headX + 8, Y: headY - 8}
	tip := rl.Vector2{X: headX - 10, Y: headY - 20}
	rl.DrawTriangle(earL, tip, rl.Vector2{X: headX - 2, Y: headY - 12}, catDarkColor)
	tip = rl.Vector2{X: headX + 10, Y: headY - 20}
	rl.DrawTriangle(rl.Vector2{X: headX + 2, Y: headY - 12}, tip, earR, catDarkColor)

	// Eyes track the target side
	rl.DrawCircle(int32(headX+dir*4), int32(headY-2), 2, rl.Black)
	rl.DrawCircle(int32(headX-dir*2), int32(headY-2), 2, rl.Black)

	// Tail sways faster the more excited the cat is
	sway := float32(math.Sin(float64(snap.Tick) * 0.15))
	tailBaseX := x - dir*bodyR
	rl.DrawLineEx(
		rl.Vector2{X: tailBaseX, Y: y},
		rl.Vector2{X: tailBaseX - dir*14, Y: y - 10 + sway*6},
		3, catDarkColor,
	)
}

func (g *Game) drawParticles() {
	for i := range g.sess.Particles().Particles {
		p := &g.sess.Particles().Particles[i]
		alpha := uint8(255 * float32(p.Life) / float32(p.MaxLife))

		switch p.Type {
		case systems.ParticleSparkle:
			c := sparkleColor
			c.A = alpha
			rl.DrawCircle(int32(p.X), int32(p.Y), p.Size, c)
		case systems.ParticleDust:
			c := dustColor
			c.A = alpha
			rl.DrawCircle(int32(p.X), int32(p.Y), p.Size, c)
		case systems.ParticlePawPrint:
			c := pawColor
			c.A = alpha / 2
			// Two pads offset along the step direction
			dx := float32(math.Cos(float64(p.Rotation))) * p.Size
			dy := float32(math.Sin(float64(p.Rotation))) * p.Size
			rl.DrawCircle(int32(p.X-dy), int32(p.Y+dx), p.Size*0.6, c)
			rl.DrawCircle(int32(p.X+dy), int32(p.Y-dx), p.Size*0.6, c)
		}
	}
}

func (g *Game) drawTexts() {
	for i := range g.sess.Particles().Texts {
		t := &g.sess.Particles().Texts[i]
		alpha := uint8(255 * float32(t.Life) / float32(t.MaxLife))
		c := rl.White
		c.A = alpha
		rl.DrawText(t.Text, int32(t.X), int32(t.Y), 18, c)
	}
}

// drawDebug overlays the classifier zones and the debug panel.
func (g *Game) drawDebug(targetX, targetY float32) {
	snap := g.lastSnap

	// Zone rings around the target
	rl.DrawCircleLines(int32(targetX), int32(targetY), float32(g.cfg.Chase.CaptureRadius), rl.Red)
	rl.DrawCircleLines(int32(targetX), int32(targetY), float32(g.cfg.Chase.TriggerRadius), rl.Orange)
	rl.DrawCircleLines(int32(targetX), int32(targetY), float32(g.cfg.Chase.PrepareRadius), rl.Yellow)

	// Nose probe
	rl.DrawCircle(int32(snap.NoseX), int32(snap.NoseY), 3, rl.SkyBlue)
	rl.DrawLine(int32(snap.NoseX), int32(snap.NoseY), int32(targetX), int32(targetY), rl.DarkGray)

	perfStats := g.perfCollector.Stats()
	g.debugPanel.Draw(ui.DebugPanelData{
		Zone:                snap.Zone.String(),
		CenterDistance:      snap.CenterDistance,
		NoseDistance:        snap.NoseDistance,
		PointerSpeed:        snap.PointerSpeed,
		PounceActive:        snap.PounceActive,
		PounceProgress:      snap.PounceProgress,
		ConsecutiveCaptures: snap.ConsecutiveCaptures,
		RestThreshold:       snap.RestThreshold,
		AvgTickUS:           perfStats.AvgTickDuration.Microseconds(),
		PhasePct:            perfStats.PhasePct,
	}, []string{
		telemetry.PhaseInput, telemetry.PhaseSimulate,
		telemetry.PhaseTelemetry, telemetry.PhaseRender,
	})
}
