package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pounce/components"
	"github.com/pthm-cable/pounce/gesture"
	"github.com/pthm-cable/pounce/session"
)

// handleInput processes keyboard and pointer input.
func (g *Game) handleInput(now time.Time) {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyD) {
		g.debugMode = !g.debugMode
	}

	if rl.IsKeyPressed(rl.KeyS) {
		g.sess.SetSoundEnabled(!g.sess.SoundEnabled())
	}

	if rl.IsKeyPressed(rl.KeyM) {
		if g.sess.DemoActive() {
			g.sess.ExitDemo(now)
		} else {
			g.sess.EnterDemo(now, components.ModePouncing)
		}
	}

	if rl.IsKeyPressed(rl.KeyG) {
		if g.sess.ControlSource() == session.SourcePointer {
			g.sess.SetControlSource(session.SourceGesture, now)
		} else {
			g.sess.SetControlSource(session.SourcePointer, now)
		}
	}

	if rl.IsKeyPressed(rl.KeyF) {
		mouse := rl.GetMousePosition()
		g.sess.Feed(mouse.X, mouse.Y)
	}

	// Any interactive input ends the demo.
	if g.sess.DemoActive() {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			g.sess.ExitDemo(now)
		}
		return
	}

	switch g.sess.ControlSource() {
	case session.SourcePointer:
		mouse := rl.GetMousePosition()
		g.sess.Pointer(mouse.X, mouse.Y, now)
	case session.SourceGesture:
		if g.tracker != nil {
			gesture.Drive(g.sess, g.tracker, now)
		}
	}
}

// handleResize tracks window size changes for HUD layout.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.debugPanel.SetPosition(int32(w)-320, 10)
}
