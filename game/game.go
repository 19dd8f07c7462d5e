// Package game is the raylib shell around the chase session: it owns the
// window loop, input, rendering, and telemetry plumbing. The simulation
// itself lives in the session package and runs identically headless.
package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/pounce/config"
	"github.com/pthm-cable/pounce/gesture"
	"github.com/pthm-cable/pounce/session"
	"github.com/pthm-cable/pounce/telemetry"
	"github.com/pthm-cable/pounce/ui"
)

const dt = 1.0 / 60.0

// Options configures game startup.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
}

// Game holds the complete game state.
type Game struct {
	cfg  *config.Config
	sess *session.Session

	// Gesture input; nil until a tracker is attached.
	tracker gesture.Tracker

	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	hud        *ui.HUD
	debugPanel *ui.DebugPanel

	paused    bool
	debugMode bool
	headless  bool

	screenWidth  float32
	screenHeight float32

	lastSnap session.Snapshot
}

// NewGame creates a new game instance.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, err
	}

	g := &Game{
		cfg:           cfg,
		sess:          session.New(cfg, opts.Seed),
		collector:     telemetry.NewCollector(statsWindow, dt),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		outputManager: om,
		logStats:      opts.LogStats,
		hud:           ui.NewHUD(),
		debugPanel:    ui.NewDebugPanel(int32(cfg.Screen.Width)-320, 10, 310),
		headless:      opts.Headless,
		screenWidth:   cfg.Derived.ScreenW32,
		screenHeight:  cfg.Derived.ScreenH32,
	}
	return g, nil
}

// AttachTracker wires a gesture tracker. The session still ignores gesture
// samples until the control source is switched.
func (g *Game) AttachTracker(tr gesture.Tracker) {
	g.tracker = tr
}

// Session exposes the simulation for drivers that bypass the window loop.
func (g *Game) Session() *session.Session {
	return g.sess
}

// Update runs one frame: input, one simulation tick, telemetry.
func (g *Game) Update() {
	now := time.Now()
	g.perfCollector.StartTick()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleInput(now)

	if g.paused {
		g.perfCollector.EndTick()
		return
	}

	g.step(now)
}

// UpdateHeadless runs one tick without raylib input, driven by the scripted
// tracker (if attached) or by the session's demo path.
func (g *Game) UpdateHeadless(now time.Time) {
	g.perfCollector.StartTick()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	if g.tracker != nil {
		gesture.Drive(g.sess, g.tracker, now)
	}
	g.step(now)
}

func (g *Game) step(now time.Time) {
	g.perfCollector.StartPhase(telemetry.PhaseSimulate)
	g.sess.Update(now)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.lastSnap = g.sess.Snapshot(now)
	g.recordTelemetry(g.lastSnap)
	g.flushTelemetry()
	g.perfCollector.EndTick()
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.sess.Tick()
}

// Unload releases output resources.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output files", "error", err)
	}
}

// Snapshot returns the most recent frame snapshot.
func (g *Game) Snapshot() session.Snapshot {
	return g.lastSnap
}
