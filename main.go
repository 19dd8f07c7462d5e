package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pounce/components"
	"github.com/pthm-cable/pounce/config"
	"github.com/pthm-cable/pounce/game"
	"github.com/pthm-cable/pounce/gesture"
	"github.com/pthm-cable/pounce/session"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics against a scripted input path")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	demo := flag.Bool("demo", false, "Start in attract mode")
	useGesture := flag.Bool("gesture", false, "Drive the yarn from the gesture tracker")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		Headless:       *headless,
	}

	if *headless {
		runHeadless(cfg, opts, *maxTicks, *useGesture)
		return
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Pounce")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	g.AttachTracker(&gesture.ScriptedTracker{
		Width:      cfg.Derived.ScreenW32,
		Height:     cfg.Derived.ScreenH32,
		HoldEvery:  8 * time.Second,
		HoldFor:    300 * time.Millisecond,
		GripPeriod: 6 * time.Second,
	})
	if *useGesture {
		g.Session().SetControlSource(session.SourceGesture, time.Now())
	}
	if *demo {
		g.Session().EnterDemo(time.Now(), components.ModePouncing)
	}

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}

// runHeadless drives the session on a synthetic 60Hz clock, so runs are
// deterministic for a given seed regardless of host speed.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks int, useGesture bool) {
	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	now := time.Now()

	if useGesture {
		g.AttachTracker(&gesture.ScriptedTracker{
			Width:      cfg.Derived.ScreenW32,
			Height:     cfg.Derived.ScreenH32,
			HoldEvery:  8 * time.Second,
			HoldFor:    300 * time.Millisecond,
			GripPeriod: 6 * time.Second,
		})
		g.Session().SetControlSource(session.SourceGesture, now)
	} else {
		g.Session().EnterDemo(now, components.ModeRunning)
	}

	slog.Info("starting headless chase",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"gesture", useGesture,
	)

	if maxTicks <= 0 {
		maxTicks = 60 * 60 * 10 // ten minutes of simulated time
	}

	const frame = time.Second / 60
	for int(g.Tick()) < maxTicks {
		now = now.Add(frame)
		g.UpdateHeadless(now)
	}

	snap := g.Snapshot()
	slog.Info("headless run complete",
		"tick", g.Tick(),
		"captures", snap.TotalCaptures,
		"mode", snap.MoodLabel,
	)
}
