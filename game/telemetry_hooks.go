package game

import (
	"log/slog"

	"github.com/pthm-cable/pounce/session"
	"github.com/pthm-cable/pounce/systems"
)

// recordTelemetry feeds one frame's snapshot into the stats collector.
func (g *Game) recordTelemetry(snap session.Snapshot) {
	g.collector.Sample(
		float64(snap.NoseDistance),
		float64(snap.PointerSpeed),
		snap.Mode,
		snap.Zone == systems.ZoneSettled,
	)

	for _, e := range snap.Events {
		switch e.Type {
		case session.EventCapture:
			g.collector.RecordCapture()
			g.collector.RecordPounceArmed()
		case session.EventRestStart:
			g.collector.RecordRest()
		case session.EventEatEnd:
			g.collector.RecordFeed()
		case session.EventPawPrint:
			g.collector.RecordStep()
		case session.EventSound:
			slog.Debug("sound trigger", "sound", e.Sound)
		}
	}
}

// flushTelemetry writes out the stats window when it elapses.
func (g *Game) flushTelemetry() {
	tick := g.sess.Tick()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	stats := g.collector.Flush(tick)
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
