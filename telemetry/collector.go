package telemetry

import "github.com/pthm-cable/pounce/components"

// Collector accumulates chase events within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	captures     int
	pouncesArmed int
	rests        int
	feeds        int
	steps        int

	// Per-tick samples for current window
	noseDists     []float64
	pointerSpeeds []float64

	chasingTicks  int
	settledTicks  int
	pouncingTicks int
	restingTicks  int
	sampledTicks  int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in wall seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordCapture records a registered capture.
func (c *Collector) RecordCapture() {
	c.captures++
}

// RecordPounceArmed records an armed pounce arc, whether or not it
// registered a capture.
func (c *Collector) RecordPounceArmed() {
	c.pouncesArmed++
}

// RecordRest records the start of a rest period.
func (c *Collector) RecordRest() {
	c.rests++
}

// RecordFeed records a meal.
func (c *Collector) RecordFeed() {
	c.feeds++
}

// RecordStep records a paw step.
func (c *Collector) RecordStep() {
	c.steps++
}

// Sample records the per-tick pursuit measurements.
func (c *Collector) Sample(noseDist, pointerSpeed float64, mode components.Mode, settled bool) {
	c.noseDists = append(c.noseDists, noseDist)
	c.pointerSpeeds = append(c.pointerSpeeds, pointerSpeed)
	c.sampledTicks++

	switch {
	case mode == components.ModePouncing:
		c.pouncingTicks++
	case mode == components.ModeResting:
		c.restingTicks++
	case settled:
		c.settledTicks++
	default:
		c.chasingTicks++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32) WindowStats {
	noseMean, noseStd, noseP10, noseP50, noseP90 := ComputeDistStats(c.noseDists)
	speedMean, _, _, _, speedP90 := ComputeDistStats(c.pointerSpeeds)

	windowSec := float64(currentTick-c.windowStartTick) * float64(c.dt)
	var capturesPerMin float64
	if windowSec > 0 {
		capturesPerMin = float64(c.captures) / windowSec * 60
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		Captures:     c.captures,
		PouncesArmed: c.pouncesArmed,
		Rests:        c.rests,
		Feeds:        c.feeds,
		Steps:        c.steps,

		CapturesPerMin: capturesPerMin,

		NoseDistMean: noseMean,
		NoseDistStd:  noseStd,
		NoseDistP10:  noseP10,
		NoseDistP50:  noseP50,
		NoseDistP90:  noseP90,

		PointerSpeedMean: speedMean,
		PointerSpeedP90:  speedP90,
	}

	if c.sampledTicks > 0 {
		n := float64(c.sampledTicks)
		stats.ChasingPct = float64(c.chasingTicks) / n * 100
		stats.SettledPct = float64(c.settledTicks) / n * 100
		stats.PouncingPct = float64(c.pouncingTicks) / n * 100
		stats.RestingPct = float64(c.restingTicks) / n * 100
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.captures = 0
	c.pouncesArmed = 0
	c.rests = 0
	c.feeds = 0
	c.steps = 0
	c.noseDists = c.noseDists[:0]
	c.pointerSpeeds = c.pointerSpeeds[:0]
	c.chasingTicks = 0
	c.settledTicks = 0
	c.pouncingTicks = 0
	c.restingTicks = 0
	c.sampledTicks = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
