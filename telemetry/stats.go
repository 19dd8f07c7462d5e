package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated chase statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Events during window
	Captures     int `csv:"captures"`
	PouncesArmed int `csv:"pounces_armed"`
	Rests        int `csv:"rests"`
	Feeds        int `csv:"feeds"`
	Steps        int `csv:"steps"`

	CapturesPerMin float64 `csv:"captures_per_min"`

	// Pursuit quality (sampled every tick)
	NoseDistMean float64 `csv:"nose_dist_mean"`
	NoseDistStd  float64 `csv:"nose_dist_std"`
	NoseDistP10  float64 `csv:"nose_dist_p10"`
	NoseDistP50  float64 `csv:"nose_dist_p50"`
	NoseDistP90  float64 `csv:"nose_dist_p90"`

	// Input activity
	PointerSpeedMean float64 `csv:"pointer_speed_mean"`
	PointerSpeedP90  float64 `csv:"pointer_speed_p90"`

	// Mode occupancy as a fraction of window ticks
	ChasingPct  float64 `csv:"chasing_pct"`
	SettledPct  float64 `csv:"settled_pct"`
	PouncingPct float64 `csv:"pouncing_pct"`
	RestingPct  float64 `csv:"resting_pct"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeDistStats calculates mean, sample std, and percentiles of a sample
// series. Mean and std come from gonum; percentiles use linear interpolation
// on the sorted copy.
func ComputeDistStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if n > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("captures", s.Captures),
		slog.Int("pounces_armed", s.PouncesArmed),
		slog.Int("rests", s.Rests),
		slog.Int("feeds", s.Feeds),
		slog.Int("steps", s.Steps),
		slog.Float64("captures_per_min", s.CapturesPerMin),
		slog.Float64("nose_dist_mean", s.NoseDistMean),
		slog.Float64("nose_dist_std", s.NoseDistStd),
		slog.Float64("nose_dist_p10", s.NoseDistP10),
		slog.Float64("nose_dist_p50", s.NoseDistP50),
		slog.Float64("nose_dist_p90", s.NoseDistP90),
		slog.Float64("pointer_speed_mean", s.PointerSpeedMean),
		slog.Float64("pointer_speed_p90", s.PointerSpeedP90),
		slog.Float64("chasing_pct", s.ChasingPct),
		slog.Float64("settled_pct", s.SettledPct),
		slog.Float64("pouncing_pct", s.PouncingPct),
		slog.Float64("resting_pct", s.RestingPct),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"captures", s.Captures,
		"pounces_armed", s.PouncesArmed,
		"rests", s.Rests,
		"feeds", s.Feeds,
		"steps", s.Steps,
		"captures_per_min", s.CapturesPerMin,
		"nose_dist_mean", s.NoseDistMean,
		"nose_dist_std", s.NoseDistStd,
		"nose_dist_p10", s.NoseDistP10,
		"nose_dist_p50", s.NoseDistP50,
		"nose_dist_p90", s.NoseDistP90,
		"pointer_speed_mean", s.PointerSpeedMean,
		"pointer_speed_p90", s.PointerSpeedP90,
		"chasing_pct", s.ChasingPct,
		"settled_pct", s.SettledPct,
		"pouncing_pct", s.PouncingPct,
		"resting_pct", s.RestingPct,
	)
}
