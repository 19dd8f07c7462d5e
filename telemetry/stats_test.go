package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/pounce/components"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeDistStats(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	mean, std, p10, p50, p90 := ComputeDistStats(values)

	if math.Abs(mean-55) > 0.001 {
		t.Errorf("mean = %v, want 55", mean)
	}
	// Sample standard deviation of 10..100 step 10
	if math.Abs(std-30.276503) > 0.001 {
		t.Errorf("std = %v, want ~30.28", std)
	}
	if math.Abs(p10-19) > 0.01 {
		t.Errorf("p10 = %v, want ~19", p10)
	}
	if math.Abs(p50-55) > 0.01 {
		t.Errorf("p50 = %v, want ~55", p50)
	}
	if math.Abs(p90-91) > 0.01 {
		t.Errorf("p90 = %v, want ~91", p90)
	}
}

func TestComputeDistStatsEmpty(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeDistStats([]float64{})

	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}
}

func TestCollectorFlushAndReset(t *testing.T) {
	c := NewCollector(1.0, 1.0/60)

	if c.WindowDurationTicks() != 60 {
		t.Fatalf("window ticks = %d, want 60", c.WindowDurationTicks())
	}

	c.RecordCapture()
	c.RecordCapture()
	c.RecordPounceArmed()
	c.RecordRest()
	c.RecordStep()
	for i := 0; i < 30; i++ {
		c.Sample(50, 200, components.ModeRunning, false)
		c.Sample(10, 0, components.ModeResting, false)
	}

	if c.ShouldFlush(30) {
		t.Error("flushed before the window elapsed")
	}
	if !c.ShouldFlush(60) {
		t.Error("did not flush at window end")
	}

	stats := c.Flush(60)
	if stats.Captures != 2 {
		t.Errorf("captures = %d, want 2", stats.Captures)
	}
	if stats.PouncesArmed != 1 || stats.Rests != 1 || stats.Steps != 1 {
		t.Errorf("counters = (%d,%d,%d), want (1,1,1)",
			stats.PouncesArmed, stats.Rests, stats.Steps)
	}
	if math.Abs(stats.NoseDistMean-30) > 0.001 {
		t.Errorf("nose dist mean = %v, want 30", stats.NoseDistMean)
	}
	if math.Abs(stats.ChasingPct-50) > 0.001 || math.Abs(stats.RestingPct-50) > 0.001 {
		t.Errorf("mode occupancy = (%v,%v), want (50,50)", stats.ChasingPct, stats.RestingPct)
	}
	// Captures per minute: 2 captures over 1 second
	if math.Abs(stats.CapturesPerMin-120) > 0.001 {
		t.Errorf("captures_per_min = %v, want 120", stats.CapturesPerMin)
	}

	// Flush resets all counters
	next := c.Flush(120)
	if next.Captures != 0 || next.Steps != 0 || next.NoseDistMean != 0 {
		t.Error("counters survived a flush")
	}
}
