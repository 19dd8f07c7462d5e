package main

import (
	"sync"
	"time"

	"github.com/pthm-cable/pounce/config"
	"github.com/pthm-cable/pounce/gesture"
	"github.com/pthm-cable/pounce/session"
)

// FitnessEvaluator runs headless chase sessions against scripted hand paths
// and scores a steering parameter vector. Lower fitness is better: the score
// rewards captures and penalizes mean pursuit distance, so a good vector
// keeps the cat close without orbiting.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int
	seeds      []int64
	configPath string

	mu           sync.Mutex
	lastCaptures float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int, seeds []int64, configPath string) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		configPath: configPath,
	}
}

// LastCaptures returns the mean capture count from the most recent Evaluate.
func (fe *FitnessEvaluator) LastCaptures() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastCaptures
}

// runResult holds the results from a single seeded run.
type runResult struct {
	captures     int
	meanNoseDist float64
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runChase(x, s)
		}(i, seed)
	}
	wg.Wait()

	var captures, noseDist float64
	for _, r := range results {
		captures += float64(r.captures)
		noseDist += r.meanNoseDist
	}
	captures /= float64(len(results))
	noseDist /= float64(len(results))

	fe.mu.Lock()
	fe.lastCaptures = captures
	fe.mu.Unlock()

	// One capture is worth 100px of mean pursuit distance.
	return noseDist - 100*captures
}

// runChase runs one headless session on a synthetic 60Hz clock.
func (fe *FitnessEvaluator) runChase(x []float64, seed int64) runResult {
	cfg, err := config.Load(fe.configPath)
	if err != nil {
		return runResult{}
	}
	fe.params.ApplyToConfig(cfg, x)

	sess := session.New(cfg, seed)
	now := time.Unix(seed, 0)
	sess.SetControlSource(session.SourceGesture, now)

	tracker := &gesture.ScriptedTracker{
		Width:      cfg.Derived.ScreenW32,
		Height:     cfg.Derived.ScreenH32,
		HoldEvery:  8 * time.Second,
		HoldFor:    300 * time.Millisecond,
		GripPeriod: 6 * time.Second,
	}

	const frame = time.Second / 60
	var noseSum float64
	for tick := 0; tick < fe.maxTicks; tick++ {
		now = now.Add(frame)
		gesture.Drive(sess, tracker, now)
		sess.Update(now)
		snap := sess.Snapshot(now)
		noseSum += float64(snap.NoseDistance)
	}

	final := sess.Snapshot(now)
	return runResult{
		captures:     final.TotalCaptures,
		meanNoseDist: noseSum / float64(fe.maxTicks),
	}
}
