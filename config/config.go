// Package config provides configuration loading and access for the chase simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Chase     ChaseConfig     `yaml:"chase"`
	Steering  SteeringConfig  `yaml:"steering"`
	Pounce    PounceConfig    `yaml:"pounce"`
	Fatigue   FatigueConfig   `yaml:"fatigue"`
	Mood      MoodConfig      `yaml:"mood"`
	Trail     TrailConfig     `yaml:"trail"`
	Steps     StepsConfig     `yaml:"steps"`
	Demo      DemoConfig      `yaml:"demo"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ChaseConfig holds proximity classification parameters.
// The nose point is the cat's contact probe: center plus a lateral offset of
// NoseOffset toward the yarn plus NoseOffsetY vertically.
type ChaseConfig struct {
	NoseOffset    float64 `yaml:"nose_offset"`
	NoseOffsetY   float64 `yaml:"nose_offset_y"`
	CaptureRadius float64 `yaml:"capture_radius"`
	TriggerRadius float64 `yaml:"trigger_radius"`
	PrepareRadius float64 `yaml:"prepare_radius"`
	StopRadius    float64 `yaml:"stop_radius"`
}

// SteeringConfig holds the steering and speed model parameters.
// Speeds are px per 60Hz frame; ActivityThreshold is pointer px/sec.
type SteeringConfig struct {
	Smoothing         float64 `yaml:"smoothing"`
	Friction          float64 `yaml:"friction"`
	BaseSpeed         float64 `yaml:"base_speed"`
	MaxSpeed          float64 `yaml:"max_speed"`
	ActivityThreshold float64 `yaml:"activity_threshold"`
	BonusGain         float64 `yaml:"bonus_gain"`
	BonusCap          float64 `yaml:"bonus_cap"`
	NearRadius        float64 `yaml:"near_radius"`
	NearBoost         float64 `yaml:"near_boost"`
	FarRadius         float64 `yaml:"far_radius"`
	FarPenalty        float64 `yaml:"far_penalty"`
}

// PounceConfig holds the capture sequence parameters (durations in seconds).
type PounceConfig struct {
	Cooldown   float64 `yaml:"cooldown"`
	Duration   float64 `yaml:"duration"`
	PeakHeight float64 `yaml:"peak_height"`
	LeapCap    float64 `yaml:"leap_cap"`
}

// FatigueConfig holds the rest cycle parameters (durations in seconds).
type FatigueConfig struct {
	RestMin      int     `yaml:"rest_min"`
	RestMax      int     `yaml:"rest_max"`
	RestDuration float64 `yaml:"rest_duration"`
	EatDuration  float64 `yaml:"eat_duration"`
}

// MoodConfig holds the speed/distance thresholds for derived moods.
type MoodConfig struct {
	IdleSpeed     float64 `yaml:"idle_speed"`
	RunSpeed      float64 `yaml:"run_speed"`
	ExcitedSpeed  float64 `yaml:"excited_speed"`
	ExcitedRadius float64 `yaml:"excited_radius"`
}

// TrailConfig holds the yarn trail parameters.
type TrailConfig struct {
	MaxLength     int     `yaml:"max_length"`
	MinSampleDist float64 `yaml:"min_sample_dist"`
}

// StepsConfig holds paw print emission parameters.
type StepsConfig struct {
	MinMove     float64 `yaml:"min_move"`
	MinInterval float64 `yaml:"min_interval"`
}

// DemoConfig holds the scripted demo target path parameters.
type DemoConfig struct {
	SweepSpeed       float64 `yaml:"sweep_speed"`
	FlutterAmplitude float64 `yaml:"flutter_amplitude"`
	FlutterFrequency float64 `yaml:"flutter_frequency"`
}

// TelemetryConfig holds stats collection parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"`
	PerfWindow  int     `yaml:"perf_window"`
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32
	ScreenH32 float32

	PounceCooldown time.Duration
	PounceDuration time.Duration
	RestDuration   time.Duration
	EatDuration    time.Duration
	StepInterval   time.Duration
}

var global *Config

// Init loads the configuration and stores it globally.
// path may be empty to use embedded defaults only.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived normalizes loaded values and precomputes typed durations.
func (c *Config) computeDerived() {
	// Zone ordering invariant: capture < trigger <= prepare.
	// Misordered radii are repaired rather than rejected so a bad config
	// file can never stop the simulation from starting.
	if c.Chase.CaptureRadius <= 0 {
		c.Chase.CaptureRadius = 1
	}
	if c.Chase.TriggerRadius <= c.Chase.CaptureRadius {
		c.Chase.TriggerRadius = c.Chase.CaptureRadius + 1
	}
	if c.Chase.PrepareRadius < c.Chase.TriggerRadius {
		c.Chase.PrepareRadius = c.Chase.TriggerRadius
	}
	if c.Chase.StopRadius <= 0 {
		c.Chase.StopRadius = 1
	}

	if c.Steering.MaxSpeed < c.Steering.BaseSpeed {
		c.Steering.MaxSpeed = c.Steering.BaseSpeed
	}
	if c.Fatigue.RestMin < 1 {
		c.Fatigue.RestMin = 1
	}
	if c.Fatigue.RestMax < c.Fatigue.RestMin {
		c.Fatigue.RestMax = c.Fatigue.RestMin
	}
	if c.Trail.MaxLength < 1 {
		c.Trail.MaxLength = 1
	}

	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	c.Derived.PounceCooldown = secondsToDuration(c.Pounce.Cooldown)
	c.Derived.PounceDuration = secondsToDuration(c.Pounce.Duration)
	c.Derived.RestDuration = secondsToDuration(c.Fatigue.RestDuration)
	c.Derived.EatDuration = secondsToDuration(c.Fatigue.EatDuration)
	c.Derived.StepInterval = secondsToDuration(c.Steps.MinInterval)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
