// Package main tunes the steering constants against scripted input paths.
package main

import (
	"github.com/pthm-cable/pounce/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable steering parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "smoothing", Path: "steering.smoothing", Min: 0.05, Max: 0.5, Default: 0.18},
			{Name: "friction", Path: "steering.friction", Min: 0.80, Max: 0.98, Default: 0.90},
			{Name: "base_speed", Path: "steering.base_speed", Min: 1.0, Max: 6.0, Default: 3.0},
			{Name: "bonus_gain", Path: "steering.bonus_gain", Min: 0.001, Max: 0.012, Default: 0.004},
			{Name: "near_boost", Path: "steering.near_boost", Min: 1.0, Max: 2.0, Default: 1.35},
			{Name: "far_penalty", Path: "steering.far_penalty", Min: 0.6, Max: 1.0, Default: 0.85},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp restricts raw values to their bounds.
func (pv *ParamVector) Clamp(raw []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v := raw[i]
		if v < spec.Min {
			v = spec.Min
		}
		if v > spec.Max {
			v = spec.Max
		}
		clamped[i] = v
	}
	return clamped
}

// ApplyToConfig writes clamped parameter values into a config.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, raw []float64) {
	v := pv.Clamp(raw)
	cfg.Steering.Smoothing = v[0]
	cfg.Steering.Friction = v[1]
	cfg.Steering.BaseSpeed = v[2]
	cfg.Steering.BonusGain = v[3]
	cfg.Steering.NearBoost = v[4]
	cfg.Steering.FarPenalty = v[5]
}
