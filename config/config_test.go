package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("screen = %dx%d, want 1280x720", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Chase.CaptureRadius >= cfg.Chase.TriggerRadius {
		t.Errorf("capture %.1f >= trigger %.1f", cfg.Chase.CaptureRadius, cfg.Chase.TriggerRadius)
	}
	if cfg.Chase.TriggerRadius > cfg.Chase.PrepareRadius {
		t.Errorf("trigger %.1f > prepare %.1f", cfg.Chase.TriggerRadius, cfg.Chase.PrepareRadius)
	}
	if cfg.Derived.PounceCooldown != 1200*time.Millisecond {
		t.Errorf("PounceCooldown = %v, want 1.2s", cfg.Derived.PounceCooldown)
	}
	if cfg.Derived.ScreenW32 != 1280 {
		t.Errorf("ScreenW32 = %v, want 1280", cfg.Derived.ScreenW32)
	}
}

func TestZoneOrderingRepair(t *testing.T) {
	tests := []struct {
		name                      string
		capture, trigger, prepare float64
	}{
		{"inverted", 70, 45, 25},
		{"all equal", 40, 40, 40},
		{"zero capture", 0, 45, 70},
		{"prepare below trigger", 25, 60, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Chase.CaptureRadius = tt.capture
			cfg.Chase.TriggerRadius = tt.trigger
			cfg.Chase.PrepareRadius = tt.prepare
			cfg.computeDerived()

			if cfg.Chase.CaptureRadius <= 0 {
				t.Errorf("capture %.1f not positive after repair", cfg.Chase.CaptureRadius)
			}
			if cfg.Chase.TriggerRadius <= cfg.Chase.CaptureRadius {
				t.Errorf("trigger %.1f <= capture %.1f after repair",
					cfg.Chase.TriggerRadius, cfg.Chase.CaptureRadius)
			}
			if cfg.Chase.PrepareRadius < cfg.Chase.TriggerRadius {
				t.Errorf("prepare %.1f < trigger %.1f after repair",
					cfg.Chase.PrepareRadius, cfg.Chase.TriggerRadius)
			}
		})
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	override := "chase:\n  capture_radius: 30.0\n"
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if cfg.Chase.CaptureRadius != 30 {
		t.Errorf("CaptureRadius = %.1f, want 30 from override", cfg.Chase.CaptureRadius)
	}
	if cfg.Chase.TriggerRadius != 45 {
		t.Errorf("TriggerRadius = %.1f, want default 45", cfg.Chase.TriggerRadius)
	}
	if cfg.Steering.BaseSpeed != 3.0 {
		t.Errorf("BaseSpeed = %.1f, want default 3.0", cfg.Steering.BaseSpeed)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Steering.MaxSpeed = 11.5

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load of written file failed: %v", err)
	}
	if loaded.Steering.MaxSpeed != 11.5 {
		t.Errorf("MaxSpeed = %.1f after round trip, want 11.5", loaded.Steering.MaxSpeed)
	}
}
