// Speed model preview tool - interactive visualization with sliders.
//
// Plots the cat's speed budget against pointer speed for a few pursuit
// distances, so the steering constants can be shaped by eye before a full
// tuning run.
//
// Usage: go run ./cmd/speedpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pounce/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 600
	plotWidth    = 620
	plotHeight   = 480
	panelWidth   = windowWidth - plotWidth - 40
	maxPointer   = 1500.0 // px/s plotted on the x axis
)

type curve struct {
	label    string
	distance float32
	color    rl.Color
}

func defaultParams() systems.SteerParams {
	return systems.SteerParams{
		Smoothing:         0.18,
		Friction:          0.90,
		BaseSpeed:         3.0,
		MaxSpeed:          9.0,
		ActivityThreshold: 250,
		BonusGain:         0.004,
		BonusCap:          3.0,
		NearRadius:        120,
		NearBoost:         1.35,
		FarRadius:         600,
		FarPenalty:        0.85,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Speed Model Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()

	curves := []curve{
		{"near (80px)", 80, rl.Green},
		{"mid (300px)", 300, rl.SkyBlue},
		{"far (700px)", 700, rl.Orange},
	}

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawPlot(params, curves)
		params = drawPanel(params)

		// Copy to clipboard on C key
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(paramsYAML(params))
		}
		rl.DrawText("Press C to copy YAML to clipboard", 10, windowHeight-25, 12, rl.LightGray)

		rl.EndDrawing()
	}
}

// drawPlot renders the speed curves with axes.
func drawPlot(params systems.SteerParams, curves []curve) {
	const x0, y0 = 50, 30
	yMax := params.MaxSpeed * params.NearBoost

	rl.DrawRectangleLines(x0, y0, plotWidth, plotHeight, rl.DarkGray)

	// Horizontal grid lines every 2 px/frame
	for spd := float32(0); spd <= yMax; spd += 2 {
		py := y0 + plotHeight - int32(spd/yMax*plotHeight)
		rl.DrawLine(x0, py, x0+plotWidth, py, rl.LightGray)
		rl.DrawText(fmt.Sprintf("%.0f", spd), x0-25, py-6, 12, rl.Gray)
	}
	// Activity threshold marker
	tx := x0 + int32(params.ActivityThreshold/maxPointer*plotWidth)
	rl.DrawLine(tx, y0, tx, y0+plotHeight, rl.Color{R: 200, G: 180, B: 180, A: 255})
	rl.DrawText("threshold", tx+4, y0+4, 12, rl.Gray)

	for _, c := range curves {
		var prevX, prevY int32
		for px := int32(0); px <= plotWidth; px += 4 {
			pointer := float32(px) / plotWidth * maxPointer
			speed := systems.DesiredSpeed(pointer, c.distance, params)

			sx := x0 + px
			sy := y0 + plotHeight - int32(speed/yMax*plotHeight)
			if px > 0 {
				rl.DrawLine(prevX, prevY, sx, sy, c.color)
			}
			prevX, prevY = sx, sy
		}
	}

	// Legend
	ly := y0 + plotHeight + 10
	lx := int32(x0)
	for _, c := range curves {
		rl.DrawRectangle(lx, ly+2, 12, 12, c.color)
		rl.DrawText(c.label, lx+16, ly, 14, rl.DarkGray)
		lx += 130
	}
	rl.DrawText("pointer speed (px/s)", x0+plotWidth/2-60, ly+24, 14, rl.Gray)
}

// drawPanel renders the sliders and returns the possibly-updated params.
func drawPanel(params systems.SteerParams) systems.SteerParams {
	panelX := float32(plotWidth + 70)
	panelY := float32(10)

	rl.DrawText("Speed Model Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
	panelY += 35

	params.BaseSpeed = slider(panelX, &panelY, "Base speed (px/frame)", params.BaseSpeed, 1.0, 6.0, "%.1f")
	params.MaxSpeed = slider(panelX, &panelY, "Max speed (px/frame)", params.MaxSpeed, 4.0, 14.0, "%.1f")
	params.ActivityThreshold = slider(panelX, &panelY, "Activity threshold (px/s)", params.ActivityThreshold, 50, 600, "%.0f")
	params.BonusGain = slider(panelX, &panelY, "Bonus gain", params.BonusGain, 0.001, 0.012, "%.4f")
	params.BonusCap = slider(panelX, &panelY, "Bonus cap (px/frame)", params.BonusCap, 1.0, 6.0, "%.1f")
	params.NearRadius = slider(panelX, &panelY, "Near radius (px)", params.NearRadius, 40, 300, "%.0f")
	params.NearBoost = slider(panelX, &panelY, "Near boost", params.NearBoost, 1.0, 2.0, "%.2f")
	params.FarRadius = slider(panelX, &panelY, "Far radius (px)", params.FarRadius, 300, 900, "%.0f")
	params.FarPenalty = slider(panelX, &panelY, "Far penalty", params.FarPenalty, 0.6, 1.0, "%.2f")

	panelY += 10
	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
		params = defaultParams()
	}

	return params
}

func slider(x float32, y *float32, label string, value, min, max float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf(format, min), fmt.Sprintf(format, max),
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 32
	return v
}

func paramsYAML(p systems.SteerParams) string {
	return fmt.Sprintf(`steering:
  base_speed: %.1f
  max_speed: %.1f
  activity_threshold: %.0f
  bonus_gain: %.4f
  bonus_cap: %.1f
  near_radius: %.0f
  near_boost: %.2f
  far_radius: %.0f
  far_penalty: %.2f`,
		p.BaseSpeed, p.MaxSpeed, p.ActivityThreshold, p.BonusGain,
		p.BonusCap, p.NearRadius, p.NearBoost, p.FarRadius, p.FarPenalty)
}
