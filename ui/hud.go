package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	MoodLabel     string
	TotalCaptures int
	Source        string
	SoundOn       bool
	DemoActive    bool
	Paused        bool
	Tick          int32
	FPS           int32
	ScreenWidth   int32
	ScreenHeight  int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(fmt.Sprintf("Caught: %d", data.TotalCaptures), 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Mood: %s | Input: %s | FPS: %d | Tick: %d", data.MoodLabel, data.Source, data.FPS, data.Tick),
		10, 35, 16, rl.LightGray,
	)

	sound := "Sound: on"
	if !data.SoundOn {
		sound = "Sound: off"
	}
	rl.DrawText(sound, 10, 55, 14, rl.Gray)

	if data.DemoActive {
		rl.DrawText("DEMO", data.ScreenWidth-70, 10, 20, rl.Yellow)
	}
	if data.Paused {
		rl.DrawText("PAUSED", 10, 75, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// DebugPanelData holds the classifier and perf readouts for the debug panel.
type DebugPanelData struct {
	Zone                string
	CenterDistance      float32
	NoseDistance        float32
	PointerSpeed        float32
	PounceActive        bool
	PounceProgress      float32
	ConsecutiveCaptures int
	RestThreshold       int
	AvgTickUS           int64
	PhasePct            map[string]float64
}

// DebugPanel renders the pursuit internals overlay.
type DebugPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewDebugPanel creates a new debug panel.
func NewDebugPanel(x, y, width int32) *DebugPanel {
	return &DebugPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *DebugPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the debug panel.
func (p *DebugPanel) Draw(data DebugPanelData, phases []string) {
	r := p.renderer
	padding := r.Theme.Padding
	height := int32(190 + len(phases)*14)

	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + padding
	y := p.y + padding

	y = r.DrawSectionHeader(x, y, "Pursuit")
	y = r.DrawLabelValue(x, y, "zone", data.Zone)
	y = r.DrawLabelValue(x, y, "center dist", fmt.Sprintf("%.1f px", data.CenterDistance))
	y = r.DrawLabelValue(x, y, "nose dist", fmt.Sprintf("%.1f px", data.NoseDistance))
	y = r.DrawLabelValue(x, y, "pointer", fmt.Sprintf("%.0f px/s", data.PointerSpeed))
	if data.PounceActive {
		y = r.DrawBar(x, y, "pounce", data.PounceProgress, p.width-2*padding)
	}
	y = r.DrawGaugeBar(x, y, "fatigue",
		float32(data.ConsecutiveCaptures), float32(data.RestThreshold), p.width-2*padding)

	y = r.DrawSpacer(y, 4)
	y = r.DrawSectionHeader(x, y, "Perf")
	y = r.DrawLabelValue(x, y, "avg tick", fmt.Sprintf("%d us", data.AvgTickUS))
	for _, phase := range phases {
		pct, ok := data.PhasePct[phase]
		if !ok || pct < 0.1 {
			continue
		}
		color := rl.LightGray
		if pct > 50 {
			color = rl.Orange
		}
		rl.DrawText(fmt.Sprintf("%-10s %5.1f%%", phase, pct), x, y, 12, color)
		y += 14
	}
}
