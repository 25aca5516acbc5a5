// Package ui renders the heads-up display and the parameter panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Demo         string
	DemoIndex    int
	DemoCount    int
	Tick         int
	FPS          int32
	Particles    int
	Constraints  int
	Paused       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	// Demo title with position in the rotation
	rl.DrawText(
		fmt.Sprintf("%s  (%d/%d)", data.Demo, data.DemoIndex+1, data.DemoCount),
		10, 10, 20, rl.White,
	)

	rl.DrawText(
		fmt.Sprintf("Particles: %d | Links: %d", data.Particles, data.Constraints),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d", data.Tick, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 75, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
