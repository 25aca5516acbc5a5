package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flux/demos"
)

const (
	panelWidth  = 260
	sliderWidth = panelWidth - 90
)

// ControlPanel is the live parameter panel. It mutates the input snapshot
// the host feeds to the active demo each frame.
type ControlPanel struct {
	Visible bool

	defaults demos.Input
}

// NewControlPanel creates a panel that resets to the given defaults.
func NewControlPanel(defaults demos.Input) *ControlPanel {
	return &ControlPanel{
		Visible:  true,
		defaults: defaults,
	}
}

// Toggle flips panel visibility.
func (p *ControlPanel) Toggle() {
	p.Visible = !p.Visible
}

// Draw renders the panel and applies slider edits to in. Returns true if
// any parameter changed this frame.
func (p *ControlPanel) Draw(in *demos.Input, screenWidth int32) bool {
	if !p.Visible {
		return false
	}

	panelX := float32(screenWidth) - panelWidth - 10
	panelY := float32(10)
	changed := false

	rl.DrawRectangle(int32(panelX)-10, 0, panelWidth+20, 370, rl.Color{R: 0, G: 0, B: 0, A: 140})
	rl.DrawText("Parameters", int32(panelX), int32(panelY), 20, rl.White)
	panelY += 35

	slider := func(label, format string, value float32, min, max float32) float32 {
		rl.DrawText(label, int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		next := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: sliderWidth, Height: 20},
			"", "",
			value, min, max,
		)
		rl.DrawText(fmt.Sprintf(format, next), int32(panelX+sliderWidth+10), int32(panelY+2), 16, rl.LightGray)
		panelY += 32
		return next
	}

	if v := slider("Gravity", "%.2f", float32(in.Gravity), 0, 2); float64(v) != in.Gravity {
		in.Gravity = float64(v)
		changed = true
	}
	if v := slider("Friction", "%.3f", float32(in.Friction), 0.80, 1.0); float64(v) != in.Friction {
		in.Friction = float64(v)
		changed = true
	}
	if v := slider("Stiffness", "%.2f", float32(in.Stiffness), 0, 1); float64(v) != in.Stiffness {
		in.Stiffness = float64(v)
		changed = true
	}
	if v := slider("Solver passes", "%.0f", float32(in.Iterations), 1, 10); int(v) != in.Iterations {
		in.Iterations = int(v)
		changed = true
	}
	if v := slider("Field scale", "%.4f", float32(in.FieldScale), 0.0005, 0.01); float64(v) != in.FieldScale {
		in.FieldScale = float64(v)
		changed = true
	}
	if v := slider("Field force", "%.2f", float32(in.FieldForce), 0, 5); float64(v) != in.FieldForce {
		in.FieldForce = float64(v)
		changed = true
	}

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset") {
		in.Gravity = p.defaults.Gravity
		in.Friction = p.defaults.Friction
		in.Stiffness = p.defaults.Stiffness
		in.Iterations = p.defaults.Iterations
		in.FieldScale = p.defaults.FieldScale
		in.FieldForce = p.defaults.FieldForce
		changed = true
	}

	return changed
}
