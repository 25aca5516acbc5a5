// Package player hosts the demo rotation in a raylib window: it polls
// input, steps the simulation, and draws each frame.
package player

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flux/camera"
	"github.com/pthm-cable/flux/config"
	"github.com/pthm-cable/flux/demos"
	"github.com/pthm-cable/flux/renderer"
	"github.com/pthm-cable/flux/sim"
	"github.com/pthm-cable/flux/ui"
)

// Player owns the window-side state around a Sim.
type Player struct {
	cfg *config.Config
	sim *sim.Sim

	cam        *camera.Camera
	scene      *renderer.SceneRenderer
	background *renderer.BackgroundRenderer
	hud        *ui.HUD
	panel      *ui.ControlPanel

	screenWidth  float32
	screenHeight float32

	input  demos.Input
	paused bool
}

// New creates a player around a freshly started Sim. Call after the raylib
// window exists.
func New(cfg *config.Config, opts sim.Options) (*Player, error) {
	s, err := sim.New(cfg, opts)
	if err != nil {
		return nil, err
	}

	w := float32(cfg.Screen.Width)
	h := float32(cfg.Screen.Height)
	cam := camera.New(w, h, float32(cfg.Derived.ScreenW), float32(cfg.Derived.ScreenH))

	defaults := sim.DefaultInput(cfg)
	return &Player{
		cfg:          cfg,
		sim:          s,
		cam:          cam,
		scene:        renderer.NewSceneRenderer(cam),
		background:   renderer.NewBackgroundRenderer(int32(w), int32(h), 255),
		hud:          ui.NewHUD(),
		panel:        ui.NewControlPanel(defaults),
		screenWidth:  w,
		screenHeight: h,
		input:        defaults,
	}, nil
}

// Tick returns the simulation tick count.
func (p *Player) Tick() int { return p.sim.Tick() }

// Update polls input and advances the simulation one tick unless paused.
func (p *Player) Update() {
	p.handleResize()
	p.handleKeys()
	p.handleCameraInput()
	p.pollMouse()

	if p.paused {
		return
	}
	p.sim.Step(p.input)
}

// Draw renders the current frame.
func (p *Player) Draw() {
	rl.BeginDrawing()
	p.background.Clear()

	scene := p.sim.Scene()
	p.scene.Draw(scene, p.sim.Tick())

	metrics := p.sim.Metrics()
	data := ui.HUDData{
		Demo:         p.sim.DemoName(),
		DemoIndex:    p.demoIndex(),
		DemoCount:    len(p.sim.DemoNames()),
		Tick:         p.sim.Tick(),
		FPS:          rl.GetFPS(),
		Particles:    metrics.Particles,
		Constraints:  metrics.Constraints,
		Paused:       p.paused,
		ScreenWidth:  int32(p.screenWidth),
		ScreenHeight: int32(p.screenHeight),
	}
	p.hud.Draw(data)
	p.hud.DrawControls(data.ScreenWidth, data.ScreenHeight,
		"Tab/Left-Right: demo | Space: pause | H: panel | Wheel: zoom | Home: reset view")

	p.panel.Draw(&p.input, data.ScreenWidth)

	rl.EndDrawing()
}

// Close stops the sim and releases its outputs.
func (p *Player) Close() error {
	return p.sim.Close()
}

func (p *Player) demoIndex() int {
	for i, name := range p.sim.DemoNames() {
		if name == p.sim.DemoName() {
			return i
		}
	}
	return 0
}

func (p *Player) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == p.screenWidth && h == p.screenHeight {
		return
	}
	p.screenWidth = w
	p.screenHeight = h

	p.cam.Resize(w, h)
	p.background.Resize(int32(w), int32(h))
}

func (p *Player) handleKeys() {
	if rl.IsKeyPressed(rl.KeyTab) || rl.IsKeyPressed(rl.KeyN) {
		p.sim.NextDemo()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		p.sim.PrevDemo()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		p.paused = !p.paused
	}
	if rl.IsKeyPressed(rl.KeyH) {
		p.panel.Toggle()
	}
}

// handleCameraInput processes camera pan/zoom controls.
func (p *Player) handleCameraInput() {
	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / p.cam.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		p.cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		p.cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		p.cam.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		p.cam.Pan(0, -panSpeed)
	}

	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		p.cam.ZoomBy(1.0 + wheelMove*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		p.cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		p.cam.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		p.cam.Reset()
	}
}

// pollMouse projects the cursor into canvas coordinates for the demos.
func (p *Player) pollMouse() {
	mouse := rl.GetMousePosition()
	wx, wy := p.cam.ScreenToWorld(mouse.X, mouse.Y)
	p.input.Mouse.X = float64(wx)
	p.input.Mouse.Y = float64(wy)
	p.input.MouseDown = rl.IsMouseButtonDown(rl.MouseLeftButton)
	p.input.MouseRight = rl.IsMouseButtonDown(rl.MouseRightButton)
}
