// Package renderer provides rendering utilities.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flux/camera"
	"github.com/pthm-cable/flux/demos"
)

// SceneRenderer draws a demo scene through a camera.
type SceneRenderer struct {
	cam *camera.Camera
}

// NewSceneRenderer creates a scene renderer using the given camera.
func NewSceneRenderer(cam *camera.Camera) *SceneRenderer {
	return &SceneRenderer{cam: cam}
}

// Draw renders the scene: trails first (additive), then segments, then dots.
func (r *SceneRenderer) Draw(scene *demos.Scene, tick int) {
	r.drawTrails(scene.Trails, tick)
	r.drawSegments(scene.Segments)
	r.drawDots(scene.Dots)
}

// drawTrails renders polyline trails with additive blending, newest point
// brightest.
func (r *SceneRenderer) drawTrails(trails []demos.Trail, tick int) {
	if len(trails) == 0 {
		return
	}

	rl.BeginBlendMode(rl.BlendAdditive)

	for i := range trails {
		t := &trails[i]
		if len(t.Points) < 2 {
			continue
		}

		// Pulse/shimmer effect keyed to the trail head position
		head := t.Points[0]
		timeOffset := head.X*0.01 + head.Y*0.01
		pulse := math.Sin(float64(tick)*0.03+timeOffset)*0.5 + 0.5
		modulation := 0.3 + pulse*0.7

		baseAlpha := t.Fade * modulation * 120
		if baseAlpha < 2 {
			continue
		}

		n := len(t.Points)
		for j := 0; j < n-1; j++ {
			// Quadratic falloff toward the tail
			segFade := 1.0 - float64(j)/float64(n-1)
			segFade *= segFade

			alpha := baseAlpha * segFade
			if alpha < 1 {
				continue
			}

			ax, ay := r.cam.WorldToScreen(float32(t.Points[j].X), float32(t.Points[j].Y))
			bx, by := r.cam.WorldToScreen(float32(t.Points[j+1].X), float32(t.Points[j+1].Y))

			color := rl.Color{R: 60, G: 120, B: 160, A: uint8(alpha)}
			width := 2 * r.cam.Zoom * float32(segFade)
			if width < 0.5 {
				width = 0.5
			}
			rl.DrawLineEx(
				rl.Vector2{X: ax, Y: ay},
				rl.Vector2{X: bx, Y: by},
				width,
				color,
			)
		}
	}

	rl.EndBlendMode()
}

// drawSegments renders constraint links, colored by strain: relaxed links
// are a cool grey-blue, stretched links shift toward red.
func (r *SceneRenderer) drawSegments(segments []demos.Segment) {
	for i := range segments {
		s := &segments[i]

		strain := s.Strain
		if strain < 0 {
			strain = -strain
		}
		// Strain of ~15% maps to full red
		heat := float32(math.Min(strain/0.15, 1))

		color := rl.Color{
			R: uint8(120 + 135*heat),
			G: uint8(140 * (1 - heat)),
			B: uint8(170 * (1 - heat)),
			A: 220,
		}

		ax, ay := r.cam.WorldToScreen(float32(s.A.X), float32(s.A.Y))
		bx, by := r.cam.WorldToScreen(float32(s.B.X), float32(s.B.Y))
		rl.DrawLineEx(
			rl.Vector2{X: ax, Y: ay},
			rl.Vector2{X: bx, Y: by},
			1.5*r.cam.Zoom,
			color,
		)
	}
}

// drawDots renders particles as filled circles, hue-mapped.
func (r *SceneRenderer) drawDots(dots []demos.Dot) {
	for i := range dots {
		d := &dots[i]

		if !r.cam.IsVisible(float32(d.Pos.X), float32(d.Pos.Y), float32(d.Radius)) {
			continue
		}

		fade := d.Fade
		if fade <= 0 {
			continue
		}
		if fade > 1 {
			fade = 1
		}

		color := rl.ColorFromHSV(float32(d.Hue), 0.7, 1.0)
		color.A = uint8(fade * 255)

		sx, sy := r.cam.WorldToScreen(float32(d.Pos.X), float32(d.Pos.Y))
		radius := float32(d.Radius) * r.cam.Zoom
		if radius < 0.5 {
			radius = 0.5
		}
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius, color)
	}
}
