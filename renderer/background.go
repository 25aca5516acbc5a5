package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer fades the previous frame toward the base color instead
// of clearing it, which leaves short-lived ghosting behind moving particles.
type BackgroundRenderer struct {
	screenW, screenH int32
	base             rl.Color

	// FadeAlpha controls persistence: low values leave long ghosts,
	// 255 clears fully every frame.
	FadeAlpha uint8
}

// NewBackgroundRenderer creates a background renderer.
func NewBackgroundRenderer(screenW, screenH int32, fadeAlpha uint8) *BackgroundRenderer {
	return &BackgroundRenderer{
		screenW:   screenW,
		screenH:   screenH,
		base:      rl.Color{R: 8, G: 10, B: 18, A: 255},
		FadeAlpha: fadeAlpha,
	}
}

// Clear paints the full background, discarding any ghosting.
func (b *BackgroundRenderer) Clear() {
	rl.ClearBackground(b.base)
}

// Draw overlays a translucent base-color rectangle over the previous frame.
func (b *BackgroundRenderer) Draw() {
	c := b.base
	c.A = b.FadeAlpha
	rl.DrawRectangle(0, 0, b.screenW, b.screenH, c)
}

// Resize updates the overlay dimensions.
func (b *BackgroundRenderer) Resize(screenW, screenH int32) {
	b.screenW = screenW
	b.screenH = screenH
}
