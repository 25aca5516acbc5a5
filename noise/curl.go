package noise

import "github.com/pthm-cable/flux/vec"

// Default finite-difference step, in the same coordinate space as the scaled
// sample inputs.
const DefaultEpsilon = 0.01

// CurlField derives a divergence-free 2D vector field from a scalar noise
// potential. Treating the source as a potential N, the field is the
// perpendicular gradient (dN/dy, -dN/dx), estimated with symmetric finite
// differences. Zero divergence is what makes the flow look incompressible:
// swirls with no sources or sinks.
type CurlField struct {
	src     Source
	Scale   float64 // input coordinate scale applied before sampling
	Epsilon float64 // finite-difference step
}

// NewCurlField creates a curl field over the given source. scale rescales
// input coordinates before sampling; pass 1 for none.
func NewCurlField(src Source, scale float64) *CurlField {
	return &CurlField{src: src, Scale: scale, Epsilon: DefaultEpsilon}
}

// Sample returns the field vector at (x, y). t is an independent noise axis,
// letting the field evolve continuously over time.
func (f *CurlField) Sample(x, y, t float64) vec.Vec2 {
	sx := x * f.Scale
	sy := y * f.Scale
	eps := f.Epsilon

	dndy := (f.src.Eval3(sx, sy+eps, t) - f.src.Eval3(sx, sy-eps, t)) / (2 * eps)
	dndx := (f.src.Eval3(sx+eps, sy, t) - f.src.Eval3(sx-eps, sy, t)) / (2 * eps)

	return vec.Vec2{X: dndy, Y: -dndx}
}
