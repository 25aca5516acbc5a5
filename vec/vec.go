// Package vec provides 2D vector algebra for the physics core.
package vec

import (
	"math"
	"math/rand"
)

// Vec2 is a 2D vector. It is a plain value type; assignment copies it, and
// Copy gives a detached clone when working through a pointer.
type Vec2 struct {
	X, Y float64
}

// New returns a vector with the given components.
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns a unit vector pointing at the given angle (radians).
func FromAngle(a float64) Vec2 {
	return Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

// Random returns a unit vector with a uniformly distributed heading.
func Random(rng *rand.Rand) Vec2 {
	return FromAngle(rng.Float64() * 2 * math.Pi)
}

// Copy returns a detached copy of v.
func (v *Vec2) Copy() Vec2 {
	return *v
}

// Add adds o to v in place and returns v for chaining.
func (v *Vec2) Add(o Vec2) *Vec2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// Sub subtracts o from v in place and returns v.
func (v *Vec2) Sub(o Vec2) *Vec2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// Mult scales v by s in place and returns v.
func (v *Vec2) Mult(s float64) *Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

// Div divides v by s in place and returns v. Division by zero leaves v
// unchanged rather than producing infinities.
func (v *Vec2) Div(s float64) *Vec2 {
	if s == 0 {
		return v
	}
	v.X /= s
	v.Y /= s
	return v
}

// Mag returns the magnitude of v.
func (v *Vec2) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagSq returns the squared magnitude, avoiding the square root for
// comparisons.
func (v *Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize rescales v to unit length in place and returns v. A zero vector
// is left unchanged.
func (v *Vec2) Normalize() *Vec2 {
	return v.Div(v.Mag())
}

// SetMag rescales v to the given length, preserving direction.
func (v *Vec2) SetMag(length float64) *Vec2 {
	return v.Normalize().Mult(length)
}

// Limit caps the magnitude of v at max, preserving direction. Vectors at or
// under the limit are untouched.
func (v *Vec2) Limit(max float64) *Vec2 {
	if v.MagSq() > max*max {
		v.SetMag(max)
	}
	return v
}

// Heading returns the angle of v in radians.
func (v *Vec2) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates v by the given angle (radians) in place and returns v.
func (v *Vec2) Rotate(a float64) *Vec2 {
	sin, cos := math.Sincos(a)
	x := v.X*cos - v.Y*sin
	v.Y = v.X*sin + v.Y*cos
	v.X = x
	return v
}

// Lerp moves v a fraction t of the way toward o. t is not clamped; values
// outside [0,1] extrapolate.
func (v *Vec2) Lerp(o Vec2, t float64) *Vec2 {
	v.X += (o.X - v.X) * t
	v.Y += (o.Y - v.Y) * t
	return v
}

// Dot returns the dot product of v and o.
func (v *Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Dist returns the Euclidean distance from v to o.
func (v *Vec2) Dist(o Vec2) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns a+b without touching either operand.
func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a-b without touching either operand.
func Sub(a, b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v scaled by s.
func Scale(v Vec2, s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec2) float64 {
	return a.Dist(b)
}

// DistSq returns the squared distance between a and b.
func DistSq(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Lerp returns the point a fraction t of the way from a to b.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
