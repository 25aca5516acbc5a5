// Package particle implements the 2D particle physics core: free bodies with
// semi-implicit Euler stepping, position-Verlet particles with an iterative
// distance-constraint solver, and anchor springs.
package particle

import "github.com/pthm-cable/flux/vec"

// Bounce retains this fraction of speed on the reflected axis when a
// particle hits a wall.
const BounceDamping = 0.8

// Particle is a free body integrated with semi-implicit Euler, with an
// alternate position-Verlet stepping mode on the same state.
type Particle struct {
	Pos     vec.Vec2
	Vel     vec.Vec2
	Acc     vec.Vec2
	PrevPos vec.Vec2

	Mass   float64
	Radius float64

	// Life counts down once per Euler step when MaxLife > 0. MaxLife <= 0
	// means the particle never expires.
	Life    float64
	MaxLife float64

	// Hue is an opaque render tag; the physics never reads it.
	Hue float64
}

// New creates a particle at the given position with unit mass, a small
// radius, and no lifespan.
func New(pos vec.Vec2) Particle {
	return Particle{
		Pos:     pos,
		PrevPos: pos,
		Mass:    1,
		Radius:  2,
	}
}

// NewMortal creates a particle that dies after life Euler steps.
func NewMortal(pos vec.Vec2, life float64) Particle {
	p := New(pos)
	p.Life = life
	p.MaxLife = life
	return p
}

// ApplyForce accumulates f scaled by 1/mass into the acceleration. Call any
// number of times per step; forces superpose.
func (p *Particle) ApplyForce(f vec.Vec2) {
	p.Acc.Add(vec.Scale(f, 1/p.Mass))
}

// StepEuler advances the particle one tick of length dt. Velocity is updated
// before position (semi-implicit Euler), which is stabler than the naive
// order. Acceleration is cleared and life decremented.
func (p *Particle) StepEuler(dt float64) {
	p.Vel.Add(p.Acc)
	p.Pos.Add(vec.Scale(p.Vel, dt))
	p.Acc = vec.Vec2{}
	if p.MaxLife > 0 {
		p.Life--
	}
}

// StepVerlet advances the particle one tick using position Verlet: velocity
// is implicit in the distance from PrevPos. Acceleration is cleared.
func (p *Particle) StepVerlet(dt float64) {
	vel := vec.Sub(p.Pos, p.PrevPos)
	p.PrevPos = p.Pos
	p.Pos.Add(vel).Add(vec.Scale(p.Acc, dt*dt))
	p.Acc = vec.Vec2{}
}

// Dead reports whether a mortal particle has run out of life.
func (p *Particle) Dead() bool {
	return p.MaxLife > 0 && p.Life <= 0
}

// Edges keeps the particle inside a width x height domain. With bounce, the
// position is clamped to [radius, dim-radius] and the offending velocity
// axis reflected at BounceDamping; PrevPos is nudged so a Verlet-style
// velocity read stays consistent. Without bounce the domain is toroidal:
// positions wrap and velocity is untouched.
func (p *Particle) Edges(width, height float64, bounce bool) {
	if bounce {
		if p.Pos.X < p.Radius {
			p.Pos.X = p.Radius
			p.Vel.X *= -BounceDamping
			p.PrevPos.X = p.Pos.X - p.Vel.X
		} else if p.Pos.X > width-p.Radius {
			p.Pos.X = width - p.Radius
			p.Vel.X *= -BounceDamping
			p.PrevPos.X = p.Pos.X - p.Vel.X
		}
		if p.Pos.Y < p.Radius {
			p.Pos.Y = p.Radius
			p.Vel.Y *= -BounceDamping
			p.PrevPos.Y = p.Pos.Y - p.Vel.Y
		} else if p.Pos.Y > height-p.Radius {
			p.Pos.Y = height - p.Radius
			p.Vel.Y *= -BounceDamping
			p.PrevPos.Y = p.Pos.Y - p.Vel.Y
		}
		return
	}

	if p.Pos.X < 0 {
		p.PrevPos.X += width
		p.Pos.X = width
	} else if p.Pos.X > width {
		p.PrevPos.X -= width
		p.Pos.X = 0
	}
	if p.Pos.Y < 0 {
		p.PrevPos.Y += height
		p.Pos.Y = height
	} else if p.Pos.Y > height {
		p.PrevPos.Y -= height
		p.Pos.Y = 0
	}
}
