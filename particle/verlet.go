package particle

import "github.com/pthm-cable/flux/vec"

// DefaultFriction is the per-step velocity retention for Verlet particles.
// Verlet integration does not dissipate the numerical energy injected by
// constraint solving, so some damping every step is required for stability.
const DefaultFriction = 0.99

// VerletParticle carries position-only state; velocity is implicit as
// Pos - PrevPos. A pinned particle is read-only to the force and solve
// phases and acts as a fixed anchor in a constraint network.
type VerletParticle struct {
	Pos     vec.Vec2
	PrevPos vec.Vec2
	Acc     vec.Vec2

	Pinned bool

	Mass   float64
	Radius float64
	Hue    float64
}

// NewVerlet creates an unpinned Verlet particle at rest at the given
// position.
func NewVerlet(pos vec.Vec2) VerletParticle {
	return VerletParticle{
		Pos:     pos,
		PrevPos: pos,
		Mass:    1,
		Radius:  2,
	}
}

// NewPinned creates a pinned Verlet particle at the given position.
func NewPinned(pos vec.Vec2) VerletParticle {
	p := NewVerlet(pos)
	p.Pinned = true
	return p
}

// ApplyForce accumulates f scaled by 1/mass into the acceleration. Forces on
// pinned particles are silently ignored.
func (p *VerletParticle) ApplyForce(f vec.Vec2) {
	if p.Pinned {
		return
	}
	p.Acc.Add(vec.Scale(f, 1/p.Mass))
}

// Update advances the particle one step. The implicit velocity is damped by
// friction, PrevPos snapshots the current position, and the accumulated
// acceleration is folded in and cleared. Pinned particles never move.
func (p *VerletParticle) Update(friction float64) {
	if p.Pinned {
		return
	}
	vel := vec.Sub(p.Pos, p.PrevPos)
	vel.Mult(friction)
	p.PrevPos = p.Pos
	p.Pos.Add(vel).Add(p.Acc)
	p.Acc = vec.Vec2{}
}

// Velocity returns the implicit velocity Pos - PrevPos.
func (p *VerletParticle) Velocity() vec.Vec2 {
	return vec.Sub(p.Pos, p.PrevPos)
}
