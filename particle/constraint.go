package particle

import (
	"fmt"
	"math"

	"github.com/pthm-cable/flux/vec"
)

// DefaultIterations is the number of relaxation passes per frame. One pass
// satisfies each constraint in isolation; overlapping constraints need
// repeated passes to converge.
const DefaultIterations = 3

// Coincident endpoints below this distance make the correction direction
// undefined; the constraint is skipped for that pass.
const minSolveDistance = 1e-9

// Constraint is a distance constraint between two particles in a Structure
// arena, addressed by index. Stiffness 1 is rigid; lower values apply only a
// fraction of the correction per pass.
type Constraint struct {
	A, B      int
	Rest      float64
	Stiffness float64
}

// Structure owns a flat arena of Verlet particles and the undirected
// constraint graph over them. Constraints reference particles by index, so
// the arena can be iterated, copied, or partitioned without chasing
// pointers.
type Structure struct {
	Particles   []VerletParticle
	Constraints []Constraint

	// Iterations is the number of relaxation passes Relax runs per frame.
	Iterations int
}

// NewStructure returns an empty structure with the default pass count.
func NewStructure() *Structure {
	return &Structure{Iterations: DefaultIterations}
}

// AddParticle appends p to the arena and returns its index.
func (s *Structure) AddParticle(p VerletParticle) int {
	s.Particles = append(s.Particles, p)
	return len(s.Particles) - 1
}

// Connect adds a distance constraint between particles a and b with the
// given stiffness. The rest length defaults to the particles' current
// distance, which must be non-zero.
func (s *Structure) Connect(a, b int, stiffness float64) (int, error) {
	rest := vec.Dist(s.Particles[a].Pos, s.Particles[b].Pos)
	return s.ConnectRest(a, b, rest, stiffness)
}

// ConnectRest adds a distance constraint with an explicit rest length.
func (s *Structure) ConnectRest(a, b int, rest, stiffness float64) (int, error) {
	if a == b {
		return 0, fmt.Errorf("constraint endpoints must differ, got %d", a)
	}
	if rest <= 0 {
		return 0, fmt.Errorf("rest length must be positive, got %g", rest)
	}
	if stiffness < 0 || stiffness > 1 {
		return 0, fmt.Errorf("stiffness must be in [0,1], got %g", stiffness)
	}
	s.Constraints = append(s.Constraints, Constraint{A: a, B: b, Rest: rest, Stiffness: stiffness})
	return len(s.Constraints) - 1, nil
}

// RemoveConstraint deletes the constraint at index i, preserving the order
// of the rest so relaxation stays deterministic.
func (s *Structure) RemoveConstraint(i int) {
	s.Constraints = append(s.Constraints[:i], s.Constraints[i+1:]...)
}

// Solve runs one Gauss-Seidel relaxation pass over all constraints in
// arena order. Each constraint applies half its correction to each unpinned
// endpoint; a pass makes one pair exact only if that pair were isolated.
func (s *Structure) Solve() {
	for i := range s.Constraints {
		c := &s.Constraints[i]
		p1 := &s.Particles[c.A]
		p2 := &s.Particles[c.B]

		delta := vec.Sub(p2.Pos, p1.Pos)
		dist := delta.Mag()
		if dist < minSolveDistance {
			continue
		}

		diff := (c.Rest - dist) / dist * c.Stiffness
		half := vec.Scale(delta, 0.5*diff)

		if !p1.Pinned {
			p1.Pos.Sub(half)
		}
		if !p2.Pinned {
			p2.Pos.Add(half)
		}
	}
}

// Relax runs the configured number of relaxation passes.
func (s *Structure) Relax() {
	n := s.Iterations
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		s.Solve()
	}
}

// Update integrates every particle with the given friction. Call after the
// frame's forces are accumulated and before Relax.
func (s *Structure) Update(friction float64) {
	for i := range s.Particles {
		s.Particles[i].Update(friction)
	}
}

// Step runs one full frame for the structure: integration, then relaxation.
// Forces must already be accumulated; bounds enforcement is the caller's
// final phase.
func (s *Structure) Step(friction float64) {
	s.Update(friction)
	s.Relax()
}

// Bound clamps unpinned particles into [radius, dim-radius] on each axis,
// reflecting the implicit velocity at BounceDamping.
func (s *Structure) Bound(width, height float64) {
	for i := range s.Particles {
		p := &s.Particles[i]
		if p.Pinned {
			continue
		}
		vel := vec.Sub(p.Pos, p.PrevPos)

		if p.Pos.X < p.Radius {
			p.Pos.X = p.Radius
			p.PrevPos.X = p.Pos.X + vel.X*BounceDamping
		} else if p.Pos.X > width-p.Radius {
			p.Pos.X = width - p.Radius
			p.PrevPos.X = p.Pos.X + vel.X*BounceDamping
		}
		if p.Pos.Y < p.Radius {
			p.Pos.Y = p.Radius
			p.PrevPos.Y = p.Pos.Y + vel.Y*BounceDamping
		} else if p.Pos.Y > height-p.Radius {
			p.Pos.Y = height - p.Radius
			p.PrevPos.Y = p.Pos.Y + vel.Y*BounceDamping
		}
	}
}

// MaxResidual returns the largest relative deviation of any constraint from
// its rest length, a convergence measure for telemetry and tuning.
func (s *Structure) MaxResidual() float64 {
	worst := 0.0
	for i := range s.Constraints {
		c := &s.Constraints[i]
		dist := vec.Dist(s.Particles[c.A].Pos, s.Particles[c.B].Pos)
		r := math.Abs(dist-c.Rest) / c.Rest
		if r > worst {
			worst = r
		}
	}
	return worst
}
