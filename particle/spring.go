package particle

import (
	"fmt"

	"github.com/pthm-cable/flux/vec"
)

// Spring is a Hookean force generator pulling a free body toward a fixed
// anchor point. It only ever contributes a force, never sets positions, so
// it composes additively with other forces and needs no iteration.
type Spring struct {
	Anchor vec.Vec2
	P      *Particle
	Rest   float64
	K      float64
}

// NewSpring creates a spring between anchor and p. The stiffness constant k
// must be positive and rest non-negative.
func NewSpring(anchor vec.Vec2, p *Particle, rest, k float64) (*Spring, error) {
	if p == nil {
		return nil, fmt.Errorf("spring requires a particle")
	}
	if rest < 0 {
		return nil, fmt.Errorf("rest length must be non-negative, got %g", rest)
	}
	if k <= 0 {
		return nil, fmt.Errorf("spring constant must be positive, got %g", k)
	}
	return &Spring{Anchor: anchor, P: p, Rest: rest, K: k}, nil
}

// Update applies the spring force for this frame: k times the stretch
// beyond the rest length, directed along the line to the anchor.
func (s *Spring) Update() {
	force := vec.Sub(s.Anchor, s.P.Pos)
	length := force.Mag()
	stretch := length - s.Rest
	force.SetMag(s.K * stretch)
	s.P.ApplyForce(force)
}

// Force returns the force the spring would apply this frame without
// applying it.
func (s *Spring) Force() vec.Vec2 {
	force := vec.Sub(s.Anchor, s.P.Pos)
	stretch := force.Mag() - s.Rest
	force.SetMag(s.K * stretch)
	return force
}
