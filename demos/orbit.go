package demos

import (
	"math/rand"

	"github.com/pthm-cable/flux/config"
	"github.com/pthm-cable/flux/particle"
	"github.com/pthm-cable/flux/vec"
)

// Orbit is the force-mode demo: free bodies under a configurable set of
// global forces. Gravity is always on; holding the left mouse button adds
// attraction toward the cursor, the right button repulsion. The active set
// is rebuilt as data each tick rather than toggling callbacks.
type Orbit struct {
	cfg config.OrbitConfig
	rng *rand.Rand

	particles []particle.Particle
}

// NewOrbit returns an unstarted orbit demo.
func NewOrbit() *Orbit {
	return &Orbit{}
}

// Name implements Demo.
func (o *Orbit) Name() string { return "orbit" }

// Start scatters the bodies with random headings.
func (o *Orbit) Start(cfg *config.Config, rng *rand.Rand) {
	o.cfg = cfg.Orbit
	o.rng = rng

	o.particles = make([]particle.Particle, o.cfg.Count)
	for i := range o.particles {
		pos := vec.Vec2{
			X: rng.Float64() * cfg.Derived.ScreenW,
			Y: rng.Float64() * cfg.Derived.ScreenH,
		}
		p := particle.New(pos)
		p.Radius = o.cfg.ParticleRadius
		p.Vel = vec.Random(rng)
		p.Vel.Mult(o.cfg.InitialSpeed)
		p.Hue = rng.Float64()
		o.particles[i] = p
	}
}

// activeForces builds the force set for this tick from the input snapshot.
func (o *Orbit) activeForces(in Input) []Force {
	forces := []Force{{Kind: ForceGravity, Strength: in.Gravity}}
	if in.MouseDown {
		forces = append(forces, Force{Kind: ForceAttract, Strength: o.cfg.AttractForce})
	}
	if in.MouseRight {
		forces = append(forces, Force{Kind: ForceRepel, Strength: o.cfg.RepelForce})
	}
	return forces
}

// eval returns the force vector one tagged force exerts on a body at pos.
func (o *Orbit) eval(f Force, pos vec.Vec2, in Input) vec.Vec2 {
	switch f.Kind {
	case ForceGravity:
		return vec.Vec2{Y: f.Strength}
	case ForceAttract, ForceRepel:
		dir := vec.Sub(in.Mouse, pos)
		dist := dir.Mag()
		if dist < o.cfg.MinPullDist {
			dist = o.cfg.MinPullDist
		}
		dir.SetMag(f.Strength / (dist * dist) * 100)
		if f.Kind == ForceRepel {
			dir.Mult(-1)
		}
		return dir
	}
	return vec.Vec2{}
}

// Step advances the bodies one tick.
func (o *Orbit) Step(in Input) {
	forces := o.activeForces(in)

	for i := range o.particles {
		p := &o.particles[i]
		for _, f := range forces {
			p.ApplyForce(o.eval(f, p.Pos, in))
		}
		p.StepEuler(1)
		p.Edges(in.Width, in.Height, true)
	}
}

// Scene implements Demo.
func (o *Orbit) Scene(s *Scene) {
	for i := range o.particles {
		p := &o.particles[i]
		s.Dots = append(s.Dots, Dot{Pos: p.Pos, Radius: p.Radius, Hue: p.Hue, Fade: 1})
	}
}

// Stop implements Demo.
func (o *Orbit) Stop() {
	o.particles = nil
}

// Metrics implements Measurable.
func (o *Orbit) Metrics() Metrics {
	m := Metrics{Particles: len(o.particles)}
	m.Speeds = make([]float64, 0, len(o.particles))
	for i := range o.particles {
		m.Speeds = append(m.Speeds, o.particles[i].Vel.Mag())
	}
	return m
}
