package demos

import (
	"math/rand"

	"github.com/pthm-cable/flux/config"
	"github.com/pthm-cable/flux/particle"
	"github.com/pthm-cable/flux/vec"
)

// Rope is a verlet chain pinned at the top of the canvas. Holding the mouse
// near the free end grabs it and drags it around; releasing lets the chain
// swing under gravity while the constraint solver keeps the links at length.
type Rope struct {
	cfg config.RopeConfig

	structure *particle.Structure
	tail      int
	grabbed   bool
}

// NewRope returns an unstarted rope demo.
func NewRope() *Rope {
	return &Rope{}
}

// Name implements Demo.
func (r *Rope) Name() string { return "rope" }

// Start builds the chain hanging from the top center.
func (r *Rope) Start(cfg *config.Config, rng *rand.Rand) {
	r.cfg = cfg.Rope
	r.structure = particle.NewStructure()
	r.structure.Iterations = cfg.Physics.Iterations
	r.grabbed = false

	top := vec.Vec2{X: cfg.Derived.ScreenW / 2, Y: 40}
	prev := r.structure.AddParticle(particle.NewPinned(top))
	for i := 1; i <= r.cfg.Segments; i++ {
		pos := vec.Add(top, vec.Vec2{Y: float64(i) * r.cfg.SegmentLength})
		idx := r.structure.AddParticle(particle.NewVerlet(pos))
		if _, err := r.structure.ConnectRest(prev, idx, r.cfg.SegmentLength, 1); err != nil {
			panic(err) // segment length is validated positive
		}
		prev = idx
	}
	r.tail = prev
}

// Step advances the chain one tick: forces, integration, relaxation, bounds.
func (r *Rope) Step(in Input) {
	gravity := vec.Vec2{Y: in.Gravity}
	for i := range r.structure.Particles {
		r.structure.Particles[i].ApplyForce(gravity)
	}

	r.structure.Iterations = in.Iterations
	r.structure.Update(in.Friction)

	// Grabbing overrides the tail position after integration, before the
	// solver pulls the rest of the chain along.
	tail := &r.structure.Particles[r.tail]
	if in.MouseDown {
		if !r.grabbed && vec.Dist(tail.Pos, in.Mouse) < r.cfg.GrabRange {
			r.grabbed = true
		}
		if r.grabbed {
			tail.Pos = in.Mouse
			tail.PrevPos = in.Mouse
		}
	} else {
		r.grabbed = false
	}

	r.structure.Relax()
	r.structure.Bound(in.Width, in.Height)
}

// Scene implements Demo.
func (r *Rope) Scene(s *Scene) {
	for _, c := range r.structure.Constraints {
		a := r.structure.Particles[c.A].Pos
		b := r.structure.Particles[c.B].Pos
		strain := (vec.Dist(a, b) - c.Rest) / c.Rest
		s.Segments = append(s.Segments, Segment{A: a, B: b, Strain: strain})
	}
	for i := range r.structure.Particles {
		p := &r.structure.Particles[i]
		s.Dots = append(s.Dots, Dot{Pos: p.Pos, Radius: p.Radius, Fade: 1})
	}
}

// Stop implements Demo.
func (r *Rope) Stop() {
	r.structure = nil
}

// Metrics implements Measurable.
func (r *Rope) Metrics() Metrics {
	m := Metrics{
		Particles:   len(r.structure.Particles),
		Constraints: len(r.structure.Constraints),
		Residual:    r.structure.MaxResidual(),
	}
	m.Speeds = make([]float64, 0, len(r.structure.Particles))
	for i := range r.structure.Particles {
		v := r.structure.Particles[i].Velocity()
		m.Speeds = append(m.Speeds, v.Mag())
	}
	return m
}
