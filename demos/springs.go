package demos

import (
	"math/rand"

	"github.com/pthm-cable/flux/config"
	"github.com/pthm-cable/flux/particle"
	"github.com/pthm-cable/flux/vec"
)

// Springs hangs a grid of free bodies from fixed anchors by Hookean
// springs. Clicking near a body plucks it; the springs pull everything back
// toward rest. The spring only ever contributes forces, so plucks compose
// with gravity without any solver.
type Springs struct {
	cfg config.SpringsConfig

	particles []particle.Particle
	springs   []*particle.Spring
}

// NewSprings returns an unstarted springs demo.
func NewSprings() *Springs {
	return &Springs{}
}

// Name implements Demo.
func (d *Springs) Name() string { return "springs" }

// Start lays the anchors out in a centered grid, one particle hanging below
// each.
func (d *Springs) Start(cfg *config.Config, rng *rand.Rand) {
	d.cfg = cfg.Springs

	cols := d.cfg.Columns
	rows := d.cfg.Rows
	gapX := cfg.Derived.ScreenW / float64(cols+1)
	gapY := cfg.Derived.ScreenH / float64(rows+2)

	// Particles first, springs second: the springs hold pointers into the
	// particle slice, so it must not grow afterwards.
	d.particles = make([]particle.Particle, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			anchor := vec.Vec2{X: float64(c+1) * gapX, Y: float64(r+1) * gapY}
			p := particle.New(vec.Add(anchor, vec.Vec2{Y: d.cfg.RestLength}))
			p.Radius = 4
			p.Hue = float64(r*cols+c) / float64(cols*rows)
			d.particles = append(d.particles, p)
		}
	}

	d.springs = make([]*particle.Spring, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			anchor := vec.Vec2{X: float64(c+1) * gapX, Y: float64(r+1) * gapY}
			s, err := particle.NewSpring(anchor, &d.particles[i], d.cfg.RestLength, d.cfg.K)
			if err != nil {
				panic(err) // config is validated; unreachable with sane values
			}
			d.springs = append(d.springs, s)
		}
	}
}

// Step advances the grid one tick.
func (d *Springs) Step(in Input) {
	for i := range d.particles {
		p := &d.particles[i]

		if in.MouseDown {
			dir := vec.Sub(p.Pos, in.Mouse)
			if dir.Mag() < d.cfg.PluckRange {
				dir.SetMag(d.cfg.PluckForce)
				p.ApplyForce(dir)
			}
		}
		p.ApplyForce(vec.Vec2{Y: in.Gravity})
	}

	for _, s := range d.springs {
		s.Update()
	}

	for i := range d.particles {
		p := &d.particles[i]
		p.Vel.Mult(d.cfg.Damping)
		p.StepEuler(1)
		p.Edges(in.Width, in.Height, true)
	}
}

// Scene implements Demo.
func (d *Springs) Scene(s *Scene) {
	for i, sp := range d.springs {
		p := &d.particles[i]
		strain := (vec.Dist(sp.Anchor, p.Pos) - sp.Rest) / sp.Rest
		s.Segments = append(s.Segments, Segment{A: sp.Anchor, B: p.Pos, Strain: strain})
		s.Dots = append(s.Dots, Dot{Pos: p.Pos, Radius: p.Radius, Hue: p.Hue, Fade: 1})
	}
}

// Stop implements Demo.
func (d *Springs) Stop() {
	d.particles = nil
	d.springs = nil
}

// Metrics implements Measurable.
func (d *Springs) Metrics() Metrics {
	m := Metrics{Particles: len(d.particles), Constraints: len(d.springs)}
	m.Speeds = make([]float64, 0, len(d.particles))
	for i := range d.particles {
		m.Speeds = append(m.Speeds, d.particles[i].Vel.Mag())
	}
	return m
}
