package demos

import (
	"math/rand"

	"github.com/pthm-cable/flux/config"
	"github.com/pthm-cable/flux/noise"
	"github.com/pthm-cable/flux/particle"
	"github.com/pthm-cable/flux/vec"
)

// Cloth is a verlet grid with structural distance constraints, pinned along
// the top row. A curl-noise wind ripples it, gravity hangs it, and clicking
// tears the nearest constraint out of the graph.
type Cloth struct {
	cfg  config.ClothConfig
	ncfg config.NoiseConfig
	wind *noise.CurlField

	structure *particle.Structure
}

// NewCloth returns an unstarted cloth demo.
func NewCloth() *Cloth {
	return &Cloth{}
}

// Name implements Demo.
func (c *Cloth) Name() string { return "cloth" }

// Start weaves the grid: every particle is linked to its left and upper
// neighbor, and the whole top row is pinned.
func (c *Cloth) Start(cfg *config.Config, rng *rand.Rand) {
	c.cfg = cfg.Cloth
	c.ncfg = cfg.Noise
	c.wind = noise.NewCurlField(noise.NewSource(cfg.Noise.Kind, rng.Int63()), cfg.Noise.Scale)
	c.structure = particle.NewStructure()
	c.structure.Iterations = cfg.Physics.Iterations

	cols := c.cfg.Columns
	rows := c.cfg.Rows
	originX := (cfg.Derived.ScreenW - float64(cols-1)*c.cfg.Spacing) / 2

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pos := vec.Vec2{
				X: originX + float64(col)*c.cfg.Spacing,
				Y: 40 + float64(row)*c.cfg.Spacing,
			}
			var p particle.VerletParticle
			if row == 0 {
				p = particle.NewPinned(pos)
			} else {
				p = particle.NewVerlet(pos)
			}
			p.Hue = float64(row) / float64(rows)
			idx := c.structure.AddParticle(p)

			stiffness := cfg.Physics.Stiffness
			if col > 0 {
				if _, err := c.structure.ConnectRest(idx-1, idx, c.cfg.Spacing, stiffness); err != nil {
					panic(err)
				}
			}
			if row > 0 {
				if _, err := c.structure.ConnectRest(idx-cols, idx, c.cfg.Spacing, stiffness); err != nil {
					panic(err)
				}
			}
		}
	}
}

// Step advances the cloth one tick.
func (c *Cloth) Step(in Input) {
	c.wind.Scale = in.FieldScale
	t := float64(in.Tick) * c.ncfg.TimeScale

	gravity := vec.Vec2{Y: in.Gravity}
	for i := range c.structure.Particles {
		p := &c.structure.Particles[i]
		p.ApplyForce(gravity)

		w := c.wind.Sample(p.Pos.X, p.Pos.Y, t)
		w.Mult(c.cfg.WindForce)
		p.ApplyForce(w)
	}

	if in.MouseRight {
		c.tearNearest(in.Mouse)
	}

	// Slider updates flow into the solver every tick.
	c.structure.Iterations = in.Iterations
	for i := range c.structure.Constraints {
		c.structure.Constraints[i].Stiffness = in.Stiffness
	}

	c.structure.Update(in.Friction)
	c.structure.Relax()
	c.structure.Bound(in.Width, in.Height)
}

// tearNearest removes the constraint whose midpoint is closest to pos,
// within the tear range.
func (c *Cloth) tearNearest(pos vec.Vec2) {
	best := -1
	bestDist := c.cfg.TearRange
	for i, con := range c.structure.Constraints {
		mid := vec.Lerp(c.structure.Particles[con.A].Pos, c.structure.Particles[con.B].Pos, 0.5)
		if d := vec.Dist(mid, pos); d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best >= 0 {
		c.structure.RemoveConstraint(best)
	}
}

// Scene implements Demo.
func (c *Cloth) Scene(s *Scene) {
	for _, con := range c.structure.Constraints {
		a := c.structure.Particles[con.A].Pos
		b := c.structure.Particles[con.B].Pos
		strain := (vec.Dist(a, b) - con.Rest) / con.Rest
		s.Segments = append(s.Segments, Segment{A: a, B: b, Strain: strain})
	}
}

// Stop implements Demo.
func (c *Cloth) Stop() {
	c.structure = nil
	c.wind = nil
}

// Metrics implements Measurable.
func (c *Cloth) Metrics() Metrics {
	m := Metrics{
		Particles:   len(c.structure.Particles),
		Constraints: len(c.structure.Constraints),
		Residual:    c.structure.MaxResidual(),
	}
	m.Speeds = make([]float64, 0, len(c.structure.Particles))
	for i := range c.structure.Particles {
		v := c.structure.Particles[i].Velocity()
		m.Speeds = append(m.Speeds, v.Mag())
	}
	return m
}
