package demos

import (
	"math/rand"

	"github.com/pthm-cable/flux/config"
	"github.com/pthm-cable/flux/noise"
	"github.com/pthm-cable/flux/particle"
	"github.com/pthm-cable/flux/vec"
)

// velocity retention per tick for flow particles
const flowDamping = 0.95

// Flow advects a swarm of short-lived Euler particles through a curl-noise
// field. The field is divergence-free, so the swarm swirls without piling up
// in sinks.
type Flow struct {
	cfg   config.FlowConfig
	ncfg  config.NoiseConfig
	field *noise.CurlField
	rng   *rand.Rand

	particles []flowParticle
}

type flowParticle struct {
	particle.Particle
	trail []vec.Vec2
}

// NewFlow returns an unstarted flow demo.
func NewFlow() *Flow {
	return &Flow{}
}

// Name implements Demo.
func (f *Flow) Name() string { return "flow" }

// Start allocates the swarm and the noise field.
func (f *Flow) Start(cfg *config.Config, rng *rand.Rand) {
	f.cfg = cfg.Flow
	f.ncfg = cfg.Noise
	f.rng = rng
	f.field = noise.NewCurlField(noise.NewSource(cfg.Noise.Kind, rng.Int63()), cfg.Noise.Scale)

	f.particles = make([]flowParticle, f.cfg.Count)
	for i := range f.particles {
		f.particles[i] = f.spawn(cfg.Derived.ScreenW, cfg.Derived.ScreenH)
	}
}

func (f *Flow) spawn(w, h float64) flowParticle {
	life := f.cfg.LifespanMin
	if f.cfg.LifespanMax > f.cfg.LifespanMin {
		life += f.rng.Intn(f.cfg.LifespanMax - f.cfg.LifespanMin)
	}
	pos := vec.Vec2{X: f.rng.Float64() * w, Y: f.rng.Float64() * h}
	p := particle.NewMortal(pos, float64(life))
	p.Radius = 1
	p.Hue = f.rng.Float64()
	return flowParticle{
		Particle: p,
		trail:    make([]vec.Vec2, 0, f.cfg.TrailSamples),
	}
}

// Step advances the swarm one tick.
func (f *Flow) Step(in Input) {
	f.field.Scale = in.FieldScale
	t := float64(in.Tick) * f.ncfg.TimeScale

	for i := range f.particles {
		p := &f.particles[i]

		if p.Dead() {
			f.particles[i] = f.spawn(in.Width, in.Height)
			continue
		}

		// Trail history, most recent first
		if len(p.trail) < cap(p.trail) {
			p.trail = append(p.trail, vec.Vec2{})
		}
		copy(p.trail[1:], p.trail)
		if len(p.trail) > 0 {
			p.trail[0] = p.Pos
		}

		force := f.field.Sample(p.Pos.X, p.Pos.Y, t)
		force.Mult(in.FieldForce)
		p.ApplyForce(force)

		p.StepEuler(1)
		p.Vel.Mult(flowDamping)
		p.Vel.Limit(f.cfg.MaxSpeed)

		before := p.Pos
		p.Edges(in.Width, in.Height, false)
		if p.Pos != before {
			// Wrapped; a trail through the whole canvas would be wrong.
			p.trail = p.trail[:0]
		}
	}
}

// Scene implements Demo.
func (f *Flow) Scene(s *Scene) {
	for i := range f.particles {
		p := &f.particles[i]
		if p.Dead() || len(p.trail) == 0 {
			continue
		}
		lifeRatio := p.Life / p.MaxLife
		fade := lifeRatio * 3
		if fade > 1 {
			fade = 1
		}
		pts := make([]vec.Vec2, 0, len(p.trail)+1)
		pts = append(pts, p.Pos)
		pts = append(pts, p.trail...)
		s.Trails = append(s.Trails, Trail{Points: pts, Fade: fade})
	}
}

// Stop implements Demo.
func (f *Flow) Stop() {
	f.particles = nil
	f.field = nil
}

// Metrics implements Measurable.
func (f *Flow) Metrics() Metrics {
	m := Metrics{Particles: len(f.particles)}
	m.Speeds = make([]float64, 0, len(f.particles))
	for i := range f.particles {
		m.Speeds = append(m.Speeds, f.particles[i].Vel.Mag())
	}
	return m
}
