package demos

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/flux/config"
	"github.com/pthm-cable/flux/particle"
	"github.com/pthm-cable/flux/vec"
)

// burstBody wraps the physics particle as an ECS component.
type burstBody struct {
	P particle.Particle
}

// burstKind marks an entity as a climbing rocket or a falling spark.
type burstKind struct {
	Rocket bool
}

// Burst is the fireworks demo. Rockets launch from the bottom edge on a
// fixed cadence, coast up under gravity, and burst at apex into a ring of
// short-lived sparks. Entities live in an ECS world; the physics itself is
// the same Euler particle as everywhere else.
type Burst struct {
	cfg config.BurstConfig
	rng *rand.Rand

	world  *ecs.World
	mapper *ecs.Map2[burstBody, burstKind]
	filter *ecs.Filter2[burstBody, burstKind]

	sinceLaunch int
}

// NewBurst returns an unstarted burst demo.
func NewBurst() *Burst {
	return &Burst{}
}

// Name implements Demo.
func (b *Burst) Name() string { return "burst" }

// Start creates an empty world; rockets spawn on cadence during Step.
func (b *Burst) Start(cfg *config.Config, rng *rand.Rand) {
	b.cfg = cfg.Burst
	b.rng = rng

	world := ecs.NewWorld()
	b.world = world
	b.mapper = ecs.NewMap2[burstBody, burstKind](world)
	b.filter = ecs.NewFilter2[burstBody, burstKind](world)

	// First Step launches immediately
	b.sinceLaunch = b.cfg.SpawnInterval
}

func (b *Burst) launch(in Input) {
	pos := vec.Vec2{X: (0.2 + 0.6*b.rng.Float64()) * in.Width, Y: in.Height}
	p := particle.New(pos)
	p.Radius = 3
	p.Hue = b.rng.Float64()
	p.Vel = vec.Vec2{
		X: (b.rng.Float64() - 0.5) * 2,
		Y: -b.cfg.LaunchSpeed * (0.85 + 0.3*b.rng.Float64()),
	}
	b.mapper.NewEntity(&burstBody{P: p}, &burstKind{Rocket: true})
}

func (b *Burst) explode(at vec.Vec2, hue float64) {
	for i := 0; i < b.cfg.SparkCount; i++ {
		p := particle.NewMortal(at, float64(b.cfg.SparkLife)*(0.7+0.6*b.rng.Float64()))
		p.Radius = 1.5
		p.Hue = hue
		p.Vel = vec.Random(b.rng)
		p.Vel.Mult(b.cfg.SparkSpeed * b.rng.Float64())
		b.mapper.NewEntity(&burstBody{P: p}, &burstKind{Rocket: false})
	}
}

// Step advances every rocket and spark one tick.
func (b *Burst) Step(in Input) {
	b.sinceLaunch++
	if b.sinceLaunch > b.cfg.SpawnInterval {
		b.launch(in)
		b.sinceLaunch = 0
	}

	gravity := vec.Vec2{Y: in.Gravity}

	// First pass: physics, collecting structural changes. The world must
	// not be modified while a query is live.
	type burstAt struct {
		pos vec.Vec2
		hue float64
	}
	var toRemove []ecs.Entity
	var toExplode []burstAt

	query := b.filter.Query()
	for query.Next() {
		body, kind := query.Get()
		p := &body.P

		p.ApplyForce(gravity)
		p.StepEuler(1)

		if kind.Rocket {
			// Apex: upward momentum spent.
			if p.Vel.Y >= 0 {
				toExplode = append(toExplode, burstAt{pos: p.Pos, hue: p.Hue})
				toRemove = append(toRemove, query.Entity())
			}
			continue
		}
		if p.Dead() || p.Pos.Y > in.Height+p.Radius {
			toRemove = append(toRemove, query.Entity())
		}
	}

	// Second pass: apply removals and spawns.
	for _, e := range toRemove {
		b.mapper.Remove(e)
	}
	for _, burst := range toExplode {
		b.explode(burst.pos, burst.hue)
	}
}

// Scene implements Demo.
func (b *Burst) Scene(s *Scene) {
	query := b.filter.Query()
	for query.Next() {
		body, kind := query.Get()
		p := &body.P

		fade := 1.0
		if !kind.Rocket && p.MaxLife > 0 {
			fade = p.Life / p.MaxLife
		}
		s.Dots = append(s.Dots, Dot{Pos: p.Pos, Radius: p.Radius, Hue: p.Hue, Fade: fade})
	}
}

// Stop implements Demo.
func (b *Burst) Stop() {
	b.world = nil
	b.mapper = nil
	b.filter = nil
}

// Metrics implements Measurable.
func (b *Burst) Metrics() Metrics {
	var m Metrics
	query := b.filter.Query()
	for query.Next() {
		body, _ := query.Get()
		m.Particles++
		m.Speeds = append(m.Speeds, body.P.Vel.Mag())
	}
	return m
}
