// Package demos contains the interactive demonstrations built on the
// particle physics core. Each demo is a thin parameter variation over the
// same machinery: force accumulation, integration, constraint relaxation,
// bounds enforcement, in that order, once per tick.
package demos

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/flux/config"
	"github.com/pthm-cable/flux/vec"
)

// Input is the per-tick snapshot of externally updated parameters. The host
// fills it from mouse state and UI sliders before calling Step; demos treat
// it as plain data and never retain it.
type Input struct {
	Tick int

	Mouse      vec.Vec2
	MouseDown  bool
	MouseRight bool

	Width  float64
	Height float64

	Gravity    float64
	Friction   float64
	Stiffness  float64
	Iterations int
	FieldScale float64
	FieldForce float64
}

// Demo is one interactive demonstration. Start allocates its particle and
// constraint collections, Step advances one tick of pure computation, and
// Stop discards the collections. Scene exposes draw state for the renderer
// to read once per tick.
type Demo interface {
	Name() string
	Start(cfg *config.Config, rng *rand.Rand)
	Step(in Input)
	Scene(s *Scene)
	Stop()
}

// Metrics summarizes a demo's state for telemetry. Speeds carries one entry
// per live particle; Residual is the worst relative constraint violation, or
// zero for unconstrained demos.
type Metrics struct {
	Particles   int
	Constraints int
	Speeds      []float64
	Residual    float64
}

// Measurable is implemented by demos that report telemetry metrics.
type Measurable interface {
	Metrics() Metrics
}

// Dot is a single particle to draw.
type Dot struct {
	Pos    vec.Vec2
	Radius float64
	Hue    float64
	Fade   float64 // 0..1 alpha multiplier
}

// Segment is a line to draw, typically a constraint or spring. Strain is the
// relative deviation from rest length, for color mapping.
type Segment struct {
	A, B   vec.Vec2
	Strain float64
}

// Trail is a short position history to draw as a fading polyline, most
// recent point first.
type Trail struct {
	Points []vec.Vec2
	Fade   float64
}

// Scene is the read-only draw state a demo exposes each tick. The host
// resets it and hands it to the active demo; the renderer only reads it.
type Scene struct {
	Dots     []Dot
	Segments []Segment
	Trails   []Trail
}

// Reset clears the scene for reuse without releasing its backing arrays.
func (s *Scene) Reset() {
	s.Dots = s.Dots[:0]
	s.Segments = s.Segments[:0]
	s.Trails = s.Trails[:0]
}

// ForceKind tags one kind of global force a demo evaluates each tick.
type ForceKind uint8

const (
	ForceGravity ForceKind = iota
	ForceAttract
	ForceRepel
)

// Force is one active force, evaluated against every particle each tick.
// Representing the active set as data keeps force toggling declarative.
type Force struct {
	Kind     ForceKind
	Strength float64
}

// Factory creates a fresh, unstarted demo.
type Factory func() Demo

// Registry is an ordered collection of demo factories, navigable like a
// slide deck.
type Registry struct {
	names     []string
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a demo factory under the given name, keeping registration
// order for navigation.
func (r *Registry) Register(name string, f Factory) {
	if _, dup := r.factories[name]; dup {
		panic(fmt.Sprintf("demos: duplicate registration of %q", name))
	}
	r.names = append(r.names, name)
	r.factories[name] = f
}

// Names returns the registered demo names in order.
func (r *Registry) Names() []string {
	return r.names
}

// New creates a fresh demo by name.
func (r *Registry) New(name string) (Demo, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("demos: unknown demo %q", name)
	}
	return f(), nil
}

// Next returns the name after the given one, wrapping around.
func (r *Registry) Next(name string) string {
	return r.step(name, 1)
}

// Prev returns the name before the given one, wrapping around.
func (r *Registry) Prev(name string) string {
	return r.step(name, -1)
}

func (r *Registry) step(name string, delta int) string {
	if len(r.names) == 0 {
		return ""
	}
	for i, n := range r.names {
		if n == name {
			return r.names[(i+delta+len(r.names))%len(r.names)]
		}
	}
	return r.names[0]
}

// Default returns the standard registry with every built-in demo.
func Default() *Registry {
	r := NewRegistry()
	r.Register("flow", func() Demo { return NewFlow() })
	r.Register("orbit", func() Demo { return NewOrbit() })
	r.Register("springs", func() Demo { return NewSprings() })
	r.Register("rope", func() Demo { return NewRope() })
	r.Register("cloth", func() Demo { return NewCloth() })
	r.Register("burst", func() Demo { return NewBurst() })
	return r
}
