// Package sim owns the demo lifecycle and the frame-synchronous tick loop.
// One Sim owns the active demo's collections exclusively; everything runs on
// the caller's goroutine.
package sim

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/flux/config"
	"github.com/pthm-cable/flux/demos"
	"github.com/pthm-cable/flux/telemetry"
)

// Options configures a Sim.
type Options struct {
	Seed      int64
	Demo      string // starting demo name; empty = first registered
	LogStats  bool
	OutputDir string

	// Registry overrides the default demo set; mainly for tests.
	Registry *demos.Registry
}

// Sim drives the active demo at display-refresh cadence: the host calls
// Step once per frame with the current input snapshot, then reads Scene.
type Sim struct {
	cfg      *config.Config
	registry *demos.Registry
	rng      *rand.Rand

	demo     demos.Demo
	demoName string
	tick     int

	scene     demos.Scene
	collector *telemetry.Collector
	output    *telemetry.OutputManager
}

// New creates a Sim and starts its initial demo.
func New(cfg *config.Config, opts Options) (*Sim, error) {
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	registry := opts.Registry
	if registry == nil {
		registry = demos.Default()
	}

	s := &Sim{
		cfg:       cfg,
		registry:  registry,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		collector: telemetry.NewCollector(int(cfg.Telemetry.StatsWindow), opts.LogStats),
		output:    output,
	}

	name := opts.Demo
	if name == "" {
		name = s.registry.Names()[0]
	}
	if err := s.SwitchTo(name); err != nil {
		s.output.Close()
		return nil, err
	}
	return s, nil
}

// DemoName returns the active demo's name.
func (s *Sim) DemoName() string { return s.demoName }

// DemoNames returns all registered demo names in order.
func (s *Sim) DemoNames() []string { return s.registry.Names() }

// Tick returns the current tick count.
func (s *Sim) Tick() int { return s.tick }

// SwitchTo stops the active demo and starts the named one. The tick counter
// keeps running so noise fields do not jump backwards in time.
func (s *Sim) SwitchTo(name string) error {
	d, err := s.registry.New(name)
	if err != nil {
		return err
	}
	if s.demo != nil {
		s.demo.Stop()
	}
	d.Start(s.cfg, s.rng)
	s.demo = d
	s.demoName = name
	slog.Info("demo started", "demo", name)
	return nil
}

// NextDemo advances to the next demo in registration order.
func (s *Sim) NextDemo() {
	if err := s.SwitchTo(s.registry.Next(s.demoName)); err != nil {
		// Registry navigation only yields registered names.
		panic(fmt.Sprintf("sim: %v", err))
	}
}

// PrevDemo steps back to the previous demo.
func (s *Sim) PrevDemo() {
	if err := s.SwitchTo(s.registry.Prev(s.demoName)); err != nil {
		panic(fmt.Sprintf("sim: %v", err))
	}
}

// DefaultInput returns an input snapshot populated from the config, the
// values the UI sliders start at.
func DefaultInput(cfg *config.Config) demos.Input {
	return demos.Input{
		Width:      cfg.Derived.ScreenW,
		Height:     cfg.Derived.ScreenH,
		Gravity:    cfg.Physics.Gravity,
		Friction:   cfg.Physics.Friction,
		Stiffness:  cfg.Physics.Stiffness,
		Iterations: cfg.Physics.Iterations,
		FieldScale: cfg.Noise.Scale,
		FieldForce: cfg.Flow.FieldForce,
	}
}

// Step advances the active demo one tick. The input's tick and canvas size
// are filled in here; everything else is taken as the host supplied it.
func (s *Sim) Step(in demos.Input) {
	s.tick++
	in.Tick = s.tick
	if in.Width == 0 {
		in.Width = s.cfg.Derived.ScreenW
	}
	if in.Height == 0 {
		in.Height = s.cfg.Derived.ScreenH
	}

	start := time.Now()
	s.demo.Step(in)
	s.collector.RecordStep(time.Since(start))

	if s.collector.WindowDue(s.tick) {
		metrics := s.Metrics()
		sample := telemetry.Sample{
			Demo:        s.demoName,
			Particles:   metrics.Particles,
			Constraints: metrics.Constraints,
			Speeds:      metrics.Speeds,
			MaxResidual: metrics.Residual,
		}
		stats := s.collector.CloseWindow(s.tick, sample)
		if err := s.output.WriteStats(stats); err != nil {
			slog.Error("failed to write stats", "error", err)
		}
	}
}

// Metrics returns the active demo's telemetry snapshot, or a zero value for
// demos that do not report metrics.
func (s *Sim) Metrics() demos.Metrics {
	if m, ok := s.demo.(demos.Measurable); ok {
		return m.Metrics()
	}
	return demos.Metrics{}
}

// Scene rebuilds and returns the draw state for the current tick. The
// returned scene is owned by the Sim and valid until the next call.
func (s *Sim) Scene() *demos.Scene {
	s.scene.Reset()
	s.demo.Scene(&s.scene)
	return &s.scene
}

// Close stops the active demo and releases output files.
func (s *Sim) Close() error {
	if s.demo != nil {
		s.demo.Stop()
		s.demo = nil
	}
	return s.output.Close()
}
