package demos

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/flux/config"
	"github.com/pthm-cable/flux/vec"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func testInput(cfg *config.Config, tick int) Input {
	return Input{
		Tick:       tick,
		Mouse:      vec.Vec2{X: cfg.Derived.ScreenW / 2, Y: cfg.Derived.ScreenH / 2},
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

func TestRegistryOrderAndNavigation(t *testing.T) {
	r := Default()
	names := r.Names()
	want := []string{"flow", "orbit", "springs", "rope", "cloth", "burst"}
	if len(names) != len(want) {
		t.Fatalf("got %d demos, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if next := r.Next("flow"); next != "orbit" {
		t.Errorf("Next(flow) = %q, want orbit", next)
	}
	if prev := r.Prev("flow"); prev != "burst" {
		t.Errorf("Prev(flow) = %q, want burst (wrap)", prev)
	}
	if next := r.Next("burst"); next != "flow" {
		t.Errorf("Next(burst) = %q, want flow (wrap)", next)
	}
}

func TestRegistryUnknownDemo(t *testing.T) {
	r := Default()
	if _, err := r.New("nope"); err == nil {
		t.Error("expected error for unknown demo")
	}
}

func TestEveryDemoRunsHeadless(t *testing.T) {
	cfg := testConfig(t)
	r := Default()

	for _, name := range r.Names() {
		d, err := r.New(name)
		if err != nil {
			t.Fatal(err)
		}
		d.Start(cfg, rand.New(rand.NewSource(1)))

		var s Scene
		for tick := 1; tick <= 30; tick++ {
			d.Step(testInput(cfg, tick))
		}
		s.Reset()
		d.Scene(&s)
		if len(s.Dots)+len(s.Segments)+len(s.Trails) == 0 {
			t.Errorf("%s: empty scene after 30 ticks", name)
		}
		d.Stop()
	}
}

func TestDemosAreDeterministicPerSeed(t *testing.T) {
	cfg := testConfig(t)
	r := Default()

	for _, name := range r.Names() {
		run := func() Scene {
			d, err := r.New(name)
			if err != nil {
				t.Fatal(err)
			}
			d.Start(cfg, rand.New(rand.NewSource(99)))
			for tick := 1; tick <= 20; tick++ {
				d.Step(testInput(cfg, tick))
			}
			var s Scene
			d.Scene(&s)
			d.Stop()
			return s
		}

		a := run()
		b := run()
		if len(a.Dots) != len(b.Dots) || len(a.Segments) != len(b.Segments) || len(a.Trails) != len(b.Trails) {
			t.Errorf("%s: scene sizes differ between identical runs", name)
			continue
		}
		for i := range a.Dots {
			if a.Dots[i].Pos != b.Dots[i].Pos {
				t.Errorf("%s: dot %d diverged: %v vs %v", name, i, a.Dots[i].Pos, b.Dots[i].Pos)
				break
			}
		}
	}
}
