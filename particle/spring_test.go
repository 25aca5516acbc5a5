package particle

import (
	"math"
	"testing"

	"github.com/pthm-cable/flux/vec"
)

func TestSpringForceMagnitudeAndDirection(t *testing.T) {
	p := New(vec.Vec2{X: 15, Y: 0})
	s, err := NewSpring(vec.Vec2{X: 0, Y: 0}, &p, 10, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	f := s.Force()
	// Stretch 5, k 0.5: magnitude 2.5 pointing toward the anchor (-x).
	if math.Abs(f.X+2.5) > 1e-12 || math.Abs(f.Y) > 1e-12 {
		t.Errorf("force = %v, want (-2.5, 0)", f)
	}
}

func TestSpringZeroAtRestLength(t *testing.T) {
	p := New(vec.Vec2{X: 10, Y: 0})
	s, err := NewSpring(vec.Vec2{}, &p, 10, 2)
	if err != nil {
		t.Fatal(err)
	}
	f := s.Force()
	if math.Abs(f.X) > 1e-12 || math.Abs(f.Y) > 1e-12 {
		t.Errorf("force at rest length = %v, want zero", f)
	}
}

func TestSpringCompressionPushesAway(t *testing.T) {
	p := New(vec.Vec2{X: 4, Y: 0})
	s, err := NewSpring(vec.Vec2{}, &p, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	f := s.Force()
	// Compressed by 6: pushes the particle away from the anchor (+x).
	if f.X <= 0 {
		t.Errorf("compressed spring force = %v, want +x", f)
	}
	if math.Abs(f.X-6) > 1e-12 {
		t.Errorf("force magnitude = %f, want 6", f.X)
	}
}

func TestSpringUpdateAppliesForceNotPosition(t *testing.T) {
	p := New(vec.Vec2{X: 15, Y: 0})
	s, err := NewSpring(vec.Vec2{}, &p, 10, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	s.Update()
	if p.Pos.X != 15 {
		t.Error("spring moved the particle directly")
	}
	if p.Acc.X >= 0 {
		t.Errorf("acc = %v, want accumulated pull toward anchor", p.Acc)
	}
}

func TestSpringSettlesNearRestLength(t *testing.T) {
	p := New(vec.Vec2{X: 30, Y: 0})
	s, err := NewSpring(vec.Vec2{}, &p, 10, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2000; i++ {
		s.Update()
		p.Vel.Mult(0.9) // damping so the oscillation dies out
		p.StepEuler(1)
	}

	d := p.Pos.Mag()
	if math.Abs(d-10) > 0.5 {
		t.Errorf("settled at distance %f, want near rest length 10", d)
	}
}

func TestSpringValidation(t *testing.T) {
	p := New(vec.Vec2{})
	if _, err := NewSpring(vec.Vec2{}, &p, -1, 1); err == nil {
		t.Error("expected error for negative rest length")
	}
	if _, err := NewSpring(vec.Vec2{}, &p, 1, 0); err == nil {
		t.Error("expected error for non-positive k")
	}
	if _, err := NewSpring(vec.Vec2{}, nil, 1, 1); err == nil {
		t.Error("expected error for nil particle")
	}
}

func TestSpringAtAnchorNoForce(t *testing.T) {
	p := New(vec.Vec2{X: 5, Y: 5})
	s, err := NewSpring(vec.Vec2{X: 5, Y: 5}, &p, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	f := s.Force()
	if f.X != 0 || f.Y != 0 {
		t.Errorf("force with coincident anchor = %v, want zero", f)
	}
}
