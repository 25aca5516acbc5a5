package particle

import (
	"math"
	"testing"

	"github.com/pthm-cable/flux/vec"
)

func TestSingleConstraintExactAtStiffnessOne(t *testing.T) {
	s := NewStructure()
	a := s.AddParticle(NewVerlet(vec.Vec2{X: 0, Y: 0}))
	b := s.AddParticle(NewVerlet(vec.Vec2{X: 10, Y: 0}))
	if _, err := s.Connect(a, b, 1); err != nil {
		t.Fatal(err)
	}

	// Stretch the pair, then one pass must restore the rest length exactly.
	s.Particles[b].Pos.X = 14
	s.Solve()

	d := vec.Dist(s.Particles[a].Pos, s.Particles[b].Pos)
	if math.Abs(d-10) > 1e-12 {
		t.Errorf("distance after one solve = %f, want 10", d)
	}
	// Correction splits evenly between free endpoints.
	if math.Abs(s.Particles[a].Pos.X-2) > 1e-12 {
		t.Errorf("p1.X = %f, want 2", s.Particles[a].Pos.X)
	}
}

func TestPartialStiffness(t *testing.T) {
	s := NewStructure()
	a := s.AddParticle(NewVerlet(vec.Vec2{X: 0, Y: 0}))
	b := s.AddParticle(NewVerlet(vec.Vec2{X: 10, Y: 0}))
	if _, err := s.ConnectRest(a, b, 10, 0.5); err != nil {
		t.Fatal(err)
	}

	s.Particles[b].Pos.X = 14
	s.Solve()

	// Half the correction: distance moves from 14 to 12.
	d := vec.Dist(s.Particles[a].Pos, s.Particles[b].Pos)
	if math.Abs(d-12) > 1e-12 {
		t.Errorf("distance = %f, want 12 at stiffness 0.5", d)
	}
}

func TestChainConvergence(t *testing.T) {
	const n = 10
	const rest = 5.0

	s := NewStructure()
	head := s.AddParticle(NewPinned(vec.Vec2{X: 0, Y: 0}))
	prev := head
	for i := 1; i < n; i++ {
		// Spawn compressed so every link starts violated.
		idx := s.AddParticle(NewVerlet(vec.Vec2{X: float64(i) * 2, Y: 0}))
		if _, err := s.ConnectRest(prev, idx, rest, 1); err != nil {
			t.Fatal(err)
		}
		prev = idx
	}

	for i := 0; i < 50; i++ {
		s.Solve()
	}

	for i, c := range s.Constraints {
		d := vec.Dist(s.Particles[c.A].Pos, s.Particles[c.B].Pos)
		if math.Abs(d-rest)/rest > 0.01 {
			t.Errorf("link %d: distance %f, want within 1%% of %f", i, d, rest)
		}
	}
	if s.Particles[head].Pos.X != 0 || s.Particles[head].Pos.Y != 0 {
		t.Error("pinned head moved")
	}
}

func TestPinnedPositionBitIdentical(t *testing.T) {
	s := NewStructure()
	pin := s.AddParticle(NewPinned(vec.Vec2{X: 3.14159, Y: 2.71828}))
	free := s.AddParticle(NewVerlet(vec.Vec2{X: 10, Y: 10}))
	if _, err := s.Connect(pin, free, 1); err != nil {
		t.Fatal(err)
	}

	want := s.Particles[pin].Pos
	for i := 0; i < 100; i++ {
		s.Particles[pin].ApplyForce(vec.Vec2{X: 100, Y: -50})
		s.Particles[free].ApplyForce(vec.Vec2{Y: 0.5})
		s.Update(DefaultFriction)
		s.Relax()
	}

	if s.Particles[pin].Pos != want {
		t.Errorf("pinned position changed from %v to %v", want, s.Particles[pin].Pos)
	}
}

func TestCoincidentPairSkipped(t *testing.T) {
	s := NewStructure()
	a := s.AddParticle(NewVerlet(vec.Vec2{X: 5, Y: 5}))
	b := s.AddParticle(NewVerlet(vec.Vec2{X: 5, Y: 5}))
	if _, err := s.ConnectRest(a, b, 2, 1); err != nil {
		t.Fatal(err)
	}

	s.Solve()

	for _, i := range []int{a, b} {
		p := s.Particles[i].Pos
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			t.Fatalf("coincident solve produced non-finite position %v", p)
		}
	}
}

func TestConnectRejectsBadInput(t *testing.T) {
	s := NewStructure()
	a := s.AddParticle(NewVerlet(vec.Vec2{}))
	b := s.AddParticle(NewVerlet(vec.Vec2{}))

	if _, err := s.Connect(a, b, 1); err == nil {
		t.Error("expected error for zero rest length")
	}
	if _, err := s.ConnectRest(a, b, 5, 1.5); err == nil {
		t.Error("expected error for stiffness > 1")
	}
	if _, err := s.ConnectRest(a, a, 5, 1); err == nil {
		t.Error("expected error for self constraint")
	}
}

func TestVerletUpdateFriction(t *testing.T) {
	p := NewVerlet(vec.Vec2{X: 10, Y: 0})
	p.PrevPos = vec.Vec2{X: 8, Y: 0} // implicit velocity (2, 0)
	p.Update(0.5)

	if math.Abs(p.Pos.X-11) > 1e-12 { // 10 + 2*0.5
		t.Errorf("pos.X = %f, want 11", p.Pos.X)
	}
	if p.PrevPos.X != 10 {
		t.Errorf("prevPos.X = %f, want 10", p.PrevPos.X)
	}
}

func TestApplyForceIgnoredWhenPinned(t *testing.T) {
	p := NewPinned(vec.Vec2{X: 1, Y: 1})
	p.ApplyForce(vec.Vec2{X: 99, Y: 99})
	if p.Acc.X != 0 || p.Acc.Y != 0 {
		t.Errorf("pinned particle accumulated acceleration: %v", p.Acc)
	}
	p.Update(DefaultFriction)
	if p.Pos.X != 1 || p.Pos.Y != 1 {
		t.Errorf("pinned particle moved: %v", p.Pos)
	}
}

func TestStructureBoundReflects(t *testing.T) {
	s := NewStructure()
	i := s.AddParticle(NewVerlet(vec.Vec2{X: 50, Y: 120}))
	s.Particles[i].PrevPos = vec.Vec2{X: 50, Y: 110} // moving down fast

	s.Bound(100, 100)

	p := &s.Particles[i]
	if p.Pos.Y != 100-p.Radius {
		t.Errorf("pos.Y = %f, want clamped to %f", p.Pos.Y, 100-p.Radius)
	}
	// Implicit velocity now points back up, damped.
	v := p.Velocity()
	if v.Y >= 0 {
		t.Errorf("implicit velocity after bound = %v, want upward", v)
	}
}

func TestMaxResidual(t *testing.T) {
	s := NewStructure()
	a := s.AddParticle(NewVerlet(vec.Vec2{X: 0, Y: 0}))
	b := s.AddParticle(NewVerlet(vec.Vec2{X: 10, Y: 0}))
	if _, err := s.ConnectRest(a, b, 10, 1); err != nil {
		t.Fatal(err)
	}

	if r := s.MaxResidual(); r > 1e-12 {
		t.Errorf("residual at rest = %f, want 0", r)
	}
	s.Particles[b].Pos.X = 15
	if r := s.MaxResidual(); math.Abs(r-0.5) > 1e-12 {
		t.Errorf("residual = %f, want 0.5", r)
	}
}
