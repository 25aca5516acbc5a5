package vec

import (
	"math"
	"math/rand"
	"testing"
)

const tol = 1e-12

func TestNormalizeUnitLength(t *testing.T) {
	cases := []Vec2{
		{3, 4},
		{-1, 2},
		{0.001, -0.002},
		{1e6, -1e6},
	}
	for _, c := range cases {
		v := c.Copy()
		v.Normalize()
		if math.Abs(v.Mag()-1) > tol {
			t.Errorf("normalize(%v) has mag %f, want 1", c, v.Mag())
		}
	}
}

func TestNormalizeZeroIsNoop(t *testing.T) {
	v := Vec2{}
	v.Normalize()
	if v.X != 0 || v.Y != 0 {
		t.Errorf("normalize of zero vector changed it: %v", v)
	}
}

func TestDivByZeroIsNoop(t *testing.T) {
	v := Vec2{3, -7}
	v.Div(0)
	if v.X != 3 || v.Y != -7 {
		t.Errorf("div by zero changed vector: %v", v)
	}
}

func TestAddSubInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		a := Vec2{rng.NormFloat64() * 100, rng.NormFloat64() * 100}
		b := Vec2{rng.NormFloat64() * 100, rng.NormFloat64() * 100}
		got := Sub(Add(a, b), b)
		if math.Abs(got.X-a.X) > 1e-9 || math.Abs(got.Y-a.Y) > 1e-9 {
			t.Fatalf("sub(add(%v,%v),%v) = %v, want %v", a, b, b, got, a)
		}
	}
}

func TestLimitCapsMagnitudePreservesHeading(t *testing.T) {
	v := Vec2{30, 40}
	heading := v.Heading()
	v.Limit(5)
	if math.Abs(v.Mag()-5) > tol {
		t.Errorf("limit(5) gave mag %f, want 5", v.Mag())
	}
	if math.Abs(v.Heading()-heading) > tol {
		t.Errorf("limit changed heading from %f to %f", heading, v.Heading())
	}
}

func TestLimitUnderMaxUntouched(t *testing.T) {
	v := Vec2{1, 1}
	v.Limit(10)
	if v.X != 1 || v.Y != 1 {
		t.Errorf("limit touched a vector under the cap: %v", v)
	}
}

func TestSetMag(t *testing.T) {
	v := Vec2{1, 1}
	v.SetMag(7)
	if math.Abs(v.Mag()-7) > tol {
		t.Errorf("setMag(7) gave mag %f", v.Mag())
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	v := Vec2{1, 0}
	v.Rotate(math.Pi / 2)
	if math.Abs(v.X) > tol || math.Abs(v.Y-1) > tol {
		t.Errorf("rotate pi/2 of (1,0) = %v, want (0,1)", v)
	}
}

func TestRotatePreservesMagnitude(t *testing.T) {
	v := Vec2{3, 4}
	v.Rotate(1.234)
	if math.Abs(v.Mag()-5) > 1e-9 {
		t.Errorf("rotate changed magnitude to %f", v.Mag())
	}
}

func TestLerp(t *testing.T) {
	v := Vec2{0, 0}
	v.Lerp(Vec2{10, 20}, 0.25)
	if math.Abs(v.X-2.5) > tol || math.Abs(v.Y-5) > tol {
		t.Errorf("lerp gave %v, want (2.5, 5)", v)
	}

	// t outside [0,1] extrapolates
	w := Vec2{0, 0}
	w.Lerp(Vec2{10, 0}, 2)
	if math.Abs(w.X-20) > tol {
		t.Errorf("lerp t=2 gave %v, want x=20", w)
	}
}

func TestDist(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{3, 4}
	if d := Dist(a, b); math.Abs(d-5) > tol {
		t.Errorf("dist = %f, want 5", d)
	}
	if d := DistSq(a, b); math.Abs(d-25) > tol {
		t.Errorf("distSq = %f, want 25", d)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi)
	if math.Abs(v.X+1) > tol || math.Abs(v.Y) > tol {
		t.Errorf("fromAngle(pi) = %v, want (-1, 0)", v)
	}
}

func TestRandomIsUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		v := Random(rng)
		if math.Abs(v.Mag()-1) > tol {
			t.Fatalf("random vector has mag %f", v.Mag())
		}
	}
}

func TestChaining(t *testing.T) {
	v := Vec2{1, 2}
	v.Add(Vec2{1, 0}).Mult(2).Sub(Vec2{0, 4})
	if v.X != 4 || v.Y != 0 {
		t.Errorf("chained ops gave %v, want (4, 0)", v)
	}
}

func TestPureVariantsLeaveOperands(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	_ = Add(a, b)
	_ = Sub(a, b)
	_ = Scale(a, 5)
	_ = Lerp(a, b, 0.5)
	if a.X != 1 || a.Y != 2 || b.X != 3 || b.Y != 4 {
		t.Errorf("pure variants mutated operands: a=%v b=%v", a, b)
	}
}
