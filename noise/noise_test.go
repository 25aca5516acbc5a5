package noise

import (
	"math"
	"testing"
)

func TestPerlinDeterministicPerSeed(t *testing.T) {
	a := NewPerlin(42)
	b := NewPerlin(42)

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 0.91
		if a.Eval3(x, y, 0.5) != b.Eval3(x, y, 0.5) {
			t.Fatalf("same seed diverged at sample %d", i)
		}
	}
}

func TestPerlinSeedsDiffer(t *testing.T) {
	a := NewPerlin(1)
	b := NewPerlin(2)

	same := true
	for i := 0; i < 50 && same; i++ {
		x := float64(i) * 0.43
		if a.Eval2(x, x*0.7) != b.Eval2(x, x*0.7) {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical samples")
	}
}

func TestPerlinRange(t *testing.T) {
	p := NewPerlin(7)
	for i := 0; i < 1000; i++ {
		v := p.Eval3(float64(i)*0.13, float64(i)*0.29, float64(i)*0.017)
		if v < -1.5 || v > 1.5 {
			t.Fatalf("noise value %f far outside expected range", v)
		}
	}
}

func TestPerlinContinuity(t *testing.T) {
	p := NewPerlin(3)

	// Small input steps must produce small output steps.
	const step = 1e-4
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.31
		y := float64(i) * 0.17
		d := math.Abs(p.Eval2(x+step, y) - p.Eval2(x, y))
		if d > 0.01 {
			t.Fatalf("discontinuity at (%f, %f): jump %f over step %g", x, y, d, step)
		}
	}
}

func TestSimplexSourceContract(t *testing.T) {
	s := NewSimplex(42)
	s2 := NewSimplex(42)

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.23
		y := float64(i) * 0.71
		v := s.Eval3(x, y, 1.5)
		if v != s2.Eval3(x, y, 1.5) {
			t.Fatal("same seed diverged")
		}
		if v < -1.5 || v > 1.5 {
			t.Fatalf("value %f outside expected range", v)
		}
	}
}

func TestNewSourceKinds(t *testing.T) {
	if _, ok := NewSource("perlin", 1).(*Perlin); !ok {
		t.Error("expected perlin source")
	}
	if _, ok := NewSource("simplex", 1).(*Simplex); !ok {
		t.Error("expected simplex source")
	}
	if _, ok := NewSource("", 1).(*Perlin); !ok {
		t.Error("expected fallback to perlin")
	}
}
