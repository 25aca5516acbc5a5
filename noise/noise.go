// Package noise provides coherent scalar noise sources and the curl field
// derived from them.
package noise

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source is a deterministic, continuous scalar noise function with values
// approximately in [-1, 1]. The third coordinate is typically used as a time
// axis for smooth temporal evolution.
type Source interface {
	Eval2(x, y float64) float64
	Eval3(x, y, z float64) float64
}

// Perlin is a classic permutation-table gradient noise generator.
type Perlin struct {
	perm [512]int
}

// NewPerlin creates a Perlin generator seeded with the given value.
func NewPerlin(seed int64) *Perlin {
	p := &Perlin{}
	rng := rand.New(rand.NewSource(seed))

	var perm [256]int
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	for i := 0; i < 256; i++ {
		p.perm[i] = perm[i]
		p.perm[i+256] = perm[i]
	}

	return p
}

// Eval3 returns the noise value at 3D coordinates.
func (p *Perlin) Eval3(x, y, z float64) float64 {
	// Unit cube containing the point
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255
	Z := int(math.Floor(z)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)

	u := fade(x)
	v := fade(y)
	w := fade(z)

	// Hash coordinates of cube corners
	A := p.perm[X] + Y
	AA := p.perm[A] + Z
	AB := p.perm[A+1] + Z
	B := p.perm[X+1] + Y
	BA := p.perm[B] + Z
	BB := p.perm[B+1] + Z

	return lerp(w, lerp(v, lerp(u, grad(p.perm[AA], x, y, z),
		grad(p.perm[BA], x-1, y, z)),
		lerp(u, grad(p.perm[AB], x, y-1, z),
			grad(p.perm[BB], x-1, y-1, z))),
		lerp(v, lerp(u, grad(p.perm[AA+1], x, y, z-1),
			grad(p.perm[BA+1], x-1, y, z-1)),
			lerp(u, grad(p.perm[AB+1], x, y-1, z-1),
				grad(p.perm[BB+1], x-1, y-1, z-1))))
}

// Eval2 returns the noise value at 2D coordinates.
func (p *Perlin) Eval2(x, y float64) float64 {
	return p.Eval3(x, y, 0)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Simplex adapts the opensimplex generator to the Source interface.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates an opensimplex-backed source seeded with the given value.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Eval2 returns the noise value at 2D coordinates.
func (s *Simplex) Eval2(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

// Eval3 returns the noise value at 3D coordinates.
func (s *Simplex) Eval3(x, y, z float64) float64 {
	return s.n.Eval3(x, y, z)
}

// NewSource returns a source of the named kind ("perlin" or "simplex").
// Unknown kinds fall back to perlin.
func NewSource(kind string, seed int64) Source {
	if kind == "simplex" {
		return NewSimplex(seed)
	}
	return NewPerlin(seed)
}
