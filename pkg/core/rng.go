package core

import (
	"math"
	"math/rand"
)

// RNG is a seeded pseudo-random source. Every render worker owns one
// exclusively (spec.md §5): it is never shared between goroutines, so it
// needs no locking. It wraps math/rand.Rand the way the teacher's material
// code already threads a *rand.Rand through Scatter calls, but gives the
// rendering-specific draws (unit sphere, unit disk, axis choice) a home
// next to Vec3 instead of scattering math/rand calls across packages.
type RNG struct {
	r *rand.Rand
}

// NewRNG seeds a new independent generator.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform sample in [0,1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Range returns a uniform sample in [lo, hi).
func (g *RNG) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*g.Float64()
}

// Intn returns a uniform integer in [0, n).
func (g *RNG) Intn(n int) int {
	return g.r.Intn(n)
}

// Axis picks one of the three coordinate axes uniformly, used by the BVH's
// random-axis split (spec.md §4.6).
func (g *RNG) Axis() int {
	return g.Intn(3)
}

// UnitVector returns a uniformly distributed point on the unit sphere,
// used by Lambertian scattering.
func (g *RNG) UnitVector() Vec3 {
	for {
		p := NewVec3(g.Range(-1, 1), g.Range(-1, 1), g.Range(-1, 1))
		lensq := p.LengthSquared()
		if lensq > 1e-160 && lensq <= 1.0 {
			return p.Scale(1.0 / math.Sqrt(lensq))
		}
	}
}

// InUnitSphere returns a uniformly distributed point inside the unit ball,
// used to fuzz metal reflections.
func (g *RNG) InUnitSphere() Vec3 {
	for {
		p := NewVec3(g.Range(-1, 1), g.Range(-1, 1), g.Range(-1, 1))
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// InUnitDisk returns a uniformly distributed point inside the unit disk in
// the XY plane, used by the thin-lens camera to sample the aperture.
func (g *RNG) InUnitDisk() Vec3 {
	for {
		p := NewVec3(g.Range(-1, 1), g.Range(-1, 1), 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
