package material

import "github.com/tracelane/pathtracer/pkg/core"

// Metal is a specular reflector with optional fuzz.
type Metal struct {
	Albedo core.Color
	Fuzz   float64
}

// NewMetal builds a Metal material, clamping fuzz into [0,1].
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements core.Material: reflect the incoming direction about
// the normal, perturbed by Fuzz (spec.md §4.7). A perturbed direction that
// ends up below the surface is absorbed rather than scattered.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Unit().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(rng.InUnitSphere().Scale(m.Fuzz))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Ray:         core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}

// Emit implements core.Material; Metal never emits.
func (m *Metal) Emit(hit core.HitRecord) core.Color {
	return core.Color{}
}
