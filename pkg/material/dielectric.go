package material

import (
	"math"

	"github.com/tracelane/pathtracer/pkg/core"
)

// Dielectric is a transparent material (glass, water) that both reflects
// and refracts. It assumes the exterior medium has an index of refraction
// of 1, as spec.md §4.7 does.
type Dielectric struct {
	IOR float64
}

// NewDielectric builds a Dielectric material with the given index of
// refraction (1.5 for ordinary glass).
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

// Scatter implements core.Material. Total internal reflection, and a
// Schlick-approximation Fresnel draw, both fall back to reflection;
// otherwise the ray refracts. Dielectric always scatters and never
// attenuates color.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	eta := d.IOR
	if hit.FrontFace {
		eta = 1.0 / d.IOR
	}

	unitDirection := rayIn.Direction.Unit()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := eta*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Schlick(cosTheta, eta) > rng.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, eta)
	}

	return core.ScatterResult{
		Ray:         core.NewRay(hit.Point, direction),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// Emit implements core.Material; Dielectric never emits.
func (d *Dielectric) Emit(hit core.HitRecord) core.Color {
	return core.Color{}
}

// Schlick computes Fresnel reflectance via Schlick's approximation
// (spec.md §4.7): R(cosTheta) = r0 + (1-r0)(1-cosTheta)^5.
func Schlick(cosTheta, eta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}
