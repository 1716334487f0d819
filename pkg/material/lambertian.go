// Package material holds the surface shaders that implement core.Material:
// Lambertian, Metal, Dielectric and DiffuseLight.
package material

import (
	"github.com/tracelane/pathtracer/pkg/core"
)

// Lambertian is a perfectly diffuse surface.
type Lambertian struct {
	Albedo core.Color
}

// NewLambertian builds a Lambertian material.
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements core.Material. The scatter direction is the normal
// plus a uniformly-distributed unit vector (spec.md §4.7); if that sum is
// near zero (normal and sample nearly cancel) it substitutes the normal
// itself so the outgoing ray never degenerates to a zero direction.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(rng.UnitVector())
	if direction.NearZero() {
		direction = hit.Normal
	}

	return core.ScatterResult{
		Ray:         core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo,
	}, true
}

// Emit implements core.Material; Lambertian never emits.
func (l *Lambertian) Emit(hit core.HitRecord) core.Color {
	return core.Color{}
}
