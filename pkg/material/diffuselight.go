package material

import "github.com/tracelane/pathtracer/pkg/core"

// DiffuseLight emits a fixed radiance and never scatters, making it a light
// source (spec.md §4.7). Emission colors typically exceed 1 so the light
// reads as brighter than any reflective surface.
type DiffuseLight struct {
	Emission core.Color
}

// NewDiffuseLight builds a DiffuseLight material.
func NewDiffuseLight(emission core.Color) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements core.Material; DiffuseLight never scatters.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, rng *core.RNG) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit implements core.Material, returning the emission color. Per
// SPEC_FULL.md §6, a light only emits on its front face; the back face of
// a one-sided light reads as black.
func (d *DiffuseLight) Emit(hit core.HitRecord) core.Color {
	if !hit.FrontFace {
		return core.Color{}
	}
	return d.Emission
}
