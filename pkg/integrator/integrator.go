// Package integrator implements the recursive radiance estimator that
// turns a camera ray into a color (spec.md §4.9).
package integrator

import (
	"math"

	"github.com/tracelane/pathtracer/pkg/core"
)

// RayColor estimates the radiance arriving along ray from world, bouncing
// up to depth times before giving up. spec.md §4.9 describes this as a
// recursion; spec.md §9 Design Notes prefers an iterative formulation with
// a running attenuation product, which is what's implemented here - it's
// equivalent to the recursive form and doesn't grow the native stack with
// depth.
//
//	color = E0 + a0*(E1 + a1*(E2 + a2*(...)))
//	      = E0 + a0*E1 + a0*a1*E2 + a0*a1*a2*E3 + ...
//
// so each bounce adds throughput*emitted to an accumulator and multiplies
// throughput by that bounce's attenuation before tracing the next ray.
func RayColor(world core.Hittable, background core.Background, ray core.Ray, depth int, rng *core.RNG) core.Color {
	accum := core.Color{}
	throughput := core.NewVec3(1, 1, 1)

	for bounce := 0; bounce < depth; bounce++ {
		hit, ok := world.Hit(ray, 0.001, math.Inf(1))
		if !ok {
			accum = accum.Add(throughput.Mul(background.At(ray)))
			return accum
		}

		emitted := hit.Material.Emit(hit)
		accum = accum.Add(throughput.Mul(emitted))

		scatter, scattered := hit.Material.Scatter(ray, hit, rng)
		if !scattered {
			return accum
		}

		throughput = throughput.Mul(scatter.Attenuation)
		ray = scatter.Ray
	}

	return accum
}
