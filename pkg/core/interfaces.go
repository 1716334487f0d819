package core

// HitRecord describes the nearest intersection of a ray with a Hittable.
// Normal always faces against the incoming ray: FrontFace records which
// side of the surface it started as, so materials that care (Dielectric)
// can tell whether the ray is entering or leaving.
type HitRecord struct {
	Point     Vec3
	Normal    Vec3
	T         float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal derives FrontFace and the ray-facing Normal from the
// geometric outward normal, per spec.md §3.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}

// Hittable is anything a ray can intersect: spheres, triangles, meshes,
// lists of other Hittables, and BVH nodes all satisfy it. Using a small
// interface instead of an open class hierarchy keeps dispatch a single
// vtable call instead of a chain of dynamic casts.
type Hittable interface {
	// Hit returns the nearest intersection with t in [tMin, tMax], if any.
	Hit(ray Ray, tMin, tMax float64) (HitRecord, bool)
	// BoundingBox returns the AABB enclosing the hittable over [tStart,
	// tEnd], or false if it has none (only possible for a pathological or
	// unbounded primitive; the BVH treats that as a construction error).
	BoundingBox(tStart, tEnd float64) (AABB, bool)
}

// ScatterResult is what a Material produces when it scatters an incoming
// ray: an outgoing ray and the attenuation to apply to whatever radiance
// comes back along it.
type ScatterResult struct {
	Ray         Ray
	Attenuation Color
}

// Material is the scatter/emit contract every surface shader implements.
// Lambertian, Metal and Dielectric scatter and emit black; DiffuseLight
// emits and never scatters.
type Material interface {
	// Scatter proposes an outgoing ray and attenuation for rayIn hitting
	// hit, or reports false if the ray is absorbed.
	Scatter(rayIn Ray, hit HitRecord, rng *RNG) (ScatterResult, bool)
	// Emit returns the material's emitted radiance (black for anything
	// that isn't a light).
	Emit(hit HitRecord) Color
}

// Logger is the narrow capability the renderer needs for progress
// reporting; it lets tests inject a recording implementation instead of
// asserting on stdout.
type Logger interface {
	Printf(format string, args ...any)
}
