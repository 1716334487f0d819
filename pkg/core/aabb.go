package core

import "math"

// AABB is an axis-aligned bounding box with corners satisfying
// Min <= Max component-wise.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB builds an AABB from its two corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Contains reports whether point lies within the closed box.
func (b AABB) Contains(p Vec3) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

// Hit runs the Kay-Kajiya slab test (spec.md §4.1). Division by a
// direction component of zero produces a correctly signed infinity in
// IEEE 754, which is what makes axis-parallel rays resolve correctly
// without a special case here.
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.Get(axis)
		t0 := (b.Min.Get(axis) - ray.Origin.Get(axis)) * invD
		t1 := (b.Max.Get(axis) - ray.Origin.Get(axis)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Merge returns the smallest AABB enclosing both a and b.
func Merge(a, b AABB) AABB {
	return AABB{
		Min: NewVec3(
			math.Min(a.Min.X, b.Min.X),
			math.Min(a.Min.Y, b.Min.Y),
			math.Min(a.Min.Z, b.Min.Z),
		),
		Max: NewVec3(
			math.Max(a.Max.X, b.Max.X),
			math.Max(a.Max.Y, b.Max.Y),
			math.Max(a.Max.Z, b.Max.Z),
		),
	}
}
