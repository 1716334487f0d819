package geometry

import (
	"github.com/tracelane/pathtracer/pkg/core"
)

// triangleEpsilon pads a triangle's bounding box so axis-aligned (flat)
// triangles still produce a non-degenerate slab (spec.md §4.3).
const triangleEpsilon = 1e-5

// Triangle is a single triangle with a precomputed unit normal. Unlike the
// teacher's Moller-Trumbore implementation, this follows spec.md's plane
// intersection plus same-side test, which is what the original C++ source
// (src/triangle.h) implements and spec.md §4.3 specifies bit-for-bit.
type Triangle struct {
	A, B, C  core.Vec3
	Normal   core.Vec3
	Material core.Material
}

// NewTriangle builds a triangle and precomputes its normal.
func NewTriangle(a, b, c core.Vec3, material core.Material) *Triangle {
	return &Triangle{
		A:        a,
		B:        b,
		C:        c,
		Normal:   b.Sub(a).Cross(c.Sub(a)).Unit(),
		Material: material,
	}
}

// Hit implements core.Hittable.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	denom := t.Normal.Dot(ray.Direction)
	if denom == 0 {
		return core.HitRecord{}, false
	}

	planeD := t.A.Dot(t.Normal)
	hitT := (planeD - t.Normal.Dot(ray.Origin)) / denom
	if hitT < tMin || hitT > tMax {
		return core.HitRecord{}, false
	}

	point := ray.At(hitT)
	if !t.includesPointOnPlane(point) {
		return core.HitRecord{}, false
	}

	rec := core.HitRecord{T: hitT, Point: point, Material: t.Material}
	rec.SetFaceNormal(ray, t.Normal)
	return rec, true
}

// includesPointOnPlane implements the same-side test from spec.md §4.3:
// evaluate the sign of ((edge) x normal) . (point - vertex) for each edge
// and require all three signs to agree.
func (t *Triangle) includesPointOnPlane(p core.Vec3) bool {
	ab := t.B.Sub(t.A)
	bc := t.C.Sub(t.B)
	ca := t.A.Sub(t.C)

	s1 := ab.Cross(t.Normal).Dot(p.Sub(t.A))
	s2 := bc.Cross(t.Normal).Dot(p.Sub(t.B))
	s3 := ca.Cross(t.Normal).Dot(p.Sub(t.C))

	allNonNegative := s1 >= 0 && s2 >= 0 && s3 >= 0
	allNonPositive := s1 <= 0 && s2 <= 0 && s3 <= 0
	return allNonNegative || allNonPositive
}

// BoundingBox implements core.Hittable.
func (t *Triangle) BoundingBox(tStart, tEnd float64) (core.AABB, bool) {
	min := core.NewVec3(
		minOf3(t.A.X, t.B.X, t.C.X)-triangleEpsilon,
		minOf3(t.A.Y, t.B.Y, t.C.Y)-triangleEpsilon,
		minOf3(t.A.Z, t.B.Z, t.C.Z)-triangleEpsilon,
	)
	max := core.NewVec3(
		maxOf3(t.A.X, t.B.X, t.C.X)+triangleEpsilon,
		maxOf3(t.A.Y, t.B.Y, t.C.Y)+triangleEpsilon,
		maxOf3(t.A.Z, t.B.Z, t.C.Z)+triangleEpsilon,
	)
	return core.NewAABB(min, max), true
}

func minOf3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
