// Package geometry holds the concrete Hittable implementations: Sphere,
// Triangle, Mesh, HittableList, and the BVH that accelerates them.
package geometry

import (
	"math"

	"github.com/tracelane/pathtracer/pkg/core"
)

// Sphere is an implicit sphere of radius Radius centered at Center.
//
// A negative Radius is a deliberate trick (spec.md §4.2): the geometry is
// identical, but dividing by a negative radius flips the outward normal,
// producing a surface that faces inward without a separate boolean flag.
// Nesting a negative-radius sphere inside a positive one is how this
// tracer builds hollow glass.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere builds a sphere.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit implements core.Hittable.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Sub(s.Center).Scale(1.0 / s.Radius)

	rec := core.HitRecord{T: root, Point: point, Material: s.Material}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

// BoundingBox implements core.Hittable.
func (s *Sphere) BoundingBox(tStart, tEnd float64) (core.AABB, bool) {
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	return core.NewAABB(s.Center.Sub(radius), s.Center.Add(radius)), true
}
