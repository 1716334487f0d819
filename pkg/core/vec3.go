// Package core provides the value types shared by every other package in
// the tracer: vectors/colors, rays, axis-aligned bounding boxes, and the
// Hittable/Material capability interfaces that tie geometry to shading.
package core

import "math"

// Vec3 is a 3-component double-precision vector. It is also used to
// represent linear RGB color, accessed through R/G/B below. Vec3 is a plain
// value: copy it freely, there is no hidden allocation or ownership.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 builds a vector from its three components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Color is Vec3 viewed as linear RGB. It is a plain alias so color math
// reuses all of Vec3's arithmetic without a wrapper type.
type Color = Vec3

// R, G, B read a Vec3 as a color. Named for call sites that are about
// shading rather than geometry.
func (v Vec3) R() float64 { return v.X }
func (v Vec3) G() float64 { return v.Y }
func (v Vec3) B() float64 { return v.Z }

// Get returns the i'th component (0=X, 1=Y, 2=Z), so axis-generic code
// (the BVH split, the AABB slab test) doesn't need a switch at every call
// site.
func (v Vec3) Get(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Neg returns the additive inverse.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Scale returns v scaled by a scalar.
func (v Vec3) Scale(t float64) Vec3 {
	return Vec3{v.X * t, v.Y * t, v.Z * t}
}

// Mul returns the component-wise (Hadamard) product, used to apply
// attenuation to incoming radiance.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Dot returns the scalar (inner) product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared avoids the square root when only a comparison is needed.
func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the Euclidean norm.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Unit returns v scaled to length 1. Undefined for the zero vector -
// callers must not normalize a vector that may be zero without checking
// NearZero first.
func (v Vec3) Unit() Vec3 {
	return v.Scale(1.0 / v.Length())
}

// NearZero reports whether v is close enough to the zero vector that
// normalizing it or using it as a scatter direction would misbehave.
func (v Vec3) NearZero() bool {
	const eps = 1e-16
	return v.LengthSquared() < eps
}

// Reflect mirrors v about a surface with (unit) normal n, assuming v is
// already a unit vector: r = v - 2(v.n)n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract bends a unit vector v through a surface with (unit) normal n
// using Snell's law, where eta is the ratio of the incident to the
// transmitted refractive index. Assumes v is unit and -v.n <= 1; callers
// are responsible for the total-internal-reflection check before calling.
func (v Vec3) Refract(n Vec3, eta float64) Vec3 {
	cosTheta := math.Min(-v.Dot(n), 1.0)
	perp := v.Add(n.Scale(cosTheta)).Scale(eta)
	parallel := n.Scale(-math.Sqrt(math.Abs(1.0 - perp.LengthSquared())))
	return perp.Add(parallel)
}

// Clamp clamps every component into [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	clamp := func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}
	return Vec3{clamp(v.X), clamp(v.Y), clamp(v.Z)}
}

// Gamma2 applies gamma-2 correction (component-wise square root), the
// cheap approximation to the sRGB transfer function spec.md calls for.
func (v Vec3) Gamma2() Vec3 {
	return Vec3{math.Sqrt(v.X), math.Sqrt(v.Y), math.Sqrt(v.Z)}
}
