package integrator

import (
	"testing"

	"github.com/tracelane/pathtracer/pkg/core"
	"github.com/tracelane/pathtracer/pkg/geometry"
	"github.com/tracelane/pathtracer/pkg/material"
)

func TestRayColor_MissReturnsBackground(t *testing.T) {
	world := geometry.NewHittableList()
	bg := core.NewFlatBackground(core.NewVec3(0.5, 0.7, 1.0))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := RayColor(world, bg, ray, 10, core.NewRNG(1))
	if got != (core.Color{X: 0.5, Y: 0.7, Z: 1.0}) {
		t.Errorf("RayColor on a miss = %+v, want background color", got)
	}
}

func TestRayColor_DepthZeroReturnsBlack(t *testing.T) {
	world := geometry.NewHittableList()
	bg := core.NewFlatBackground(core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := RayColor(world, bg, ray, 0, core.NewRNG(1))
	if got != (core.Color{}) {
		t.Errorf("RayColor at depth 0 = %+v, want black", got)
	}
}

// TestRayColor_EmissiveSurfaceIsNotAttenuated puts a light directly in
// front of the camera; with no scatter, the returned color is exactly the
// light's emission regardless of depth (spec.md §4.9 step 5-6).
func TestRayColor_EmissiveSurfaceIsNotAttenuated(t *testing.T) {
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, light)
	world := geometry.NewHittableList(sphere)
	bg := core.NewFlatBackground(core.Color{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := RayColor(world, bg, ray, 10, core.NewRNG(1))
	if got != (core.Color{X: 4, Y: 4, Z: 4}) {
		t.Errorf("RayColor hitting a light = %+v, want (4,4,4)", got)
	}
}

// TestRayColor_NonNegativeWithDiffuseFloorAndLight traces a ray, with a
// seeded RNG, into a scene of a diffuse floor and an emissive back wall and
// checks that the estimate has no negative component.
func TestRayColor_NonNegativeWithDiffuseFloorAndLight(t *testing.T) {
	wallMat := material.NewDiffuseLight(core.NewVec3(2, 2, 2))
	wall := geometry.NewTriangle(
		core.NewVec3(-10, -10, -5), core.NewVec3(10, -10, -5), core.NewVec3(0, 10, -5),
		wallMat,
	)
	diffuseMat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	floor := geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, diffuseMat)
	world := geometry.NewHittableList(wall, floor)
	bg := core.NewFlatBackground(core.Color{})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -0.01, -1))
	got := RayColor(world, bg, ray, 4, core.NewRNG(42))

	if got.X < 0 || got.Y < 0 || got.Z < 0 {
		t.Errorf("RayColor must be non-negative, got %+v", got)
	}
}
