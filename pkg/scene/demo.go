package scene

import (
	"github.com/tracelane/pathtracer/pkg/camera"
	"github.com/tracelane/pathtracer/pkg/core"
	"github.com/tracelane/pathtracer/pkg/geometry"
	"github.com/tracelane/pathtracer/pkg/material"
)

// NewDefaultScene builds the repository's built-in demo scene in the
// teacher's idiom (pkg/scene/default_scene.go): a few spheres of
// different materials over a diffuse ground, including a hollow-glass
// sphere pair that exercises spec.md §4.2's negative-radius trick, so the
// repository renders something without requiring a -scene YAML file.
func NewDefaultScene() *Description {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	centerMat := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	leftMat := material.NewDielectric(1.5)
	rightMat := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, centerMat),
		// Hollow glass: a positive-radius shell around a negative-radius
		// inner surface, spec.md §4.2 / §8 scenario B.
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, leftMat),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, leftMat),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, rightMat),
	)

	cam := camera.Config{
		LookFrom:    core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		WorldUp:     core.NewVec3(0, 1, 0),
		VFovDeg:     40,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.05,
		FocalLength: 3.4,
	}

	return &Description{
		World:      world,
		Camera:     cam,
		Background: core.NewGradientBackground(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)),
		Render: RenderYAML{
			Width: 400, Height: 225, Samples: 100, MaxDepth: 50, Workers: 0, Seed: 1,
		},
	}
}

// NewCornellBoxScene builds a classic Cornell box (pkg/scene/cornell.go in
// the teacher), using pairs of spec.md-specified Triangles for the walls
// and ceiling light since this system has no Quad primitive - only
// Sphere, Triangle, and Mesh (spec.md §3).
func NewCornellBoxScene() *Description {
	const box = 555.0

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	world := geometry.NewHittableList()
	addQuad := func(a, b, c, d core.Vec3, mat core.Material) {
		world.Add(geometry.NewTriangle(a, b, c, mat))
		world.Add(geometry.NewTriangle(a, c, d, mat))
	}

	// Floor.
	addQuad(
		core.NewVec3(0, 0, 0), core.NewVec3(box, 0, 0),
		core.NewVec3(box, 0, box), core.NewVec3(0, 0, box),
		white,
	)
	// Ceiling.
	addQuad(
		core.NewVec3(0, box, 0), core.NewVec3(box, box, 0),
		core.NewVec3(box, box, box), core.NewVec3(0, box, box),
		white,
	)
	// Back wall.
	addQuad(
		core.NewVec3(0, 0, box), core.NewVec3(box, 0, box),
		core.NewVec3(box, box, box), core.NewVec3(0, box, box),
		white,
	)
	// Left wall (red).
	addQuad(
		core.NewVec3(0, 0, box), core.NewVec3(0, 0, 0),
		core.NewVec3(0, box, 0), core.NewVec3(0, box, box),
		red,
	)
	// Right wall (green).
	addQuad(
		core.NewVec3(box, 0, 0), core.NewVec3(box, 0, box),
		core.NewVec3(box, box, box), core.NewVec3(box, box, 0),
		green,
	)
	// Ceiling light.
	addQuad(
		core.NewVec3(213, box-0.5, 227), core.NewVec3(343, box-0.5, 227),
		core.NewVec3(343, box-0.5, 332), core.NewVec3(213, box-0.5, 332),
		light,
	)

	// A glass sphere and a metal sphere standing in the box in place of
	// the teacher's rotated boxes, since this system has no box/cuboid
	// primitive.
	world.Add(geometry.NewSphere(core.NewVec3(185, 90, 169), 90, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(370, 110, 370), 110, material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.05)))

	cam := camera.Config{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		WorldUp:     core.NewVec3(0, 1, 0),
		VFovDeg:     40,
		AspectRatio: 1.0,
		Aperture:    0,
		FocalLength: 800,
	}

	return &Description{
		World:      world,
		Camera:     cam,
		Background: core.NewFlatBackground(core.Color{}),
		Render: RenderYAML{
			Width: 400, Height: 400, Samples: 150, MaxDepth: 40, Workers: 0, Seed: 1,
		},
	}
}
