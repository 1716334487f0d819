package geometry

import (
	"math"
	"testing"

	"github.com/tracelane/pathtracer/pkg/core"
)

// TestTriangle_Hit_Center covers spec.md §8 scenario D: a ray straight down
// the centroid of a triangle in the XY plane hits it.
func TestTriangle_Hit_Center(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, -5),
		core.NewVec3(1, -1, -5),
		core.NewVec3(0, 1, -5),
		stubMaterial{},
	)
	ray := core.NewRay(core.NewVec3(0, -1.0/3.0, 0), core.NewVec3(0, 0, -1))

	rec, ok := tri.Hit(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit at the centroid")
	}
	if !almostEqual(rec.T, 5.0, 1e-9) {
		t.Errorf("T = %v, want 5", rec.T)
	}
}

func TestTriangle_Hit_OutsideEdge(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, -5),
		core.NewVec3(1, -1, -5),
		core.NewVec3(0, 1, -5),
		stubMaterial{},
	)
	ray := core.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(0, 0, -1))

	if _, ok := tri.Hit(ray, 0, math.Inf(1)); ok {
		t.Error("expected a miss outside the triangle's edges")
	}
}

func TestTriangle_Hit_ParallelToPlaneMisses(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, -5),
		core.NewVec3(1, -1, -5),
		core.NewVec3(0, 1, -5),
		stubMaterial{},
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	if _, ok := tri.Hit(ray, 0, math.Inf(1)); ok {
		t.Error("expected a miss for a ray parallel to the triangle's plane")
	}
}

func TestTriangle_BoundingBox_PaddedForFlatTriangle(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(-1, -1, -5),
		core.NewVec3(1, -1, -5),
		core.NewVec3(0, 1, -5),
		stubMaterial{},
	)
	box, ok := tri.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if box.Max.Z-box.Min.Z <= 0 {
		t.Error("expected padded non-degenerate Z extent for a flat triangle")
	}
}
