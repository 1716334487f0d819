package geometry

import (
	"fmt"

	"github.com/tracelane/pathtracer/pkg/core"
)

// Mesh owns a vertex buffer, an index buffer (triples), and a material
// table, materializing one Triangle per index-triple and wrapping them in
// an inner BVH (spec.md §4.4). This is the teacher's "don't store a
// Triangle per face by hand" idea (pkg/geometry/triangle_mesh.go) adapted
// to spec.md's simpler per-triangle material-index table instead of a
// parallel Normals/UVs options struct.
type Mesh struct {
	bvh core.Hittable
	box core.AABB
}

// NewMesh builds a mesh from vertices, index triples, and a material
// table. matIndices assigns a material table index to each triangle;
// passing nil uses material 0 for every triangle. Construction fails if
// fewer than 3 vertices or zero materials are supplied (spec.md §4.4), or
// if the index buffer isn't a multiple of 3.
func NewMesh(vertices []core.Vec3, indices []int, materials []core.Material, matIndices []int, rng *core.RNG) (*Mesh, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("geometry: mesh needs at least 3 vertices, got %d", len(vertices))
	}
	if len(materials) == 0 {
		return nil, fmt.Errorf("geometry: mesh needs at least 1 material")
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("geometry: mesh index buffer length %d is not a multiple of 3", len(indices))
	}

	triCount := len(indices) / 3
	triangles := make([]core.Hittable, triCount)
	for i := 0; i < triCount; i++ {
		matIdx := 0
		if matIndices != nil {
			matIdx = matIndices[i]
		}
		if matIdx < 0 || matIdx >= len(materials) {
			return nil, fmt.Errorf("geometry: triangle %d references out-of-range material %d", i, matIdx)
		}

		i0, i1, i2 := indices[i*3], indices[i*3+1], indices[i*3+2]
		if i0 < 0 || i0 >= len(vertices) || i1 < 0 || i1 >= len(vertices) || i2 < 0 || i2 >= len(vertices) {
			return nil, fmt.Errorf("geometry: triangle %d references out-of-range vertex index", i)
		}

		triangles[i] = NewTriangle(vertices[i0], vertices[i1], vertices[i2], materials[matIdx])
	}

	bvh, err := NewBVH(triangles, 0, 1, rng)
	if err != nil {
		return nil, fmt.Errorf("geometry: mesh BVH: %w", err)
	}
	box, _ := bvh.BoundingBox(0, 1)

	return &Mesh{bvh: bvh, box: box}, nil
}

// Hit implements core.Hittable by delegating to the inner BVH.
func (m *Mesh) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return m.bvh.Hit(ray, tMin, tMax)
}

// BoundingBox implements core.Hittable.
func (m *Mesh) BoundingBox(tStart, tEnd float64) (core.AABB, bool) {
	return m.box, true
}
