package loaders

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/tracelane/pathtracer/pkg/core"
)

// LoadGLTFMesh reads every primitive with a POSITION attribute from every
// mesh in a .gltf/.glb document's mesh list and concatenates them into one
// (vertices, indices) pair, exactly what geometry.NewMesh expects. Nodes
// are not walked, so node transforms are not applied.
// Grounded on mrigankad-gorenderengine/scene/gltf_loader.go's
// accessor-reading approach (gltf.Open + modeler.ReadPosition/ReadIndices),
// simplified to positions only: spec.md's Mesh has no material-per-vertex
// PBR model, per-vertex normals, or texture coordinates to carry over, so
// this loader skips the teacher's texture/material/node-hierarchy
// machinery entirely and returns geometry only.
func LoadGLTFMesh(path string) ([]core.Vec3, []int, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loaders: open glTF file %q: %w", path, err)
	}

	var vertices []core.Vec3
	var indices []int

	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			posIdx, ok := prim.Attributes["POSITION"]
			if !ok {
				continue
			}

			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, nil, fmt.Errorf("loaders: glTF mesh %d primitive %d positions: %w", mi, pi, err)
			}

			base := len(vertices)
			for _, p := range positions {
				vertices = append(vertices, core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2])))
			}

			if prim.Indices == nil {
				for i := range positions {
					indices = append(indices, base+i)
				}
				continue
			}

			primIndices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, nil, fmt.Errorf("loaders: glTF mesh %d primitive %d indices: %w", mi, pi, err)
			}
			for _, idx := range primIndices {
				indices = append(indices, base+int(idx))
			}
		}
	}

	if len(vertices) == 0 {
		return nil, nil, fmt.Errorf("loaders: glTF file %q has no POSITION-bearing primitives", path)
	}

	return vertices, indices, nil
}

// LoadMeshFile dispatches to LoadPLYMesh or LoadGLTFMesh by file
// extension, so pkg/scene's YAML-driven mesh primitive doesn't need to
// know which loader a given asset needs.
func LoadMeshFile(path string) ([]core.Vec3, []int, error) {
	switch filepath.Ext(path) {
	case ".ply":
		return LoadPLYMesh(path)
	case ".gltf", ".glb":
		return LoadGLTFMesh(path)
	default:
		return nil, nil, fmt.Errorf("loaders: unrecognized mesh file extension in %q", path)
	}
}
