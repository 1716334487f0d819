package loaders

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPLY writes a binary-little-endian PLY describing a unit square
// (two triangles), with normals/colors present but ignored by the loader
// (spec.md's Mesh has no use for them) to prove they're skipped correctly
// rather than misread as index data.
func writeTestPLY(t *testing.T, path string, includeNormals bool) {
	t.Helper()
	var buf bytes.Buffer

	buf.WriteString("ply\n")
	buf.WriteString("format binary_little_endian 1.0\n")
	buf.WriteString("element vertex 4\n")
	buf.WriteString("property float x\n")
	buf.WriteString("property float y\n")
	buf.WriteString("property float z\n")
	if includeNormals {
		buf.WriteString("property float nx\n")
		buf.WriteString("property float ny\n")
		buf.WriteString("property float nz\n")
	}
	buf.WriteString("element face 2\n")
	buf.WriteString("property list uchar int vertex_indices\n")
	buf.WriteString("end_header\n")

	positions := [4][3]float32{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	}
	for _, p := range positions {
		binary.Write(&buf, binary.LittleEndian, p[0])
		binary.Write(&buf, binary.LittleEndian, p[1])
		binary.Write(&buf, binary.LittleEndian, p[2])
		if includeNormals {
			binary.Write(&buf, binary.LittleEndian, float32(0))
			binary.Write(&buf, binary.LittleEndian, float32(0))
			binary.Write(&buf, binary.LittleEndian, float32(1))
		}
	}

	writeFace := func(a, b, c int32) {
		binary.Write(&buf, binary.LittleEndian, uint8(3))
		binary.Write(&buf, binary.LittleEndian, a)
		binary.Write(&buf, binary.LittleEndian, b)
		binary.Write(&buf, binary.LittleEndian, c)
	}
	writeFace(0, 1, 2)
	writeFace(0, 2, 3)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing test PLY: %v", err)
	}
}

func TestLoadPLYMesh_ReadsVerticesAndFaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.ply")
	writeTestPLY(t, path, false)

	vertices, indices, err := LoadPLYMesh(path)
	if err != nil {
		t.Fatalf("LoadPLYMesh: %v", err)
	}
	if len(vertices) != 4 {
		t.Fatalf("got %d vertices, want 4", len(vertices))
	}
	if len(indices) != 6 {
		t.Fatalf("got %d indices, want 6 (2 triangles)", len(indices))
	}
	if vertices[2].X != 1 || vertices[2].Y != 1 {
		t.Errorf("vertex 2 = %+v, want (1,1,0)", vertices[2])
	}
}

func TestLoadPLYMesh_SkipsUnusedVertexProperties(t *testing.T) {
	withNormals := filepath.Join(t.TempDir(), "with_normals.ply")
	writeTestPLY(t, withNormals, true)

	vertices, indices, err := LoadPLYMesh(withNormals)
	if err != nil {
		t.Fatalf("LoadPLYMesh with normals present: %v", err)
	}
	if len(vertices) != 4 || len(indices) != 6 {
		t.Fatalf("got %d vertices / %d indices, want 4 / 6", len(vertices), len(indices))
	}
	// If the normal properties weren't skipped correctly, vertex positions
	// would be misaligned past the first vertex.
	if vertices[3].X != 0 || vertices[3].Y != 1 {
		t.Errorf("vertex 3 = %+v, want (0,1,0) - normals not skipped cleanly", vertices[3])
	}
}

func TestLoadPLYMesh_MissingFile(t *testing.T) {
	if _, _, err := LoadPLYMesh(filepath.Join(t.TempDir(), "nope.ply")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
