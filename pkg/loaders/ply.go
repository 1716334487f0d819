// Package loaders reads mesh geometry from on-disk asset formats (PLY,
// glTF) into the plain (vertices, indices) pair geometry.NewMesh expects.
// spec.md §6 treats scene authoring as out of core scope; this package is
// one way to produce the Mesh inputs spec.md §4.4 specifies, the other
// being hand-built vertex/index slices.
package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tracelane/pathtracer/pkg/core"
)

// plyHeader is the parsed header of a binary-little-endian PLY file: just
// enough to read positions and triangular face indices. spec.md's Mesh
// has no use for per-vertex normals/colors/UVs/quality (no texture
// mapping, no vertex shading beyond the flat triangle normal), so unlike
// the teacher's loader this one reads only what geometry.NewMesh consumes
// and skips every other vertex property by its declared byte size.
type plyHeader struct {
	vertexCount int
	faceCount   int
	vertexProps []plyProperty
	faceProps   []plyProperty
	posIndex    [3]int // index into vertexProps of x, y, z
}

type plyProperty struct {
	name     string
	dataType string
	isList   bool
	listType string
	listElem string
}

// LoadPLYMesh reads a binary-little-endian PLY file and returns the
// vertex positions and the flattened triangle index buffer
// geometry.NewMesh expects. Only triangular faces are supported, matching
// the teacher's loader (pkg/loaders/ply.go in the teacher repo).
func LoadPLYMesh(path string) ([]core.Vec3, []int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loaders: open PLY file %q: %w", path, err)
	}
	defer file.Close()

	header, headerSize, err := parsePLYHeader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("loaders: parse PLY header of %q: %w", path, err)
	}
	if header.format != "binary_little_endian" {
		return nil, nil, fmt.Errorf("loaders: PLY format %q not supported (only binary_little_endian)", header.format)
	}

	if _, err := file.Seek(int64(headerSize), io.SeekStart); err != nil {
		return nil, nil, fmt.Errorf("loaders: seek past PLY header of %q: %w", path, err)
	}

	vertices, err := readPLYVertices(file, header)
	if err != nil {
		return nil, nil, fmt.Errorf("loaders: read PLY vertices of %q: %w", path, err)
	}

	indices, err := readPLYFaces(bufio.NewReaderSize(file, 1<<20), header)
	if err != nil {
		return nil, nil, fmt.Errorf("loaders: read PLY faces of %q: %w", path, err)
	}

	return vertices, indices, nil
}

type parsedHeader struct {
	plyHeader
	format string
}

func parsePLYHeader(file *os.File) (*parsedHeader, int, error) {
	header := &parsedHeader{plyHeader: plyHeader{posIndex: [3]int{-1, -1, -1}}}

	scanner := bufio.NewScanner(file)
	var bytesRead int
	var currentElement string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		bytesRead += len(scanner.Bytes()) + 1

		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) >= 2 {
				header.format = parts[1]
			}
		case "element":
			if len(parts) < 3 {
				continue
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, 0, fmt.Errorf("invalid element count %q", parts[2])
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.vertexCount = count
			case "face":
				header.faceCount = count
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, 0, err
			}
			switch currentElement {
			case "vertex":
				header.vertexProps = append(header.vertexProps, prop)
				idx := len(header.vertexProps) - 1
				switch prop.name {
				case "x":
					header.posIndex[0] = idx
				case "y":
					header.posIndex[1] = idx
				case "z":
					header.posIndex[2] = idx
				}
			case "face":
				header.faceProps = append(header.faceProps, prop)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}
	if header.posIndex[0] < 0 || header.posIndex[1] < 0 || header.posIndex[2] < 0 {
		return nil, 0, fmt.Errorf("PLY file has no x/y/z vertex properties")
	}

	return header, bytesRead, nil
}

func parsePLYProperty(parts []string) (plyProperty, error) {
	if len(parts) < 2 {
		return plyProperty{}, fmt.Errorf("invalid property definition")
	}
	if parts[0] == "list" {
		if len(parts) < 4 {
			return plyProperty{}, fmt.Errorf("invalid list property definition")
		}
		return plyProperty{isList: true, listType: parts[1], listElem: parts[2], name: parts[3]}, nil
	}
	return plyProperty{dataType: parts[0], name: parts[1]}, nil
}

// readPLYVertices reads every vertex's raw bytes and extracts just the
// x/y/z fields, skipping whatever else the file carries.
func readPLYVertices(file *os.File, header *parsedHeader) ([]core.Vec3, error) {
	vertexSize := 0
	offsets := make([]int, len(header.vertexProps))
	for i, prop := range header.vertexProps {
		offsets[i] = vertexSize
		vertexSize += plyTypeSize(prop.dataType)
	}

	data := make([]byte, vertexSize*header.vertexCount)
	if _, err := io.ReadFull(file, data); err != nil {
		return nil, fmt.Errorf("reading vertex block: %w", err)
	}

	vertices := make([]core.Vec3, header.vertexCount)
	readAt := func(row []byte, propIdx int) float64 {
		prop := header.vertexProps[propIdx]
		return plyReadFloat(row[offsets[propIdx]:], prop.dataType)
	}

	for i := 0; i < header.vertexCount; i++ {
		row := data[i*vertexSize : (i+1)*vertexSize]
		vertices[i] = core.NewVec3(
			readAt(row, header.posIndex[0]),
			readAt(row, header.posIndex[1]),
			readAt(row, header.posIndex[2]),
		)
	}

	return vertices, nil
}

// readPLYFaces reads each face's index list, requiring exactly 3 indices
// per face (spec.md §4.4's Mesh is triangle-only); any other property on
// the face element is skipped.
func readPLYFaces(r *bufio.Reader, header *parsedHeader) ([]int, error) {
	indices := make([]int, 0, header.faceCount*3)

	for i := 0; i < header.faceCount; i++ {
		for _, prop := range header.faceProps {
			if !(prop.isList && prop.name == "vertex_indices") {
				if err := plySkipProperty(r, prop); err != nil {
					return nil, fmt.Errorf("skipping face property %q at face %d: %w", prop.name, i, err)
				}
				continue
			}

			count, err := plyReadListCount(r, prop.listType)
			if err != nil {
				return nil, fmt.Errorf("reading face vertex count at face %d: %w", i, err)
			}
			if count != 3 {
				return nil, fmt.Errorf("only triangular faces are supported, face %d has %d vertices", i, count)
			}

			for v := 0; v < 3; v++ {
				idx, err := plyReadListElem(r, prop.listElem)
				if err != nil {
					return nil, fmt.Errorf("reading face index at face %d: %w", i, err)
				}
				indices = append(indices, idx)
			}
		}
	}

	return indices, nil
}

func plyTypeSize(dataType string) int {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 4
	}
}

func plyReadFloat(b []byte, dataType string) float64 {
	switch dataType {
	case "double", "float64":
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	default: // float/float32 and anything unrecognized
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	}
}

func plyReadListCount(r io.Reader, listType string) (int, error) {
	switch listType {
	case "uchar", "uint8":
		var n uint8
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return 0, err
		}
		return int(n), nil
	case "int", "int32":
		var n int32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return 0, err
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("unsupported list count type %q", listType)
	}
}

func plyReadListElem(r io.Reader, dataType string) (int, error) {
	switch dataType {
	case "int", "int32":
		var n int32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return 0, err
		}
		return int(n), nil
	case "uint", "uint32":
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return 0, err
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("unsupported index data type %q", dataType)
	}
}

func plySkipProperty(r *bufio.Reader, prop plyProperty) error {
	if !prop.isList {
		_, err := r.Discard(plyTypeSize(prop.dataType))
		return err
	}
	count, err := plyReadListCount(r, prop.listType)
	if err != nil {
		return err
	}
	_, err = r.Discard(count * plyTypeSize(prop.listElem))
	return err
}
