package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tracelane/pathtracer/pkg/camera"
	"github.com/tracelane/pathtracer/pkg/core"
	"github.com/tracelane/pathtracer/pkg/geometry"
	"github.com/tracelane/pathtracer/pkg/loaders"
	"github.com/tracelane/pathtracer/pkg/material"
)

// vecYAML is a 3-component vector as it appears in a scene file:
// "[x, y, z]". A distinct type from core.Vec3 keeps yaml.v3's sequence
// unmarshaling (it decodes into a slice-shaped Go value) out of core,
// which spec.md keeps free of serialization concerns.
type vecYAML [3]float64

func (v vecYAML) vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraYAML mirrors camera.Config field-for-field for YAML decoding.
type CameraYAML struct {
	LookFrom    vecYAML `yaml:"lookFrom"`
	LookAt      vecYAML `yaml:"lookAt"`
	WorldUp     vecYAML `yaml:"worldUp"`
	VFovDeg     float64 `yaml:"vFovDeg"`
	AspectRatio float64 `yaml:"aspectRatio"`
	Aperture    float64 `yaml:"aperture"`
	FocalLength float64 `yaml:"focalLength"`
}

// BackgroundYAML describes either a flat color (Top == Bottom) or a
// vertical gradient.
type BackgroundYAML struct {
	Top    vecYAML `yaml:"top"`
	Bottom vecYAML `yaml:"bottom"`
}

// MaterialYAML is a tagged-union material description: Type selects which
// of the other fields apply.
type MaterialYAML struct {
	Name      string  `yaml:"name"`
	Type      string  `yaml:"type"` // lambertian | metal | dielectric | diffuselight
	Albedo    vecYAML `yaml:"albedo"`
	Fuzz      float64 `yaml:"fuzz"`
	IOR       float64 `yaml:"ior"`
	Emission  vecYAML `yaml:"emission"`
}

// PrimitiveYAML is a tagged-union primitive description: Type selects
// sphere, triangle, or mesh (loaded from a PLY or glTF file referenced by
// MeshFile).
type PrimitiveYAML struct {
	Type      string   `yaml:"type"` // sphere | triangle | mesh
	Center    vecYAML  `yaml:"center"`
	Radius    float64  `yaml:"radius"`
	A         vecYAML  `yaml:"a"`
	B         vecYAML  `yaml:"b"`
	C         vecYAML  `yaml:"c"`
	MeshFile  string   `yaml:"meshFile"`
	Material  string   `yaml:"material"`
	Materials []string `yaml:"materials"`
}

// RenderYAML mirrors renderer.Config field-for-field.
type RenderYAML struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	Samples  int   `yaml:"samples"`
	MaxDepth int   `yaml:"maxDepth"`
	Workers  int   `yaml:"workers"`
	Seed     int64 `yaml:"seed"`
}

// FileYAML is the top-level shape of a scene file.
type FileYAML struct {
	Camera     CameraYAML      `yaml:"camera"`
	Background BackgroundYAML  `yaml:"background"`
	Materials  []MaterialYAML  `yaml:"materials"`
	Primitives []PrimitiveYAML `yaml:"primitives"`
	Render     RenderYAML      `yaml:"render"`
}

// Description is the fully resolved, in-memory scene: exactly the
// Hittable + camera.Config + core.Background triple spec.md §6 calls the
// scene description, however it was obtained.
type Description struct {
	World      core.Hittable
	Camera     camera.Config
	Background core.Background
	Render     RenderYAML
}

// LoadSceneConfig parses a YAML scene file and resolves it into a
// Description. This is a second way to produce the same values any
// in-process scene builder (pkg/scene/demo.go) produces - it does not
// change spec.md §6's "fixed in-memory description" contract.
func LoadSceneConfig(path string, rng *core.RNG) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newConfigError(fmt.Sprintf("reading scene file %q", path), err)
	}

	var file FileYAML
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, newConfigError(fmt.Sprintf("parsing scene file %q", path), err)
	}

	materials, err := buildMaterials(file.Materials)
	if err != nil {
		return nil, err
	}

	world, err := buildPrimitives(file.Primitives, materials, rng)
	if err != nil {
		return nil, err
	}

	return &Description{
		World:      world,
		Camera:     file.Camera.toConfig(),
		Background: core.NewGradientBackground(file.Background.Top.vec(), file.Background.Bottom.vec()),
		Render:     file.Render,
	}, nil
}

func (c CameraYAML) toConfig() camera.Config {
	return camera.Config{
		LookFrom:    c.LookFrom.vec(),
		LookAt:      c.LookAt.vec(),
		WorldUp:     c.WorldUp.vec(),
		VFovDeg:     c.VFovDeg,
		AspectRatio: c.AspectRatio,
		Aperture:    c.Aperture,
		FocalLength: c.FocalLength,
	}
}

func buildMaterials(defs []MaterialYAML) (map[string]core.Material, error) {
	materials := make(map[string]core.Material, len(defs))
	for _, def := range defs {
		var m core.Material
		switch def.Type {
		case "lambertian":
			m = material.NewLambertian(def.Albedo.vec())
		case "metal":
			m = material.NewMetal(def.Albedo.vec(), def.Fuzz)
		case "dielectric":
			m = material.NewDielectric(def.IOR)
		case "diffuselight":
			m = material.NewDiffuseLight(def.Emission.vec())
		default:
			return nil, newConfigError(fmt.Sprintf("material %q has unknown type %q", def.Name, def.Type), nil)
		}
		materials[def.Name] = m
	}
	return materials, nil
}

func buildPrimitives(defs []PrimitiveYAML, materials map[string]core.Material, rng *core.RNG) (core.Hittable, error) {
	list := geometry.NewHittableList()

	for i, def := range defs {
		switch def.Type {
		case "sphere":
			mat, err := lookupMaterial(materials, def.Material, i)
			if err != nil {
				return nil, err
			}
			list.Add(geometry.NewSphere(def.Center.vec(), def.Radius, mat))

		case "triangle":
			mat, err := lookupMaterial(materials, def.Material, i)
			if err != nil {
				return nil, err
			}
			list.Add(geometry.NewTriangle(def.A.vec(), def.B.vec(), def.C.vec(), mat))

		case "mesh":
			mesh, err := buildMeshPrimitive(def, materials, rng)
			if err != nil {
				return nil, err
			}
			list.Add(mesh)

		default:
			return nil, newConfigError(fmt.Sprintf("primitive %d has unknown type %q", i, def.Type), nil)
		}
	}

	return list, nil
}

func lookupMaterial(materials map[string]core.Material, name string, index int) (core.Material, error) {
	mat, ok := materials[name]
	if !ok {
		return nil, newConfigError(fmt.Sprintf("primitive %d references undefined material %q", index, name), nil)
	}
	return mat, nil
}

func buildMeshPrimitive(def PrimitiveYAML, materials map[string]core.Material, rng *core.RNG) (core.Hittable, error) {
	matTable := make([]core.Material, 0, len(def.Materials))
	for _, name := range def.Materials {
		mat, ok := materials[name]
		if !ok {
			return nil, newConfigError(fmt.Sprintf("mesh %q references undefined material %q", def.MeshFile, name), nil)
		}
		matTable = append(matTable, mat)
	}

	vertices, indices, err := loaders.LoadMeshFile(def.MeshFile)
	if err != nil {
		return nil, newConfigError(fmt.Sprintf("loading mesh file %q", def.MeshFile), err)
	}

	mesh, err := geometry.NewMesh(vertices, indices, matTable, nil, rng)
	if err != nil {
		return nil, newConfigError(fmt.Sprintf("building mesh %q", def.MeshFile), err)
	}
	return mesh, nil
}
