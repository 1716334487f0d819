package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tracelane/pathtracer/pkg/core"
)

func TestNewDefaultScene_BuildsHittableWorld(t *testing.T) {
	desc := NewDefaultScene()
	if desc.World == nil {
		t.Fatal("NewDefaultScene: World is nil")
	}

	ray := core.NewRay(core.NewVec3(-2, 2, 1), core.NewVec3(2, -2, -2))
	if _, ok := desc.World.BoundingBox(0, 1); !ok {
		t.Error("default scene's world has no bounding box")
	}
	_ = ray
}

func TestNewCornellBoxScene_BuildsHittableWorld(t *testing.T) {
	desc := NewCornellBoxScene()
	box, ok := desc.World.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Cornell box scene has no bounding box")
	}
	if box.Max.X <= box.Min.X {
		t.Errorf("Cornell box scene bounding box is degenerate: %+v", box)
	}
}

const testSceneYAML = `
camera:
  lookFrom: [0, 0, 0]
  lookAt: [0, 0, -1]
  worldUp: [0, 1, 0]
  vFovDeg: 90
  aspectRatio: 1.0
  aperture: 0
  focalLength: 1
background:
  top: [0.5, 0.7, 1.0]
  bottom: [1, 1, 1]
materials:
  - name: ground
    type: lambertian
    albedo: [0.5, 0.5, 0.5]
  - name: glass
    type: dielectric
    ior: 1.5
  - name: sun
    type: diffuselight
    emission: [4, 4, 4]
primitives:
  - type: sphere
    center: [0, -100.5, -1]
    radius: 100
    material: ground
  - type: sphere
    center: [0, 0, -1]
    radius: 0.5
    material: glass
  - type: triangle
    a: [-1, -1, -2]
    b: [1, -1, -2]
    c: [0, 1, -2]
    material: sun
render:
  width: 40
  height: 40
  samples: 4
  maxDepth: 8
  workers: 1
  seed: 7
`

func TestLoadSceneConfig_ParsesFullScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(testSceneYAML), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	desc, err := LoadSceneConfig(path, core.NewRNG(1))
	if err != nil {
		t.Fatalf("LoadSceneConfig: %v", err)
	}

	if desc.Render.Width != 40 || desc.Render.Samples != 4 {
		t.Errorf("render config = %+v, want width=40 samples=4", desc.Render)
	}
	if desc.Camera.VFovDeg != 90 {
		t.Errorf("camera VFovDeg = %v, want 90", desc.Camera.VFovDeg)
	}
	if _, ok := desc.World.BoundingBox(0, 1); !ok {
		t.Error("parsed scene's world has no bounding box")
	}
}

func TestLoadSceneConfig_UndefinedMaterialIsConfigurationError(t *testing.T) {
	const badYAML = `
camera: {lookFrom: [0,0,0], lookAt: [0,0,-1], worldUp: [0,1,0], vFovDeg: 90, aspectRatio: 1, aperture: 0, focalLength: 1}
background: {top: [0,0,0], bottom: [0,0,0]}
primitives:
  - type: sphere
    center: [0,0,-1]
    radius: 0.5
    material: doesnotexist
`
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(badYAML), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := LoadSceneConfig(path, core.NewRNG(1))
	if err == nil {
		t.Fatal("expected a ConfigurationError for an undefined material reference")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error %v is not a *ConfigurationError", err)
	}
}

func TestLoadSceneConfig_MissingFile(t *testing.T) {
	_, err := LoadSceneConfig(filepath.Join(t.TempDir(), "nope.yaml"), core.NewRNG(1))
	if err == nil {
		t.Fatal("expected an error for a missing scene file")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error %v is not a *ConfigurationError", err)
	}
}
