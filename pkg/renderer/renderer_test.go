package renderer

import (
	"testing"

	"github.com/tracelane/pathtracer/pkg/camera"
	"github.com/tracelane/pathtracer/pkg/core"
	"github.com/tracelane/pathtracer/pkg/geometry"
	"github.com/tracelane/pathtracer/pkg/material"
)

func testCamera(aspect float64) *camera.Camera {
	return camera.NewCamera(camera.Config{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		WorldUp:     core.NewVec3(0, 1, 0),
		VFovDeg:     90,
		AspectRatio: aspect,
		Aperture:    0,
		FocalLength: 1,
	})
}

func TestSampleCounts_DistributesRemainder(t *testing.T) {
	counts := sampleCounts(10, 3)
	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum != 10 {
		t.Fatalf("sampleCounts total = %d, want 10", sum)
	}
	min, max := counts[0], counts[0]
	for _, c := range counts {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	if max-min > 1 {
		t.Errorf("sample counts %v span more than 1 (|si-sj|<=1 required)", counts)
	}
}

func TestSampleCounts_EvenSplit(t *testing.T) {
	counts := sampleCounts(12, 4)
	for _, c := range counts {
		if c != 3 {
			t.Errorf("sampleCounts(12,4) = %v, want all 3s", counts)
		}
	}
}

func TestRender_ProducesCorrectDimensions(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	cam := testCamera(2.0)
	bg := core.NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))

	r := New(Config{Width: 8, Height: 4, Samples: 4, MaxDepth: 4, Workers: 2, Seed: 1}, world, cam, bg, nil)
	image := r.Render()

	if len(image) != 4 {
		t.Fatalf("image has %d rows, want 4", len(image))
	}
	for _, row := range image {
		if len(row) != 8 {
			t.Fatalf("image row has %d columns, want 8", len(row))
		}
	}
}

func TestRender_AllPixelsNonNegative(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.2)),
	)
	cam := testCamera(1.0)
	bg := core.NewFlatBackground(core.NewVec3(0.2, 0.2, 0.2))

	r := New(Config{Width: 4, Height: 4, Samples: 2, MaxDepth: 3, Workers: 1, Seed: 7}, world, cam, bg, nil)
	image := r.Render()

	for _, row := range image {
		for _, c := range row {
			if c.X < 0 || c.Y < 0 || c.Z < 0 {
				t.Fatalf("pixel %+v has a negative component", c)
			}
		}
	}
}

// TestRender_SingleAndMultiWorkerConverge covers spec.md §8 invariant 9:
// with the same total sample budget and seed policy, a single-worker and
// a multi-worker render of the same scene should agree closely (not
// bit-exactly, since the RNG streams differ per worker).
func TestRender_SingleAndMultiWorkerConverge(t *testing.T) {
	newWorld := func() core.Hittable {
		return geometry.NewHittableList(
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		)
	}
	cam := testCamera(2.0)
	bg := core.NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))

	one := New(Config{Width: 6, Height: 4, Samples: 64, MaxDepth: 5, Workers: 1, Seed: 99}, newWorld(), cam, bg, nil).Render()
	many := New(Config{Width: 6, Height: 4, Samples: 64, MaxDepth: 5, Workers: 4, Seed: 99}, newWorld(), cam, bg, nil).Render()

	var sqErr float64
	n := 0
	for py := range one {
		for px := range one[py] {
			d := one[py][px].Sub(many[py][px])
			sqErr += d.Dot(d)
			n++
		}
	}
	meanSqErr := sqErr / float64(n)
	if meanSqErr > 0.5 {
		t.Errorf("mean squared difference between 1-worker and 4-worker renders = %v, want small (Monte-Carlo noise only)", meanSqErr)
	}
}

func TestRenderToPPM_WritesValidHeader(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	cam := testCamera(1.0)
	bg := core.NewFlatBackground(core.NewVec3(0, 0, 0))
	r := New(Config{Width: 2, Height: 2, Samples: 1, MaxDepth: 2, Workers: 1, Seed: 1}, world, cam, bg, nil)

	var buf writerBuf
	if err := r.RenderToPPM(&buf); err != nil {
		t.Fatalf("RenderToPPM: %v", err)
	}
	if buf.String()[:2] != "P3" {
		t.Errorf("output does not start with P3 magic")
	}
}

type writerBuf struct {
	data []byte
}

func (w *writerBuf) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *writerBuf) String() string {
	return string(w.data)
}
