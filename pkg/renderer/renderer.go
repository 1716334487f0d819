// Package renderer implements the multi-threaded sample-accumulation
// engine: per-worker sample batches and RNGs, reduction by averaging, and
// gamma-correct PPM output (spec.md §4.10, §5).
package renderer

import (
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tracelane/pathtracer/pkg/camera"
	"github.com/tracelane/pathtracer/pkg/core"
	"github.com/tracelane/pathtracer/pkg/integrator"
	"github.com/tracelane/pathtracer/pkg/ppm"
)

// Config holds the per-render parameters spec.md §4.10 lists as Renderer
// inputs, minus world/camera/background, which are passed to New
// separately since they come from scene construction rather than CLI
// flags.
type Config struct {
	Width, Height int
	Samples       int
	MaxDepth      int
	Workers       int   // 0 selects runtime.NumCPU(), per spec.md §5.
	Seed          int64 // base seed; worker i uses Seed+i.
}

// Renderer drives the Camera/Integrator pair across Config.Workers
// goroutines and reduces their independent sample sums into one image.
type Renderer struct {
	cfg        Config
	world      core.Hittable
	camera     *camera.Camera
	background core.Background
	logger     core.Logger
}

// New builds a Renderer. A nil logger is replaced with a no-op logger so
// callers that don't care about progress reporting don't need to supply
// one.
func New(cfg Config, world core.Hittable, cam *camera.Camera, background core.Background, logger core.Logger) *Renderer {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
		if cfg.Workers < 1 {
			cfg.Workers = 1
		}
	}
	if logger == nil {
		logger = noopLogger{}
	}
	return &Renderer{cfg: cfg, world: world, camera: cam, background: background, logger: logger}
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...any) {}

// sampleCounts distributes S samples across T workers with
// |s_i - s_j| <= 1, putting the remainder on the first S mod T workers
// (spec.md §4.10).
func sampleCounts(total, workers int) []int {
	counts := make([]int, workers)
	base := total / workers
	remainder := total % workers
	for i := range counts {
		counts[i] = base
		if i < remainder {
			counts[i]++
		}
	}
	return counts
}

// Render runs the full sample-accumulation pipeline and returns the final
// image, indexed [row][col] with row 0 the top row (spec.md §6 pixel
// order). Progress is polled every second and reported through the
// Renderer's Logger, as spec.md §5 describes for the main thread.
func (r *Renderer) Render() [][]core.Color {
	w, h := r.cfg.Width, r.cfg.Height
	counts := sampleCounts(r.cfg.Samples, r.cfg.Workers)

	buffers := make([][][]core.Color, r.cfg.Workers)
	progress := make([]atomic.Int64, r.cfg.Workers)

	var wg sync.WaitGroup
	for i := 0; i < r.cfg.Workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			buffers[worker] = r.renderWorker(worker, counts[worker], &progress[worker])
		}(i)
	}

	done := make(chan struct{})
	go r.reportProgress(h, progress, done)

	wg.Wait()
	close(done)

	return r.reduce(buffers, w, h)
}

// renderWorker renders every pixel with the worker's own RNG and sample
// budget, storing the per-pixel mean in its own buffer (spec.md §4.10).
// scanline tracks how many rows this worker has completed, for progress
// reporting only - it is written by a single goroutine and read only by
// the progress poller, which spec.md §5 calls a benign race; we use an
// atomic anyway since Go's race detector does not consider that benign.
func (r *Renderer) renderWorker(worker, samples int, scanline *atomic.Int64) [][]core.Color {
	w, h := r.cfg.Width, r.cfg.Height
	rng := core.NewRNG(r.cfg.Seed + int64(worker))
	buf := make([][]core.Color, h)

	for py := 0; py < h; py++ {
		row := make([]core.Color, w)
		for px := 0; px < w; px++ {
			sum := core.Color{}
			for s := 0; s < samples; s++ {
				u := (float64(px) + rng.Float64()) / float64(w-1)
				v := (float64(h-1-py) + rng.Float64()) / float64(h-1)
				ray := r.camera.RayFromUV(u, v, rng)
				sum = sum.Add(integrator.RayColor(r.world, r.background, ray, r.cfg.MaxDepth, rng))
			}
			if samples > 0 {
				row[px] = sum.Scale(1.0 / float64(samples))
			}
		}
		buf[py] = row
		scanline.Store(int64(py + 1))
	}

	return buf
}

// reduce averages the per-worker buffers and applies nothing further -
// gamma correction and quantization happen at PPM write time (spec.md
// §4.10), not here, so Render's return value stays linear radiance.
func (r *Renderer) reduce(buffers [][][]core.Color, w, h int) [][]core.Color {
	final := make([][]core.Color, h)
	workers := float64(len(buffers))

	for py := 0; py < h; py++ {
		row := make([]core.Color, w)
		for px := 0; px < w; px++ {
			sum := core.Color{}
			for _, buf := range buffers {
				sum = sum.Add(buf[py][px])
			}
			row[px] = sum.Scale(1.0 / workers)
		}
		final[py] = row
	}

	return final
}

// reportProgress polls each worker's scanline counter once a second and
// logs the slowest worker's completion fraction, until done closes
// (spec.md §5).
func (r *Renderer) reportProgress(totalRows int, progress []atomic.Int64, done <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			min := totalRows
			for i := range progress {
				if rows := int(progress[i].Load()); rows < min {
					min = rows
				}
			}
			r.logger.Printf("progress: %d/%d rows (slowest worker)", min, totalRows)
		}
	}
}

// RenderToPPM runs Render and encodes the result as PPM P3 to w.
func (r *Renderer) RenderToPPM(w io.Writer) error {
	image := r.Render()
	return ppm.Write(w, image)
}
