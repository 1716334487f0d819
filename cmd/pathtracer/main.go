// Command pathtracer renders a scene to a PPM (P3) image file. It is the
// one positional-argument CLI spec.md §6 specifies: the output path.
// Scene authoring, logging, and file I/O are spec.md's "out of scope"
// external collaborators (spec.md §1); this file is where they live.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/tracelane/pathtracer/pkg/camera"
	"github.com/tracelane/pathtracer/pkg/core"
	"github.com/tracelane/pathtracer/pkg/renderer"
	"github.com/tracelane/pathtracer/pkg/scene"
)

type cliConfig struct {
	outputPath string
	scenePath  string
	width      int
	height     int
	samples    int
	maxDepth   int
	workers    int
	seed       int64
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "pathtracer:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (cliConfig, error) {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	cfg := cliConfig{}

	fs.StringVar(&cfg.scenePath, "scene", "", "path to a YAML scene file (default: built-in demo scene)")
	fs.IntVar(&cfg.width, "width", 400, "image width in pixels")
	fs.IntVar(&cfg.height, "height", 225, "image height in pixels")
	fs.IntVar(&cfg.samples, "samples", 100, "samples per pixel")
	fs.IntVar(&cfg.maxDepth, "depth", 50, "maximum ray bounce depth")
	fs.IntVar(&cfg.workers, "workers", 0, "number of render worker threads (0 = one per CPU)")
	fs.Int64Var(&cfg.seed, "seed", 1, "base RNG seed")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}

	if fs.NArg() != 1 {
		return cliConfig{}, fmt.Errorf("expected exactly one positional argument (output file path), got %d", fs.NArg())
	}
	cfg.outputPath = fs.Arg(0)

	return cfg, nil
}

func run(cfg cliConfig) error {
	out, err := os.Create(cfg.outputPath)
	if err != nil {
		return fmt.Errorf("opening output file %q: %w", cfg.outputPath, err)
	}
	defer out.Close()

	logger := renderer.NewDefaultLogger()
	rng := core.NewRNG(cfg.seed)

	desc, err := loadScene(cfg, rng)
	if err != nil {
		return err
	}

	cam := camera.NewCamera(desc.Camera)

	renderCfg := renderer.Config{
		Width:    cfg.width,
		Height:   cfg.height,
		Samples:  cfg.samples,
		MaxDepth: cfg.maxDepth,
		Workers:  cfg.workers,
		Seed:     cfg.seed,
	}
	if cfg.scenePath != "" {
		renderCfg = overrideFromYAML(renderCfg, desc.Render)
	}

	logger.Printf("rendering %dx%d, %d samples/px, depth %d, %d workers",
		renderCfg.Width, renderCfg.Height, renderCfg.Samples, renderCfg.MaxDepth, effectiveWorkers(renderCfg.Workers))

	start := time.Now()
	r := renderer.New(renderCfg, desc.World, cam, desc.Background, logger)
	if err := r.RenderToPPM(out); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	fmt.Printf("render complete in %s -> %s\n", time.Since(start).Round(time.Millisecond), cfg.outputPath)
	return nil
}

func loadScene(cfg cliConfig, rng *core.RNG) (*scene.Description, error) {
	if cfg.scenePath == "" {
		return scene.NewDefaultScene(), nil
	}
	return scene.LoadSceneConfig(cfg.scenePath, rng)
}

// overrideFromYAML lets a YAML scene file's own render block (width,
// height, samples, ...) take precedence over the flag values: every
// non-zero YAML field replaces the corresponding flag value, whether that
// flag was set on the command line or left at its default. A zero YAML
// field leaves the flag value in place.
func overrideFromYAML(flags renderer.Config, yaml scene.RenderYAML) renderer.Config {
	if yaml.Width != 0 {
		flags.Width = yaml.Width
	}
	if yaml.Height != 0 {
		flags.Height = yaml.Height
	}
	if yaml.Samples != 0 {
		flags.Samples = yaml.Samples
	}
	if yaml.MaxDepth != 0 {
		flags.MaxDepth = yaml.MaxDepth
	}
	if yaml.Workers != 0 {
		flags.Workers = yaml.Workers
	}
	if yaml.Seed != 0 {
		flags.Seed = yaml.Seed
	}
	return flags
}

func effectiveWorkers(configured int) int {
	if configured > 0 {
		return configured
	}
	return runtime.NumCPU()
}
