// Package camera implements the thin-lens camera that turns screen
// coordinates into world-space rays.
package camera

import (
	"math"

	"github.com/tracelane/pathtracer/pkg/core"
)

// Config describes a thin-lens camera (spec.md §4.8).
type Config struct {
	LookFrom    core.Vec3
	LookAt      core.Vec3
	WorldUp     core.Vec3
	VFovDeg     float64
	AspectRatio float64
	Aperture    float64
	FocalLength float64
}

// Camera generates rays for a fixed viewport derived from Config. It is
// built once per render and shared read-only across every worker.
type Camera struct {
	origin     core.Vec3
	lowerLeft  core.Vec3
	horizontal core.Vec3
	vertical   core.Vec3
	right, up  core.Vec3
	lensRadius float64
}

// NewCamera builds the camera's orthonormal basis and viewport extents
// from cfg (spec.md §4.8).
func NewCamera(cfg Config) *Camera {
	forward := cfg.LookAt.Sub(cfg.LookFrom).Unit()
	right := forward.Cross(cfg.WorldUp).Unit()
	up := right.Cross(forward)

	theta := cfg.VFovDeg * math.Pi / 180.0
	h := 2.0 * math.Tan(theta/2.0) * cfg.FocalLength
	w := cfg.AspectRatio * h

	horizontal := right.Scale(w)
	vertical := up.Scale(h)
	lowerLeft := cfg.LookFrom.
		Sub(horizontal.Scale(0.5)).
		Sub(vertical.Scale(0.5)).
		Add(forward.Scale(cfg.FocalLength))

	return &Camera{
		origin:     cfg.LookFrom,
		lowerLeft:  lowerLeft,
		horizontal: horizontal,
		vertical:   vertical,
		right:      right,
		up:         up,
		lensRadius: cfg.Aperture / 2.0,
	}
}

// RayFromUV builds a ray through screen coordinates (u, v), u,v in [0,1]
// with u left-to-right and v bottom-to-top, sampling the lens aperture
// for depth of field (spec.md §4.8).
func (c *Camera) RayFromUV(u, v float64, rng *core.RNG) core.Ray {
	lens := rng.InUnitDisk().Scale(c.lensRadius)
	offset := c.right.Scale(lens.X).Add(c.up.Scale(lens.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeft.
		Add(c.horizontal.Scale(u)).
		Add(c.vertical.Scale(v)).
		Sub(origin)

	return core.NewRay(origin, direction)
}
