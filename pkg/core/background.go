package core

// Background is what a ray that misses every Hittable returns. A flat
// Background has Top == Bottom; a two-color vertical gradient (the
// teacher's backgroundGradient, pkg/renderer/raytracer.go) is produced by
// NewGradientBackground. spec.md §9 Open Questions leaves the choice
// between a flat constant and a sky gradient to the scene description -
// this type is that choice, carried as scene data rather than a hidden
// default inside the integrator.
type Background struct {
	Top    Color
	Bottom Color
}

// NewFlatBackground returns a Background that is the same color in every
// direction.
func NewFlatBackground(c Color) Background {
	return Background{Top: c, Bottom: c}
}

// NewGradientBackground returns a Background that interpolates linearly
// between bottom and top based on the ray direction's Y component.
func NewGradientBackground(top, bottom Color) Background {
	return Background{Top: top, Bottom: bottom}
}

// At evaluates the background color for a ray that hit nothing, blending
// Top and Bottom by the ray direction's vertical component the way the
// teacher's backgroundGradient does.
func (bg Background) At(ray Ray) Color {
	unit := ray.Direction.Unit()
	t := 0.5 * (unit.Y + 1.0)
	return bg.Bottom.Scale(1 - t).Add(bg.Top.Scale(t))
}
