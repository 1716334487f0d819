// Package ppm implements the bit-exact PPM P3 encoder spec.md §6
// specifies, kept separate from pkg/renderer so the wire format is
// unit-testable without standing up a render.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/tracelane/pathtracer/pkg/core"
)

// quantize applies spec.md's gamma-2 correction and quantization to a
// single linear-radiance color: clamp to [0,1], gamma-correct, then
// floor(255.999*c). For non-negative channels this equals gamma-then-clamp;
// clamping first maps a negative channel to 0 instead of a NaN square root.
func quantize(c core.Color) (r, g, b int) {
	gammaCorrected := c.Clamp(0, 1).Gamma2()
	scale := func(x float64) int {
		return int(255.999 * x)
	}
	return scale(gammaCorrected.X), scale(gammaCorrected.Y), scale(gammaCorrected.Z)
}

// Write encodes image as an ASCII PPM P3 file to w. image is indexed
// [row][col] with row 0 the top row, matching spec.md §6's pixel order
// (rows top-to-bottom, each row left-to-right). Every row must have the
// same length; a mismatched row is a programmer error, not a data error,
// and panics rather than silently truncating the image.
func Write(w io.Writer, image [][]core.Color) error {
	height := len(image)
	width := 0
	if height > 0 {
		width = len(image[0])
	}

	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}

	for _, row := range image {
		if len(row) != width {
			panic("ppm: Write called with a ragged image")
		}
		for _, c := range row {
			r, g, b := quantize(c)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("ppm: write pixel: %w", err)
			}
		}
	}

	return bw.Flush()
}

// IsFiniteColor reports whether every channel of c is a finite number, a
// sanity check the renderer can run before encoding to catch a NaN/Inf
// leaking out of a degenerate material computation.
func IsFiniteColor(c core.Color) bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) &&
		!math.IsNaN(c.Y) && !math.IsInf(c.Y, 0) &&
		!math.IsNaN(c.Z) && !math.IsInf(c.Z, 0)
}
