package colors

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

type Color [4]float32

var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Scale multiplies the RGB channels by b, leaving alpha alone.
func (c Color) Scale(b float32) Color {
	c[0] *= b
	c[1] *= b
	c[2] *= b
	return c
}

// Gray is an opaque color with all three channels set to b.
func Gray(b float32) Color { return Color{b, b, b, 1} }

// Named resolves a CSS/SVG color name ("white", "cornflowerblue", ...).
func Named(name string) (Color, error) {
	rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, fmt.Errorf("unknown color %q", name)
	}
	return Color{
		float32(rgba.R) / 255,
		float32(rgba.G) / 255,
		float32(rgba.B) / 255,
		float32(rgba.A) / 255,
	}, nil
}
