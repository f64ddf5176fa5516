package geom

import "fmt"

// Color is an RGB triple. The core never clamps: out-of-[0,1] channel
// values are allowed and only get clamped when an encoder writes them out.
type Color struct {
	R, G, B float64
}

func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

func (c Color) String() string {
	return fmt.Sprintf("Color(%.4f, %.4f, %.4f)", c.R, c.G, c.B)
}

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Mul is the Hadamard (component-wise) product, used to blend two colors.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

func (c Color) Equal(o Color) bool {
	return Equal(c.R, o.R) && Equal(c.G, o.G) && Equal(c.B, o.B)
}
