package pattern

import (
	"math"

	"github.com/kdstone/whitted-raytracer/internal/geom"
)

// Checkers3D alternates between two flat colors in a 3-D checkerboard.
type Checkers3D struct {
	base
	A, B geom.Color
}

func NewCheckers3D(a, b geom.Color) *Checkers3D {
	return &Checkers3D{base: newBase(), A: a, B: b}
}

func (c *Checkers3D) ColorAt(p geom.Tuple) geom.Color {
	if checkersCell(p) == 0 {
		return c.A
	}
	return c.B
}

func (c *Checkers3D) Equal(other Pattern) bool {
	o, ok := other.(*Checkers3D)
	return ok && c.A.Equal(o.A) && c.B.Equal(o.B) && c.t.M.Equal(o.t.M)
}

// NestedCheckers alternates between two sub-patterns instead of two flat
// colors, letting a checkerboard cell itself be stripes, rings, or another
// checkerboard.
type NestedCheckers struct {
	base
	A, B Pattern
}

func NewNestedCheckers(a, b Pattern) *NestedCheckers {
	return &NestedCheckers{base: newBase(), A: a, B: b}
}

func (c *NestedCheckers) ColorAt(p geom.Tuple) geom.Color {
	if checkersCell(p) == 0 {
		return At(c.A, p)
	}
	return At(c.B, p)
}

func (c *NestedCheckers) Equal(other Pattern) bool {
	o, ok := other.(*NestedCheckers)
	return ok && c.A.Equal(o.A) && c.B.Equal(o.B) && c.t.M.Equal(o.t.M)
}

func checkersCell(p geom.Tuple) int {
	sum := math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)
	return int(math.Mod(math.Abs(sum), 2))
}
