package pattern

import (
	"math"

	"github.com/kdstone/whitted-raytracer/internal/geom"
)

// Gradient linearly interpolates between two colors along the x axis.
type Gradient struct {
	base
	A, B geom.Color
}

func NewGradient(a, b geom.Color) *Gradient {
	return &Gradient{base: newBase(), A: a, B: b}
}

func (g *Gradient) ColorAt(p geom.Tuple) geom.Color {
	fraction := p.X - math.Floor(p.X)
	return g.A.Add(g.B.Sub(g.A).Scale(fraction))
}

func (g *Gradient) Equal(other Pattern) bool {
	o, ok := other.(*Gradient)
	return ok && g.A.Equal(o.A) && g.B.Equal(o.B) && g.t.M.Equal(o.t.M)
}
