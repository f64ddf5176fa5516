package pattern

import (
	"math"

	"github.com/kdstone/whitted-raytracer/internal/geom"
)

// Stripes alternates between two colors along the x axis.
type Stripes struct {
	base
	A, B geom.Color
}

func NewStripes(a, b geom.Color) *Stripes {
	return &Stripes{base: newBase(), A: a, B: b}
}

func (s *Stripes) ColorAt(p geom.Tuple) geom.Color {
	if math.Mod(math.Floor(p.X), 2) == 0 {
		return s.A
	}
	return s.B
}

func (s *Stripes) Equal(other Pattern) bool {
	o, ok := other.(*Stripes)
	return ok && s.A.Equal(o.A) && s.B.Equal(o.B) && s.t.M.Equal(o.t.M)
}
