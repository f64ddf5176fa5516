package pattern

import (
	"math"

	"github.com/kdstone/whitted-raytracer/internal/geom"
)

// Rings alternates between two colors in concentric rings around the y axis.
type Rings struct {
	base
	A, B geom.Color
}

func NewRings(a, b geom.Color) *Rings {
	return &Rings{base: newBase(), A: a, B: b}
}

func (r *Rings) ColorAt(p geom.Tuple) geom.Color {
	dist := math.Sqrt(p.X*p.X + p.Z*p.Z)
	if math.Mod(math.Floor(dist), 2) == 0 {
		return r.A
	}
	return r.B
}

func (r *Rings) Equal(other Pattern) bool {
	o, ok := other.(*Rings)
	return ok && r.A.Equal(o.A) && r.B.Equal(o.B) && r.t.M.Equal(o.t.M)
}
