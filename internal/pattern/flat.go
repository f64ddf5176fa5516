package pattern

import "github.com/kdstone/whitted-raytracer/internal/geom"

// Flat is a single uninflected color.
type Flat struct {
	base
	Color geom.Color
}

func NewFlat(c geom.Color) *Flat {
	return &Flat{base: newBase(), Color: c}
}

func (f *Flat) ColorAt(geom.Tuple) geom.Color {
	return f.Color
}

func (f *Flat) Equal(other Pattern) bool {
	o, ok := other.(*Flat)
	return ok && f.Color.Equal(o.Color) && f.t.M.Equal(o.t.M)
}
