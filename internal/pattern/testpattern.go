package pattern

import "github.com/kdstone/whitted-raytracer/internal/geom"

// Test returns the point itself as an RGB color; it exists purely so tests
// can assert exactly which space a point was evaluated in (object space vs.
// pattern space).
type Test struct {
	base
}

func NewTest() *Test {
	return &Test{base: newBase()}
}

func (t *Test) ColorAt(p geom.Tuple) geom.Color {
	return geom.NewColor(p.X, p.Y, p.Z)
}

func (t *Test) Equal(other Pattern) bool {
	o, ok := other.(*Test)
	return ok && t.t.M.Equal(o.t.M)
}
