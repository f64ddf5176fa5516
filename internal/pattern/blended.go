package pattern

import "github.com/kdstone/whitted-raytracer/internal/geom"

// Blended combines any number of sub-patterns by taking the component-wise
// product of their colors.
type Blended struct {
	base
	Patterns []Pattern
}

func NewBlended(patterns ...Pattern) *Blended {
	return &Blended{base: newBase(), Patterns: patterns}
}

func (b *Blended) ColorAt(p geom.Tuple) geom.Color {
	result := geom.White
	for _, sub := range b.Patterns {
		result = result.Mul(At(sub, p))
	}
	return result
}

func (b *Blended) Equal(other Pattern) bool {
	o, ok := other.(*Blended)
	if !ok || len(b.Patterns) != len(o.Patterns) || !b.t.M.Equal(o.t.M) {
		return false
	}
	for i, p := range b.Patterns {
		if !p.Equal(o.Patterns[i]) {
			return false
		}
	}
	return true
}
