// Package pattern implements the procedural color-at-point functions used
// by materials: flat colors, stripes, gradients, rings, 3-D checkers (with
// optional nested sub-patterns) and blends of several patterns.
package pattern

import (
	"fmt"

	"github.com/kdstone/whitted-raytracer/internal/geom"
)

// Pattern is a procedural color function. At evaluates it at a point
// expressed in the owning shape's object space.
type Pattern interface {
	// ColorAt returns the pattern's color at a point already in the
	// pattern's own local space (i.e. after the pattern's inverse
	// transform has been applied).
	ColorAt(localPoint geom.Tuple) geom.Color
	Transform() geom.Transform
	Equal(other Pattern) bool
}

// At evaluates a pattern at a point given in the owning shape's object
// space: it applies the pattern's own inverse transform first. A
// non-invertible pattern transform is a scene-construction error, not a
// recoverable one, matching how shapes treat a non-invertible shape
// transform.
func At(p Pattern, objectSpacePoint geom.Tuple) geom.Color {
	inv, err := p.Transform().Inverse()
	if err != nil {
		panic(fmt.Sprintf("pattern: transform is not invertible: %v", err))
	}
	return p.ColorAt(inv.Point(objectSpacePoint))
}

// base holds the transform shared by every pattern variant.
type base struct {
	t geom.Transform
}

func (b *base) Transform() geom.Transform     { return b.t }
func (b *base) SetTransform(t geom.Transform) { b.t = t }

func newBase() base {
	return base{t: geom.IdentityTransform}
}
