// Package world owns the shapes and light of a scene and answers the two
// questions the shading engine needs: what did this ray hit, and is this
// point in shadow.
package world

import (
	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/shape"
)

// Light is a single point light source.
type Light struct {
	Position  geom.Tuple
	Intensity geom.Color
}

func NewLight(position geom.Tuple, intensity geom.Color) Light {
	return Light{Position: position, Intensity: intensity}
}

// World owns an ordered collection of shapes and a single point light.
type World struct {
	Shapes     []shape.Shape
	Light      Light
	Background geom.Color
}

// New returns an empty World with a black background and no light, ready
// for a scene loader to populate.
func New() *World {
	return &World{Background: geom.Black}
}

func (w *World) AddShape(s shape.Shape) {
	w.Shapes = append(w.Shapes, s)
}

// IntersectionsFor gathers every shape's intersections with ray and sorts
// them ascending by T, stably.
func (w *World) IntersectionsFor(ray geom.Ray) []shape.Intersection {
	var xs []shape.Intersection
	for _, s := range w.Shapes {
		xs = append(xs, shape.Intersect(s, ray)...)
	}
	shape.SortByT(xs)
	return xs
}

// HitFor returns the first positive-T intersection of ray with the world.
func (w *World) HitFor(ray geom.Ray) (shape.Intersection, bool) {
	return shape.Hit(w.IntersectionsFor(ray))
}

// IsPointShadowed reports whether point cannot see the world's light,
// i.e. something in the world intersects the segment between them.
func (w *World) IsPointShadowed(point geom.Tuple) bool {
	pointToLight := w.Light.Position.Sub(point)
	distance := pointToLight.Magnitude()
	direction := pointToLight.Normalize()

	shadowRay := geom.NewRay(point, direction)
	hit, found := w.HitFor(shadowRay)
	return found && hit.T < distance
}
