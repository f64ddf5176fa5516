package shape

import (
	"math"

	"github.com/kdstone/whitted-raytracer/internal/geom"
)

// Plane is the xz plane (y=0) in object space, extending infinitely.
type Plane struct {
	base
}

func NewPlane() *Plane {
	return &Plane{base: newBase()}
}

func (p *Plane) LocalNormalAt(geom.Tuple) geom.Tuple {
	return geom.Vector(0, 1, 0)
}

func (p *Plane) LocalIntersect(objectRay geom.Ray) []float64 {
	if math.Abs(objectRay.Direction.Y) < geom.Epsilon {
		// Ray is parallel to the plane (or lies within it); no intersection.
		return nil
	}
	t := -objectRay.Origin.Y / objectRay.Direction.Y
	return []float64{t}
}
