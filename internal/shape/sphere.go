package shape

import (
	"math"

	"github.com/kdstone/whitted-raytracer/internal/geom"
)

// Sphere is a unit sphere centered at the object-space origin.
type Sphere struct {
	base
}

func NewSphere() *Sphere {
	return &Sphere{base: newBase()}
}

func (s *Sphere) LocalNormalAt(objectPoint geom.Tuple) geom.Tuple {
	return objectPoint.Sub(geom.Origin)
}

func (s *Sphere) LocalIntersect(objectRay geom.Ray) []float64 {
	sphereToRay := objectRay.Origin.Sub(geom.Origin)
	a := objectRay.Direction.Dot(objectRay.Direction)
	b := 2 * objectRay.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}
	sq := math.Sqrt(discriminant)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	return []float64{t1, t2}
}
