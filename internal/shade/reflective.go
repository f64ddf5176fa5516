package shade

import (
	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/shape"
	"github.com/kdstone/whitted-raytracer/internal/world"
)

func reflectiveTerm(w *world.World, hit shape.Intersection, depth int) geom.Color {
	mat := hit.Shape.Material()
	if mat.Reflective == 0 {
		return geom.Black
	}
	direction := geom.Reflect(hit.Ray.Direction, hit.Normal())
	reflectedRay := geom.NewRay(hit.OverPoint(), direction)
	color := shadeRayBounded(w, reflectedRay, depth+1)
	return color.Scale(mat.Reflective)
}
