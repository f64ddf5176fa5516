// Package shade implements the recursive Whitted shading engine: given a
// ray and a world, it resolves the nearest hit and composes ambient,
// diffuse, specular, reflective and refractive contributions, recursing
// into spawned reflection/refraction rays up to MaxRecursion deep.
package shade

import (
	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/shape"
	"github.com/kdstone/whitted-raytracer/internal/world"
)

// MaxRecursion bounds the reflection/refraction ping-pong; past this depth
// a spawned ray contributes black instead of recursing further.
const MaxRecursion = 5

// ShadeRay is the entry point: the color a ray sees when fired into w.
func ShadeRay(w *world.World, ray geom.Ray) geom.Color {
	return shadeRayBounded(w, ray, 0)
}

func shadeRayBounded(w *world.World, ray geom.Ray, depth int) geom.Color {
	if depth > MaxRecursion {
		return geom.Black
	}
	xs := w.IntersectionsFor(ray)
	hit, found := shape.Hit(xs)
	if !found {
		return w.Background
	}
	return shadeHit(w, hit, xs, depth)
}

// shadeHit composes every contribution for a single resolved hit. xs is
// the full sorted intersection list of hit.Ray through w, needed by the
// refractive term to walk the containers-entered stack.
func shadeHit(w *world.World, hit shape.Intersection, xs []shape.Intersection, depth int) geom.Color {
	light := w.Light

	surface := ambient(hit, light)
	if !w.IsPointShadowed(hit.OverPoint()) {
		surface = surface.Add(diffuse(hit, light)).Add(specular(hit, light))
	}

	mat := hit.Shape.Material()
	refl := reflectiveTerm(w, hit, depth)
	refr := refractiveTerm(w, hit, xs, depth)

	if mat.Reflective > 0 && mat.Transparency > 0 {
		r := schlick(hit, xs)
		return surface.Add(refl.Scale(r)).Add(refr.Scale(1 - r))
	}
	return surface.Add(refl).Add(refr)
}
