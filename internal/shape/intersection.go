package shape

import (
	"sort"

	"github.com/kdstone/whitted-raytracer/internal/geom"
)

// Intersection records where along a ray it crossed a shape's surface.
// Point, Normal, OverPoint and UnderPoint are derived on demand rather than
// stored, since an Intersection's lifetime never outlives the ray that
// spawned it.
type Intersection struct {
	T     float64
	Shape Shape
	Ray   geom.Ray
}

// Point is the world-space point where the ray crosses the surface.
func (i Intersection) Point() geom.Tuple {
	return i.Ray.PositionAt(i.T)
}

// Eye is the negation of the ray's direction.
func (i Intersection) Eye() geom.Tuple {
	return i.Ray.Direction.Neg()
}

func (i Intersection) baseNormal() geom.Tuple {
	return NormalAt(i.Shape, i.Point())
}

// Inside reports whether the ray originated inside the shape, i.e. whether
// the un-flipped surface normal points away from the eye.
func (i Intersection) Inside() bool {
	return i.Eye().Dot(i.baseNormal()) < 0
}

// Normal is the visible normal: the surface normal, flipped to face the
// eye when the hit is on the inside of the surface.
func (i Intersection) Normal() geom.Tuple {
	n := i.baseNormal()
	if i.Inside() {
		return n.Neg()
	}
	return n
}

// OverPoint nudges the hit point along the visible normal by Epsilon, used
// to seat shadow-test rays and reflective rays just off the surface.
func (i Intersection) OverPoint() geom.Tuple {
	return i.Point().Add(i.Normal().Scale(geom.Epsilon))
}

// UnderPoint nudges the hit point against the visible normal by Epsilon,
// used to seat refractive rays just under the surface.
func (i Intersection) UnderPoint() geom.Tuple {
	return i.Point().Sub(i.Normal().Scale(geom.Epsilon))
}

// SortByT sorts intersections ascending by T, stably, so that ties keep
// their original relative order.
func SortByT(xs []Intersection) {
	sort.SliceStable(xs, func(a, b int) bool { return xs[a].T < xs[b].T })
}

// Hit returns the intersection with the smallest strictly-positive T.
// Negative or zero T values are ignored. Ties resolve to the first
// encountered in iteration order.
func Hit(xs []Intersection) (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T <= 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}
