package shade

import (
	"math"

	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/shape"
	"github.com/kdstone/whitted-raytracer/internal/world"
)

// refractiveIndices walks xs (the full sorted intersection list for the
// ray that produced hit) rebuilding the stack of shapes the ray is
// currently "inside", to find which refractive indices border the hit.
// This is a transient per-hit computation, never persisted.
func refractiveIndices(hit shape.Intersection, xs []shape.Intersection) (n1, n2 float64) {
	var containers []shape.Shape

	topIndex := func() float64 {
		if len(containers) == 0 {
			return 1.0
		}
		return containers[len(containers)-1].Material().RefractiveIndex
	}

	for _, x := range xs {
		isHit := x == hit
		if isHit {
			n1 = topIndex()
		}

		if idx := lastIndexOf(containers, x.Shape); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Shape)
		}

		if isHit {
			n2 = topIndex()
			break
		}
	}
	return n1, n2
}

func lastIndexOf(containers []shape.Shape, s shape.Shape) int {
	for i := len(containers) - 1; i >= 0; i-- {
		if containers[i] == s {
			return i
		}
	}
	return -1
}

func refractiveTerm(w *world.World, hit shape.Intersection, xs []shape.Intersection, depth int) geom.Color {
	mat := hit.Shape.Material()
	if mat.Transparency == 0 {
		return geom.Black
	}

	n1, n2 := refractiveIndices(hit, xs)
	eye := hit.Eye()
	n := hit.Normal()

	ratio := n1 / n2
	cosI := eye.Dot(n)
	sin2T := ratio * ratio * (1 - cosI*cosI)
	if sin2T > 1 {
		// Total internal reflection: no refracted contribution.
		return geom.Black
	}
	cosT := math.Sqrt(1 - sin2T)
	direction := n.Scale(ratio*cosI - cosT).Sub(eye.Scale(ratio))

	refractedRay := geom.NewRay(hit.UnderPoint(), direction)
	color := shadeRayBounded(w, refractedRay, depth+1)
	return color.Scale(mat.Transparency)
}

// schlick approximates the Fresnel reflectance at the hit's dielectric
// interface.
func schlick(hit shape.Intersection, xs []shape.Intersection) float64 {
	n1, n2 := refractiveIndices(hit, xs)
	eye := hit.Eye()
	n := hit.Normal()
	cos := eye.Dot(n)

	if n1 > n2 {
		ratio := n1 / n2
		sin2T := ratio * ratio * (1 - cos*cos)
		if sin2T > 1 {
			return 1.0
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (n1 - n2) / (n1 + n2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
