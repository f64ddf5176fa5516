// Package shape implements the polymorphic surface layer: spheres and
// planes, each carrying a world-space transform and a material, exposing
// object-space normals and object-space intersection times.
package shape

import (
	"fmt"

	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/material"
)

// Shape is the capability interface every surface variant implements.
// Intersect and NormalAt (defined below as free functions) handle the
// shared world-space/object-space bookkeeping; LocalIntersect and
// LocalNormalAt hold each variant's analytic geometry.
type Shape interface {
	LocalIntersect(objectRay geom.Ray) []float64
	LocalNormalAt(objectPoint geom.Tuple) geom.Tuple
	Transform() geom.Transform
	SetTransform(geom.Transform)
	Material() material.Material
	SetMaterial(material.Material)
}

// base is embedded by every shape variant to share transform/material
// storage and its accessors.
type base struct {
	transform geom.Transform
	mat       material.Material
}

func newBase() base {
	return base{transform: geom.IdentityTransform, mat: material.New()}
}

func (b *base) Transform() geom.Transform     { return b.transform }
func (b *base) SetTransform(t geom.Transform) { b.transform = t }
func (b *base) Material() material.Material   { return b.mat }
func (b *base) SetMaterial(m material.Material) {
	b.mat = m
}

// Intersect transforms ray into the shape's object space via the inverse
// transform, runs the analytic local intersection, and wraps the
// resulting times as Intersections carrying a reference to s and ray. A
// non-invertible shape transform is a scene-construction error: the
// renderer cannot continue for this shape, so it panics rather than
// returning an error that every caller up the chain would have to plumb.
func Intersect(s Shape, ray geom.Ray) []Intersection {
	inv, err := s.Transform().Inverse()
	if err != nil {
		panic(fmt.Sprintf("shape: transform is not invertible: %v", err))
	}
	localRay := inv.Ray(ray)
	ts := s.LocalIntersect(localRay)
	if len(ts) == 0 {
		return nil
	}
	result := make([]Intersection, len(ts))
	for i, t := range ts {
		result[i] = Intersection{T: t, Shape: s, Ray: ray}
	}
	return result
}

// NormalAt computes the unit world-space normal at a world-space point on
// the surface of s.
func NormalAt(s Shape, worldPoint geom.Tuple) geom.Tuple {
	inv, err := s.Transform().Inverse()
	if err != nil {
		panic(fmt.Sprintf("shape: transform is not invertible: %v", err))
	}
	objectPoint := inv.Point(worldPoint)
	objectNormal := s.LocalNormalAt(objectPoint)
	worldNormal := inv.Transpose().Vector(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
