package shade

import (
	"fmt"
	"math"

	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/material"
	"github.com/kdstone/whitted-raytracer/internal/pattern"
	"github.com/kdstone/whitted-raytracer/internal/shape"
	"github.com/kdstone/whitted-raytracer/internal/world"
)

// effectiveColor evaluates a material's pattern at a world-space point,
// translated into the owning shape's object space, and tints it by the
// light's intensity. Ambient and diffuse share this definition.
func effectiveColor(mat material.Material, shapeTransform geom.Transform, point geom.Tuple, lightIntensity geom.Color) geom.Color {
	inv, err := shapeTransform.Inverse()
	if err != nil {
		panic(fmt.Sprintf("shade: shape transform is not invertible: %v", err))
	}
	objectPoint := inv.Point(point)
	return pattern.At(mat.Pattern, objectPoint).Mul(lightIntensity)
}

func ambient(hit shape.Intersection, light world.Light) geom.Color {
	mat := hit.Shape.Material()
	eff := effectiveColor(mat, hit.Shape.Transform(), hit.OverPoint(), light.Intensity)
	return eff.Scale(mat.Ambient)
}

func diffuse(hit shape.Intersection, light world.Light) geom.Color {
	mat := hit.Shape.Material()
	point := hit.OverPoint()
	n := hit.Normal()

	lightVec := light.Position.Sub(point).Normalize()
	lightDotNormal := lightVec.Dot(n)
	if lightDotNormal <= 0 {
		return geom.Black
	}
	eff := effectiveColor(mat, hit.Shape.Transform(), point, light.Intensity)
	return eff.Scale(mat.Diffuse * lightDotNormal)
}

func specular(hit shape.Intersection, light world.Light) geom.Color {
	mat := hit.Shape.Material()
	point := hit.OverPoint()
	n := hit.Normal()

	lightVec := light.Position.Sub(point).Normalize()
	if lightVec.Dot(n) <= 0 {
		return geom.Black
	}

	reflectVec := geom.Reflect(lightVec.Neg(), n)
	reflectDotEye := reflectVec.Dot(hit.Eye())
	if reflectDotEye <= 0 {
		return geom.Black
	}
	factor := math.Pow(reflectDotEye, mat.Shininess)
	return light.Intensity.Scale(mat.Specular * factor)
}
