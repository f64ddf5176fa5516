package scene

import (
	"math"

	"github.com/kdstone/whitted-raytracer/internal/camera"
	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/material"
	"github.com/kdstone/whitted-raytracer/internal/pattern"
	"github.com/kdstone/whitted-raytracer/internal/shape"
	"github.com/kdstone/whitted-raytracer/internal/world"
)

// ThreeSpheres rebuilds the canonical three-spheres-on-a-floor scene
// (floor, two angled walls, three colored spheres of different sizes),
// grounded on original_source's src/example/scene/scene_example.rs. The
// original stood walls up out of giant scaled spheres, a workaround for
// not having a plane primitive; this port uses shape.Plane for the floor
// and walls instead, since the renderer has one.
func ThreeSpheres(width, height int) (*world.World, *camera.Camera) {
	w := world.New()
	w.Light = world.NewLight(geom.Point(-10, 10, -10), geom.White)

	floorMaterial := material.New(
		material.WithPattern(pattern.NewStripes(geom.White, geom.NewColor(0.9, 0.9, 0.9))),
		material.WithSpecular(0.0),
	)

	floor := shape.NewPlane()
	floor.SetMaterial(floorMaterial)
	w.AddShape(floor)

	leftWall := shape.NewPlane()
	leftWall.SetTransform(
		geom.Translate(0, 0, 5).
			Mul(geom.RotateY(-math.Pi / 4)).
			Mul(geom.RotateX(math.Pi / 2)),
	)
	leftWall.SetMaterial(floorMaterial)
	w.AddShape(leftWall)

	rightWall := shape.NewPlane()
	rightWall.SetTransform(
		geom.Translate(0, 0, 5).
			Mul(geom.RotateY(math.Pi / 4)).
			Mul(geom.RotateX(math.Pi / 2)),
	)
	rightWall.SetMaterial(floorMaterial)
	w.AddShape(rightWall)

	middle := shape.NewSphere()
	middle.SetTransform(geom.Translate(-0.5, 1, 0.5))
	middle.SetMaterial(material.New(
		material.WithPattern(pattern.NewFlat(geom.NewColor(0.1, 1.0, 0.5))),
		material.WithDiffuse(0.7),
		material.WithSpecular(0.3),
	))
	w.AddShape(middle)

	right := shape.NewSphere()
	right.SetTransform(geom.Translate(1.5, 0.5, -0.5).Mul(geom.Scale(0.5, 0.5, 0.5)))
	right.SetMaterial(material.New(
		material.WithPattern(pattern.NewFlat(geom.NewColor(0.5, 1.0, 0.1))),
		material.WithDiffuse(0.7),
		material.WithSpecular(0.3),
	))
	w.AddShape(right)

	left := shape.NewSphere()
	left.SetTransform(geom.Translate(-1.5, 0.33, -0.75).Mul(geom.Scale(0.33, 0.33, 0.33)))
	left.SetMaterial(material.New(
		material.WithPattern(pattern.NewFlat(geom.NewColor(1.0, 0.8, 0.1))),
		material.WithDiffuse(0.7),
		material.WithSpecular(0.3),
	))
	w.AddShape(left)

	cam := camera.New(width, height, math.Pi/3)
	cam.SetTransform(geom.ViewTransform(
		geom.Point(0, 1.5, -5),
		geom.Point(0, 1, 0),
		geom.Vector(0, 1, 0),
	))

	return w, cam
}

// GlassAndMetal places a reflective/refractive sphere alongside a
// fuzz-free metallic one over a checkered floor, exercising reflection,
// refraction and the checkers pattern together. Grounded on the teacher's
// examples.go ExampleScene1, adapted from its ad hoc Fuzziness field
// (absent from this renderer's Whitted model) to Reflective/Transparency.
func GlassAndMetal(width, height int) (*world.World, *camera.Camera) {
	w := world.New()
	w.Light = world.NewLight(geom.Point(5, 5, 0), geom.White)

	floor := shape.NewPlane()
	floor.SetMaterial(material.New(
		material.WithPattern(pattern.NewCheckers3D(geom.NewColor(0.8, 0.8, 0.8), geom.Black)),
		material.WithReflective(0.2),
	))
	w.AddShape(floor)

	glass := shape.NewSphere()
	glass.SetTransform(geom.Translate(0, 1, -5))
	glass.SetMaterial(material.New(
		material.WithPattern(pattern.NewFlat(geom.NewColor(0.8, 0.2, 0.2))),
		material.WithReflective(0.9),
		material.WithTransparency(0.9),
		material.WithRefractiveIndex(1.5),
	))
	w.AddShape(glass)

	metal := shape.NewSphere()
	metal.SetTransform(geom.Translate(2, 1, -8))
	metal.SetMaterial(material.New(
		material.WithPattern(pattern.NewFlat(geom.NewColor(0.2, 0.2, 0.8))),
		material.WithReflective(0.6),
	))
	w.AddShape(metal)

	green := shape.NewSphere()
	green.SetTransform(geom.Translate(-2, 1, -6))
	green.SetMaterial(material.New(
		material.WithPattern(pattern.NewFlat(geom.NewColor(0.2, 0.8, 0.2))),
		material.WithReflective(0.8),
	))
	w.AddShape(green)

	cam := camera.New(width, height, math.Pi/3)
	cam.SetTransform(geom.ViewTransform(
		geom.Point(0, 3, -9),
		geom.Point(0, 1, -5),
		geom.Vector(0, 1, 0),
	))

	return w, cam
}
