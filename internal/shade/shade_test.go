package shade

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/material"
	"github.com/kdstone/whitted-raytracer/internal/pattern"
	"github.com/kdstone/whitted-raytracer/internal/shape"
	"github.com/kdstone/whitted-raytracer/internal/world"
)

var approxOpts = cmpopts.EquateApprox(1e-4, 0.0)

func defaultWorld() *world.World {
	w := world.New()
	w.Light = world.NewLight(geom.Point(-10, 10, -10), geom.White)

	outer := shape.NewSphere()
	outer.SetMaterial(material.New(
		material.WithPattern(pattern.NewFlat(geom.NewColor(0.8, 1.0, 0.6))),
		material.WithDiffuse(0.7),
		material.WithSpecular(0.2),
	))
	w.AddShape(outer)

	inner := shape.NewSphere()
	inner.SetTransform(geom.Scale(0.5, 0.5, 0.5))
	w.AddShape(inner)

	return w
}

// Scenario 1: sphere hit, basic shading.
func TestShadeRaySphereHitBasicShading(t *testing.T) {
	w := defaultWorld()
	r := geom.NewRay(geom.Point(0, 0, -5), geom.Vector(0, 0, 1))
	got := ShadeRay(w, r)
	want := geom.NewColor(0.38066, 0.47583, 0.2855)
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("ShadeRay() mismatch (-got +want):\n%s", diff)
	}
}

// Scenario 2: shading from inside the sphere.
func TestShadeRayInsideSphere(t *testing.T) {
	w := defaultWorld()
	w.Light = world.NewLight(geom.Point(0, 0.25, 0), geom.White)
	r := geom.NewRay(geom.Origin, geom.Vector(0, 0, 1))
	got := ShadeRay(w, r)
	want := geom.NewColor(0.90498, 0.90498, 0.90498)
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("ShadeRay() mismatch (-got +want):\n%s", diff)
	}
}

// Scenario 3: a ray that misses everything returns the background color.
func TestShadeRayMissReturnsBackground(t *testing.T) {
	w := defaultWorld()
	w.Background = geom.NewColor(1, 0, 0)
	r := geom.NewRay(geom.Point(0, 0, -5), geom.Vector(0, 1, 0))
	got := ShadeRay(w, r)
	if diff := cmp.Diff(got, w.Background, approxOpts); diff != "" {
		t.Errorf("ShadeRay() mismatch (-got +want):\n%s", diff)
	}
}

// Scenario 4: a reflective floor blends its own color with the reflection.
func TestShadeRayReflectiveFloor(t *testing.T) {
	w := defaultWorld()
	floor := shape.NewPlane()
	floor.SetTransform(geom.Translate(0, -1, 0))
	floor.SetMaterial(material.New(material.WithReflective(0.5)))
	w.AddShape(floor)

	r := geom.NewRay(geom.Point(0, 0, -3), geom.Vector(0, -math.Sqrt2/2, math.Sqrt2/2))
	got := ShadeRay(w, r)
	want := geom.NewColor(0.87675, 0.92434, 0.82917)
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("ShadeRay() mismatch (-got +want):\n%s", diff)
	}
}

// Scenario 5: two parallel mirrors must not blow the stack; any finite
// color returned in bounded time is a pass.
func TestShadeRayInfiniteReflectionTerminates(t *testing.T) {
	w := world.New()
	w.Light = world.NewLight(geom.Origin, geom.White)

	lower := shape.NewPlane()
	lower.SetTransform(geom.Translate(0, -1, 0))
	lower.SetMaterial(material.New(material.WithReflective(1.0)))
	w.AddShape(lower)

	upper := shape.NewPlane()
	upper.SetTransform(geom.Translate(0, 1, 0))
	upper.SetMaterial(material.New(material.WithReflective(1.0)))
	w.AddShape(upper)

	r := geom.NewRay(geom.Origin, geom.Vector(0, 1, 0))

	done := make(chan geom.Color, 1)
	go func() { done <- ShadeRay(w, r) }()
	select {
	case got := <-done:
		if math.IsNaN(got.R) || math.IsInf(got.R, 0) {
			t.Errorf("ShadeRay() = %v, want a finite color", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ShadeRay() did not terminate for parallel mirrors")
	}
}

// Scenario 6: a semi-transparent floor over a red ball blends refraction.
func TestShadeRayTransparentFloorOverRedBall(t *testing.T) {
	w := defaultWorld()

	floor := shape.NewPlane()
	floor.SetTransform(geom.Translate(0, -1, 0))
	floor.SetMaterial(material.New(
		material.WithTransparency(0.5),
		material.WithRefractiveIndex(1.5),
	))
	w.AddShape(floor)

	ball := shape.NewSphere()
	ball.SetTransform(geom.Translate(0, -3.5, -0.5))
	ball.SetMaterial(material.New(
		material.WithPattern(pattern.NewFlat(geom.NewColor(1, 0, 0))),
		material.WithAmbient(0.5),
	))
	w.AddShape(ball)

	r := geom.NewRay(geom.Point(0, 0, -3), geom.Vector(0, -math.Sqrt2/2, math.Sqrt2/2))
	got := ShadeRay(w, r)
	want := geom.NewColor(0.93642, 0.68642, 0.68642)
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("ShadeRay() mismatch (-got +want):\n%s", diff)
	}
}

func TestSchlickApproximationGrowsTowardGrazingAngle(t *testing.T) {
	glass := shape.NewSphere()
	glass.SetMaterial(material.New(material.WithRefractiveIndex(1.5), material.WithTransparency(1.0)))
	r := geom.NewRay(geom.Point(0, 0, -5), geom.Vector(0, 0, 1))

	straightOn := shape.Intersection{T: 4, Shape: glass, Ray: r}
	reflectanceStraightOn := schlick(straightOn, []shape.Intersection{straightOn})

	grazing := geom.NewRay(geom.Point(0, 0.99, -5), geom.Vector(0, 0, 1))
	grazingHit, found := shape.Hit(shape.Intersect(glass, grazing))
	if !found {
		t.Fatal("expected grazing ray to hit the sphere")
	}
	reflectanceGrazing := schlick(grazingHit, []shape.Intersection{grazingHit})

	if reflectanceGrazing <= reflectanceStraightOn {
		t.Errorf("schlick(grazing)=%v should exceed schlick(straight-on)=%v", reflectanceGrazing, reflectanceStraightOn)
	}
}
