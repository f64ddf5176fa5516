package camera

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/material"
	"github.com/kdstone/whitted-raytracer/internal/pattern"
	"github.com/kdstone/whitted-raytracer/internal/shape"
	"github.com/kdstone/whitted-raytracer/internal/world"
)

var approxOpts = cmpopts.EquateApprox(1e-4, 0.0)

func TestPixelSizeForHorizontalCanvas(t *testing.T) {
	c := New(200, 125, math.Pi/2)
	if diff := cmp.Diff(c.pixelSize, 0.01, approxOpts); diff != "" {
		t.Errorf("pixelSize mismatch (-got +want):\n%s", diff)
	}
}

func TestPixelSizeForVerticalCanvas(t *testing.T) {
	c := New(125, 200, math.Pi/2)
	if diff := cmp.Diff(c.pixelSize, 0.01, approxOpts); diff != "" {
		t.Errorf("pixelSize mismatch (-got +want):\n%s", diff)
	}
}

func TestRayForPixelThroughCenterOfCanvas(t *testing.T) {
	c := New(201, 101, math.Pi/2)
	r := c.RayForPixel(100, 50)
	if diff := cmp.Diff(r.Origin, geom.Origin, approxOpts); diff != "" {
		t.Errorf("origin mismatch (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(r.Direction, geom.Vector(0, 0, -1), approxOpts); diff != "" {
		t.Errorf("direction mismatch (-got +want):\n%s", diff)
	}
}

func TestRayForPixelThroughCornerOfCanvas(t *testing.T) {
	c := New(201, 101, math.Pi/2)
	r := c.RayForPixel(0, 0)
	if diff := cmp.Diff(r.Direction, geom.Vector(0.66519, 0.33259, -0.66851), approxOpts); diff != "" {
		t.Errorf("direction mismatch (-got +want):\n%s", diff)
	}
}

func TestRayForPixelWithTransformedCamera(t *testing.T) {
	c := New(201, 101, math.Pi/2)
	c.SetTransform(geom.RotateY(math.Pi / 4).Mul(geom.Translate(0, -2, 5)))
	r := c.RayForPixel(100, 50)
	if diff := cmp.Diff(r.Origin, geom.Point(0, 2, -5), approxOpts); diff != "" {
		t.Errorf("origin mismatch (-got +want):\n%s", diff)
	}
	want := geom.Vector(math.Sqrt2/2, 0, -math.Sqrt2/2)
	if diff := cmp.Diff(r.Direction, want, approxOpts); diff != "" {
		t.Errorf("direction mismatch (-got +want):\n%s", diff)
	}
}

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

type recordingListener struct {
	fractions []float64
}

func (r *recordingListener) OnProgress(fraction float64) {
	r.fractions = append(r.fractions, fraction)
}

func TestRenderPaintsTheExpectedCenterPixel(t *testing.T) {
	w := defaultWorld()
	c := New(11, 11, math.Pi/2)
	from := geom.Point(0, 0, -5)
	to := geom.Origin
	up := geom.Vector(0, 1, 0)
	c.SetTransform(geom.ViewTransform(from, to, up))

	listener := &recordingListener{}
	img := Render(c, w, listener)

	want := geom.NewColor(0.38066, 0.47583, 0.2855)
	if diff := cmp.Diff(img.At(5, 5), want, approxOpts); diff != "" {
		t.Errorf("Render() center pixel mismatch (-got +want):\n%s", diff)
	}
	if len(listener.fractions) != 121 {
		t.Fatalf("got %d progress callbacks, want 121", len(listener.fractions))
	}
	if last := listener.fractions[len(listener.fractions)-1]; last != 1.0 {
		t.Errorf("final progress fraction = %v, want 1.0", last)
	}
}

type atomicListener struct {
	mu   chan struct{}
	last float64
}

func newAtomicListener() *atomicListener {
	return &atomicListener{mu: make(chan struct{}, 1)}
}

func (a *atomicListener) OnProgress(fraction float64) {
	a.mu <- struct{}{}
	if fraction > a.last {
		a.last = fraction
	}
	<-a.mu
}

func TestRenderParallelProducesSameImageAsSequential(t *testing.T) {
	w := defaultWorld()
	c := New(21, 15, math.Pi/3)
	c.SetTransform(geom.ViewTransform(geom.Point(0, 1, -6), geom.Origin, geom.Vector(0, 1, 0)))

	sequential := Render(c, w)
	listener := newAtomicListener()
	parallel := RenderParallel(c, w, listener)

	for x := 0; x < c.HSize; x++ {
		for y := 0; y < c.VSize; y++ {
			if diff := cmp.Diff(sequential.At(x, y), parallel.At(x, y), approxOpts); diff != "" {
				t.Fatalf("pixel (%d,%d) mismatch between Render and RenderParallel (-seq +parallel):\n%s", x, y, diff)
			}
		}
	}
	if listener.last != 1.0 {
		t.Errorf("final progress fraction = %v, want 1.0", listener.last)
	}
}
