// Package camera projects pixels to world-space rays and drives the
// renderer across a canvas.
package camera

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/kdstone/whitted-raytracer/internal/canvas"
	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/shade"
	"github.com/kdstone/whitted-raytracer/internal/world"
)

// ProgressListener is notified after every pixel the camera renders.
// Fraction is in [0, 1]. RenderParallel calls listeners from its worker
// goroutines, one call at a time.
type ProgressListener interface {
	OnProgress(fraction float64)
}

// Camera projects pixel coordinates to world-space rays for a given
// field of view and placement.
type Camera struct {
	HSize, VSize int
	FOV          float64
	Transform    geom.Transform

	halfWidth, halfHeight, pixelSize float64
}

// New constructs a Camera with the identity transform (looking down -Z
// from the origin) and derives half-width/half-height/pixel-size from the
// aspect ratio of hsize x vsize.
func New(hsize, vsize int, fov float64) *Camera {
	c := &Camera{HSize: hsize, VSize: vsize, FOV: fov, Transform: geom.IdentityTransform}
	c.recompute()
	return c
}

func (c *Camera) recompute() {
	halfView := math.Tan(c.FOV / 2)
	aspect := float64(c.HSize) / float64(c.VSize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(c.HSize)
}

// SetTransform installs a new view transform, grounded on the book's
// camera-placed-by-view-transform convention.
func (c *Camera) SetTransform(t geom.Transform) {
	c.Transform = t
}

// RayForPixel returns the world-space ray passing through the center of
// pixel (px, py).
func (c *Camera) RayForPixel(px, py int) geom.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inv, err := c.Transform.Inverse()
	if err != nil {
		panic(fmt.Sprintf("camera: transform is not invertible: %v", err))
	}
	pixel := inv.Point(geom.Point(worldX, worldY, -1))
	origin := inv.Point(geom.Origin)
	direction := pixel.Sub(origin).Normalize()

	return geom.NewRay(origin, direction)
}

// Render visits every pixel (x outer, y inner, matching spec.md's stated
// iteration order) and shades it, reporting progress to every listener
// after each pixel.
func Render(c *Camera, w *world.World, listeners ...ProgressListener) *canvas.Canvas {
	img := canvas.New(c.HSize, c.VSize)
	total := c.HSize * c.VSize

	for x := 0; x < c.HSize; x++ {
		for y := 0; y < c.VSize; y++ {
			ray := c.RayForPixel(x, y)
			img.Set(x, y, shade.ShadeRay(w, ray))

			fraction := float64(x*c.VSize+y+1) / float64(total)
			for _, l := range listeners {
				l.OnProgress(fraction)
			}
		}
	}
	return img
}

// RenderParallel is the permitted-but-optional parallel render path:
// columns are partitioned across a worker pool since every pixel is a pure
// function of the immutable World. Each pixel is still written exactly
// once, but progress callbacks no longer follow the sequential pixel
// order; they are only monotonically non-decreasing, since the shared
// completed counter is advanced and reported under one mutex.
func RenderParallel(c *Camera, w *world.World, listeners ...ProgressListener) *canvas.Canvas {
	img := canvas.New(c.HSize, c.VSize)
	total := int64(c.HSize * c.VSize)
	var completed int64
	var progressMu sync.Mutex

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > c.HSize {
		numWorkers = c.HSize
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	colsPerWorker := (c.HSize + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		xStart := worker * colsPerWorker
		xEnd := xStart + colsPerWorker
		if xEnd > c.HSize {
			xEnd = c.HSize
		}
		if xStart >= xEnd {
			continue
		}
		wg.Add(1)
		go func(xStart, xEnd int) {
			defer wg.Done()
			for x := xStart; x < xEnd; x++ {
				for y := 0; y < c.VSize; y++ {
					ray := c.RayForPixel(x, y)
					img.Set(x, y, shade.ShadeRay(w, ray))

					progressMu.Lock()
					completed++
					fraction := float64(completed) / float64(total)
					for _, l := range listeners {
						l.OnProgress(fraction)
					}
					progressMu.Unlock()
				}
			}
		}(xStart, xEnd)
	}
	wg.Wait()
	return img
}
