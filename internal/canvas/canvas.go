// Package canvas implements a 2-D grid of colors the camera paints into.
package canvas

import "github.com/kdstone/whitted-raytracer/internal/geom"

// Canvas is a row-major grid of pixel colors, defaulting to black.
type Canvas struct {
	Width, Height int
	pixels        []geom.Color
}

func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]geom.Color, width*height),
	}
}

func (c *Canvas) index(x, y int) int {
	return y*c.Width + x
}

func (c *Canvas) At(x, y int) geom.Color {
	return c.pixels[c.index(x, y)]
}

func (c *Canvas) Set(x, y int, color geom.Color) {
	c.pixels[c.index(x, y)] = color
}
