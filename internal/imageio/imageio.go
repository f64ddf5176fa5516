// Package imageio encodes a rendered canvas.Canvas to the external image
// formats spec.md describes: ASCII PPM (P3) and 8-bit PNG. Both use the
// same channel encoding: clamp(round(channel * 255), 0, 255). The core
// renderer never clamps; clamping happens only here, at the boundary.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/kdstone/whitted-raytracer/internal/canvas"
)

// ErrIO wraps any underlying I/O failure from an encoder.
var ErrIO = errors.New("imageio: io failure")

const ppmMaxLineLength = 70

func clampByte(channel float64) uint8 {
	v := int(math.Round(channel * 255))
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// WritePPM writes c as ASCII PPM (P3): a three-line header followed by rows
// of space-separated integer triples, each row wrapped so no line exceeds
// 70 characters, with a trailing newline after every row even when it was
// wrapped into several lines.
func WritePPM(w io.Writer, c *canvas.Canvas) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	for y := 0; y < c.Height; y++ {
		tokens := make([]string, 0, c.Width*3)
		for x := 0; x < c.Width; x++ {
			col := c.At(x, y)
			tokens = append(tokens,
				strconv.Itoa(int(clampByte(col.R))),
				strconv.Itoa(int(clampByte(col.G))),
				strconv.Itoa(int(clampByte(col.B))),
			)
		}
		if err := writeWrappedRow(bw, tokens); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// writeWrappedRow greedily packs tokens onto lines no longer than
// ppmMaxLineLength, breaking at the last space that still fits, and always
// terminates the row with a newline.
func writeWrappedRow(w io.Writer, tokens []string) error {
	line := ""
	for _, tok := range tokens {
		candidate := tok
		if line != "" {
			candidate = line + " " + tok
		}
		if len(candidate) > ppmMaxLineLength {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			line = tok
		} else {
			line = candidate
		}
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// WritePNG writes c as an 8-bit RGB PNG using the same channel encoding as
// WritePPM.
func WritePNG(w io.Writer, c *canvas.Canvas) error {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			col := c.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: clampByte(col.R),
				G: clampByte(col.G),
				B: clampByte(col.B),
				A: 255,
			})
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
