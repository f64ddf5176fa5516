package imageio

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/kdstone/whitted-raytracer/internal/canvas"
	"github.com/kdstone/whitted-raytracer/internal/geom"
)

func TestWritePPMHeader(t *testing.T) {
	c := canvas.New(5, 3)
	var buf bytes.Buffer
	if err := WritePPM(&buf, c); err != nil {
		t.Fatalf("WritePPM() = %v", err)
	}
	lines := strings.SplitN(buf.String(), "\n", 4)
	if lines[0] != "P3" || lines[1] != "5 3" || lines[2] != "255" {
		t.Fatalf("header = %q %q %q, want P3 / 5 3 / 255", lines[0], lines[1], lines[2])
	}
}

// Matches spec.md's boundary scenario: a 10x2 canvas filled with
// (1.0, 0.8, 0.6) must wrap PPM body lines at 70 characters, byte for
// byte.
func TestWritePPMWrapsLongLines(t *testing.T) {
	c := canvas.New(10, 2)
	color := geom.NewColor(1, 0.8, 0.6)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			c.Set(x, y, color)
		}
	}
	var buf bytes.Buffer
	if err := WritePPM(&buf, c); err != nil {
		t.Fatalf("WritePPM() = %v", err)
	}

	want := "P3\n" +
		"10 2\n" +
		"255\n" +
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204\n" +
		"153 255 204 153 255 204 153 255 204 153 255 204 153\n" +
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204\n" +
		"153 255 204 153 255 204 153 255 204 153 255 204 153\n"

	if got := buf.String(); got != want {
		t.Errorf("WritePPM() = %q, want %q", got, want)
	}
	for _, line := range strings.Split(buf.String(), "\n") {
		if len(line) > ppmMaxLineLength {
			t.Errorf("line %q exceeds %d characters", line, ppmMaxLineLength)
		}
	}
}

func TestWritePPMClampsOutOfRangeChannels(t *testing.T) {
	c := canvas.New(1, 1)
	c.Set(0, 0, geom.NewColor(1.5, -0.5, 0.5))
	var buf bytes.Buffer
	if err := WritePPM(&buf, c); err != nil {
		t.Fatalf("WritePPM() = %v", err)
	}
	want := "P3\n1 1\n255\n255 0 128\n"
	if got := buf.String(); got != want {
		t.Errorf("WritePPM() = %q, want %q", got, want)
	}
}

func TestWritePNGRoundTrips(t *testing.T) {
	c := canvas.New(4, 4)
	c.Set(1, 2, geom.NewColor(0.2, 0.4, 0.6))
	var buf bytes.Buffer
	if err := WritePNG(&buf, c); err != nil {
		t.Fatalf("WritePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	r, g, b, _ := img.At(1, 2).RGBA()
	if clampByte(0.2) != uint8(r>>8) || clampByte(0.4) != uint8(g>>8) || clampByte(0.6) != uint8(b>>8) {
		t.Errorf("decoded pixel (%d,%d,%d) does not match expected channel encoding", r>>8, g>>8, b>>8)
	}
}
