// Command raytrace renders a scene file (or a canned example) to a PPM or
// PNG image, grounded on the teacher's cmd/example.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kdstone/whitted-raytracer/internal/camera"
	"github.com/kdstone/whitted-raytracer/internal/canvas"
	"github.com/kdstone/whitted-raytracer/internal/imageio"
	"github.com/kdstone/whitted-raytracer/internal/scene"
	"github.com/kdstone/whitted-raytracer/internal/world"
)

var (
	sceneFile = flag.String("scene", "", "scene YAML file to render; if empty, renders a canned example")
	example   = flag.String("example", "three-spheres", "canned example to render when --scene is empty: three-spheres or glass-and-metal")
	outFile   = flag.String("out", "out.ppm", "output image filename")
	format    = flag.String("format", "ppm", "output format: ppm or png")
	width     = flag.Int("width", 400, "canned-example render width in pixels")
	height    = flag.Int("height", 200, "canned-example render height in pixels")
	parallel  = flag.Bool("parallel", true, "render with a worker pool across CPUs")
)

func loadScene() (*world.World, *camera.Camera, error) {
	if *sceneFile != "" {
		return scene.Load(*sceneFile)
	}
	log.Printf("--scene not specified, rendering canned example %q", *example)
	switch *example {
	case "three-spheres":
		w, c := scene.ThreeSpheres(*width, *height)
		return w, c, nil
	case "glass-and-metal":
		w, c := scene.GlassAndMetal(*width, *height)
		return w, c, nil
	default:
		return nil, nil, fmt.Errorf("unknown --example %q", *example)
	}
}

func writeImage(c *canvas.Canvas, filename, format string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "ppm":
		return imageio.WritePPM(f, c)
	case "png":
		return imageio.WritePNG(f, c)
	default:
		return fmt.Errorf("unknown --format %q, want ppm or png", format)
	}
}

func main() {
	flag.Parse()

	w, cam, err := loadScene()
	if err != nil {
		log.Fatal(err)
	}

	var img *canvas.Canvas
	if *parallel {
		img = camera.RenderParallel(cam, w)
	} else {
		img = camera.Render(cam, w)
	}

	if err := writeImage(img, *outFile, *format); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", *outFile)
}
