// Package scene loads the declarative scene format of spec.md §6 into a
// constructed world.World and camera.Camera. It is an external
// collaborator of the core renderer: its only contract with the core is
// that construction surface, grounded on original_source's
// src/parse/parse_yaml.rs (which used the Rust yaml_rust crate); this Go
// port uses gopkg.in/yaml.v3, its direct ecosystem analogue.
package scene

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kdstone/whitted-raytracer/internal/camera"
	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/shape"
	"github.com/kdstone/whitted-raytracer/internal/world"
)

// ErrParse wraps every malformed-scene failure, whether the YAML itself
// doesn't parse or a node has the wrong shape for its position.
var ErrParse = errors.New("scene: parse error")

// defaultCameraWidth/Height/FOV seed the camera before a camera: entry (if
// any) overrides them, matching parse_yaml.rs's Camera::new(100, 100,
// 100.0) fallback.
const (
	defaultCameraWidth  = 100
	defaultCameraHeight = 100
)

var defaultCameraFOV = math.Pi / 3 // 60 degrees, a gentler default than the original's 100-degree constant.

// Load reads and parses the scene file at path.
func Load(path string) (*world.World, *camera.Camera, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Parse(data)
}

// Parse decodes a scene document into a World and Camera.
func Parse(data []byte) (*world.World, *camera.Camera, error) {
	var nodes []map[string]interface{}
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	w := world.New()
	cam := camera.New(defaultCameraWidth, defaultCameraHeight, defaultCameraFOV)

	for _, node := range nodes {
		for key, value := range node {
			switch key {
			case "camera":
				c, err := parseCamera(value)
				if err != nil {
					return nil, nil, err
				}
				cam = c
			case "light":
				l, err := parseLight(value)
				if err != nil {
					return nil, nil, err
				}
				w.Light = l
			case "sphere":
				s, err := parseShapeEntry(value, shape.NewSphere())
				if err != nil {
					return nil, nil, err
				}
				w.AddShape(s)
			case "plane":
				s, err := parseShapeEntry(value, shape.NewPlane())
				if err != nil {
					return nil, nil, err
				}
				w.AddShape(s)
			case "background":
				bg, err := parseColor(value)
				if err != nil {
					return nil, nil, err
				}
				w.Background = bg
			default:
				return nil, nil, fmt.Errorf("%w: unknown top-level entry %q", ErrParse, key)
			}
		}
	}
	return w, cam, nil
}

func parseCamera(raw interface{}) (*camera.Camera, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: camera entry must be a mapping", ErrParse)
	}
	width, err := intField(m, "width")
	if err != nil {
		return nil, err
	}
	height, err := intField(m, "height")
	if err != nil {
		return nil, err
	}
	fov, err := floatField(m, "fov")
	if err != nil {
		return nil, err
	}
	from, err := floatSlice(m, "from", 3)
	if err != nil {
		return nil, err
	}
	to, err := floatSlice(m, "to", 3)
	if err != nil {
		return nil, err
	}
	up, err := floatSlice(m, "up", 3)
	if err != nil {
		return nil, err
	}

	cam := camera.New(width, height, fov)
	cam.SetTransform(geom.ViewTransform(
		geom.Point(from[0], from[1], from[2]),
		geom.Point(to[0], to[1], to[2]),
		geom.Vector(up[0], up[1], up[2]),
	))
	return cam, nil
}

func parseLight(raw interface{}) (world.Light, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return world.Light{}, fmt.Errorf("%w: light entry must be a mapping", ErrParse)
	}
	at, err := floatSlice(m, "at", 3)
	if err != nil {
		return world.Light{}, err
	}
	intensity, err := floatSlice(m, "intensity", 3)
	if err != nil {
		return world.Light{}, err
	}
	return world.NewLight(
		geom.Point(at[0], at[1], at[2]),
		geom.NewColor(intensity[0], intensity[1], intensity[2]),
	), nil
}

func parseShapeEntry(raw interface{}, s shape.Shape) (shape.Shape, error) {
	if raw == nil {
		return s, nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: shape entry must be a mapping", ErrParse)
	}
	if rawTransform, ok := m["transform"]; ok {
		t, err := parseTransformList(rawTransform)
		if err != nil {
			return nil, err
		}
		s.SetTransform(t)
	}
	if rawMaterial, ok := m["material"]; ok {
		mat, err := parseMaterial(rawMaterial)
		if err != nil {
			return nil, err
		}
		s.SetMaterial(mat)
	}
	return s, nil
}
