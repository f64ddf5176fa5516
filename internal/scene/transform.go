package scene

import (
	"fmt"

	"github.com/kdstone/whitted-raytracer/internal/geom"
)

// parseTransformList folds a transform-list entry into a single composed
// Transform. Each node is a single-key mapping; the last node in the list
// is multiplied in last, so it lands closest to the point being
// transformed and applies first, matching spec.md's stated composition
// order.
func parseTransformList(raw interface{}) (geom.Transform, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return geom.IdentityTransform, fmt.Errorf("%w: transform must be a list", ErrParse)
	}
	result := geom.IdentityTransform
	for _, item := range items {
		node, ok := item.(map[string]interface{})
		if !ok || len(node) != 1 {
			return geom.IdentityTransform, fmt.Errorf("%w: transform node must have exactly one key", ErrParse)
		}
		for key, value := range node {
			t, err := parseTransformNode(key, value)
			if err != nil {
				return geom.IdentityTransform, err
			}
			result = result.Mul(t)
		}
	}
	return result, nil
}

func parseTransformNode(key string, value interface{}) (geom.Transform, error) {
	switch key {
	case "translate":
		v, err := toFloats(value, 3)
		if err != nil {
			return geom.IdentityTransform, err
		}
		return geom.Translate(v[0], v[1], v[2]), nil
	case "scale":
		v, err := toFloats(value, 3)
		if err != nil {
			return geom.IdentityTransform, err
		}
		return geom.Scale(v[0], v[1], v[2]), nil
	case "rotate_x":
		f, err := toFloat(value)
		if err != nil {
			return geom.IdentityTransform, err
		}
		return geom.RotateX(f), nil
	case "rotate_y":
		f, err := toFloat(value)
		if err != nil {
			return geom.IdentityTransform, err
		}
		return geom.RotateY(f), nil
	case "rotate_z":
		f, err := toFloat(value)
		if err != nil {
			return geom.IdentityTransform, err
		}
		return geom.RotateZ(f), nil
	case "shear":
		v, err := toFloats(value, 6)
		if err != nil {
			return geom.IdentityTransform, err
		}
		return geom.Shear(v[0], v[1], v[2], v[3], v[4], v[5]), nil
	default:
		return geom.IdentityTransform, fmt.Errorf("%w: unknown transform node %q", ErrParse, key)
	}
}
