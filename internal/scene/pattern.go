package scene

import (
	"fmt"

	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/pattern"
)

func parseColor(raw interface{}) (geom.Color, error) {
	v, err := toFloats(raw, 3)
	if err != nil {
		return geom.Color{}, err
	}
	return geom.NewColor(v[0], v[1], v[2]), nil
}

// parsePatternField accepts either a single pattern node or a list of
// them; a list combines as a Blended pattern, per spec.md's "multiple
// patterns on one material combine as Blended".
func parsePatternField(raw interface{}) (pattern.Pattern, error) {
	if list, ok := raw.([]interface{}); ok {
		patterns := make([]pattern.Pattern, 0, len(list))
		for _, item := range list {
			p, err := parsePattern(item)
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, p)
		}
		return pattern.NewBlended(patterns...), nil
	}
	return parsePattern(raw)
}

func parsePattern(raw interface{}) (pattern.Pattern, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: pattern node must be a mapping", ErrParse)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("%w: pattern node is empty", ErrParse)
	}

	if rawFlat, ok := m["flat"]; ok {
		c, err := parseColor(rawFlat)
		if err != nil {
			return nil, err
		}
		return pattern.NewFlat(c), nil
	}

	for _, kind := range []string{"stripes", "gradient", "rings", "checkers"} {
		if rawBody, ok := m[kind]; ok {
			return parsePairPattern(kind, rawBody)
		}
	}

	return nil, fmt.Errorf("%w: unknown pattern kind in %v", ErrParse, m)
}

// parsePairPattern handles the two-color patterns (stripes, gradient,
// rings, checkers) and checkers' alternative nested-sub-pattern form.
func parsePairPattern(kind string, raw interface{}) (pattern.Pattern, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s pattern must be a mapping", ErrParse, kind)
	}

	var built pattern.Pattern
	switch {
	case m["colors"] != nil:
		colors, err := toFloats2Colors(m["colors"])
		if err != nil {
			return nil, err
		}
		switch kind {
		case "stripes":
			built = pattern.NewStripes(colors[0], colors[1])
		case "gradient":
			built = pattern.NewGradient(colors[0], colors[1])
		case "rings":
			built = pattern.NewRings(colors[0], colors[1])
		case "checkers":
			built = pattern.NewCheckers3D(colors[0], colors[1])
		}
	case kind == "checkers" && m["a"] != nil && m["b"] != nil:
		a, err := parsePattern(m["a"])
		if err != nil {
			return nil, err
		}
		b, err := parsePattern(m["b"])
		if err != nil {
			return nil, err
		}
		built = pattern.NewNestedCheckers(a, b)
	default:
		return nil, fmt.Errorf("%w: %s pattern requires \"colors\"", ErrParse, kind)
	}

	if rawTransform, ok := m["transform"]; ok {
		t, err := parseTransformList(rawTransform)
		if err != nil {
			return nil, err
		}
		if setter, ok := built.(interface{ SetTransform(geom.Transform) }); ok {
			setter.SetTransform(t)
		}
	}
	return built, nil
}

func toFloats2Colors(raw interface{}) ([2]geom.Color, error) {
	arr, ok := raw.([]interface{})
	if !ok || len(arr) != 2 {
		return [2]geom.Color{}, fmt.Errorf("%w: colors must be a 2-element list", ErrParse)
	}
	a, err := parseColor(arr[0])
	if err != nil {
		return [2]geom.Color{}, err
	}
	b, err := parseColor(arr[1])
	if err != nil {
		return [2]geom.Color{}, err
	}
	return [2]geom.Color{a, b}, nil
}
