package scene

import (
	"fmt"

	"github.com/kdstone/whitted-raytracer/internal/material"
)

func parseMaterial(raw interface{}) (material.Material, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return material.Material{}, fmt.Errorf("%w: material entry must be a mapping", ErrParse)
	}

	var opts []material.Option
	if v, present, err := optionalFloatField(m, "ambient"); err != nil {
		return material.Material{}, err
	} else if present {
		opts = append(opts, material.WithAmbient(v))
	}
	if v, present, err := optionalFloatField(m, "diffuse"); err != nil {
		return material.Material{}, err
	} else if present {
		opts = append(opts, material.WithDiffuse(v))
	}
	if v, present, err := optionalFloatField(m, "specular"); err != nil {
		return material.Material{}, err
	} else if present {
		opts = append(opts, material.WithSpecular(v))
	}
	if v, present, err := optionalFloatField(m, "shininess"); err != nil {
		return material.Material{}, err
	} else if present {
		opts = append(opts, material.WithShininess(v))
	}
	if v, present, err := optionalFloatField(m, "reflective"); err != nil {
		return material.Material{}, err
	} else if present {
		opts = append(opts, material.WithReflective(v))
	}
	if v, present, err := optionalFloatField(m, "transparency"); err != nil {
		return material.Material{}, err
	} else if present {
		opts = append(opts, material.WithTransparency(v))
	}
	if v, present, err := optionalFloatField(m, "refractive_index"); err != nil {
		return material.Material{}, err
	} else if present {
		opts = append(opts, material.WithRefractiveIndex(v))
	}
	if rawPattern, ok := m["pattern"]; ok {
		p, err := parsePatternField(rawPattern)
		if err != nil {
			return material.Material{}, err
		}
		opts = append(opts, material.WithPattern(p))
	}

	return material.New(opts...), nil
}
