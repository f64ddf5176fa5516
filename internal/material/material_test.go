package material

import (
	"testing"

	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/pattern"
)

func TestDefaultMaterial(t *testing.T) {
	m := New()
	if m.Ambient != DefaultAmbient || m.Diffuse != DefaultDiffuse || m.Specular != DefaultSpecular || m.Shininess != DefaultShininess {
		t.Errorf("New() coefficients = %+v, want the spec defaults", m)
	}
	if m.Reflective != 0 || m.Transparency != 0 || m.RefractiveIndex != 1.0 {
		t.Errorf("New() reflective/transparency/refractive = %+v, want zero/zero/1.0", m)
	}
	flat, ok := m.Pattern.(*pattern.Flat)
	if !ok || !flat.Color.Equal(geom.White) {
		t.Errorf("New().Pattern = %v, want flat white", m.Pattern)
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	m := New(
		WithAmbient(1.0),
		WithDiffuse(0.5),
		WithReflective(0.9),
		WithTransparency(0.8),
		WithRefractiveIndex(1.5),
		WithPattern(pattern.NewFlat(geom.NewColor(1, 0, 0))),
	)
	if m.Ambient != 1.0 || m.Diffuse != 0.5 || m.Reflective != 0.9 || m.Transparency != 0.8 || m.RefractiveIndex != 1.5 {
		t.Errorf("options did not apply: %+v", m)
	}
}

func TestEqualIsFieldwiseWithStructuralPatternEquality(t *testing.T) {
	a := New(WithPattern(pattern.NewFlat(geom.NewColor(1, 0, 0))))
	b := New(WithPattern(pattern.NewFlat(geom.NewColor(1, 0, 0))))
	c := New(WithPattern(pattern.NewFlat(geom.NewColor(0, 1, 0))))
	if !a.Equal(b) {
		t.Errorf("materials with structurally-equal patterns should be Equal")
	}
	if a.Equal(c) {
		t.Errorf("materials with different pattern colors should not be Equal")
	}
}
