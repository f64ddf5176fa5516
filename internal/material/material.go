// Package material bundles a surface pattern with the Phong lighting
// coefficients and reflective/refractive properties the shading engine
// reads per hit.
package material

import (
	"github.com/kdstone/whitted-raytracer/internal/geom"
	"github.com/kdstone/whitted-raytracer/internal/pattern"
)

// Default lighting coefficients, as specified.
const (
	DefaultAmbient   = 0.1
	DefaultDiffuse   = 0.9
	DefaultSpecular  = 0.9
	DefaultShininess = 200.0
)

// Material is a builder-produced, immutable-once-constructed bundle.
type Material struct {
	Pattern         pattern.Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// New returns a Material with the spec-mandated defaults: flat white
// pattern, ambient 0.1, diffuse 0.9, specular 0.9, shininess 200, and zero
// reflectivity/transparency with a refractive index of 1.0 (vacuum/air).
func New(opts ...Option) Material {
	m := Material{
		Pattern:         pattern.NewFlat(geom.White),
		Ambient:         DefaultAmbient,
		Diffuse:         DefaultDiffuse,
		Specular:        DefaultSpecular,
		Shininess:       DefaultShininess,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Option customizes a Material built with New, mirroring the functional
// option style the teacher uses for readline.Config in cmd/gml.
type Option func(*Material)

func WithPattern(p pattern.Pattern) Option {
	return func(m *Material) { m.Pattern = p }
}

func WithAmbient(v float64) Option {
	return func(m *Material) { m.Ambient = v }
}

func WithDiffuse(v float64) Option {
	return func(m *Material) { m.Diffuse = v }
}

func WithSpecular(v float64) Option {
	return func(m *Material) { m.Specular = v }
}

func WithShininess(v float64) Option {
	return func(m *Material) { m.Shininess = v }
}

func WithReflective(v float64) Option {
	return func(m *Material) { m.Reflective = v }
}

func WithTransparency(v float64) Option {
	return func(m *Material) { m.Transparency = v }
}

func WithRefractiveIndex(v float64) Option {
	return func(m *Material) { m.RefractiveIndex = v }
}

// Equal compares two materials field-wise; pattern equality is structural
// (delegated to pattern.Pattern.Equal).
func (m Material) Equal(o Material) bool {
	return m.Pattern.Equal(o.Pattern) &&
		m.Ambient == o.Ambient &&
		m.Diffuse == o.Diffuse &&
		m.Specular == o.Specular &&
		m.Shininess == o.Shininess &&
		m.Reflective == o.Reflective &&
		m.Transparency == o.Transparency &&
		m.RefractiveIndex == o.RefractiveIndex
}
