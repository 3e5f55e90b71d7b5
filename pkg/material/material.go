package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

var (
	// ErrInvalidAlbedo is returned when an albedo component is outside [0, 1]
	ErrInvalidAlbedo = errors.New("albedo components must lie in [0, 1]")
	// ErrInvalidFuzz is returned when a metal fuzz factor is outside [0, 1]
	ErrInvalidFuzz = errors.New("fuzz must lie in [0, 1]")
	// ErrInvalidRefractiveIndex is returned for a non-positive refractive index
	ErrInvalidRefractiveIndex = errors.New("refractive index must be positive")
)

// Kind identifies one of the closed set of supported materials
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
	KindMirror
)

func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	case KindMirror:
		return "mirror"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Material describes how a surface scatters light. It is a tagged variant:
// Kind selects which of the parameter fields are meaningful.
// Materials are immutable once built and are shared by pointer across primitives.
type Material struct {
	kind            Kind
	albedo          core.Vec3 // Lambertian, Metal
	fuzz            float64   // Metal: 0.0 = perfect mirror, 1.0 = very fuzzy
	refractiveIndex float64   // Dielectric
}

// Kind returns the material variant
func (m *Material) Kind() Kind { return m.kind }

// Albedo returns the reflectance color of Lambertian and Metal materials
func (m *Material) Albedo() core.Vec3 { return m.albedo }

// Fuzz returns the metal fuzz factor
func (m *Material) Fuzz() float64 { return m.fuzz }

// RefractiveIndex returns the dielectric index of refraction
func (m *Material) RefractiveIndex() float64 { return m.refractiveIndex }

// Validate checks the material parameters against their allowed ranges
func (m *Material) Validate() error {
	switch m.kind {
	case KindLambertian, KindMetal:
		if !inUnitRange(m.albedo.X) || !inUnitRange(m.albedo.Y) || !inUnitRange(m.albedo.Z) {
			return fmt.Errorf("%s albedo %v: %w", m.kind, m.albedo, ErrInvalidAlbedo)
		}
		if m.kind == KindMetal && !inUnitRange(m.fuzz) {
			return fmt.Errorf("metal fuzz %g: %w", m.fuzz, ErrInvalidFuzz)
		}
	case KindDielectric:
		if !(m.refractiveIndex > 0) {
			return fmt.Errorf("dielectric index %g: %w", m.refractiveIndex, ErrInvalidRefractiveIndex)
		}
	case KindMirror:
	default:
		return fmt.Errorf("unknown material kind %d", int(m.kind))
	}
	return nil
}

// Scatter computes the response of the material to an incoming ray.
// Returns false when the path is absorbed.
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.kind {
	case KindLambertian:
		return m.scatterLambertian(rayIn, hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	case KindMirror:
		return m.scatterMirror(rayIn, hit)
	default:
		return ScatterResult{}, false
	}
}

func inUnitRange(x float64) bool {
	return x >= 0 && x <= 1
}
