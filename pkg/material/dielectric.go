package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NewDielectric creates a transparent material like glass that can both reflect and refract
func NewDielectric(refractiveIndex float64) *Material {
	return &Material{kind: KindDielectric, refractiveIndex: refractiveIndex}
}

// scatterDielectric chooses between reflection and refraction using Schlick's approximation
func (m *Material) scatterDielectric(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Clear glass does not tint
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / m.refractiveIndex // entering: air to glass
	} else {
		refractionRatio = m.refractiveIndex // exiting: glass to air
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)

	var direction core.Vec3
	refracted, canRefract := core.Refract(unitDirection, hit.Normal, refractionRatio)
	if !canRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = refracted
	}

	return ScatterResult{
		Incoming:    rayIn,
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation.
// R0 depends only on the ratio, so passing ior or 1/ior yields the same value.
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
