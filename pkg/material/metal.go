package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Material {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Material{kind: KindMetal, albedo: albedo, fuzz: fuzzness}
}

// scatterMetal reflects about the normal and perturbs the result by the fuzz factor
func (m *Material) scatterMetal(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.fuzz > 0 {
		perturbation := core.SampleOnUnitSphere(sampler.Get2D()).Multiply(m.fuzz)
		reflected = reflected.Add(perturbation)
	}

	scattered := core.NewRay(hit.Point, reflected)

	// Fuzz can push the ray below the surface, in which case it is absorbed
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Incoming:    rayIn,
		Scattered:   scattered,
		Attenuation: m.albedo,
	}, true
}
