package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Vec3) *Material {
	return &Material{kind: KindLambertian, albedo: albedo}
}

// scatterLambertian scatters around the normal with a cosine-weighted distribution
func (m *Material) scatterLambertian(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Normal plus a uniform point on the unit sphere is cosine-distributed about the normal
	scatterDirection := hit.Normal.Add(core.SampleOnUnitSphere(sampler.Get2D()))

	// The random vector can cancel the normal; fall back to the normal itself
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Incoming:    rayIn,
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: m.albedo,
	}, true
}
