package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene is what an integrator needs from the world: the nearest intersection
// along a ray and the colour of rays that escape.
type Scene interface {
	NearestHit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	Background(ray core.Ray) core.Vec3
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3
}
