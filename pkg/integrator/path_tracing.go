package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// tMin keeps scattered rays from re-hitting the surface they leave
const tMin = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a fixed
// bounce limit and no Russian roulette.
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	color, _ := pt.trace(ray, scene, sampler, pt.maxDepth)
	return color
}

// trace returns the radiance along ray and the number of scene queries made
func (pt *PathTracingIntegrator) trace(ray core.Ray, scene Scene, sampler core.Sampler, depth int) (core.Vec3, int) {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}, 0
	}

	hit, isHit := scene.NearestHit(ray, tMin, math.Inf(1))
	if !isHit {
		return scene.Background(ray), 1
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{}, 1
	}

	incoming, bounces := pt.trace(scatter.Scattered, scene, sampler, depth-1)
	return scatter.Attenuation.MultiplyVec(incoming), bounces + 1
}
