package renderer

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// MockIntegrator returns a fixed colour and counts calls from every worker
type MockIntegrator struct {
	returnColor core.Vec3
	callCount   atomic.Int64
}

func (m *MockIntegrator) RayColor(ray core.Ray, sc integrator.Scene, sampler core.Sampler) core.Vec3 {
	m.callCount.Add(1)
	return m.returnColor
}

// createTestScene creates a small scene with every material kind
func createTestScene(t *testing.T) *scene.Scene {
	t.Helper()
	sc, err := scene.New(
		geometry.NewAxisAlignedRect(geometry.PlaneXZ, -5, 5, -5, 5, -0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
		geometry.NewSphere(core.NewVec3(0, 1, -2), 0.5, material.NewMirror()),
	)
	require.NoError(t, err)
	sc.CameraConfig.Aperture = 0.1
	return sc
}

func testConfig() Config {
	return Config{
		Width:           24,
		Height:          16,
		SamplesPerPixel: 4,
		MaxDepth:        8,
		Workers:         1,
		TileSize:        8,
		Seed:            7,
	}
}

func createTestCamera(t *testing.T, sc *scene.Scene, cfg Config) *geometry.Camera {
	t.Helper()
	camera, err := sc.NewCamera(cfg.AspectRatio())
	require.NoError(t, err)
	return camera
}

func isFinite(c core.Vec3) bool {
	for _, v := range []float64{c.X, c.Y, c.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
