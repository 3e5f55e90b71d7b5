package geometry

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-pathtracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2.0,
	}
}

func TestNewCamera_Basis(t *testing.T) {
	camera, err := NewCamera(testCameraConfig())
	require.NoError(t, err)

	assert.InDelta(t, 0.0, camera.U.Subtract(core.NewVec3(1, 0, 0)).Length(), 1e-12)
	assert.InDelta(t, 0.0, camera.V.Subtract(core.NewVec3(0, 1, 0)).Length(), 1e-12)
	assert.InDelta(t, 0.0, camera.W.Subtract(core.NewVec3(0, 0, 1)).Length(), 1e-12)
	assert.InDelta(t, 2.0, camera.ViewportHeight, 1e-12)
	assert.InDelta(t, 4.0, camera.ViewportWidth, 1e-12)
	assert.InDelta(t, 1.0, camera.FocusDistance, 1e-12)
	assert.Equal(t, 0.0, camera.LensRadius)
}

func TestCamera_GetRay_ViewportMapping(t *testing.T) {
	camera, err := NewCamera(testCameraConfig())
	require.NoError(t, err)
	sampler := core.NewRandomSampler(rand.New(rand.NewPCG(1, 2)))

	center := camera.GetRay(0.5, 0.5, sampler)
	assert.InDelta(t, 0.0, center.Direction.Normalize().Subtract(core.NewVec3(0, 0, -1)).Length(), 1e-12)

	lowerLeft := camera.GetRay(0, 0, sampler)
	assert.InDelta(t, 0.0, lowerLeft.Direction.Subtract(core.NewVec3(-2, -1, -1)).Length(), 1e-12)

	upperRight := camera.GetRay(1, 1, sampler)
	assert.InDelta(t, 0.0, upperRight.Direction.Subtract(core.NewVec3(2, 1, -1)).Length(), 1e-12)
}

func TestCamera_PinholeSharesOrigin(t *testing.T) {
	config := testCameraConfig()
	config.LookFrom = core.NewVec3(3, 2, 1)
	camera, err := NewCamera(config)
	require.NoError(t, err)
	sampler := core.NewRandomSampler(rand.New(rand.NewPCG(5, 5)))

	first := camera.GetRay(0.3, 0.7, sampler)
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.3, 0.7, sampler)
		assert.Equal(t, config.LookFrom, ray.Origin)
		assert.Equal(t, first.Direction, ray.Direction)
	}
}

func TestCamera_DepthOfFieldOriginsInsideLens(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.5
	config.FocusDistance = 4
	camera, err := NewCamera(config)
	require.NoError(t, err)
	require.Equal(t, 0.25, camera.LensRadius)
	sampler := core.NewRandomSampler(rand.New(rand.NewPCG(7, 11)))

	focusPoint := core.NewVec3(0, 0, -4)
	distinct := 0
	for i := 0; i < 1000; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		offset := ray.Origin.Subtract(config.LookFrom)
		assert.LessOrEqual(t, offset.Length(), camera.LensRadius+1e-12)
		assert.InDelta(t, 0.0, offset.Dot(camera.W), 1e-12, "origin must stay on the lens plane")
		if offset.Length() > 1e-9 {
			distinct++
		}

		// Every ray through the same film point converges on the focus plane
		tFocus := -4 / ray.Direction.Z
		assert.InDelta(t, 0.0, ray.At(tFocus).Subtract(focusPoint).Length(), 1e-9)
	}
	assert.Greater(t, distinct, 900)
}

func TestNewCamera_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CameraConfig)
	}{
		{"zero fov", func(c *CameraConfig) { c.VFov = 0 }},
		{"straight fov", func(c *CameraConfig) { c.VFov = 180 }},
		{"zero aspect", func(c *CameraConfig) { c.AspectRatio = 0 }},
		{"negative aperture", func(c *CameraConfig) { c.Aperture = -1 }},
		{"coincident points", func(c *CameraConfig) { c.LookAt = c.LookFrom }},
		{"up parallel to view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testCameraConfig()
			tt.mutate(&config)
			_, err := NewCamera(config)
			assert.ErrorIs(t, err, ErrInvalidCamera)
		})
	}
}

func TestNewCamera_DefaultFocusDistance(t *testing.T) {
	config := testCameraConfig()
	config.LookAt = core.NewVec3(0, 0, -3)
	camera, err := NewCamera(config)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, camera.FocusDistance, 1e-12)
	assert.InDelta(t, 2*math.Tan(math.Pi/4), camera.ViewportHeight, 1e-12)
}
