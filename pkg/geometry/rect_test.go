package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestAxisAlignedRect_Hit(t *testing.T) {
	tests := []struct {
		name      string
		rect      *AxisAlignedRect
		rayOrigin core.Vec3
		rayDir    core.Vec3
		expectedT float64
		normal    core.Vec3
		front     bool
	}{
		{
			name:      "xy from front",
			rect:      NewAxisAlignedRect(PlaneXY, -1, 1, -1, 1, -2, grey()),
			rayOrigin: core.NewVec3(0.5, 0.5, 0),
			rayDir:    core.NewVec3(0, 0, -1),
			expectedT: 2,
			normal:    core.NewVec3(0, 0, 1),
			front:     true,
		},
		{
			name:      "xz from below",
			rect:      NewAxisAlignedRect(PlaneXZ, 0, 1, 0, 1, 0, grey()),
			rayOrigin: core.NewVec3(0.5, -1, 0.5),
			rayDir:    core.NewVec3(0, 1, 0),
			expectedT: 1,
			normal:    core.NewVec3(0, -1, 0),
			front:     false,
		},
		{
			name:      "yz oblique",
			rect:      NewAxisAlignedRect(PlaneYZ, 0, 2, 0, 2, 3, grey()),
			rayOrigin: core.NewVec3(1, 1, 1),
			rayDir:    core.NewVec3(1, 0.25, 0.25),
			expectedT: 2,
			normal:    core.NewVec3(-1, 0, 0),
			front:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.rect.Hit(core.NewRay(tt.rayOrigin, tt.rayDir), 0.001, 1000)
			require.True(t, isHit)
			assert.InDelta(t, tt.expectedT, hit.T, 1e-12)
			assert.Equal(t, tt.normal, hit.Normal)
			assert.Equal(t, tt.front, hit.FrontFace)
			assert.Less(t, hit.Normal.Dot(tt.rayDir), 0.0, "normal must oppose the ray")
		})
	}
}

func TestAxisAlignedRect_Hit_Misses(t *testing.T) {
	rect := NewAxisAlignedRect(PlaneXZ, 0, 1, 0, 1, 0, grey())

	tests := []struct {
		name      string
		rayOrigin core.Vec3
		rayDir    core.Vec3
		tMax      float64
	}{
		{"outside first axis", core.NewVec3(-0.5, 1, 0.5), core.NewVec3(0, -1, 0), 1000},
		{"outside second axis", core.NewVec3(0.5, 1, 1.5), core.NewVec3(0, -1, 0), 1000},
		{"parallel", core.NewVec3(0.5, 1, 0.5), core.NewVec3(1, 0, 0), 1000},
		{"behind origin", core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, 1, 0), 1000},
		{"beyond tMax", core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, -1, 0), 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := rect.Hit(core.NewRay(tt.rayOrigin, tt.rayDir), 0.001, tt.tMax)
			assert.False(t, isHit)
			assert.Nil(t, hit)
		})
	}
}

func TestAxisAlignedRect_Validate(t *testing.T) {
	assert.NoError(t, NewAxisAlignedRect(PlaneXY, 0, 1, 0, 1, 0, grey()).Validate())
	assert.ErrorIs(t, NewAxisAlignedRect(PlaneXY, 1, 0, 0, 1, 0, grey()).Validate(), ErrInvalidBounds)
	assert.ErrorIs(t, NewAxisAlignedRect(PlaneYZ, 0, 1, 1, 1, 0, grey()).Validate(), ErrInvalidBounds)
	assert.ErrorIs(t, NewAxisAlignedRect(Plane(7), 0, 1, 0, 1, 0, grey()).Validate(), ErrInvalidPlane)
}

func TestParsePlane(t *testing.T) {
	for _, p := range []Plane{PlaneXY, PlaneXZ, PlaneYZ} {
		parsed, err := ParsePlane(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
	parsed, err := ParsePlane(" XZ ")
	require.NoError(t, err)
	assert.Equal(t, PlaneXZ, parsed)

	_, err = ParsePlane("xx")
	assert.ErrorIs(t, err, ErrInvalidPlane)
}

func TestAxisAlignedRect_BoundingBox(t *testing.T) {
	box := NewAxisAlignedRect(PlaneXZ, -1, 2, -3, 4, 5, grey()).BoundingBox()
	assert.True(t, box.IsValid())
	assert.Equal(t, -1.0, box.Min.X)
	assert.Equal(t, 4.0, box.Max.Z)
	assert.Less(t, box.Min.Y, 5.0)
	assert.Greater(t, box.Max.Y, 5.0)
}
