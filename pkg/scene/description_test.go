package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func testDescription() Description {
	return Description{
		Camera: &CameraSpec{
			LookFrom: [3]float64{0, 1, 3},
			LookAt:   [3]float64{0, 0.5, -1},
			VFov:     30,
			Aperture: 0.1,
		},
		Background: &BackgroundSpec{Top: [3]float64{0, 0, 1}, Bottom: [3]float64{1, 1, 1}},
		Materials: map[string]MaterialSpec{
			"ground": {Type: "lambertian", Albedo: [3]float64{0.5, 0.5, 0.5}},
			"gold":   {Type: "metal", Albedo: [3]float64{0.8, 0.6, 0.2}, Fuzz: 0.3},
			"glass":  {Type: "dielectric", RefractiveIndex: 1.5},
			"mirror": {Type: "Mirror"},
		},
		Primitives: []PrimitiveSpec{
			{Type: "rect", Material: "ground", Plane: "xz", A: [2]float64{-10, 10}, B: [2]float64{-10, 10}},
			{Type: "sphere", Material: "gold", Center: [3]float64{-1, 0.5, -1}, Radius: 0.5},
			{Type: "sphere", Material: "gold", Center: [3]float64{1, 0.5, -1}, Radius: 0.5},
			{Type: "sphere", Material: "glass", Center: [3]float64{0, 0.5, -1}, Radius: 0.5},
			{Type: "box", Material: "mirror", Min: [3]float64{2, 0, -3}, Max: [3]float64{3, 1, -2}},
		},
	}
}

func TestBuild(t *testing.T) {
	s, err := Build(testDescription())
	require.NoError(t, err)

	require.Len(t, s.Shapes, 5)
	assert.Equal(t, 10, s.GetPrimitiveCount())

	left := s.Shapes[1].(*geometry.Sphere)
	right := s.Shapes[2].(*geometry.Sphere)
	assert.Same(t, left.Material, right.Material, "primitives naming one material share it")
	assert.Equal(t, material.KindMetal, left.Material.Kind())
	assert.Equal(t, 0.3, left.Material.Fuzz())

	rect := s.Shapes[0].(*geometry.AxisAlignedRect)
	assert.Equal(t, geometry.PlaneXZ, rect.Plane)

	assert.Equal(t, core.NewVec3(0, 0, 1), s.TopColor)
	assert.Equal(t, core.NewVec3(0, 1, 0), s.CameraConfig.Up, "up defaults to +Y")
	assert.Equal(t, 0.1, s.CameraConfig.Aperture)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Description)
		expectedErr error
	}{
		{"no primitives", func(d *Description) { d.Primitives = nil }, ErrEmptyScene},
		{"unknown material reference", func(d *Description) { d.Primitives[1].Material = "chrome" }, ErrUnknownMaterial},
		{"unknown material type", func(d *Description) { d.Materials["gold"] = MaterialSpec{Type: "plastic"} }, ErrUnknownMaterial},
		{"unknown primitive type", func(d *Description) { d.Primitives[1].Type = "torus" }, ErrUnknownPrimitive},
		{"bad plane", func(d *Description) { d.Primitives[0].Plane = "xw" }, geometry.ErrInvalidPlane},
		{"inverted rect", func(d *Description) { d.Primitives[0].A = [2]float64{10, -10} }, geometry.ErrInvalidBounds},
		{"zero radius", func(d *Description) { d.Primitives[1].Radius = 0 }, geometry.ErrInvalidRadius},
		{"albedo above one", func(d *Description) {
			d.Materials["ground"] = MaterialSpec{Type: "lambertian", Albedo: [3]float64{1.5, 0, 0}}
		}, material.ErrInvalidAlbedo},
		{"fuzz out of range", func(d *Description) {
			d.Materials["gold"] = MaterialSpec{Type: "metal", Fuzz: 2}
		}, material.ErrInvalidFuzz},
		{"zero ior", func(d *Description) { d.Materials["glass"] = MaterialSpec{Type: "dielectric"} }, material.ErrInvalidRefractiveIndex},
		{"bad camera", func(d *Description) { d.Camera.VFov = 0 }, geometry.ErrInvalidCamera},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := testDescription()
			tt.mutate(&desc)
			_, err := Build(desc)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
