package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates a default scene with one sphere of each material on
// a ground rectangle, seen through a camera with shallow depth of field.
func NewDefaultScene() *Scene {
	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	materialGlass := material.NewDielectric(1.5)
	mirror := material.NewMirror()

	// Large but finite so the scene bounds stay meaningful
	ground := geometry.NewAxisAlignedRect(geometry.PlaneXZ, -50, 50, -50, 50, 0, lambertianGreen)

	s := mustNew(
		ground,
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, materialGlass),
		geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, mirror),
	)

	s.CameraConfig = geometry.CameraConfig{
		LookFrom:      core.NewVec3(0, 0.75, 2),
		LookAt:        core.NewVec3(0, 0.5, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.05,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	return s
}
