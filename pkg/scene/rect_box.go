package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewRectBoxScene creates an open-topped Cornell-style box built from
// axis-aligned rectangles. The sky lights it through the missing ceiling.
func NewRectBoxScene() *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Standard 555 unit box
	const boxSize = 555.0

	s := mustNew(
		geometry.NewAxisAlignedRect(geometry.PlaneXZ, 0, boxSize, 0, boxSize, 0, white),       // floor
		geometry.NewAxisAlignedRect(geometry.PlaneXY, 0, boxSize, 0, boxSize, boxSize, white), // back wall
		geometry.NewAxisAlignedRect(geometry.PlaneYZ, 0, boxSize, 0, boxSize, boxSize, red), // left wall, seen from -Z
		geometry.NewAxisAlignedRect(geometry.PlaneYZ, 0, boxSize, 0, boxSize, 0, green),     // right wall

		// Mirror panel hung in front of the back wall
		geometry.NewAxisAlignedRect(geometry.PlaneXY, 120, 435, 200, 450, boxSize-1, material.NewMirror()),

		geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white),
		geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0)),
		geometry.NewSphere(core.NewVec3(370, 420, 200), 90, material.NewDielectric(1.5)),
	)

	s.CameraConfig = geometry.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
	}

	return s
}
