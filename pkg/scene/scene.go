package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	ErrEmptyScene       = errors.New("scene has no primitives")
	ErrUnknownMaterial  = errors.New("unknown material")
	ErrUnknownPrimitive = errors.New("unknown primitive")
	ErrUnknownScene     = errors.New("unknown scene")
)

// Scene contains all the elements needed for rendering. It is read-only once
// built and shared by every render worker.
type Scene struct {
	Shapes       []geometry.Shape      // Objects in the scene
	CameraConfig geometry.CameraConfig // Camera; AspectRatio is set by NewCamera
	TopColor     core.Vec3             // Background colour straight up
	BottomColor  core.Vec3             // Background colour straight down
	bounds       core.AABB
}

// DefaultCameraConfig looks down -Z from the origin
func DefaultCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 16.0 / 9.0,
	}
}

// New validates the shapes and builds a scene with the default sky gradient
// and camera.
func New(shapes ...geometry.Shape) (*Scene, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyScene
	}

	var bounds core.AABB
	for i, shape := range shapes {
		if shape == nil {
			return nil, fmt.Errorf("primitive %d: %w: nil shape", i, ErrUnknownPrimitive)
		}
		if err := shape.Validate(); err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		box := shape.BoundingBox()
		if !box.IsValid() {
			return nil, fmt.Errorf("primitive %d: %w: bounding box %v-%v", i, geometry.ErrInvalidBounds, box.Min, box.Max)
		}
		if i == 0 {
			bounds = box
		} else {
			bounds = bounds.Union(box)
		}
	}

	return &Scene{
		Shapes:       shapes,
		CameraConfig: DefaultCameraConfig(),
		TopColor:     core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:  core.NewVec3(1.0, 1.0, 1.0),
		bounds:       bounds,
	}, nil
}

// NearestHit returns the closest intersection in [tMin, tMax] across every shape
func (s *Scene) NearestHit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !s.bounds.Hit(ray, tMin, tMax) {
		return nil, false
	}

	var closestHit *material.HitRecord
	closestSoFar := tMax
	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Background returns the sky gradient for rays that escape the scene
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return s.BottomColor.Multiply(1.0 - t).Add(s.TopColor.Multiply(t))
}

// BoundingBox returns the union of every shape's bounds
func (s *Scene) BoundingBox() core.AABB {
	return s.bounds
}

// NewCamera builds the scene camera for an image of the given aspect ratio
func (s *Scene) NewCamera(aspectRatio float64) (*geometry.Camera, error) {
	config := s.CameraConfig
	config.AspectRatio = aspectRatio
	return geometry.NewCamera(config)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		switch shape.(type) {
		case *geometry.Box:
			count += 6
		default:
			count++
		}
	}
	return count
}

func mustNew(shapes ...geometry.Shape) *Scene {
	s, err := New(shapes...)
	if err != nil {
		panic(err)
	}
	return s
}
