package geometry

import (
	"errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	ErrInvalidRadius = errors.New("sphere radius must be positive")
	ErrInvalidBounds = errors.New("rectangle bounds must be ordered")
	ErrInvalidPlane  = errors.New("unknown rectangle plane")
	ErrInvalidCamera = errors.New("invalid camera")
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() core.AABB
	// Validate reports a construction error for malformed geometry or materials.
	Validate() error
}
