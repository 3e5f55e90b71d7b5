package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is an axis-aligned box made up of 6 rectangles sharing one material
type Box struct {
	Min      core.Vec3
	Max      core.Vec3
	Material *material.Material
	faces    [6]*AxisAlignedRect
}

// NewBox creates a box spanning the corners min and max
func NewBox(min, max core.Vec3, mat *material.Material) *Box {
	box := &Box{Min: min, Max: max, Material: mat}
	box.faces = [6]*AxisAlignedRect{
		NewAxisAlignedRect(PlaneXY, min.X, max.X, min.Y, max.Y, max.Z, mat), // front
		NewAxisAlignedRect(PlaneXY, min.X, max.X, min.Y, max.Y, min.Z, mat), // back
		NewAxisAlignedRect(PlaneXZ, min.X, max.X, min.Z, max.Z, max.Y, mat), // top
		NewAxisAlignedRect(PlaneXZ, min.X, max.X, min.Z, max.Z, min.Y, mat), // bottom
		NewAxisAlignedRect(PlaneYZ, min.Y, max.Y, min.Z, max.Z, max.X, mat), // right
		NewAxisAlignedRect(PlaneYZ, min.Y, max.Y, min.Z, max.Z, min.X, mat), // left
	}
	return box
}

// Validate checks every face
func (b *Box) Validate() error {
	for _, face := range b.faces {
		if err := face.Validate(); err != nil {
			return fmt.Errorf("box %v-%v: %w", b.Min, b.Max, err)
		}
	}
	return nil
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestT := tMax

	for _, face := range b.faces {
		if hit, isHit := face.Hit(ray, tMin, closestT); isHit {
			closestT = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return core.NewAABB(b.Min, b.Max)
}
