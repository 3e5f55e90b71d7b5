package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane names the axis-aligned plane a rectangle lies in
type Plane int

const (
	PlaneXY Plane = iota // fixed Z, bounded in X and Y
	PlaneXZ              // fixed Y, bounded in X and Z
	PlaneYZ              // fixed X, bounded in Y and Z
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	}
	return fmt.Sprintf("Plane(%d)", int(p))
}

// ParsePlane converts "xy", "xz" or "yz" (any case) into a Plane
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPlane, s)
}

// axes returns the indices of the two bounded axes and the fixed axis
func (p Plane) axes() (a, b, fixed int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

// AxisAlignedRect is a rectangle lying in an axis-aligned plane at offset K.
// A0..A1 and B0..B1 bound the first and second free axis of the plane.
type AxisAlignedRect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material *material.Material
}

// NewAxisAlignedRect creates a rectangle in the given plane
func NewAxisAlignedRect(plane Plane, a0, a1, b0, b1, k float64, mat *material.Material) *AxisAlignedRect {
	return &AxisAlignedRect{
		Plane:    plane,
		A0:       a0,
		A1:       a1,
		B0:       b0,
		B1:       b1,
		K:        k,
		Material: mat,
	}
}

// Validate checks the plane, the bound ordering and the material
func (r *AxisAlignedRect) Validate() error {
	if r.Plane < PlaneXY || r.Plane > PlaneYZ {
		return fmt.Errorf("%w: %v", ErrInvalidPlane, r.Plane)
	}
	if !(r.A0 < r.A1) || !(r.B0 < r.B1) {
		return fmt.Errorf("%w: %s rect [%v,%v]x[%v,%v]", ErrInvalidBounds, r.Plane, r.A0, r.A1, r.B0, r.B1)
	}
	if r.Material == nil {
		return fmt.Errorf("%s rect at k=%v has no material", r.Plane, r.K)
	}
	if err := r.Material.Validate(); err != nil {
		return fmt.Errorf("%s rect at k=%v: %w", r.Plane, r.K, err)
	}
	return nil
}

// Hit tests if a ray intersects with the rectangle
func (r *AxisAlignedRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	a, b, fixed := r.Plane.axes()

	denominator := ray.Direction.Axis(fixed)
	if math.Abs(denominator) < 1e-12 {
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(fixed)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	pa, pb := point.Axis(a), point.Axis(b)
	if pa < r.A0 || pa > r.A1 || pb < r.B0 || pb > r.B1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    point,
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, r.normal())

	return hitRecord, true
}

// normal returns the unit vector along the fixed axis
func (r *AxisAlignedRect) normal() core.Vec3 {
	switch r.Plane {
	case PlaneXY:
		return core.NewVec3(0, 0, 1)
	case PlaneXZ:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(1, 0, 0)
	}
}

// BoundingBox pads the fixed axis so the box never has zero thickness
func (r *AxisAlignedRect) BoundingBox() core.AABB {
	const pad = 1e-4
	switch r.Plane {
	case PlaneXY:
		return core.NewAABB(core.NewVec3(r.A0, r.B0, r.K-pad), core.NewVec3(r.A1, r.B1, r.K+pad))
	case PlaneXZ:
		return core.NewAABB(core.NewVec3(r.A0, r.K-pad, r.B0), core.NewVec3(r.A1, r.K+pad, r.B1))
	default:
		return core.NewAABB(core.NewVec3(r.K-pad, r.A0, r.B0), core.NewVec3(r.K+pad, r.A1, r.B1))
	}
}
