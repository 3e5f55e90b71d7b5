package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig describes a thin-lens camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter, 0 for a pinhole camera
	FocusDistance float64   // Distance to the plane in focus, 0 means |LookFrom - LookAt|
}

// Camera generates rays for rendering
type Camera struct {
	Origin         core.Vec3
	U, V, W        core.Vec3 // Orthonormal basis: right, up, backward
	LensRadius     float64
	ViewportWidth  float64 // Viewport size in world units at unit distance
	ViewportHeight float64
	FocusDistance  float64

	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera builds a camera from its configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if !(config.VFov > 0 && config.VFov < 180) {
		return nil, fmt.Errorf("%w: vertical fov %v must be in (0, 180)", ErrInvalidCamera, config.VFov)
	}
	if !(config.AspectRatio > 0) {
		return nil, fmt.Errorf("%w: aspect ratio %v must be positive", ErrInvalidCamera, config.AspectRatio)
	}
	if config.Aperture < 0 {
		return nil, fmt.Errorf("%w: aperture %v must not be negative", ErrInvalidCamera, config.Aperture)
	}

	view := config.LookFrom.Subtract(config.LookAt)
	if view.NearZero() {
		return nil, fmt.Errorf("%w: look-from and look-at coincide", ErrInvalidCamera)
	}
	w := view.Normalize()
	u := config.Up.Cross(w)
	if u.NearZero() {
		return nil, fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrInvalidCamera, config.Up)
	}
	u = u.Normalize()
	v := w.Cross(u)

	focusDist := config.FocusDistance
	if focusDist <= 0 {
		focusDist = view.Length()
	}

	viewportHeight := 2.0 * math.Tan(config.VFov*math.Pi/180.0/2.0)
	viewportWidth := config.AspectRatio * viewportHeight

	horizontal := u.Multiply(viewportWidth * focusDist)
	vertical := v.Multiply(viewportHeight * focusDist)
	lowerLeftCorner := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		Origin:          config.LookFrom,
		U:               u,
		V:               v,
		W:               w,
		LensRadius:      config.Aperture / 2,
		ViewportWidth:   viewportWidth,
		ViewportHeight:  viewportHeight,
		FocusDistance:   focusDist,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}, nil
}

// GetRay generates a ray for viewport coordinates (s, t) where 0 <= s,t <= 1,
// with (0, 0) at the lower left. The origin is jittered across the lens.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.Origin
	if c.LensRadius > 0 {
		rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.LensRadius)
		origin = origin.Add(c.U.Multiply(rd.X)).Add(c.V.Multiply(rd.Y))
	}

	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	return core.NewRay(origin, target.Subtract(origin))
}
