package scene

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Description is the declarative form of a scene: named materials and a list
// of primitives that refer to them.
type Description struct {
	Camera     *CameraSpec             `yaml:"camera,omitempty"`
	Background *BackgroundSpec         `yaml:"background,omitempty"`
	Materials  map[string]MaterialSpec `yaml:"materials"`
	Primitives []PrimitiveSpec         `yaml:"primitives"`
}

// CameraSpec mirrors geometry.CameraConfig without the aspect ratio, which
// comes from the output image.
type CameraSpec struct {
	LookFrom      [3]float64  `yaml:"look_from"`
	LookAt        [3]float64  `yaml:"look_at"`
	Up            *[3]float64 `yaml:"up,omitempty"`
	VFov          float64     `yaml:"vfov"`
	Aperture      float64     `yaml:"aperture,omitempty"`
	FocusDistance float64     `yaml:"focus_distance,omitempty"`
}

// BackgroundSpec sets the sky gradient
type BackgroundSpec struct {
	Top    [3]float64 `yaml:"top"`
	Bottom [3]float64 `yaml:"bottom"`
}

// MaterialSpec describes one material. Type is lambertian, metal, dielectric or mirror.
type MaterialSpec struct {
	Type            string     `yaml:"type"`
	Albedo          [3]float64 `yaml:"albedo,omitempty"`
	Fuzz            float64    `yaml:"fuzz,omitempty"`
	RefractiveIndex float64    `yaml:"refractive_index,omitempty"`
}

// PrimitiveSpec describes one shape. Type is sphere, rect or box; only the
// fields for that type are read.
type PrimitiveSpec struct {
	Type     string `yaml:"type"`
	Material string `yaml:"material"`

	// sphere
	Center [3]float64 `yaml:"center,omitempty"`
	Radius float64    `yaml:"radius,omitempty"`

	// rect
	Plane string     `yaml:"plane,omitempty"`
	A     [2]float64 `yaml:"a,omitempty"`
	B     [2]float64 `yaml:"b,omitempty"`
	K     float64    `yaml:"k,omitempty"`

	// box
	Min [3]float64 `yaml:"min,omitempty"`
	Max [3]float64 `yaml:"max,omitempty"`
}

func vec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// Build turns a description into a validated scene. Primitives naming the
// same material share one *material.Material.
func Build(desc Description) (*Scene, error) {
	materials := make(map[string]*material.Material, len(desc.Materials))
	for _, name := range slices.Sorted(maps.Keys(desc.Materials)) {
		m, err := buildMaterial(desc.Materials[name])
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}

	shapes := make([]geometry.Shape, 0, len(desc.Primitives))
	for i, spec := range desc.Primitives {
		m, ok := materials[spec.Material]
		if !ok {
			return nil, fmt.Errorf("primitive %d: %w %q", i, ErrUnknownMaterial, spec.Material)
		}
		shape, err := buildPrimitive(spec, m)
		if err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		shapes = append(shapes, shape)
	}

	s, err := New(shapes...)
	if err != nil {
		return nil, err
	}

	if desc.Background != nil {
		s.TopColor = vec(desc.Background.Top)
		s.BottomColor = vec(desc.Background.Bottom)
	}

	if desc.Camera != nil {
		up := core.NewVec3(0, 1, 0)
		if desc.Camera.Up != nil {
			up = vec(*desc.Camera.Up)
		}
		s.CameraConfig = geometry.CameraConfig{
			LookFrom:      vec(desc.Camera.LookFrom),
			LookAt:        vec(desc.Camera.LookAt),
			Up:            up,
			VFov:          desc.Camera.VFov,
			AspectRatio:   s.CameraConfig.AspectRatio,
			Aperture:      desc.Camera.Aperture,
			FocusDistance: desc.Camera.FocusDistance,
		}
		// Fail at load time rather than when the first render asks for it
		if _, err := geometry.NewCamera(s.CameraConfig); err != nil {
			return nil, fmt.Errorf("camera: %w", err)
		}
	}

	return s, nil
}

func buildMaterial(spec MaterialSpec) (*material.Material, error) {
	switch strings.ToLower(spec.Type) {
	case "lambertian":
		return material.NewLambertian(vec(spec.Albedo)), nil
	case "metal":
		if spec.Fuzz < 0 || spec.Fuzz > 1 {
			return nil, fmt.Errorf("%w: %v", material.ErrInvalidFuzz, spec.Fuzz)
		}
		return material.NewMetal(vec(spec.Albedo), spec.Fuzz), nil
	case "dielectric":
		return material.NewDielectric(spec.RefractiveIndex), nil
	case "mirror":
		return material.NewMirror(), nil
	}
	return nil, fmt.Errorf("%w type %q", ErrUnknownMaterial, spec.Type)
}

func buildPrimitive(spec PrimitiveSpec, m *material.Material) (geometry.Shape, error) {
	switch strings.ToLower(spec.Type) {
	case "sphere":
		return geometry.NewSphere(vec(spec.Center), spec.Radius, m), nil
	case "rect":
		plane, err := geometry.ParsePlane(spec.Plane)
		if err != nil {
			return nil, err
		}
		return geometry.NewAxisAlignedRect(plane, spec.A[0], spec.A[1], spec.B[0], spec.B[1], spec.K, m), nil
	case "box":
		return geometry.NewBox(vec(spec.Min), vec(spec.Max), m), nil
	}
	return nil, fmt.Errorf("%w type %q", ErrUnknownPrimitive, spec.Type)
}
