package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// fixedSampler returns the same value for every dimension
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64 { return f.value }
func (f fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.value, f.value)
}
func (f fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(f.value, f.value, f.value)
}

// frontHit builds a hit record at the origin for a surface facing +Y
func frontHit(m *Material) HitRecord {
	return HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  m,
	}
}
