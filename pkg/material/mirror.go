package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewMirror creates a perfect specular reflector
func NewMirror() *Material {
	return &Material{kind: KindMirror}
}

// scatterMirror reflects exactly and never absorbs
func (m *Material) scatterMirror(rayIn core.Ray, hit HitRecord) (ScatterResult, bool) {
	return ScatterResult{
		Incoming:    rayIn,
		Scattered:   core.NewRay(hit.Point, core.Reflect(rayIn.Direction, hit.Normal)),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}
