// Package material provides the material models primitives evaluate at hit
// points to resolve ambient/diffuse/specular reflectance and shininess.
package material

import (
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
)

// Phong is a constant material: the same response everywhere on the surface.
type Phong struct {
	Ambient   core.Vec3
	Diffuse   core.Vec3
	Specular  core.Vec3
	Shininess float64
}

// NewPhong creates a constant Phong material
func NewPhong(ambient, diffuse, specular core.Vec3, shininess float64) *Phong {
	return &Phong{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// NewLambert creates a Phong material with no specular response
func NewLambert(ambient, diffuse core.Vec3) *Phong {
	return &Phong{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  core.Vec3{},
		Shininess: 1,
	}
}

// Evaluate returns the constant response regardless of hit position
func (p *Phong) Evaluate(isect *core.Interaction) core.MaterialResponse {
	return core.MaterialResponse{
		Ambient:   p.Ambient,
		Diffuse:   p.Diffuse,
		Specular:  p.Specular,
		Shininess: p.Shininess,
	}
}
