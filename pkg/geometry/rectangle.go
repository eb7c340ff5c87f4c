package geometry

import (
	"math"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
)

// Rectangle represents a bounded plane defined by a center point, an in-plane
// tangent direction, a normal and a 2D extent.
type Rectangle struct {
	Center   core.Vec3
	Tangent  core.Vec3 // in-plane width direction (normalized at construction)
	Normal   core.Vec3 // plane normal (normalized at construction)
	Width    float64
	Height   float64
	Material core.Material

	bitangent core.Vec3 // Normal × Tangent, the in-plane height direction
}

// NewRectangle creates a new rectangle
func NewRectangle(center, tangent, normal core.Vec3, width, height float64, material core.Material) *Rectangle {
	tangent = tangent.Normalize()
	normal = normal.Normalize()
	return &Rectangle{
		Center:    center,
		Tangent:   tangent,
		Normal:    normal,
		Width:     width,
		Height:    height,
		Material:  material,
		bitangent: normal.Cross(tangent).Normalize(),
	}
}

// Intersect tests the ray against the rectangle: solve the supporting plane,
// then project the in-plane offset onto the tangent/bitangent axes and check
// it against the half extents.
func (r *Rectangle) Intersect(ray core.Ray, isect *core.Interaction) bool {
	const epsilon = 1e-8

	denominator := ray.Direction.Dot(r.Normal)
	if math.Abs(denominator) < epsilon {
		return false
	}

	t := r.Center.Subtract(ray.Origin).Dot(r.Normal) / denominator
	if t < ray.TMin || t > ray.TMax {
		return false
	}

	hitPoint := ray.At(t)
	delta := hitPoint.Subtract(r.Center)
	dw := delta.Dot(r.Tangent)
	dh := delta.Dot(r.bitangent)

	if math.Abs(dw) > r.Width/2 || math.Abs(dh) > r.Height/2 {
		return false
	}

	isect.T = t
	isect.Point = hitPoint
	isect.Normal = r.Normal
	isect.Kind = core.HitGeometry
	isect.Response = r.Material.Evaluate(isect)

	return true
}
