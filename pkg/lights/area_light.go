// Package lights provides the light source and its virtual-point-light
// sampling used to approximate indirect illumination.
package lights

import (
	"math"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
)

// VPL is a virtual point light: one sample of the light source used to
// approximate area illumination by averaging contributions. The set is
// produced once and shared read-only across all render workers.
type VPL struct {
	Position core.Vec3
	Color    core.Vec3
}

// AreaLight is a rectangular emissive surface. It carries the global light
// color, pre-samples itself into a uniform grid of VPLs, and is itself
// intersectable so camera rays that see the surface directly report a LIGHT
// hit and shade to the light color.
type AreaLight struct {
	Center  core.Vec3
	Tangent core.Vec3 // in-plane width direction (normalized at construction)
	Normal  core.Vec3 // emission side (normalized at construction)
	Width   float64
	Height  float64
	Color   core.Vec3

	bitangent core.Vec3
	vpls      []VPL
}

// NewAreaLight creates an area light sampled into a samplesPerSide ×
// samplesPerSide grid of VPLs, each carrying the full light color; the
// radiance evaluator divides by the VPL count when accumulating.
func NewAreaLight(center, tangent, normal core.Vec3, width, height float64, color core.Vec3, samplesPerSide int) *AreaLight {
	if samplesPerSide < 1 {
		samplesPerSide = 1
	}

	tangent = tangent.Normalize()
	normal = normal.Normalize()
	l := &AreaLight{
		Center:    center,
		Tangent:   tangent,
		Normal:    normal,
		Width:     width,
		Height:    height,
		Color:     color,
		bitangent: normal.Cross(tangent).Normalize(),
	}

	l.vpls = make([]VPL, 0, samplesPerSide*samplesPerSide)
	n := float64(samplesPerSide)
	for i := 0; i < samplesPerSide; i++ {
		for j := 0; j < samplesPerSide; j++ {
			du := ((float64(i)+0.5)/n - 0.5) * width
			dv := ((float64(j)+0.5)/n - 0.5) * height
			position := center.Add(tangent.Multiply(du)).Add(l.bitangent.Multiply(dv))
			l.vpls = append(l.vpls, VPL{Position: position, Color: color})
		}
	}

	return l
}

// VPLs returns the pre-sampled virtual point lights. The slice is shared and
// must be treated as read-only during rendering.
func (l *AreaLight) VPLs() []VPL {
	return l.vpls
}

// Intersect tests the ray against the light surface. The whole surface is
// treated as uniformly emissive, so the interaction carries no material
// response, only the LIGHT hit kind.
func (l *AreaLight) Intersect(ray core.Ray, isect *core.Interaction) bool {
	const epsilon = 1e-8

	denominator := ray.Direction.Dot(l.Normal)
	if math.Abs(denominator) < epsilon {
		return false
	}

	t := l.Center.Subtract(ray.Origin).Dot(l.Normal) / denominator
	if t < ray.TMin || t > ray.TMax {
		return false
	}

	hitPoint := ray.At(t)
	delta := hitPoint.Subtract(l.Center)
	if math.Abs(delta.Dot(l.Tangent)) > l.Width/2 || math.Abs(delta.Dot(l.bitangent)) > l.Height/2 {
		return false
	}

	isect.T = t
	isect.Point = hitPoint
	isect.Normal = l.Normal
	isect.Kind = core.HitLight
	isect.Response = core.MaterialResponse{}

	return true
}
