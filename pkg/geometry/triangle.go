package geometry

import (
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
)

// Triangle represents a single triangle defined by three vertices.
// Shading uses the precomputed face normal, not interpolated vertex normals.
type Triangle struct {
	V0, V1, V2 core.Vec3     // The three vertices
	Material   core.Material // Material of the triangle
	normal     core.Vec3     // Cached face normal
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
	}
	t.computeNormal()
	return t
}

// NewTriangleWithNormal creates a new triangle from three vertices with a custom normal
func NewTriangleWithNormal(v0, v1, v2, normal core.Vec3, material core.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   normal.Normalize(),
	}
}

// computeNormal calculates and caches the triangle's face normal
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Normal returns the triangle's face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Intersect tests the ray against the triangle using the Möller-Trumbore
// algorithm. A near-zero determinant (ray parallel to the triangle plane, or
// a degenerate triangle) is rejected explicitly rather than left to produce
// Inf/NaN parameters.
func (t *Triangle) Intersect(ray core.Ray, isect *core.Interaction) bool {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	s1 := ray.Direction.Cross(edge2)
	det := s1.Dot(edge1)
	if det > -epsilon && det < epsilon {
		return false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := invDet * s1.Dot(s)
	if u < 0 || u > 1 {
		return false
	}

	s2 := s.Cross(edge1)
	v := invDet * s2.Dot(ray.Direction)
	if v < 0 || u+v > 1 {
		return false
	}

	tHit := invDet * s2.Dot(edge2)
	if tHit < ray.TMin || tHit > ray.TMax {
		return false
	}

	isect.T = tHit
	isect.Point = ray.At(tHit)
	isect.Normal = t.normal
	isect.Kind = core.HitGeometry
	isect.Response = t.Material.Evaluate(isect)

	return true
}
