package geometry

import (
	"math"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
)

// groundNormal is the implicit normal of the ground plane.
var groundNormal = core.NewVec3(0, 0, 1)

// Ground represents an infinite horizontal plane at a fixed z height with an
// implicit +z normal.
type Ground struct {
	Z        float64
	Material core.Material
}

// NewGround creates a new ground plane
func NewGround(z float64, material core.Material) *Ground {
	return &Ground{Z: z, Material: material}
}

// Intersect tests the ray against the plane z = Z. Rays parallel to the plane
// are rejected explicitly instead of dividing by a near-zero direction.z.
func (g *Ground) Intersect(ray core.Ray, isect *core.Interaction) bool {
	const epsilon = 1e-8

	if math.Abs(ray.Direction.Z) < epsilon {
		return false
	}

	t := (g.Z - ray.Origin.Z) / ray.Direction.Z
	if t < ray.TMin || t > ray.TMax {
		return false
	}

	isect.T = t
	isect.Point = ray.At(t)
	isect.Normal = groundNormal
	isect.Kind = core.HitGeometry
	isect.Response = g.Material.Evaluate(isect)

	return true
}
