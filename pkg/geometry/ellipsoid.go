package geometry

import (
	"math"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
)

// Ellipsoid is defined by a center and three axis vectors a, b, c that may be
// non-orthogonal and non-unit. The affine transform M = T(center)·R(â,b̂,ĉ)·
// S(‖a‖,‖b‖,‖c‖) maps the unit sphere onto the ellipsoid; intersection maps
// the ray through M⁻¹ and solves the canonical unit-sphere quadratic.
type Ellipsoid struct {
	Center   core.Vec3
	A, B, C  core.Vec3
	Material core.Material

	inverse   core.Mat4 // world space -> unit sphere space
	normalMat core.Mat4 // inverse-transpose of M's 3x3 linear part
}

// NewEllipsoid creates a new ellipsoid. The transform and its inverse are
// intersection-invariant, so they are built once here.
func NewEllipsoid(center, a, b, c core.Vec3, material core.Material) *Ellipsoid {
	translate := core.Translate(center)
	rotate := core.Basis(a.Normalize(), b.Normalize(), c.Normalize())
	scale := core.Scale(core.NewVec3(a.Length(), b.Length(), c.Length()))

	m := translate.Mul(rotate).Mul(scale)
	inverse := m.Inverse()

	// The 3x3 block of M⁻¹ is the inverse of M's linear part (the inverse
	// translation lives in the fourth column), so transposing M⁻¹ yields the
	// inverse-transpose needed to transform normals.
	normalMat := inverse.Transpose()

	return &Ellipsoid{
		Center:    center,
		A:         a,
		B:         b,
		C:         c,
		Material:  material,
		inverse:   inverse,
		normalMat: normalMat,
	}
}

// Intersect maps the ray into unit-sphere space, solves At² + Bt + C = 0 and
// picks the nearest positive root. The hit normal is the transformed-space
// position pushed through the inverse-transpose of the linear part.
func (e *Ellipsoid) Intersect(ray core.Ray, isect *core.Interaction) bool {
	origin := e.inverse.MulPoint(ray.Origin)
	direction := e.inverse.MulDir(ray.Direction)

	a := direction.Dot(direction)
	b := 2 * origin.Dot(direction)
	c := origin.Dot(origin) - 1

	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return false
	}

	if t < ray.TMin || t > ray.TMax {
		return false
	}

	spherePoint := origin.Add(direction.Multiply(t))
	normal := e.normalMat.MulDir(spherePoint).Normalize()

	isect.T = t
	isect.Point = ray.At(t)
	isect.Normal = normal
	isect.Kind = core.HitGeometry
	isect.Response = e.Material.Evaluate(isect)

	return true
}
