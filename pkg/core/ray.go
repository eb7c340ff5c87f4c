package core

import "math"

// Default parametric interval for newly constructed rays. TMin sits slightly
// above zero so secondary rays do not re-hit the surface they start on.
const (
	DefaultTMin = 1e-4
	DefaultTMax = math.MaxFloat64
)

// Ray represents a ray with an origin, a direction and a valid
// parametric interval [TMin, TMax]. Direction must be nonzero; callers are
// not required to re-normalize it.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a new ray with the default parametric interval
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: DefaultTMin, TMax: DefaultTMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// HitKind discriminates what an intersection test hit.
type HitKind int

const (
	HitNone HitKind = iota // no hit; other Interaction fields are unspecified
	HitGeometry
	HitLight
)

// MaterialResponse holds the shading coefficients resolved by a material at
// a specific hit point.
type MaterialResponse struct {
	Ambient   Vec3
	Diffuse   Vec3
	Specular  Vec3
	Shininess float64
}

// Interaction is the record of a ray-primitive intersection. Callers allocate
// an empty Interaction and pass it into Intersect; it is fully overwritten on
// a successful hit and left unspecified otherwise, so the boolean return of
// the intersection test is authoritative, not the record's contents.
type Interaction struct {
	T        float64 // hit distance along the ray
	Point    Vec3
	Normal   Vec3 // unit surface normal at the hit point
	Response MaterialResponse
	Kind     HitKind
}
