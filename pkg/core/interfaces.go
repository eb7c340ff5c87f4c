package core

// Intersectable is implemented by anything a ray can be tested against.
// Intersect reports whether the ray hits within its [TMin, TMax] interval
// and, if so, fills isect completely, including the material response.
type Intersectable interface {
	Intersect(ray Ray, isect *Interaction) bool
}

// Material resolves shading coefficients at a hit point. Evaluation happens
// after the geometric fields of the interaction are populated because the
// response may depend on position or normal (procedural materials).
type Material interface {
	Evaluate(isect *Interaction) MaterialResponse
}

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
