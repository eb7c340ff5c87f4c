// Package scene owns the primitive collection, the light and the ambient
// illumination, and answers the two queries the renderer needs: nearest-hit
// intersection and binary occlusion.
package scene

import (
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/lights"
)

// Scene owns its primitives and light exclusively. The collection is
// append-only before rendering starts and read-only while workers run.
type Scene struct {
	primitives []core.Intersectable
	light      *lights.AreaLight
	ambient    core.Vec3
}

// NewScene creates a scene with the given light and ambient illumination
func NewScene(light *lights.AreaLight, ambient core.Vec3) *Scene {
	return &Scene{
		light:   light,
		ambient: ambient,
	}
}

// Add appends primitives to the scene. Must not be called once rendering
// has started.
func (s *Scene) Add(primitives ...core.Intersectable) {
	s.primitives = append(s.primitives, primitives...)
}

// Light returns the scene's light source
func (s *Scene) Light() *lights.AreaLight {
	return s.light
}

// Ambient returns the scene's ambient illumination
func (s *Scene) Ambient() core.Vec3 {
	return s.ambient
}

// Intersect finds the nearest hit along the ray, testing every primitive and
// the light source itself so rays that see the light directly report a LIGHT
// interaction. The ray's TMax shrinks as closer hits are found, which is how
// the nearest hit wins without sorting.
func (s *Scene) Intersect(ray core.Ray, isect *core.Interaction) bool {
	found := false
	closest := ray
	var candidate core.Interaction

	for _, primitive := range s.primitives {
		if primitive.Intersect(closest, &candidate) {
			found = true
			closest.TMax = candidate.T
			*isect = candidate
		}
	}

	if s.light != nil && s.light.Intersect(closest, &candidate) {
		found = true
		*isect = candidate
	}

	return found
}

// IsShadowed reports whether any primitive occludes the ray. This is a pure
// any-hit existence test over geometry; the light itself never occludes.
func (s *Scene) IsShadowed(ray core.Ray) bool {
	var isect core.Interaction
	for _, primitive := range s.primitives {
		if primitive.Intersect(ray, &isect) {
			return true
		}
	}
	return false
}
