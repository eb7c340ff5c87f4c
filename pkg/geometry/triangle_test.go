package geometry

import (
	"math"
	"testing"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/material"
)

func testMaterial() core.Material {
	return material.NewLambert(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.5, 0.5, 0.5))
}

func TestTriangle_Intersect(t *testing.T) {
	// Triangle in the xy plane
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		testMaterial(),
	)

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
		expectedT float64
	}{
		{
			name: "Ray hits near centroid",
			ray: core.NewRay(
				core.NewVec3(0.25, 0.25, -1),
				core.NewVec3(0, 0, 1),
			),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name: "Ray in triangle plane but outside",
			ray: core.NewRay(
				core.NewVec3(0.75, 0.75, -1), // beyond the u+v <= 1 edge
				core.NewVec3(0, 0, 1),
			),
			shouldHit: false,
		},
		{
			name: "Ray parallel to triangle plane",
			ray: core.NewRay(
				core.NewVec3(0.25, 0.25, 1),
				core.NewVec3(1, 0, 0),
			),
			shouldHit: false,
		},
		{
			name: "Ray hits from behind",
			ray: core.NewRay(
				core.NewVec3(0.25, 0.25, 1),
				core.NewVec3(0, 0, -1),
			),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name: "Hit beyond TMax is rejected",
			ray: core.Ray{
				Origin:    core.NewVec3(0.25, 0.25, -1),
				Direction: core.NewVec3(0, 0, 1),
				TMin:      core.DefaultTMin,
				TMax:      0.5,
			},
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var isect core.Interaction
			hit := triangle.Intersect(tt.ray, &isect)

			if hit != tt.shouldHit {
				t.Errorf("Expected hit=%v, got hit=%v", tt.shouldHit, hit)
				return
			}
			if !tt.shouldHit {
				return
			}

			if math.Abs(isect.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got t=%v", tt.expectedT, isect.T)
			}
			if isect.Kind != core.HitGeometry {
				t.Errorf("Expected geometry hit kind, got %v", isect.Kind)
			}
			if math.Abs(isect.Normal.Length()-1) > 1e-9 {
				t.Errorf("Expected unit normal, got length %v", isect.Normal.Length())
			}
		})
	}
}

func TestTriangle_Normal(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		testMaterial(),
	)

	// Counter-clockwise winding in the xy plane gives a +z normal
	if got := triangle.Normal(); math.Abs(got.Z-1) > 1e-9 {
		t.Errorf("Expected +z normal, got %v", got)
	}
}

func TestTriangle_CustomNormal(t *testing.T) {
	custom := core.NewVec3(0, 0, 2) // normalized at construction
	triangle := NewTriangleWithNormal(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		custom,
		testMaterial(),
	)

	var isect core.Interaction
	ray := core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1))
	if !triangle.Intersect(ray, &isect) {
		t.Fatal("Expected hit")
	}
	if math.Abs(isect.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit shading normal, got %v", isect.Normal)
	}
}

func TestTriangle_Degenerate(t *testing.T) {
	// All three vertices collinear; the determinant guard must reject the ray
	degenerate := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(2, 0, 0),
		testMaterial(),
	)

	var isect core.Interaction
	ray := core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1))
	if degenerate.Intersect(ray, &isect) {
		t.Error("Expected no hit on a degenerate triangle")
	}
}
