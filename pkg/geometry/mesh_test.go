package geometry

import (
	"math"
	"testing"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
)

// quadMesh builds a unit square in the xy plane out of two triangles.
func quadMesh(normals []core.Vec3, normalIndices []int) *Mesh {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(0, 1, 0),
	}
	vertexIndices := []int{0, 1, 2, 0, 2, 3}
	return NewMesh(vertices, normals, vertexIndices, normalIndices, testMaterial())
}

func TestMesh_Intersect(t *testing.T) {
	mesh := quadMesh(nil, []int{-1, -1, -1, -1, -1, -1})

	if mesh.TriangleCount() != 2 {
		t.Fatalf("Expected 2 triangles, got %d", mesh.TriangleCount())
	}

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
	}{
		{
			name:      "Ray hits first triangle",
			ray:       core.NewRay(core.NewVec3(0.75, 0.25, 1), core.NewVec3(0, 0, -1)),
			shouldHit: true,
		},
		{
			name:      "Ray hits second triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.75, 1), core.NewVec3(0, 0, -1)),
			shouldHit: true,
		},
		{
			name:      "Ray misses the quad",
			ray:       core.NewRay(core.NewVec3(2, 2, 1), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var isect core.Interaction
			hit := mesh.Intersect(tt.ray, &isect)
			if hit != tt.shouldHit {
				t.Errorf("Expected hit=%v, got hit=%v", tt.shouldHit, hit)
			}
		})
	}
}

func TestMesh_NearestTriangleWins(t *testing.T) {
	// Two stacked triangles; the ray must report the closer one
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 0, 1),
		core.NewVec3(0, 1, 1),
	}
	vertexIndices := []int{0, 1, 2, 3, 4, 5}
	mesh := NewMesh(vertices, nil, vertexIndices, []int{-1, -1, -1, -1, -1, -1}, testMaterial())

	var isect core.Interaction
	ray := core.NewRay(core.NewVec3(0.25, 0.25, 3), core.NewVec3(0, 0, -1))
	if !mesh.Intersect(ray, &isect) {
		t.Fatal("Expected hit")
	}
	if math.Abs(isect.T-2) > 1e-9 {
		t.Errorf("Expected nearest hit at t=2, got t=%v", isect.T)
	}
	if math.Abs(isect.Point.Z-1) > 1e-9 {
		t.Errorf("Expected hit on upper triangle at z=1, got z=%v", isect.Point.Z)
	}
}

func TestMesh_AveragedVertexNormals(t *testing.T) {
	// All vertex normals tilted the same way; the face normal must follow them
	tilted := core.NewVec3(0, 1, 1).Normalize()
	normals := []core.Vec3{tilted, tilted, tilted, tilted}
	mesh := quadMesh(normals, []int{0, 1, 2, 0, 2, 3})

	var isect core.Interaction
	ray := core.NewRay(core.NewVec3(0.75, 0.25, 1), core.NewVec3(0, 0, -1))
	if !mesh.Intersect(ray, &isect) {
		t.Fatal("Expected hit")
	}
	if !vec3Equals(isect.Normal, tilted, 1e-9) {
		t.Errorf("Expected shading normal %v, got %v", tilted, isect.Normal)
	}
}

func TestMesh_MissingNormalsFallBackToGeometric(t *testing.T) {
	mesh := quadMesh(nil, []int{-1, -1, -1, -1, -1, -1})

	var isect core.Interaction
	ray := core.NewRay(core.NewVec3(0.75, 0.25, 1), core.NewVec3(0, 0, -1))
	if !mesh.Intersect(ray, &isect) {
		t.Fatal("Expected hit")
	}
	if math.Abs(math.Abs(isect.Normal.Z)-1) > 1e-9 {
		t.Errorf("Expected geometric +-z normal, got %v", isect.Normal)
	}
}
