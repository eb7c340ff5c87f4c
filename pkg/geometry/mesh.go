package geometry

import (
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
)

// Mesh is an indexed triangle mesh. Intersection is a linear scan over the
// constituent triangles reusing the Möller-Trumbore test; no acceleration
// structure is built, matching the rest of the pipeline.
type Mesh struct {
	Vertices      []core.Vec3
	Normals       []core.Vec3
	VertexIndices []int // 3 per face
	NormalIndices []int // 3 per face, -1 when the model provides no normal
	Material      core.Material

	triangles []*Triangle
}

// NewMesh builds a mesh from vertex/normal arrays and per-face index lists.
// Each face becomes a triangle whose shading normal is the normalized average
// of its three vertex normals when the model provides them, and the geometric
// face normal otherwise.
func NewMesh(vertices, normals []core.Vec3, vertexIndices, normalIndices []int, material core.Material) *Mesh {
	m := &Mesh{
		Vertices:      vertices,
		Normals:       normals,
		VertexIndices: vertexIndices,
		NormalIndices: normalIndices,
		Material:      material,
	}

	faceCount := len(vertexIndices) / 3
	m.triangles = make([]*Triangle, 0, faceCount)
	for f := 0; f < faceCount; f++ {
		v0 := vertices[vertexIndices[3*f]]
		v1 := vertices[vertexIndices[3*f+1]]
		v2 := vertices[vertexIndices[3*f+2]]

		if normal, ok := m.faceNormal(f); ok {
			m.triangles = append(m.triangles, NewTriangleWithNormal(v0, v1, v2, normal, material))
		} else {
			m.triangles = append(m.triangles, NewTriangle(v0, v1, v2, material))
		}
	}

	return m
}

// faceNormal averages the face's vertex normals, reporting false when any of
// them is missing from the model.
func (m *Mesh) faceNormal(face int) (core.Vec3, bool) {
	if 3*face+2 >= len(m.NormalIndices) {
		return core.Vec3{}, false
	}

	sum := core.Vec3{}
	for i := 0; i < 3; i++ {
		ni := m.NormalIndices[3*face+i]
		if ni < 0 || ni >= len(m.Normals) {
			return core.Vec3{}, false
		}
		sum = sum.Add(m.Normals[ni])
	}
	if sum.Length() == 0 {
		return core.Vec3{}, false
	}
	return sum.Normalize(), true
}

// TriangleCount returns the number of faces in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Intersect scans every triangle and keeps the nearest hit by shrinking the
// ray's TMax as closer hits are found.
func (m *Mesh) Intersect(ray core.Ray, isect *core.Interaction) bool {
	found := false
	closest := ray
	var candidate core.Interaction

	for _, tri := range m.triangles {
		if tri.Intersect(closest, &candidate) {
			found = true
			closest.TMax = candidate.T
			*isect = candidate
		}
	}

	return found
}
