package scene

import (
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/geometry"
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/lights"
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/loaders"
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/material"
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/renderer"
)

// The world is z-up: the ground is the z = 0 plane and the light hangs above
// the scene shining down.

// defaultLight hangs a square area light above the origin.
func defaultLight() *lights.AreaLight {
	return lights.NewAreaLight(
		core.NewVec3(0, 0, 3.5),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, -1),
		1.5, 1.5,
		core.NewVec3(1, 1, 1),
		4,
	)
}

func defaultCamera(width, height int) *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		Position: core.NewVec3(0, -6, 2),
		LookAt:   core.NewVec3(0, 0, 1),
		Up:       core.NewVec3(0, 0, 1),
		VFov:     45,
		Width:    width,
		Height:   height,
	})
}

// CornellScene builds the default demo scene: a checkered ground, two colored
// wall rectangles, an ellipsoid, a triangle and the overhead area light.
func CornellScene(width, height int) (*Scene, *renderer.Camera) {
	s := NewScene(defaultLight(), core.NewVec3(0.1, 0.1, 0.1))

	white := material.NewLambert(core.NewVec3(0.7, 0.7, 0.7), core.NewVec3(0.7, 0.7, 0.7))
	dark := material.NewLambert(core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(0.2, 0.2, 0.2))
	red := material.NewLambert(core.NewVec3(0.8, 0.2, 0.2), core.NewVec3(0.8, 0.2, 0.2))
	green := material.NewLambert(core.NewVec3(0.2, 0.8, 0.2), core.NewVec3(0.2, 0.8, 0.2))
	glossy := material.NewPhong(
		core.NewVec3(0.3, 0.4, 0.8),
		core.NewVec3(0.3, 0.4, 0.8),
		core.NewVec3(0.6, 0.6, 0.6),
		32,
	)
	metallic := material.NewPhong(
		core.NewVec3(0.8, 0.7, 0.3),
		core.NewVec3(0.8, 0.7, 0.3),
		core.NewVec3(0.8, 0.8, 0.8),
		64,
	)

	s.Add(
		geometry.NewGround(0, material.NewChecker(white, dark, 1)),
		// Back wall and left wall box the scene in.
		geometry.NewRectangle(
			core.NewVec3(0, 3, 2),
			core.NewVec3(1, 0, 0),
			core.NewVec3(0, -1, 0),
			8, 4, white,
		),
		geometry.NewRectangle(
			core.NewVec3(-3, 0, 2),
			core.NewVec3(0, 1, 0),
			core.NewVec3(1, 0, 0),
			8, 4, red,
		),
		geometry.NewRectangle(
			core.NewVec3(3, 0, 2),
			core.NewVec3(0, 1, 0),
			core.NewVec3(-1, 0, 0),
			8, 4, green,
		),
		geometry.NewEllipsoid(
			core.NewVec3(-1, 0.5, 1),
			core.NewVec3(1, 0, 0),
			core.NewVec3(0, 0.8, 0),
			core.NewVec3(0, 0, 0.6),
			glossy,
		),
		geometry.NewTriangle(
			core.NewVec3(0.5, 1, 0),
			core.NewVec3(2.5, 0.5, 0),
			core.NewVec3(1.5, 1.5, 2),
			metallic,
		),
	)

	return s, defaultCamera(width, height)
}

// MeshScene builds a scene around a loaded model: the mesh over a checkered
// ground, lit by the overhead area light.
func MeshScene(data *loaders.MeshData, width, height int) (*Scene, *renderer.Camera) {
	s := NewScene(defaultLight(), core.NewVec3(0.1, 0.1, 0.1))

	white := material.NewLambert(core.NewVec3(0.7, 0.7, 0.7), core.NewVec3(0.7, 0.7, 0.7))
	dark := material.NewLambert(core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(0.2, 0.2, 0.2))
	body := material.NewPhong(
		core.NewVec3(0.6, 0.6, 0.7),
		core.NewVec3(0.6, 0.6, 0.7),
		core.NewVec3(0.4, 0.4, 0.4),
		16,
	)

	s.Add(
		geometry.NewGround(0, material.NewChecker(white, dark, 1)),
		geometry.NewMesh(data.Vertices, data.Normals, data.VertexIndices, data.NormalIndices, body),
	)

	return s, defaultCamera(width, height)
}
