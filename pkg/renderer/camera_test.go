package renderer

import (
	"math"
	"testing"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
)

func testCamera(width, height int) *Camera {
	return NewCamera(CameraConfig{
		Position: core.NewVec3(0, -5, 1),
		LookAt:   core.NewVec3(0, 0, 1),
		Up:       core.NewVec3(0, 0, 1),
		VFov:     45,
		Width:    width,
		Height:   height,
	})
}

func TestCamera_Film(t *testing.T) {
	camera := testCamera(100, 80)
	width, height := camera.Film().Resolution()
	if width != 100 || height != 80 {
		t.Errorf("Expected 100x80 film, got %dx%d", width, height)
	}
}

func TestCamera_GenerateRay(t *testing.T) {
	camera := testCamera(100, 80)

	// The center ray looks straight at the LookAt point
	ray := camera.GenerateRay(50, 40)
	if !vec3Equals(ray.Origin, core.NewVec3(0, -5, 1), 1e-9) {
		t.Errorf("Expected ray origin at camera position, got %v", ray.Origin)
	}
	expected := core.NewVec3(0, 1, 0)
	if !vec3Equals(ray.Direction, expected, 1e-9) {
		t.Errorf("Expected center ray direction %v, got %v", expected, ray.Direction)
	}
	if math.Abs(ray.Direction.Length()-1) > 1e-9 {
		t.Errorf("Expected normalized direction, got length %v", ray.Direction.Length())
	}
}

func TestCamera_RowZeroIsTop(t *testing.T) {
	camera := testCamera(100, 80)

	top := camera.GenerateRay(50, 0)
	bottom := camera.GenerateRay(50, 80)
	if top.Direction.Z <= bottom.Direction.Z {
		t.Errorf("Expected row 0 to look higher than the last row: top z=%v, bottom z=%v",
			top.Direction.Z, bottom.Direction.Z)
	}
}

func TestCamera_SuperSamplePoints(t *testing.T) {
	camera := testCamera(100, 80)

	tests := []struct {
		name          string
		spp           int
		expectedCount int
	}{
		{"1x1 grid", 1, 1},
		{"2x2 grid", 2, 4},
		{"4x4 grid", 4, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := camera.SuperSamplePoints(10, 20, tt.spp)
			if len(points) != tt.expectedCount {
				t.Fatalf("Expected %d points, got %d", tt.expectedCount, len(points))
			}

			// Every sample stays inside the pixel's footprint
			for _, p := range points {
				if p.X < 10 || p.X >= 11 || p.Y < 20 || p.Y >= 21 {
					t.Errorf("Sample %v outside pixel (10, 20)", p)
				}
			}
		})
	}
}

func TestCamera_SuperSamplePointsDeterministic(t *testing.T) {
	camera := testCamera(100, 80)

	first := camera.SuperSamplePoints(3, 7, 4)
	second := camera.SuperSamplePoints(3, 7, 4)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Expected identical sample grids, differ at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestCamera_SingleSampleIsPixelCenter(t *testing.T) {
	camera := testCamera(100, 80)

	points := camera.SuperSamplePoints(10, 20, 1)
	if math.Abs(points[0].X-10.5) > 1e-9 || math.Abs(points[0].Y-20.5) > 1e-9 {
		t.Errorf("Expected the single sample at the pixel center, got %v", points[0])
	}
}

func TestFilm_SetAndGet(t *testing.T) {
	film := NewFilm(4, 3)

	c := core.NewVec3(0.5, 1.5, 0.25) // radiance stays linear and unclamped
	film.SetPixel(2, 1, c)
	if got := film.At(2, 1); got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
	if got := film.At(0, 0); got != (core.Vec3{}) {
		t.Errorf("Expected untouched pixel to stay black, got %v", got)
	}
}

func TestFilm_ToRGBA(t *testing.T) {
	film := NewFilm(2, 1)
	film.SetPixel(0, 0, core.NewVec3(1, 1, 1))
	film.SetPixel(1, 0, core.NewVec3(4, 0, 0)) // above 1, must clamp

	img := film.ToRGBA(2.0)
	if r, g, b, a := img.RGBAAt(0, 0).R, img.RGBAAt(0, 0).G, img.RGBAAt(0, 0).B, img.RGBAAt(0, 0).A; r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("Expected white pixel, got (%d, %d, %d, %d)", r, g, b, a)
	}
	if r := img.RGBAAt(1, 0).R; r != 255 {
		t.Errorf("Expected clamped red channel 255, got %d", r)
	}
	if g := img.RGBAAt(1, 0).G; g != 0 {
		t.Errorf("Expected green channel 0, got %d", g)
	}
}

func vec3Equals(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}
