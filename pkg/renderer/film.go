package renderer

import (
	"image"
	"image/color"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
)

// Film is the output pixel buffer: a 2D grid of linear radiance values.
// Every pixel is written exactly once by exactly one render worker, so the
// buffer needs no locking during rendering.
type Film struct {
	width, height int
	pixels        []core.Vec3
}

// NewFilm creates a film with the given resolution
func NewFilm(width, height int) *Film {
	return &Film{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Resolution returns the film's width and height in pixels
func (f *Film) Resolution() (int, int) {
	return f.width, f.height
}

// SetPixel writes a linear radiance value at (x, y)
func (f *Film) SetPixel(x, y int, c core.Vec3) {
	f.pixels[y*f.width+x] = c
}

// At returns the linear radiance value at (x, y)
func (f *Film) At(x, y int) core.Vec3 {
	return f.pixels[y*f.width+x]
}

// ToRGBA converts the film to an 8-bit image. Gamma correction and clamping
// happen only here; stored radiance stays linear and unclamped.
func (f *Film) ToRGBA(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.At(x, y).GammaCorrect(gamma).Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}
