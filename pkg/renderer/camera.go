package renderer

import (
	"math"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
)

// CameraConfig describes a pinhole camera
type CameraConfig struct {
	Position core.Vec3
	LookAt   core.Vec3
	Up       core.Vec3
	VFov     float64 // vertical field of view in degrees
	Width    int     // output resolution
	Height   int
}

// Camera generates primary rays and owns the output film. Sub-pixel sample
// generation is a deterministic centered grid, so two renders of the same
// scene produce identical images regardless of worker count.
type Camera struct {
	position        core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	film            *Film
}

// NewCamera creates a camera from the config
func NewCamera(config CameraConfig) *Camera {
	aspectRatio := float64(config.Width) / float64(config.Height)

	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspectRatio * halfHeight

	forward := config.LookAt.Subtract(config.Position).Normalize()
	right := forward.Cross(config.Up).Normalize()
	up := right.Cross(forward)

	horizontal := right.Multiply(2 * halfWidth)
	vertical := up.Multiply(2 * halfHeight)
	lowerLeftCorner := config.Position.
		Add(forward).
		Subtract(right.Multiply(halfWidth)).
		Subtract(up.Multiply(halfHeight))

	return &Camera{
		position:        config.Position,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		film:            NewFilm(config.Width, config.Height),
	}
}

// Film returns the camera's output buffer
func (c *Camera) Film() *Film {
	return c.film
}

// SuperSamplePoints returns the spp × spp sub-pixel sample coordinates for
// pixel (dx, dy) as a centered uniform grid in continuous pixel space.
// Purely functional: the same inputs always yield the same points.
func (c *Camera) SuperSamplePoints(dx, dy, spp int) []core.Vec2 {
	points := make([]core.Vec2, 0, spp*spp)
	n := float64(spp)
	for i := 0; i < spp; i++ {
		for j := 0; j < spp; j++ {
			points = append(points, core.NewVec2(
				float64(dx)+(float64(i)+0.5)/n,
				float64(dy)+(float64(j)+0.5)/n,
			))
		}
	}
	return points
}

// GenerateRay converts a continuous pixel coordinate into a world-space ray.
// Pixel row 0 is the top of the image.
func (c *Camera) GenerateRay(x, y float64) core.Ray {
	width, height := c.film.Resolution()
	s := x / float64(width)
	t := 1 - y/float64(height)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.position).
		Normalize()

	return core.NewRay(c.position, direction)
}
