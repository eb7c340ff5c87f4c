package renderer

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/lights"
)

// shadowBias offsets shadow-ray origins along the surface normal to avoid
// self-intersection.
const shadowBias = 0.01

// Scene interface to avoid circular imports
type Scene interface {
	Intersect(ray core.Ray, isect *core.Interaction) bool
	IsShadowed(ray core.Ray) bool
	Light() *lights.AreaLight
	Ambient() core.Vec3
}

// Config contains rendering configuration
type Config struct {
	SamplesPerPixel int // sub-pixel grid side length; spp² rays per pixel
	NumWorkers      int // parallel column workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel: 4,
		NumWorkers:      0,
	}
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer orchestrates the render loop: camera rays, scene intersection,
// radiance evaluation and film writes, parallelized over pixel columns.
type Renderer struct {
	scene    Scene
	camera   *Camera
	config   Config
	logger   core.Logger
	progress io.Writer
}

// NewRenderer creates a new renderer
func NewRenderer(scene Scene, camera *Camera, config Config, logger core.Logger) *Renderer {
	if config.SamplesPerPixel < 1 {
		config.SamplesPerPixel = 1
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:    scene,
		camera:   camera,
		config:   config,
		logger:   logger,
		progress: os.Stdout,
	}
}

// SetProgressOutput redirects the in-place progress line, which by default
// goes to stdout. The line is diagnostic only.
func (r *Renderer) SetProgressOutput(w io.Writer) {
	r.progress = w
}

// EvalRadiance evaluates the local shading model for a ray that produced the
// given interaction: the light color for direct light hits, otherwise the
// ambient term plus shadow-tested diffuse and specular contributions averaged
// over the light's VPL set. No clamping or tone mapping happens here.
func (r *Renderer) EvalRadiance(ray core.Ray, isect *core.Interaction) core.Vec3 {
	var stats RenderStats
	return r.evalRadiance(ray, isect, &stats)
}

func (r *Renderer) evalRadiance(ray core.Ray, isect *core.Interaction, stats *RenderStats) core.Vec3 {
	light := r.scene.Light()

	// Rays that see the light directly shade to the light color; the whole
	// surface is uniformly emissive with no falloff.
	if isect.Kind == core.HitLight {
		return light.Color
	}

	ambient := isect.Response.Ambient.MultiplyVec(r.scene.Ambient())

	var diffuse, specular core.Vec3
	vpls := light.VPLs()
	vplCount := float64(len(vpls))
	for _, vpl := range vpls {
		lightDir := vpl.Position.Subtract(isect.Point).Normalize()

		shadowRay := core.NewRay(
			isect.Point.Add(isect.Normal.Multiply(shadowBias)),
			lightDir,
		)
		stats.ShadowRays++
		if r.scene.IsShadowed(shadowRay) {
			// Hard shadow: this VPL contributes nothing.
			continue
		}

		diffuseFactor := math.Max(0, isect.Normal.Dot(lightDir))

		reflectDir := isect.Normal.Multiply(2 * isect.Normal.Dot(lightDir)).
			Subtract(lightDir).
			Normalize()
		specularFactor := math.Pow(
			math.Max(0, reflectDir.Dot(ray.Direction.Negate())),
			isect.Response.Shininess,
		)

		diffuse = diffuse.Add(
			isect.Response.Diffuse.MultiplyVec(vpl.Color).Multiply(diffuseFactor / vplCount))
		specular = specular.Add(
			isect.Response.Specular.MultiplyVec(vpl.Color).Multiply(specularFactor / vplCount))
	}

	return ambient.Add(diffuse).Add(specular)
}

// renderColumn renders one full pixel column. Columns are the unit of
// parallel work; no two workers ever touch the same column.
func (r *Renderer) renderColumn(dx int, stats *RenderStats) {
	_, height := r.camera.Film().Resolution()
	spp := r.config.SamplesPerPixel
	sampleCount := float64(spp * spp)

	for dy := 0; dy < height; dy++ {
		var accum core.Vec3

		for _, point := range r.camera.SuperSamplePoints(dx, dy, spp) {
			ray := r.camera.GenerateRay(point.X, point.Y)
			stats.PrimaryRays++

			var isect core.Interaction
			if r.scene.Intersect(ray, &isect) {
				stats.PrimaryHits++
				accum = accum.Add(r.evalRadiance(ray, &isect, stats))
			}
			// Misses contribute nothing; the background stays black.
		}

		r.camera.Film().SetPixel(dx, dy, accum.Multiply(1/sampleCount))
	}
}

// Render renders the whole film, partitioning pixel columns across workers.
// The film needs no locking: column ownership is disjoint. The only shared
// mutable state is the atomic progress counter, which is observational only.
func (r *Renderer) Render(ctx context.Context) (RenderStats, error) {
	width, _ := r.camera.Film().Resolution()

	workers := r.config.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > width {
		workers = width
	}

	r.logger.Printf("Rendering %d columns with %d workers (%d samples/pixel)\n",
		width, workers, r.config.SamplesPerPixel*r.config.SamplesPerPixel)

	startTime := time.Now()
	var completed atomic.Int64
	workerStats := make([]RenderStats, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for dx := w; dx < width; dx += workers {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				r.renderColumn(dx, &workerStats[w])

				done := completed.Add(1)
				fmt.Fprintf(r.progress, "\rRendering: %.2f%%", 100*float64(done)/float64(width))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return RenderStats{}, err
	}
	fmt.Fprintln(r.progress)

	stats := RenderStats{
		Columns:    width,
		Workers:    workers,
		RenderTime: time.Since(startTime),
	}
	for _, ws := range workerStats {
		stats.add(ws)
	}

	return stats, nil
}
