package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/loaders"
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/log"
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/renderer"
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/scene"
)

var logger = log.New("hypoxraymarcher")

func main() {
	app := cli.NewApp()
	app.Name = "hypoxraymarcher"
	app.Usage = "render scenes using ray casting with virtual point lights"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render the built-in demo scene, or a model file given with --mesh, to a PNG.
Supported model formats: wavefront OBJ (.obj) and glTF (.gltf, .glb).`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 4,
					Usage: "sub-pixel grid side length; spp*spp rays per pixel",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "parallel render workers (0 = number of CPUs)",
				},
				cli.StringFlag{
					Name:  "mesh",
					Usage: "model file to render instead of the demo scene",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: renderFrame,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Debug)
	}
}

func renderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	width := ctx.Int("width")
	height := ctx.Int("height")
	if width < 1 || height < 1 {
		return fmt.Errorf("invalid resolution %dx%d", width, height)
	}

	sc, camera, err := buildScene(ctx.String("mesh"), width, height)
	if err != nil {
		return err
	}

	config := renderer.Config{
		SamplesPerPixel: ctx.Int("spp"),
		NumWorkers:      ctx.Int("workers"),
	}
	r := renderer.NewRenderer(sc, camera, config, log.NewAdapter(logger))

	stats, err := r.Render(context.Background())
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	outFile := ctx.String("out")
	if err := writePNG(camera.Film(), outFile); err != nil {
		return err
	}
	logger.Noticef("wrote %s", outFile)

	displayRenderStats(width, height, config, stats)
	return nil
}

// buildScene selects the scene by the mesh file's extension, falling back to
// the built-in demo scene when no mesh is given.
func buildScene(meshFile string, width, height int) (*scene.Scene, *renderer.Camera, error) {
	if meshFile == "" {
		s, camera := scene.CornellScene(width, height)
		return s, camera, nil
	}

	var data *loaders.MeshData
	var err error
	switch strings.ToLower(filepath.Ext(meshFile)) {
	case ".obj":
		data, err = loaders.LoadOBJ(meshFile)
	case ".gltf", ".glb":
		data, err = loaders.LoadGLTF(meshFile)
	default:
		return nil, nil, fmt.Errorf("unsupported model format: %s", meshFile)
	}
	if err != nil {
		return nil, nil, err
	}

	s, camera := scene.MeshScene(data, width, height)
	return s, camera, nil
}

func writePNG(film *renderer.Film, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, film.ToRGBA(2.0)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func displayRenderStats(width, height int, config renderer.Config, stats renderer.RenderStats) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/pixel", "Workers", "Primary rays", "Hits", "Shadow rays", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", width, height),
		fmt.Sprintf("%d", config.SamplesPerPixel*config.SamplesPerPixel),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.PrimaryRays),
		fmt.Sprintf("%d", stats.PrimaryHits),
		fmt.Sprintf("%d", stats.ShadowRays),
		stats.RenderTime.String(),
	})
	table.Render()
}
