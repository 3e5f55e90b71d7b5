package renderer

import (
	"image"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      integrator.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	config     Config
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(scene integrator.Scene, camera *geometry.Camera, integratorInst integrator.Integrator, config Config) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		camera:     camera,
		integrator: integratorInst,
		config:     config,
	}
}

// RenderTileBounds renders every pixel inside bounds into fb. Each pixel draws
// from its own random stream, so the result does not depend on which worker
// renders the tile.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, fb *Framebuffer) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := tr.samplePixel(x, y)
			stats.TotalSamples += ps.SampleCount
			fb.Set(x, y, ps.GetColor().GammaCorrect(2.0))
		}
	}

	return stats
}

// samplePixel averages SamplesPerPixel jittered camera rays through pixel (x, y)
func (tr *TileRenderer) samplePixel(x, y int) PixelStats {
	width, height := tr.config.Width, tr.config.Height
	sampler := core.NewPixelSampler(tr.config.Seed, uint64(y*width+x))

	// Row 0 is the top of the image while t grows upwards
	row := float64(height - 1 - y)

	var ps PixelStats
	for sample := 0; sample < tr.config.SamplesPerPixel; sample++ {
		jitter := sampler.Get2D()
		s := (float64(x) + jitter.X) / float64(width)
		t := (row + jitter.Y) / float64(height)

		ray := tr.camera.GetRay(s, t, sampler)
		ps.AddSample(sanitize(tr.integrator.RayColor(ray, tr.scene, sampler)))
	}
	return ps
}

// sanitize zeroes NaN and infinite components so one bad sample cannot poison a pixel
func sanitize(c core.Vec3) core.Vec3 {
	fix := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	}
	return core.NewVec3(fix(c.X), fix(c.Y), fix(c.Z))
}
