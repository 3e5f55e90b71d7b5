package renderer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Renderer renders a scene into a framebuffer with a pool of tile workers
type Renderer struct {
	config     Config
	integrator integrator.Integrator
	logger     *slog.Logger
}

// New creates a renderer using a path tracing integrator. A nil logger is silent.
func New(config Config, logger *slog.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		logger:     logger.With("component", "renderer"),
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (r *Renderer) SetIntegrator(integratorInst integrator.Integrator) {
	r.integrator = integratorInst
}

// Render renders the whole image. It cannot fail once the renderer exists.
func (r *Renderer) Render(scene integrator.Scene, camera *geometry.Camera) (*Framebuffer, RenderStats) {
	fb, stats, _ := r.RenderContext(context.Background(), scene, camera)
	return fb, stats
}

// RenderContext renders the whole image, stopping early with ctx.Err() if ctx
// is cancelled. A cancelled render returns a partly filled framebuffer.
func (r *Renderer) RenderContext(ctx context.Context, scene integrator.Scene, camera *geometry.Camera) (*Framebuffer, RenderStats, error) {
	start := time.Now()
	cfg := r.config

	fb := NewFramebuffer(cfg.Width, cfg.Height)
	tiles := NewTileGrid(cfg.Width, cfg.Height, cfg.TileSize)
	tileRenderer := NewTileRenderer(scene, camera, r.integrator, cfg)
	pool := NewWorkerPool(tileRenderer, fb, len(tiles), cfg.Workers)

	r.logger.Info("render started", "width", cfg.Width, "height", cfg.Height,
		"spp", cfg.SamplesPerPixel, "depth", cfg.MaxDepth, "tiles", len(tiles), "workers", pool.GetNumWorkers())

	pool.Start(ctx)
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile})
	}
	err := pool.Stop()

	stats := RenderStats{Tiles: len(tiles), Workers: pool.GetNumWorkers()}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		r.logger.Debug("tile rendered", "tile", result.TileID,
			"pixels", result.Stats.TotalPixels, "samples", result.Stats.TotalSamples)
		stats.merge(result.Stats)
	}
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	stats.Duration = time.Since(start)

	if err != nil {
		r.logger.Warn("render cancelled", "pixels", stats.TotalPixels, "total_pixels", cfg.Width*cfg.Height, "err", err)
		return fb, stats, err
	}

	r.logger.Info("render completed", "duration", stats.Duration, "samples", stats.TotalSamples,
		"tiles", stats.Tiles, "workers", stats.Workers)
	return fb, stats, nil
}

// Render renders scene through camera without logging. It panics if config
// fails Validate.
func Render(scene integrator.Scene, camera *geometry.Camera, config Config) (*Framebuffer, RenderStats) {
	r, err := New(config, nil)
	if err != nil {
		panic(fmt.Sprintf("renderer.Render: %v", err))
	}
	return r.Render(scene, camera)
}

// RenderContext is Render with cancellation. It returns ErrInvalidConfig for
// a bad config and ctx.Err() if cancelled.
func RenderContext(ctx context.Context, scene integrator.Scene, camera *geometry.Camera, config Config) (*Framebuffer, RenderStats, error) {
	r, err := New(config, nil)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return r.RenderContext(ctx, scene, camera)
}
