package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the command line flags
type options struct {
	scene      string
	configPath string
	out        string
	logLevel   string
	width      int
	height     int
	spp        int
	depth      int
	workers    int
	seed       uint64
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newCommand(&options{})
}

// newCommand builds the root command with its flags bound to opts
func newCommand(opts *options) *cobra.Command {
	defaults := renderer.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "pathtracer",
		Short: "Render a scene with a CPU path tracer",
		Long: "Render a built-in scene (" + strings.Join(scene.Names(), ", ") + ") or a YAML scene file.\n" +
			"Output defaults to output/<scene>/render_<timestamp>.png; the extension picks png, tiff, bmp or ppm.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.scene, "scene", "default", "built-in scene name or path to a .yaml scene")
	flags.StringVar(&opts.configPath, "config", "", "TOML render config; explicit flags override it")
	flags.StringVarP(&opts.out, "out", "o", "", "output image path")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.IntVar(&opts.width, "width", defaults.Width, "image width in pixels")
	flags.IntVar(&opts.height, "height", defaults.Height, "image height in pixels")
	flags.IntVar(&opts.spp, "spp", defaults.SamplesPerPixel, "samples per pixel")
	flags.IntVar(&opts.depth, "depth", defaults.MaxDepth, "maximum bounces per path")
	flags.IntVar(&opts.workers, "workers", defaults.Workers, "parallel workers, 0 for one per CPU")
	flags.Uint64Var(&opts.seed, "seed", defaults.Seed, "random seed")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	logger, err := newLogger(cmd, opts.logLevel)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	sc, err := createScene(opts.scene)
	if err != nil {
		return err
	}
	camera, err := sc.NewCamera(cfg.AspectRatio())
	if err != nil {
		return fmt.Errorf("failed to create camera: %w", err)
	}

	outPath, err := createOutputPath(opts.scene, opts.out, time.Now())
	if err != nil {
		return err
	}
	if _, err := loaders.ImageFormat(outPath); err != nil {
		return err
	}

	logger.Info("starting render", "scene", opts.scene, "primitives", sc.GetPrimitiveCount(),
		"width", cfg.Width, "height", cfg.Height, "spp", cfg.SamplesPerPixel, "depth", cfg.MaxDepth, "seed", cfg.Seed)

	r, err := renderer.New(cfg, logger)
	if err != nil {
		return err
	}
	fb, stats, err := r.RenderContext(cmd.Context(), sc, camera)
	if err != nil {
		logger.Error("render interrupted", "err", err, "pixels", stats.TotalPixels)
		return err
	}

	if err := loaders.SaveImage(outPath, fb); err != nil {
		logger.Error("failed to save image", "path", outPath, "err", err)
		return err
	}

	logger.Info("render saved", "path", outPath, "duration", stats.Duration,
		"samples", stats.TotalSamples, "tiles", stats.Tiles, "workers", stats.Workers)
	return nil
}

// newLogger builds a text slog logger writing to the command's stderr
func newLogger(cmd *cobra.Command, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})
	return slog.New(handler), nil
}

// resolveConfig starts from the TOML file (or defaults) and applies any flag
// the user set explicitly
func resolveConfig(cmd *cobra.Command, opts *options) (renderer.Config, error) {
	cfg := renderer.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := loaders.LoadRenderConfig(opts.configPath)
		if err != nil {
			return renderer.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Height = opts.height
	}
	if flags.Changed("spp") {
		cfg.SamplesPerPixel = opts.spp
	}
	if flags.Changed("depth") {
		cfg.MaxDepth = opts.depth
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}

	if err := cfg.Validate(); err != nil {
		return renderer.Config{}, err
	}
	return cfg, nil
}

// createScene resolves a built-in scene name or loads a YAML scene file
func createScene(name string) (*scene.Scene, error) {
	if isSceneFile(name) {
		return loaders.LoadScene(name)
	}
	return scene.Lookup(name)
}

func isSceneFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// createOutputPath returns out, or output/<scene>/render_<timestamp>.png when
// out is empty, creating the parent directory either way
func createOutputPath(sceneName, out string, now time.Time) (string, error) {
	if out == "" {
		base := sceneName
		if isSceneFile(sceneName) {
			base = strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
		}
		out = filepath.Join("output", base, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return out, nil
}
