package renderer

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid render config")

// Config contains rendering configuration
type Config struct {
	Width           int    `toml:"width"`             // Image width in pixels
	Height          int    `toml:"height"`            // Image height in pixels
	SamplesPerPixel int    `toml:"samples_per_pixel"` // Number of rays per pixel
	MaxDepth        int    `toml:"max_depth"`         // Maximum ray bounce depth
	Workers         int    `toml:"workers"`           // Parallel workers, 0 means one per CPU
	TileSize        int    `toml:"tile_size"`         // Edge length of the square tiles handed to workers
	Seed            uint64 `toml:"seed"`              // Base seed for the per-pixel random streams
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Workers:         0,
		TileSize:        32,
		Seed:            42,
	}
}

// Validate reports the first out-of-range field
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidConfig, c.MaxDepth)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalidConfig, c.Workers)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d must be positive", ErrInvalidConfig, c.TileSize)
	}
	return nil
}

// AspectRatio returns width / height
func (c Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}
