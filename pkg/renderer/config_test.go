package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.InDelta(t, 16.0/9.0, DefaultConfig().AspectRatio(), 1e-2)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"no samples", func(c *Config) { c.SamplesPerPixel = 0 }},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
		{"zero tile size", func(c *Config) { c.TileSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	zeroDepth := DefaultConfig()
	zeroDepth.MaxDepth = 0
	assert.NoError(t, zeroDepth.Validate(), "depth 0 renders black but is allowed")
}
