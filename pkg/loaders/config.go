package loaders

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// LoadRenderConfig reads a TOML render config. Keys missing from the file
// keep their renderer.DefaultConfig values.
func LoadRenderConfig(path string) (renderer.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return renderer.Config{}, fmt.Errorf("failed to read render config: %w", err)
	}
	return ParseRenderConfig(data)
}

// ParseRenderConfig decodes and validates a TOML render config
func ParseRenderConfig(data []byte) (renderer.Config, error) {
	cfg := renderer.DefaultConfig()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return renderer.Config{}, fmt.Errorf("failed to parse render config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return renderer.Config{}, err
	}
	return cfg, nil
}
