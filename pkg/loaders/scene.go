package loaders

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-pathtracer/pkg/scene"
)

// LoadScene reads a YAML scene description and builds the scene
func LoadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene decodes a YAML scene description. Unknown keys are rejected.
func ParseScene(data []byte) (*scene.Scene, error) {
	var desc scene.Description
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&desc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return scene.Build(desc)
}
