package scene

import (
	"fmt"
	"maps"
	"slices"
)

// builtins maps scene names to their constructors
var builtins = map[string]func() *Scene{
	"default":  NewDefaultScene,
	"rect-box": NewRectBoxScene,
}

// Lookup builds the built-in scene with the given name
func Lookup(name string) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return build(), nil
}

// Names lists the built-in scenes in sorted order
func Names() []string {
	return slices.Sorted(maps.Keys(builtins))
}
