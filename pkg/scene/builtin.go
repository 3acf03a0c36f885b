package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	build       func(Options) (*Scene, error)
}

var builtins = []SceneInfo{
	{"cornell", "Cornell box with a rotated block and a glass sphere", NewCornellScene},
	{"earth", "Image-textured globe", NewEarthScene},
	{"ground", "Diffuse sphere on a ground sphere under a sky gradient", NewGroundScene},
	{"random", "Grid of random small spheres around three large ones", NewRandomSpheresScene},
	{"spheres", "Diffuse, hollow glass and metal spheres on a yellow ground", NewSpheresScene},
}

// Builtins lists the built-in scenes sorted by name
func Builtins() []SceneInfo {
	scenes := append([]SceneInfo(nil), builtins...)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Create builds the named built-in scene
func Create(name string, opts Options) (*Scene, error) {
	for _, info := range builtins {
		if info.Name == strings.ToLower(name) {
			return info.build(opts)
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
}

// IsBuiltin reports whether name refers to a built-in scene
func IsBuiltin(name string) bool {
	for _, info := range builtins {
		if info.Name == strings.ToLower(name) {
			return true
		}
	}
	return false
}

// Open builds a built-in scene by name, or loads a scene description file
func Open(nameOrPath string, opts Options) (*Scene, error) {
	if IsBuiltin(nameOrPath) {
		return Create(nameOrPath, opts)
	}
	return Load(nameOrPath, opts)
}
