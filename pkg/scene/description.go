package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/geometry"
	"github.com/df07/raest/pkg/loaders"
	"github.com/df07/raest/pkg/material"
)

// Description is the YAML form of a scene. Textures and materials are
// declared by name and referenced by name from materials and objects.
type Description struct {
	Background    []float64                      `yaml:"background"`
	BackgroundTop []float64                      `yaml:"background_top"` // Optional; makes the background a vertical gradient
	Camera        CameraDescription              `yaml:"camera"`
	Textures      map[string]TextureDescription  `yaml:"textures"`
	Materials     map[string]MaterialDescription `yaml:"materials"`
	Objects       []ObjectDescription            `yaml:"objects"`
}

// CameraDescription describes the camera
type CameraDescription struct {
	From     []float64 `yaml:"from"`
	At       []float64 `yaml:"at"`
	Up       []float64 `yaml:"up"`
	Dist     float64   `yaml:"dist"` // Focus distance; 0 focuses on At
	VFov     float64   `yaml:"vfov"`
	Aperture float64   `yaml:"aperture"`
}

// TextureDescription describes a texture. Kind is solid, checker or image.
type TextureDescription struct {
	Kind     string    `yaml:"kind"`
	Color    []float64 `yaml:"color"`    // solid
	Texture1 string    `yaml:"texture1"` // checker, where the sine product is negative
	Texture2 string    `yaml:"texture2"` // checker
	Path     string    `yaml:"path"`     // image, relative to the description file
}

// MaterialDescription describes a material. Kind is lambertian, metal,
// dielectric, emission or phong.
type MaterialDescription struct {
	Kind      string    `yaml:"kind"`
	Texture   string    `yaml:"texture"`   // lambertian, emission
	Color     []float64 `yaml:"color"`     // metal
	Roughness float64   `yaml:"roughness"` // metal
	IOR       float64   `yaml:"ior"`       // dielectric
	Kd        float64   `yaml:"kd"`        // phong
	Diffuse   string    `yaml:"diffuse"`   // phong
	Specular  string    `yaml:"specular"`  // phong
	Shininess float64   `yaml:"shininess"` // phong
}

// ObjectDescription describes an object. Kind is sphere, rect or block.
// Rotate is applied before Translate.
type ObjectDescription struct {
	Kind      string    `yaml:"kind"`
	Material  string    `yaml:"material"`
	Center    []float64 `yaml:"center"` // sphere
	Radius    float64   `yaml:"radius"` // sphere
	Axis      string    `yaml:"axis"`   // rect: XY, XZ or YZ
	Start     []float64 `yaml:"start"`  // rect: 2 components, block: 3 components
	End       []float64 `yaml:"end"`    // rect: 2 components, block: 3 components
	K         float64   `yaml:"k"`      // rect
	Rotate    []float64 `yaml:"rotate"` // Axis-angle vector whose length is the angle in degrees
	Translate []float64 `yaml:"translate"`
}

// Load reads a YAML scene description and builds the scene
func Load(path string, opts Options) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	desc, err := ParseDescription(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	s, err := desc.Build(filepath.Dir(path), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %s: %w", path, err)
	}
	return s, nil
}

// ParseDescription decodes a YAML scene description
func ParseDescription(data []byte) (*Description, error) {
	var desc Description
	if err := yaml.UnmarshalStrict(data, &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

// Build creates the scene. Relative image paths are resolved against dir.
func (d *Description) Build(dir string, opts Options) (*Scene, error) {
	b := &builder{
		desc:      d,
		dir:       dir,
		textures:  make(map[string]material.ColorSource),
		visiting:  make(map[string]bool),
		materials: make(map[string]*material.Material),
	}

	s := &Scene{SamplingConfig: opts.Sampling}

	var err error
	if s.CameraConfig, err = d.Camera.config(); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	if s.Background, err = d.background(); err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	// Sorted so that errors are reported deterministically
	for _, name := range sortedKeys(d.Textures) {
		if _, err := b.texture(name); err != nil {
			return nil, err
		}
	}
	for _, name := range sortedKeys(d.Materials) {
		if _, err := b.material(name); err != nil {
			return nil, err
		}
	}

	for i, object := range d.Objects {
		primitive, err := b.object(object)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.Add(primitive)
	}

	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}

func (d *Description) background() (Background, error) {
	bottom, err := vec3(d.Background)
	if err != nil {
		return Background{}, err
	}
	if d.BackgroundTop == nil {
		return SolidBackground(bottom), nil
	}

	top, err := vec3(d.BackgroundTop)
	if err != nil {
		return Background{}, err
	}
	return Background{Top: top, Bottom: bottom}, nil
}

func (c CameraDescription) config() (geometry.CameraConfig, error) {
	from, err := vec3(c.From)
	if err != nil {
		return geometry.CameraConfig{}, fmt.Errorf("from: %w", err)
	}
	at, err := vec3(c.At)
	if err != nil {
		return geometry.CameraConfig{}, fmt.Errorf("at: %w", err)
	}
	up, err := vec3(c.Up)
	if err != nil {
		return geometry.CameraConfig{}, fmt.Errorf("up: %w", err)
	}

	return geometry.CameraConfig{
		LookFrom:      from,
		LookAt:        at,
		Up:            up,
		VFov:          c.VFov,
		Aperture:      c.Aperture,
		FocusDistance: c.Dist,
	}, nil
}

// builder resolves names while building a description
type builder struct {
	desc      *Description
	dir       string
	textures  map[string]material.ColorSource
	visiting  map[string]bool
	materials map[string]*material.Material
}

// texture resolves a texture by name, building it and its dependencies on first use
func (b *builder) texture(name string) (material.ColorSource, error) {
	if texture, ok := b.textures[name]; ok {
		return texture, nil
	}

	desc, ok := b.desc.Textures[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTexture, name)
	}
	if b.visiting[name] {
		return nil, fmt.Errorf("%w: %q", ErrTextureCycle, name)
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	var texture material.ColorSource
	switch strings.ToLower(desc.Kind) {
	case "solid":
		color, err := vec3(desc.Color)
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", name, err)
		}
		texture = material.NewSolidColor(color)

	case "checker":
		odd, err := b.texture(desc.Texture1)
		if err != nil {
			return nil, err
		}
		even, err := b.texture(desc.Texture2)
		if err != nil {
			return nil, err
		}
		texture = material.NewChecker(odd, even)

	case "image":
		path := desc.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(b.dir, path)
		}
		image, err := loaders.LoadImageTexture(path)
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", name, err)
		}
		texture = image

	default:
		return nil, fmt.Errorf("%w %q for texture %q", ErrUnknownKind, desc.Kind, name)
	}

	b.textures[name] = texture
	return texture, nil
}

// material resolves a material by name
func (b *builder) material(name string) (*material.Material, error) {
	if mat, ok := b.materials[name]; ok {
		return mat, nil
	}

	desc, ok := b.desc.Materials[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMaterial, name)
	}

	var mat *material.Material
	switch strings.ToLower(desc.Kind) {
	case "lambertian":
		texture, err := b.texture(desc.Texture)
		if err != nil {
			return nil, err
		}
		mat = material.NewTexturedLambertian(texture)

	case "metal":
		color, err := vec3(desc.Color)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		mat = material.NewMetal(color, desc.Roughness)

	case "dielectric":
		mat = material.NewDielectric(desc.IOR)

	case "emission":
		texture, err := b.texture(desc.Texture)
		if err != nil {
			return nil, err
		}
		mat = material.NewTexturedEmissive(texture)

	case "phong":
		diffuse, err := b.texture(desc.Diffuse)
		if err != nil {
			return nil, err
		}
		specular, err := b.texture(desc.Specular)
		if err != nil {
			return nil, err
		}
		mat = material.NewPhong(desc.Kd, diffuse, specular, desc.Shininess)

	default:
		return nil, fmt.Errorf("%w %q for material %q", ErrUnknownKind, desc.Kind, name)
	}

	b.materials[name] = mat
	return mat, nil
}

// object builds a primitive with its optional rotation and translation
func (b *builder) object(desc ObjectDescription) (geometry.Primitive, error) {
	mat, err := b.material(desc.Material)
	if err != nil {
		return nil, err
	}

	var primitive geometry.Primitive
	switch strings.ToLower(desc.Kind) {
	case "sphere":
		center, err := vec3(desc.Center)
		if err != nil {
			return nil, fmt.Errorf("center: %w", err)
		}
		primitive = geometry.NewSphere(center, desc.Radius, mat)

	case "rect":
		axis, err := geometry.ParseRectAxis(desc.Axis)
		if err != nil {
			return nil, err
		}
		if len(desc.Start) != 2 || len(desc.End) != 2 {
			return nil, fmt.Errorf("rect corners need exactly 2 components")
		}
		start := core.NewVec2(desc.Start[0], desc.Start[1])
		end := core.NewVec2(desc.End[0], desc.End[1])
		primitive = geometry.NewRect(axis, start, end, desc.K, mat)

	case "block":
		start, err := vec3(desc.Start)
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		end, err := vec3(desc.End)
		if err != nil {
			return nil, fmt.Errorf("end: %w", err)
		}
		primitive = geometry.NewBlock(start, end, mat)

	default:
		return nil, fmt.Errorf("%w %q for object", ErrUnknownKind, desc.Kind)
	}

	if desc.Rotate != nil {
		degrees, err := vec3(desc.Rotate)
		if err != nil {
			return nil, fmt.Errorf("rotate: %w", err)
		}
		primitive = geometry.NewRotate(primitive, degrees)
	}

	if desc.Translate != nil {
		offset, err := vec3(desc.Translate)
		if err != nil {
			return nil, fmt.Errorf("translate: %w", err)
		}
		primitive = geometry.NewTranslate(primitive, offset)
	}

	return primitive, nil
}

func vec3(v []float64) (core.Vec3, error) {
	if len(v) != 3 {
		return core.Vec3{}, fmt.Errorf("%w, got %d", ErrInvalidVector, len(v))
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
