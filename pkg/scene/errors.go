package scene

import "errors"

var (
	ErrNoObjects       = errors.New("scene: no objects to render")
	ErrUnknownScene    = errors.New("scene: unknown built-in scene")
	ErrUnknownTexture  = errors.New("scene: unknown texture")
	ErrUnknownMaterial = errors.New("scene: unknown material")
	ErrUnknownKind     = errors.New("scene: unknown kind")
	ErrTextureCycle    = errors.New("scene: checker textures reference each other")
	ErrInvalidVector   = errors.New("scene: vectors need exactly 3 components")
)
