package renderer

import "errors"

var (
	// ErrInvalidDimensions is returned when the image is smaller than 2x2 or
	// does not match the framebuffer.
	ErrInvalidDimensions = errors.New("renderer: invalid image dimensions")

	// ErrInvalidSamples is returned when the samples per pixel are not positive.
	ErrInvalidSamples = errors.New("renderer: samples per pixel must be positive")

	// ErrNoCamera is returned when rendering a scene that was not preprocessed.
	ErrNoCamera = errors.New("renderer: scene has no camera")
)
