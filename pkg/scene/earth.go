package scene

import (
	"fmt"

	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/geometry"
	"github.com/df07/raest/pkg/loaders"
	"github.com/df07/raest/pkg/material"
)

// NewEarthScene creates a globe wrapped in the image at opts.EarthImage
func NewEarthScene(opts Options) (*Scene, error) {
	texture, err := loaders.LoadImageTexture(opts.EarthImage)
	if err != nil {
		return nil, fmt.Errorf("failed to load earth texture: %w", err)
	}

	s := &Scene{
		CameraConfig:   outdoorCamera(),
		Background:     SolidBackground(skyBlue),
		SamplingConfig: opts.Sampling,
	}
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2.0, material.NewTexturedLambertian(texture)))

	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}
