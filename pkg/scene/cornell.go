package scene

import (
	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/geometry"
	"github.com/df07/raest/pkg/material"
)

// NewCornellScene creates a classic Cornell box with a ceiling light,
// a rotated block and a glass sphere
func NewCornellScene(opts Options) (*Scene, error) {
	s := &Scene{
		CameraConfig: geometry.CameraConfig{
			LookFrom: core.NewVec3(278, 278, -800), // Outside the open side of the box
			LookAt:   core.NewVec3(278, 278, 0),
			Up:       core.NewVec3(0, 1, 0),
			VFov:     40.0,
		},
		Background:     SolidBackground(core.Vec3{}), // Black background
		SamplingConfig: opts.Sampling,
	}

	// Create materials
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewEmissive(core.NewVec3(15, 15, 15))
	glass := material.NewDielectric(1.5)

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0
	corner := core.NewVec2(0, 0)
	far := core.NewVec2(boxSize, boxSize)

	s.Add(
		geometry.NewRect(geometry.YZ, corner, far, boxSize, green), // Left wall as seen from the camera
		geometry.NewRect(geometry.YZ, corner, far, 0, red),         // Right wall
		geometry.NewRect(geometry.XZ, corner, far, 0, white),       // Floor
		geometry.NewRect(geometry.XZ, corner, far, boxSize, white), // Ceiling
		geometry.NewRect(geometry.XY, corner, far, boxSize, white), // Back wall
	)

	// Ceiling light, just below the ceiling
	s.Add(geometry.NewRect(geometry.XZ, core.NewVec2(213, 227), core.NewVec2(343, 332), boxSize-1, light))

	// Tall block turned 15 degrees about Y
	tall := geometry.NewBlock(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	s.Add(geometry.NewTranslate(geometry.NewRotate(tall, core.NewVec3(0, 15, 0)), core.NewVec3(265, 0, 295)))

	s.Add(geometry.NewSphere(core.NewVec3(190, 90, 190), 90, glass))

	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}
