package scene

import (
	"math/rand"

	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/geometry"
	"github.com/df07/raest/pkg/material"
)

// randomSpheresGrid is the half-width of the grid of small spheres
const randomSpheresGrid = 11

// skyBlue is the background of the outdoor scenes
var skyBlue = core.NewVec3(0.5, 0.7, 1.0)

// outdoorCamera looks at the origin from above and to the side
func outdoorCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 8),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}
}

// NewRandomSpheresScene creates a checkered ground covered with a grid of small
// randomly placed spheres and three large ones. The layout is fixed by opts.Seed.
func NewRandomSpheresScene(opts Options) (*Scene, error) {
	s := &Scene{
		CameraConfig:   outdoorCamera(),
		Background:     SolidBackground(skyBlue),
		SamplingConfig: opts.Sampling,
	}
	random := rand.New(rand.NewSource(opts.Seed))
	between := func(lo, hi float64) float64 {
		return lo + (hi-lo)*random.Float64()
	}

	checker := material.NewChecker(
		material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.1)),
		material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)),
	)
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -randomSpheresGrid; a < randomSpheresGrid; a++ {
		for b := -randomSpheresGrid; b < randomSpheresGrid; b++ {
			choose := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat *material.Material
			switch {
			case choose < 0.8:
				albedo := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
				mat = material.NewLambertian(albedo)
			case choose < 0.95:
				albedo := core.NewVec3(between(0.5, 1), between(0.5, 1), between(0.5, 1))
				mat = material.NewMetal(albedo, between(0, 0.5))
			default:
				mat = material.NewDielectric(1.5)
			}
			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSpheresScene creates a row of three spheres (diffuse, hollow glass and
// gold metal) on a large yellow ground sphere
func NewSpheresScene(opts Options) (*Scene, error) {
	s := &Scene{
		CameraConfig: geometry.CameraConfig{
			LookFrom: core.NewVec3(0, 0, 0),
			LookAt:   core.NewVec3(0, 0, -1),
			Up:       core.NewVec3(0, 1, 0),
			VFov:     90.0,
		},
		Background:     Background{Top: skyBlue, Bottom: core.NewVec3(1, 1, 1)},
		SamplingConfig: opts.Sampling,
	}

	glass := material.NewDielectric(1.5)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		// Negative radius flips the normals, making the glass sphere hollow
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
	)

	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGroundScene creates a single diffuse sphere resting on a large ground
// sphere under a sky gradient
func NewGroundScene(opts Options) (*Scene, error) {
	s := &Scene{
		CameraConfig: geometry.CameraConfig{
			LookFrom: core.NewVec3(0, 0.5, 2),
			LookAt:   core.NewVec3(0, 0, -1),
			Up:       core.NewVec3(0, 1, 0),
			VFov:     50.0,
		},
		Background:     Background{Top: skyBlue, Bottom: core.NewVec3(1, 1, 1)},
		SamplingConfig: opts.Sampling,
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
	)

	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}
