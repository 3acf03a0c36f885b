package scene

import (
	"time"

	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/geometry"
	"github.com/df07/raest/pkg/log"
	"github.com/df07/raest/pkg/material"
	"github.com/df07/raest/pkg/pdf"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	Background     Background
	Objects        []geometry.Primitive // Objects in the scene
	Lights         geometry.List        // Emissive objects, also present in Objects
	BVH            *geometry.BVHNode    // Acceleration structure for ray-object intersection
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int     // Image width
	Height          int     // Image height
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	MixBias         float64 // Probability of sampling the material rather than the lights
}

// DefaultSamplingConfig returns the default render settings
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           640,
		Height:          360,
		SamplesPerPixel: 50,
		MaxDepth:        25,
		MixBias:         pdf.DefaultMixBias,
	}
}

// AspectRatio returns width / height
func (c SamplingConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Options carries everything a scene builder needs besides its own content
type Options struct {
	Sampling   SamplingConfig
	Seed       int64  // Seeds procedural scene generation
	EarthImage string // Image wrapped around the globe in the earth scene
}

// DefaultOptions returns options using the default sampling config
func DefaultOptions() Options {
	return Options{
		Sampling:   DefaultSamplingConfig(),
		Seed:       42,
		EarthImage: "images/earthmap.jpg",
	}
}

// Background is the radiance of rays that leave the scene. It blends
// linearly from Bottom to Top with the ray's vertical direction.
type Background struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// SolidBackground returns a background with the same color in every direction
func SolidBackground(color core.Vec3) Background {
	return Background{Top: color, Bottom: color}
}

// Color returns the background radiance seen along ray
func (b Background) Color(ray core.Ray) core.Vec3 {
	if b.Top == b.Bottom {
		return b.Top
	}

	unitDirection := ray.Direction.Normalize()

	// Map the y-component from [-1, 1] to [0, 1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// Add appends objects to the scene. Preprocess must be called afterwards.
func (s *Scene) Add(objects ...geometry.Primitive) {
	s.Objects = append(s.Objects, objects...)
}

// Preprocess builds the camera, the light list and the BVH
func (s *Scene) Preprocess() error {
	if len(s.Objects) == 0 {
		return ErrNoObjects
	}

	s.CameraConfig.AspectRatio = s.SamplingConfig.AspectRatio()
	s.Camera = geometry.NewCamera(s.CameraConfig)

	s.Lights = s.Lights[:0]
	for _, object := range s.Objects {
		if object.IsLight() {
			s.Lights = append(s.Lights, object)
		}
	}

	start := time.Now()
	bvh, err := geometry.NewBVH(s.Objects)
	if err != nil {
		return err
	}
	s.BVH = bvh

	stats := bvh.Stats()
	logger.Debugf("built BVH over %d objects in %d ms: %d nodes, max depth %d",
		len(s.Objects), time.Since(start).Milliseconds(), stats.Nodes, stats.MaxDepth)
	logger.Infof("scene has %d objects and %d lights", len(s.Objects), len(s.Lights))

	return nil
}

// Hit finds the closest object along ray with t in [tMin, tMax)
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	return s.BVH.Hit(ray, tMin, tMax, hit)
}
