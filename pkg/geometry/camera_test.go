package geometry

import (
	"math"
	"testing"

	"github.com/df07/raest/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2,
	})
	sampler := core.NewSeededSampler(1)

	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"bottom left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"top right", 1, 1, core.NewVec3(2, 1, -1)},
		{"top center", 0.5, 1, core.NewVec3(0, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, sampler)
			if !ray.Origin.IsZero() {
				t.Errorf("Pinhole ray should start at the camera, got %v", ray.Origin)
			}
			if !vecNear(ray.Direction, tt.direction, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_DepthOfField(t *testing.T) {
	lookAt := core.NewVec3(0, 0, -4)
	camera := NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      lookAt,
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1,
		Aperture:    0.5,
	})
	sampler := core.NewSeededSampler(2)

	moved := false
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		if ray.Origin.Length() > 0.25+1e-12 {
			t.Fatalf("Lens offset %v exceeds the aperture radius", ray.Origin)
		}
		if !ray.Origin.IsZero() {
			moved = true
		}

		// Every ray through the center of the image converges on the focal plane
		tFocus := (lookAt.Z - ray.Origin.Z) / ray.Direction.Z
		if p := ray.At(tFocus); !vecNear(p, lookAt, 1e-9) {
			t.Fatalf("Ray misses the focus point: %v", p)
		}
	}

	if !moved {
		t.Error("Expected lens sampling to move ray origins")
	}
}

func TestCamera_FocusDistanceOverride(t *testing.T) {
	camera := NewCamera(CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   1,
		FocusDistance: 10,
	})

	ray := camera.GetRay(1, 0.5, core.NewSeededSampler(1))
	// Field of view is independent of the focal distance
	if angle := math.Atan2(ray.Direction.X, -ray.Direction.Z); math.Abs(angle-math.Pi/4) > 1e-9 {
		t.Errorf("Expected 45 degree half angle, got %v", angle*180/math.Pi)
	}
}
