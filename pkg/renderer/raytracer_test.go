package renderer

import (
	"errors"
	"testing"

	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/scene"
)

// MockIntegrator returns a fixed color for every ray
type MockIntegrator struct {
	color core.Vec3
}

func (m MockIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	return m.color
}

// createGroundScene builds the ground scene at a small resolution
func createGroundScene(t *testing.T, width, height, samples int) *scene.Scene {
	t.Helper()

	opts := scene.DefaultOptions()
	opts.Sampling.Width = width
	opts.Sampling.Height = height
	opts.Sampling.SamplesPerPixel = samples

	s, err := scene.NewGroundScene(opts)
	if err != nil {
		t.Fatalf("NewGroundScene failed: %v", err)
	}
	return s
}

func TestPartitionRows(t *testing.T) {
	tests := []struct {
		name     string
		height   int
		workers  int
		expected []RowRange
	}{
		{"single worker", 5, 1, []RowRange{{0, 5}}},
		{"even split rounds up", 10, 4, []RowRange{{0, 3}, {3, 6}, {6, 9}, {9, 10}}},
		{"more workers than rows", 3, 5, []RowRange{{0, 1}, {1, 2}, {2, 3}, {3, 3}, {3, 3}}},
		{"exact multiple", 8, 2, []RowRange{{0, 5}, {5, 8}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := partitionRows(tt.height, tt.workers)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d ranges, got %v", len(tt.expected), got)
			}

			covered := 0
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Range %d: expected %v, got %v", i, tt.expected[i], got[i])
				}
				covered += got[i].Len()
			}
			if covered != tt.height {
				t.Errorf("Expected ranges to cover %d rows, got %d", tt.height, covered)
			}
		})
	}
}

func TestRaytracer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		samples int
		fbW     int
		fbH     int
		wantErr error
	}{
		{"valid", 8, 4, 1, 8, 4, nil},
		{"too narrow", 1, 4, 1, 1, 4, ErrInvalidDimensions},
		{"framebuffer mismatch", 8, 4, 1, 4, 8, ErrInvalidDimensions},
		{"no samples", 8, 4, 0, 8, 4, ErrInvalidSamples},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createGroundScene(t, 8, 4, 1)
			s.SamplingConfig.Width = tt.width
			s.SamplingConfig.Height = tt.height
			s.SamplingConfig.SamplesPerPixel = tt.samples

			rt := NewRaytracer(s, 2, 42)
			_, err := rt.Render(NewFramebuffer(tt.fbW, tt.fbH))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRaytracer_NoCamera(t *testing.T) {
	s := &scene.Scene{SamplingConfig: scene.DefaultSamplingConfig()}
	s.SamplingConfig.Width, s.SamplingConfig.Height = 4, 4

	_, err := NewRaytracer(s, 1, 42).Render(NewFramebuffer(4, 4))
	if !errors.Is(err, ErrNoCamera) {
		t.Errorf("Expected ErrNoCamera, got %v", err)
	}
}

func TestRaytracer_FillsEveryPixel(t *testing.T) {
	s := createGroundScene(t, 7, 5, 2)
	rt := NewRaytracer(s, 3, 42)
	rt.SetIntegrator(MockIntegrator{color: core.NewVec3(0.25, 0.25, 0.25)})

	fb := NewFramebuffer(7, 5)
	stats, err := rt.Render(fb)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for i, pixel := range fb.Snapshot() {
		if pixel != 0x7f7f7f {
			t.Fatalf("Pixel %d: expected 7f7f7f, got %06x", i, pixel)
		}
	}

	if stats.TotalPixels != 35 || stats.TotalSamples != 70 {
		t.Errorf("Expected 35 pixels and 70 samples, got %d and %d", stats.TotalPixels, stats.TotalSamples)
	}
	if len(stats.Workers) != 3 {
		t.Fatalf("Expected 3 worker stats, got %d", len(stats.Workers))
	}
	for i, w := range stats.Workers {
		if w.ID != i {
			t.Errorf("Expected worker stats ordered by ID, got %d at %d", w.ID, i)
		}
		if w.Rows.Len() > 0 && w.Flushes == 0 {
			t.Errorf("Worker %d rendered rows but never flushed", i)
		}
	}
	if stats.StdDevLuminance > 1e-9 {
		t.Errorf("Expected a uniform image, got luminance stddev %f", stats.StdDevLuminance)
	}
}

func TestRaytracer_WorkerCountIndependent(t *testing.T) {
	const width, height, samples = 32, 18, 4

	render := func(workers int) ([]uint32, RenderStats) {
		s := createGroundScene(t, width, height, samples)
		fb := NewFramebuffer(width, height)
		stats, err := NewRaytracer(s, workers, 7).Render(fb)
		if err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}
		return fb.Snapshot(), stats
	}

	single, singleStats := render(1)
	parallel, parallelStats := render(4)

	for i := range single {
		if single[i] != parallel[i] {
			t.Fatalf("Pixel %d differs: %06x with 1 worker, %06x with 4", i, single[i], parallel[i])
		}
	}
	if singleStats.MeanLuminance != parallelStats.MeanLuminance {
		t.Errorf("Expected identical mean luminance, got %f and %f",
			singleStats.MeanLuminance, parallelStats.MeanLuminance)
	}
	if singleStats.MeanLuminance <= 0 {
		t.Error("Expected the sky lit ground scene to be visible")
	}
}

func TestRaytracer_SeedChangesImage(t *testing.T) {
	const width, height, samples = 16, 9, 2

	render := func(seed int64) []uint32 {
		s := createGroundScene(t, width, height, samples)
		fb := NewFramebuffer(width, height)
		if _, err := NewRaytracer(s, 2, seed).Render(fb); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		return fb.Snapshot()
	}

	a, b := render(1), render(2)
	differs := false
	for i := range a {
		if a[i] != b[i] {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("Expected different seeds to give different noise")
	}
}
