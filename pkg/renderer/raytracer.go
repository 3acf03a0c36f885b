package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/integrator"
	"github.com/df07/raest/pkg/log"
	"github.com/df07/raest/pkg/scene"
)

var logger = log.New("renderer")

// renderConfig is the validated subset of the sampling config used per pixel
type renderConfig struct {
	width   int
	height  int
	samples int
}

// Raytracer renders a preprocessed scene into a framebuffer using a fixed
// pool of workers
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     renderConfig
	numWorkers int
	seed       int64
}

// NewRaytracer creates a raytracer for the scene. A non-positive worker count
// uses one worker per CPU.
func NewRaytracer(s *scene.Scene, numWorkers int, seed int64) *Raytracer {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &Raytracer{
		scene:      s,
		integrator: integrator.NewPathTracingIntegrator(s.SamplingConfig),
		config: renderConfig{
			width:   s.SamplingConfig.Width,
			height:  s.SamplingConfig.Height,
			samples: s.SamplingConfig.SamplesPerPixel,
		},
		numWorkers: numWorkers,
		seed:       seed,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integrator integrator.Integrator) {
	rt.integrator = integrator
}

// NumWorkers returns the number of workers a render uses
func (rt *Raytracer) NumWorkers() int {
	return rt.numWorkers
}

// Validate checks that the scene can be rendered into fb
func (rt *Raytracer) Validate(fb *Framebuffer) error {
	if rt.config.width < 2 || rt.config.height < 2 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rt.config.width, rt.config.height)
	}
	if fb.Width() != rt.config.width || fb.Height() != rt.config.height {
		return fmt.Errorf("%w: framebuffer is %dx%d, scene is %dx%d",
			ErrInvalidDimensions, fb.Width(), fb.Height(), rt.config.width, rt.config.height)
	}
	if rt.config.samples <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSamples, rt.config.samples)
	}
	if rt.scene.Camera == nil {
		return ErrNoCamera
	}
	return nil
}

// Render renders the whole image into fb and blocks until every row is written
func (rt *Raytracer) Render(fb *Framebuffer) (RenderStats, error) {
	if err := rt.Validate(fb); err != nil {
		return RenderStats{}, err
	}

	start := time.Now()
	luminance := make([]float64, rt.config.width*rt.config.height)

	pool := NewWorkerPool(rt, fb, luminance, rt.numWorkers)
	pool.Start()
	workers := pool.Wait()

	stats := newRenderStats(rt.config, workers, luminance, time.Since(start))
	logger.Noticef("Render time: %d ms (%d workers, %.0f samples/s)",
		stats.Duration.Milliseconds(), len(workers), stats.SamplesPerSecond())
	return stats, nil
}

// renderRow renders image row y into pixels and records the average luminance
// of each pixel. It returns the number of samples taken.
func (rt *Raytracer) renderRow(y int, pixels []uint32, luminance []float64) int {
	sampler := rt.rowSampler(y)
	width := float64(rt.config.width - 1)
	height := float64(rt.config.height - 1)

	for x := range pixels {
		colorSum := core.Vec3{}
		for s := 0; s < rt.config.samples; s++ {
			u := (float64(x) + sampler.Get1D()) / width
			v := (float64(rt.config.height-y) + sampler.Get1D()) / height
			ray := rt.scene.Camera.GetRay(u, v, sampler)
			colorSum = colorSum.Add(rt.integrator.RayColor(ray, rt.scene, sampler))
		}

		pixels[x] = ToneMap(colorSum, rt.config.samples)
		luminance[x] = sanitize(colorSum).Multiply(1 / float64(rt.config.samples)).Luminance()
	}

	return len(pixels) * rt.config.samples
}

// rowSampler returns the random source for row y. Seeding per row keeps the
// image independent of how rows are split between workers.
func (rt *Raytracer) rowSampler(y int) core.Sampler {
	seed := uint64(rt.seed) ^ (uint64(y)+1)*0x9E3779B97F4A7C15
	return core.NewSeededSampler(int64(seed))
}
