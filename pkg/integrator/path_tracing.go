package integrator

import (
	"math"

	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/material"
	"github.com/df07/raest/pkg/pdf"
	"github.com/df07/raest/pkg/scene"
)

// hitEpsilon keeps scattered rays from hitting the surface they leave
const hitEpsilon = 0.0001

// PathTracingIntegrator implements unidirectional path tracing. At diffuse
// surfaces the next direction is drawn from a mix of the material's
// distribution and a distribution over the scene's lights.
type PathTracingIntegrator struct {
	config scene.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config scene.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single ray, following at most MaxDepth bounces
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	var hit material.HitRecord
	for depth := 0; depth < pt.config.MaxDepth; depth++ {
		if !s.Hit(ray, hitEpsilon, math.Inf(1), &hit) {
			radiance = radiance.Add(throughput.MultiplyVec(s.Background.Color(ray)))
			break
		}

		// Start with emitted light from the hit material
		radiance = radiance.Add(throughput.MultiplyVec(hit.Material.Emitted(&hit)))

		scatter, didScatter := hit.Material.Scatter(ray, &hit, sampler)
		if !didScatter {
			break
		}

		if scatter.IsSpecular() {
			throughput = throughput.MultiplyVec(scatter.Attenuation)
			ray = scatter.Scattered
		} else {
			var ok bool
			ray, throughput, ok = pt.sampleDiffuse(scatter, &hit, s, throughput, sampler)
			if !ok {
				break
			}
		}

		if throughput.IsZero() {
			break
		}
	}

	return radiance
}

// sampleDiffuse draws the next direction from the material and light mixture
// and weights the throughput by material density over mixture density
func (pt *PathTracingIntegrator) sampleDiffuse(scatter material.ScatterResult, hit *material.HitRecord, s *scene.Scene, throughput core.Vec3, sampler core.Sampler) (core.Ray, core.Vec3, bool) {
	sampling := scatter.PDF
	if len(s.Lights) > 0 {
		sampling = pdf.NewMix(pt.config.MixBias, scatter.PDF, pdf.NewHittable(hit.Point, s.Lights))
	}

	direction := sampling.Generate(sampler)
	density := sampling.Value(direction)
	if !(density > 0) {
		return core.Ray{}, core.Vec3{}, false
	}

	weight := scatter.PDF.Value(direction) / density
	return core.NewRay(hit.Point, direction), throughput.MultiplyVec(scatter.Attenuation).Multiply(weight), true
}
