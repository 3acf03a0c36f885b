// Package pdf provides the probability density functions used to importance
// sample scattering directions. A PDF is a small value type: a closed set of
// variants selected by Kind, which can be nested through Mix.
package pdf

import (
	"math"

	"github.com/df07/raest/pkg/core"
)

// DefaultMixBias is the probability of sampling the material distribution
// when it is mixed with light sampling
const DefaultMixBias = 0.75

// Target is an object that directions can be importance sampled towards
type Target interface {
	// PDFValue returns the solid-angle density of hitting the target along ray
	PDFValue(ray core.Ray) float64
	// Random returns a direction from origin towards the target
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// Kind identifies a PDF variant
type Kind int

const (
	Cosine Kind = iota
	Phong
	Hittable
	Mix
)

func (k Kind) String() string {
	switch k {
	case Cosine:
		return "cosine"
	case Phong:
		return "phong"
	case Hittable:
		return "hittable"
	case Mix:
		return "mix"
	default:
		return "unknown"
	}
}

// PDF is a direction distribution that can be evaluated and sampled
type PDF struct {
	kind Kind

	basis    core.ONB // Cosine, Phong
	exponent float64  // Phong

	origin core.Vec3 // Hittable
	target Target    // Hittable

	bias float64 // Mix
	a, b *PDF    // Mix
}

// NewCosine creates a cosine-weighted hemisphere distribution around normal
func NewCosine(normal core.Vec3) PDF {
	return PDF{kind: Cosine, basis: core.NewONBFromW(normal)}
}

// NewPhong creates a cos^exponent lobe around axis, usually the mirror direction
func NewPhong(axis core.Vec3, exponent float64) PDF {
	return PDF{kind: Phong, basis: core.NewONBFromW(axis), exponent: exponent}
}

// NewHittable creates a distribution of directions from origin towards target
func NewHittable(origin core.Vec3, target Target) PDF {
	return PDF{kind: Hittable, origin: origin, target: target}
}

// NewMix creates the one-sample mixture bias*a + (1-bias)*b
func NewMix(bias float64, a, b PDF) PDF {
	return PDF{kind: Mix, bias: bias, a: &a, b: &b}
}

// Kind returns the variant of this PDF
func (p PDF) Kind() Kind {
	return p.kind
}

// Value returns the density of the distribution in direction dir
func (p PDF) Value(dir core.Vec3) float64 {
	switch p.kind {
	case Cosine:
		cosTheta := dir.Normalize().Dot(p.basis.W)
		return math.Max(0, cosTheta/math.Pi)
	case Phong:
		cosAlpha := dir.Normalize().Dot(p.basis.W)
		if cosAlpha <= 0 {
			return 0
		}
		return (p.exponent + 1) / (2 * math.Pi) * math.Pow(cosAlpha, p.exponent)
	case Hittable:
		return p.target.PDFValue(core.NewRay(p.origin, dir))
	case Mix:
		return p.bias*p.a.Value(dir) + (1-p.bias)*p.b.Value(dir)
	default:
		return 0
	}
}

// Generate draws a direction from the distribution.
// Directions are not necessarily normalized.
func (p PDF) Generate(sampler core.Sampler) core.Vec3 {
	switch p.kind {
	case Cosine:
		return p.basis.Local(core.SampleCosineDirection(sampler.Get2D()))
	case Phong:
		return p.basis.Local(core.SamplePhongLobe(p.exponent, sampler.Get2D()))
	case Hittable:
		return p.target.Random(p.origin, sampler)
	case Mix:
		if sampler.Get1D() < p.bias {
			return p.a.Generate(sampler)
		}
		return p.b.Generate(sampler)
	default:
		return core.Vec3{}
	}
}
