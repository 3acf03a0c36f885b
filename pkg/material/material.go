package material

import (
	"math"

	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/pdf"
)

// Kind identifies a material variant
type Kind int

const (
	Lambertian Kind = iota
	Metal
	Dielectric
	Emission
	Phong
)

func (k Kind) String() string {
	switch k {
	case Lambertian:
		return "lambertian"
	case Metal:
		return "metal"
	case Dielectric:
		return "dielectric"
	case Emission:
		return "emission"
	case Phong:
		return "phong"
	default:
		return "unknown"
	}
}

// Material describes how a surface scatters and emits light.
// Materials are immutable and shared between primitives.
type Material struct {
	Kind Kind

	Albedo    ColorSource // Lambertian albedo, Emission radiance, Phong diffuse color
	Specular  ColorSource // Phong specular color
	Color     core.Vec3   // Metal albedo
	Roughness float64     // Metal fuzz in [0, 1]
	IOR       float64     // Dielectric index of refraction
	Kd        float64     // Phong probability of the diffuse lobe
	Shininess float64     // Phong specular exponent
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Material {
	return NewTexturedLambertian(NewSolidColor(albedo))
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo ColorSource) *Material {
	return &Material{Kind: Lambertian, Albedo: albedo}
}

// NewMetal creates a new metal material; roughness is clamped to [0, 1]
func NewMetal(albedo core.Vec3, roughness float64) *Material {
	return &Material{Kind: Metal, Color: albedo, Roughness: math.Max(0, math.Min(1, roughness))}
}

// NewDielectric creates a new dielectric material
func NewDielectric(ior float64) *Material {
	return &Material{Kind: Dielectric, IOR: ior}
}

// NewEmissive creates a light-emitting material with a solid radiance
func NewEmissive(radiance core.Vec3) *Material {
	return NewTexturedEmissive(NewSolidColor(radiance))
}

// NewTexturedEmissive creates a light-emitting material with textured radiance
func NewTexturedEmissive(radiance ColorSource) *Material {
	return &Material{Kind: Emission, Albedo: radiance}
}

// NewPhong creates a two-lobe material choosing the diffuse lobe with probability kd
func NewPhong(kd float64, diffuse, specular ColorSource, shininess float64) *Material {
	return &Material{
		Kind:      Phong,
		Albedo:    diffuse,
		Specular:  specular,
		Kd:        math.Max(0, math.Min(1, kd)),
		Shininess: shininess,
	}
}

// IsEmissive reports whether the material emits light
func (m *Material) IsEmissive() bool {
	return m.Kind == Emission
}

// Scatter samples how an incoming ray leaves the surface.
// Returns false when the material does not scatter.
func (m *Material) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case Lambertian:
		return ScatterResult{
			Attenuation: m.Albedo.Evaluate(hit.UV, hit.Point),
			PDF:         pdf.NewCosine(hit.Normal),
		}, true

	case Metal:
		reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)
		fuzz := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Roughness)
		return ScatterResult{
			Attenuation: m.Color,
			Specular:    true,
			Scattered:   core.NewRay(hit.Point, reflected.Add(fuzz)),
		}, true

	case Dielectric:
		return m.scatterDielectric(rayIn, hit, sampler), true

	case Phong:
		if sampler.Get1D() < m.Kd {
			return ScatterResult{
				Attenuation: m.Albedo.Evaluate(hit.UV, hit.Point),
				PDF:         pdf.NewCosine(hit.Normal),
			}, true
		}
		reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)
		return ScatterResult{
			Attenuation: m.Specular.Evaluate(hit.UV, hit.Point),
			PDF:         pdf.NewPhong(reflected, m.Shininess),
		}, true

	default:
		// Emission absorbs everything
		return ScatterResult{}, false
	}
}

func (m *Material) scatterDielectric(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) ScatterResult {
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / m.IOR
	} else {
		refractionRatio = m.IOR
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	var direction core.Vec3
	if refractionRatio*sinTheta > 1.0 || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = Reflect(unitDirection, hit.Normal)
	} else {
		direction = Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Attenuation: core.NewVec3(1, 1, 1),
		Specular:    true,
		Scattered:   core.NewRay(hit.Point, direction),
	}
}

// Emitted returns the radiance emitted at the hit point; zero for non-emitters
func (m *Material) Emitted(hit *HitRecord) core.Vec3 {
	if m.Kind != Emission {
		return core.Vec3{}
	}
	return m.Albedo.Evaluate(hit.UV, hit.Point)
}
