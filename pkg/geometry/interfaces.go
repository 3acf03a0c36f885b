package geometry

import (
	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/material"
)

// Hittable is anything a ray can be intersected with
type Hittable interface {
	// Hit reports the closest intersection with t in [tMin, tMax).
	// The record is only written when Hit returns true.
	Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool
	BoundingBox() core.AABB
}

// Primitive is a scene object. The set of primitives is closed:
// *Sphere, *Rect, *Block, *Translate and *Rotate.
type Primitive interface {
	Hittable

	// IsLight reports whether the primitive emits light
	IsLight() bool
	// PDFValue returns the solid-angle density of hitting the primitive along ray
	PDFValue(ray core.Ray) float64
	// Random returns a direction from origin towards the primitive
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
	// Emit samples a ray leaving the surface of a light
	Emit(sampler core.Sampler) Emission

	primitive()
}

// Emission is a ray leaving the surface of a light together with the surface
// normal at its origin and the radiance it carries
type Emission struct {
	Ray      core.Ray
	Normal   core.Vec3
	Radiance core.Vec3
}

func (*Sphere) primitive()    {}
func (*Rect) primitive()      {}
func (*Block) primitive()     {}
func (*Translate) primitive() {}
func (*Rotate) primitive()    {}

// pdfEpsilon is the minimum distance for light sampling hit tests
const pdfEpsilon = 0.0001
