package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/material"
)

// Translate moves a primitive by a fixed offset
type Translate struct {
	Object Primitive
	Offset core.Vec3
}

// NewTranslate wraps object so it appears moved by offset
func NewTranslate(object Primitive, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit intersects the ray moved into the object's frame
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	moved := core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction)
	if !t.Object.Hit(moved, tMin, tMax, hit) {
		return false
	}

	hit.Point = ray.At(hit.T)
	return true
}

// BoundingBox returns the object's box moved by the offset
func (t *Translate) BoundingBox() core.AABB {
	box := t.Object.BoundingBox()
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset))
}

// IsLight delegates to the wrapped object
func (t *Translate) IsLight() bool {
	return t.Object.IsLight()
}

// PDFValue delegates with the ray in the object's frame
func (t *Translate) PDFValue(ray core.Ray) float64 {
	return t.Object.PDFValue(core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction))
}

// Random delegates with the origin in the object's frame
func (t *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return t.Object.Random(origin.Subtract(t.Offset), sampler)
}

// Emit moves the emitted ray by the offset
func (t *Translate) Emit(sampler core.Sampler) Emission {
	e := t.Object.Emit(sampler)
	e.Ray.Origin = e.Ray.Origin.Add(t.Offset)
	return e
}

// Rotate turns a primitive around an axis through the origin
type Rotate struct {
	Object  Primitive
	forward r3.Rotation
	inverse r3.Rotation
	box     core.AABB
}

// NewRotate wraps object in an axis-angle rotation. The direction of degrees is
// the rotation axis and its length is the angle in degrees.
func NewRotate(object Primitive, degrees core.Vec3) *Rotate {
	angle := degrees.Length() * math.Pi / 180.0
	axis := toR3(degrees)
	if angle == 0 {
		axis = r3.Vec{Z: 1}
	}

	r := &Rotate{
		Object:  object,
		forward: r3.NewRotation(angle, axis),
		inverse: r3.NewRotation(-angle, axis),
	}

	corners := object.BoundingBox().Corners()
	for i := range corners {
		corners[i] = r.rotate(corners[i])
	}
	r.box = core.NewAABBFromPoints(corners[:]...)

	return r
}

func toR3(v core.Vec3) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromR3(v r3.Vec) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

// rotate maps a vector from the object's frame to the world
func (r *Rotate) rotate(v core.Vec3) core.Vec3 {
	return fromR3(r.forward.Rotate(toR3(v)))
}

// unrotate maps a vector from the world to the object's frame
func (r *Rotate) unrotate(v core.Vec3) core.Vec3 {
	return fromR3(r.inverse.Rotate(toR3(v)))
}

func (r *Rotate) localRay(ray core.Ray) core.Ray {
	return core.NewRay(r.unrotate(ray.Origin), r.unrotate(ray.Direction))
}

// Hit intersects the ray rotated into the object's frame
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	if !r.Object.Hit(r.localRay(ray), tMin, tMax, hit) {
		return false
	}

	// Rotation preserves t and the sign of direction·normal
	hit.Point = ray.At(hit.T)
	hit.Normal = r.rotate(hit.Normal)
	return true
}

// BoundingBox returns the box around the rotated corners of the object's box
func (r *Rotate) BoundingBox() core.AABB {
	return r.box
}

// IsLight delegates to the wrapped object
func (r *Rotate) IsLight() bool {
	return r.Object.IsLight()
}

// PDFValue delegates with the ray in the object's frame
func (r *Rotate) PDFValue(ray core.Ray) float64 {
	return r.Object.PDFValue(r.localRay(ray))
}

// Random samples in the object's frame and rotates the direction back
func (r *Rotate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.rotate(r.Object.Random(r.unrotate(origin), sampler))
}

// Emit rotates the emitted ray and normal into the world
func (r *Rotate) Emit(sampler core.Sampler) Emission {
	e := r.Object.Emit(sampler)
	e.Ray = core.NewRay(r.rotate(e.Ray.Origin), r.rotate(e.Ray.Direction))
	e.Normal = r.rotate(e.Normal)
	return e
}
