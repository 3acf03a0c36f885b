package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/material"
)

// RectAxis names the plane an axis-aligned rectangle lies in
type RectAxis int

const (
	XY RectAxis = iota // Normal along Z
	XZ                 // Normal along Y
	YZ                 // Normal along X
)

// ParseRectAxis parses "XY", "XZ" or "YZ" (case insensitive)
func ParseRectAxis(s string) (RectAxis, error) {
	switch strings.ToUpper(s) {
	case "XY":
		return XY, nil
	case "XZ":
		return XZ, nil
	case "YZ":
		return YZ, nil
	default:
		return 0, fmt.Errorf("unknown rect axis %q", s)
	}
}

func (a RectAxis) String() string {
	switch a {
	case XY:
		return "XY"
	case XZ:
		return "XZ"
	default:
		return "YZ"
	}
}

// point builds a 3D point from in-plane coordinates and the plane offset k
func (a RectAxis) point(u, v, k float64) core.Vec3 {
	switch a {
	case XY:
		return core.NewVec3(u, v, k)
	case XZ:
		return core.NewVec3(u, k, v)
	default:
		return core.NewVec3(k, u, v)
	}
}

// normalAxis returns the index of the axis perpendicular to the plane
func (a RectAxis) normalAxis() int {
	switch a {
	case XY:
		return 2
	case XZ:
		return 1
	default:
		return 0
	}
}

// unit returns the plane normal
func (a RectAxis) unit() core.Vec3 {
	return a.point(0, 0, 1)
}

// project drops the normal component of v
func (a RectAxis) project(v core.Vec3) core.Vec2 {
	switch a {
	case XY:
		return core.NewVec2(v.X, v.Y)
	case XZ:
		return core.NewVec2(v.X, v.Z)
	default:
		return core.NewVec2(v.Y, v.Z)
	}
}

// rectEpsilon widens the bounds check so adjacent rects leave no seams
const rectEpsilon = 0.0001

// Rect is an axis-aligned rectangle
type Rect struct {
	Axis     RectAxis
	P1, P2   core.Vec3 // Minimum and maximum corners
	Material *material.Material
	area     float64
}

// NewRect creates a rectangle in the given plane spanning the in-plane corners
// c1 and c2 at offset k along the normal. The corners may be given in any order.
func NewRect(axis RectAxis, c1, c2 core.Vec2, k float64, mat *material.Material) *Rect {
	u1, v1 := math.Min(c1.X, c2.X), math.Min(c1.Y, c2.Y)
	u2, v2 := math.Max(c1.X, c2.X), math.Max(c1.Y, c2.Y)

	return &Rect{
		Axis:     axis,
		P1:       axis.point(u1, v1, k),
		P2:       axis.point(u2, v2, k),
		Material: mat,
		area:     (u2 - u1) * (v2 - v1),
	}
}

// Hit tests if a ray intersects the rectangle
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	axis := r.Axis.normalAxis()
	t := (r.P1.Axis(axis) - ray.Origin.Axis(axis)) / ray.Direction.Axis(axis)
	// NaN fails both comparisons
	if !(t >= tMin && t < tMax) {
		return false
	}

	p := ray.At(t)
	if p.X < r.P1.X-rectEpsilon || p.X > r.P2.X+rectEpsilon ||
		p.Y < r.P1.Y-rectEpsilon || p.Y > r.P2.Y+rectEpsilon ||
		p.Z < r.P1.Z-rectEpsilon || p.Z > r.P2.Z+rectEpsilon {
		return false
	}

	hit.T = t
	hit.Point = p
	hit.Material = r.Material
	hit.SetFaceNormal(ray, r.Axis.unit())
	hit.UV = r.Axis.project(p.Subtract(r.P1).DivideVec(r.P2.Subtract(r.P1)))

	return true
}

// BoundingBox returns the rectangle's box, padded along the normal
func (r *Rect) BoundingBox() core.AABB {
	padding := r.Axis.point(0, 0, 0.001)
	return core.NewAABB(r.P1.Subtract(padding), r.P2.Add(padding))
}

// IsLight reports whether the rectangle has an emissive material
func (r *Rect) IsLight() bool {
	return r.Material.IsEmissive()
}

// PDFValue converts the uniform area density of the rectangle to solid angle
func (r *Rect) PDFValue(ray core.Ray) float64 {
	var rec material.HitRecord
	if !r.Hit(ray, pdfEpsilon, math.Inf(1), &rec) {
		return 0
	}

	distanceSquared := rec.T * rec.T * ray.Direction.LengthSquared()
	cosine := math.Abs(ray.Direction.Dot(rec.Normal) / ray.Direction.Length())
	return distanceSquared / (cosine * r.area)
}

// randomPoint returns a uniform point on the rectangle
func (r *Rect) randomPoint(sampler core.Sampler) core.Vec3 {
	s := sampler.Get3D()
	lo := r.P1.Subtract(core.NewVec3(rectEpsilon, rectEpsilon, rectEpsilon))
	extent := r.P2.Subtract(r.P1).Add(core.NewVec3(2*rectEpsilon, 2*rectEpsilon, 2*rectEpsilon))
	return lo.Add(extent.MultiplyVec(s))
}

// Random returns the direction from origin to a uniform point on the rectangle
func (r *Rect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.randomPoint(sampler).Subtract(origin)
}

// Emit samples a uniform point leaving in a cosine-weighted direction
// around the negative plane normal
func (r *Rect) Emit(sampler core.Sampler) Emission {
	point := r.randomPoint(sampler)
	normal := r.Axis.unit().Negate()
	direction := core.NewONBFromW(normal).Local(core.SampleCosineDirection(sampler.Get2D()))

	hit := material.HitRecord{
		Point:     point,
		Normal:    normal,
		FrontFace: true,
		Material:  r.Material,
		UV:        r.Axis.project(point.Subtract(r.P1).DivideVec(r.P2.Subtract(r.P1))),
	}
	return Emission{
		Ray:      core.NewRay(point, direction),
		Normal:   normal,
		Radiance: r.Material.Emitted(&hit),
	}
}
